package main

import "github.com/Sivabala06/Biomedical-signal-Filtering/internal/cli"

func main() {
	cli.Execute()
}
