package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the biofilter version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("biofilter", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
