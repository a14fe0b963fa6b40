package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters (the Butterworth bandpass
// cascades of the conditioning pipeline) where each second-order
// section feeds into the next.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// ResetToDC initializes every section to its steady state for constant
// input x, propagating the DC gain of each section to the next.
func (c *Chain) ResetToDC(x float64) {
	for i := range c.sections {
		c.sections[i].ResetToDC(x)
		x *= c.sections[i].dcGain()
	}
}

func (s *Section) dcGain() float64 {
	den := 1 + s.A1 + s.A2
	if den == 0 {
		return 0
	}

	return (s.B0 + s.B1 + s.B2) / den
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}
