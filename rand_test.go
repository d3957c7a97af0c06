package poissondisk

// scriptedRand is a Rand that hands back fixed values (cycling) & counts calls.
type scriptedRand struct {
	floats []float64
	ints   []int

	floatCalls int
	intCalls   int
	intArgs    []int
}

func (s *scriptedRand) Float64() float64 {
	v := 0.0
	if len(s.floats) > 0 {
		v = s.floats[s.floatCalls%len(s.floats)]
	}
	s.floatCalls++
	return v
}

func (s *scriptedRand) Intn(n int) int {
	s.intArgs = append(s.intArgs, n)
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[s.intCalls%len(s.ints)] % n
	}
	s.intCalls++
	return v
}

// countingValidator2D records calls & returns err
type countingValidator2D struct {
	calls int
	err   error
}

func (c *countingValidator2D) Validate(p *Parameters2D) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	return Validate2D(p)
}

// countingValidator3D records calls & returns err
type countingValidator3D struct {
	calls int
	err   error
}

func (c *countingValidator3D) Validate(p *Parameters3D) error {
	c.calls++
	if c.err != nil {
		return c.err
	}
	return Validate3D(p)
}
