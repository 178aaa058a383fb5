package testutil

// StubRand is a random.Source whose outcomes are scripted. Values pop
// front to back; running past the script repeats the last value so a
// test only scripts the draws it cares about.
type StubRand struct {
	IntnValues  []int
	FloatValues []float64
}

func (s *StubRand) Intn(n int) int {
	if len(s.IntnValues) == 0 {
		return 0
	}
	v := s.IntnValues[0]
	if len(s.IntnValues) > 1 {
		s.IntnValues = s.IntnValues[1:]
	}
	if v >= n {
		v = n - 1
	}
	return v
}

func (s *StubRand) Float64() float64 {
	if len(s.FloatValues) == 0 {
		return 0
	}
	v := s.FloatValues[0]
	if len(s.FloatValues) > 1 {
		s.FloatValues = s.FloatValues[1:]
	}
	return v
}
