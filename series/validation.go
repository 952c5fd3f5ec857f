package series

import "math"

// NCases returns the number of cases in the collection.
func (c Collection) NCases() int {
	return len(c)
}

// NChannels returns the number of channels of the first case, or 0 for an
// empty collection.
func (c Collection) NChannels() int {
	if len(c) == 0 || c[0] == nil {
		return 0
	}
	r, _ := c[0].Dims()
	return r
}

// NTimepoints returns the number of timepoints of the first case, or 0 for
// an empty collection. For ragged collections this is the length of the
// first series only.
func (c Collection) NTimepoints() int {
	if len(c) == 0 || c[0] == nil {
		return 0
	}
	_, cols := c[0].Dims()
	return cols
}

// IsEqualLength reports whether every case has the same number of
// timepoints. An empty collection is considered equal length.
func (c Collection) IsEqualLength() bool {
	if len(c) == 0 {
		return true
	}
	_, n := c[0].Dims()
	for _, s := range c[1:] {
		if s == nil {
			return false
		}
		if _, cols := s.Dims(); cols != n {
			return false
		}
	}
	return true
}

// LengthRange returns the minimum and maximum series length over all cases.
func (c Collection) LengthRange() (min, max int) {
	for i, s := range c {
		if s == nil {
			continue
		}
		_, cols := s.Dims()
		if i == 0 {
			min, max = cols, cols
			continue
		}
		if cols < min {
			min = cols
		}
		if cols > max {
			max = cols
		}
	}
	return min, max
}

// IsUnivariate reports whether every case has exactly one channel.
func (c Collection) IsUnivariate() bool {
	for _, s := range c {
		if s == nil {
			return false
		}
		if r, _ := s.Dims(); r != 1 {
			return false
		}
	}
	return len(c) > 0
}

// HasMissing reports whether any value in the collection is NaN.
func (c Collection) HasMissing() bool {
	for _, s := range c {
		if s == nil {
			continue
		}
		r, cols := s.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < cols; j++ {
				if math.IsNaN(s.At(i, j)) {
					return true
				}
			}
		}
	}
	return false
}
