package sorting

// Selection scans for the minimum of the unsorted suffix and swaps it into
// place once per pass.
type Selection struct {
	i, j, min int
	scanning  bool
}

func NewSelection() *Selection { return &Selection{} }

func (s *Selection) Name() string { return string(AlgoSelection) }

func (s *Selection) Reset() { *s = Selection{} }

func (s *Selection) Step(a Array, emit Emit) (bool, error) {
	n := a.Len()
	for {
		if s.i >= n {
			return true, nil
		}
		if !s.scanning {
			s.min, s.j, s.scanning = s.i, s.i+1, true
		}
		if s.j >= n {
			if s.min != s.i {
				if err := a.Swap(s.i, s.min); err != nil {
					return false, err
				}
			}
			s.i++
			s.scanning = false
			continue
		}

		c, err := a.Compare(s.min, s.j)
		if err != nil {
			return false, err
		}
		if err := emit(s.min, s.j); err != nil {
			return false, err
		}
		if c > 0 {
			s.min = s.j
		}
		s.j++
		return false, nil
	}
}
