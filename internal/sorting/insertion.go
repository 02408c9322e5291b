package sorting

// Insertion lifts the bar at i and shifts larger bars one slot right until
// the lifted key fits.
type Insertion struct {
	i, j   int
	key    int
	lifted bool
}

func NewInsertion() *Insertion { return &Insertion{i: 1} }

func (s *Insertion) Name() string { return string(AlgoInsertion) }

func (s *Insertion) Reset() { *s = Insertion{i: 1} }

func (s *Insertion) Step(a Array, emit Emit) (bool, error) {
	n := a.Len()
	for {
		if s.i >= n {
			return true, nil
		}
		if !s.lifted {
			key, err := a.Get(s.i)
			if err != nil {
				return false, err
			}
			s.key, s.j, s.lifted = key, s.i-1, true
		}
		if s.j < 0 {
			if err := s.place(a); err != nil {
				return false, err
			}
			continue
		}

		h, err := a.Get(s.j)
		if err != nil {
			return false, err
		}
		if err := emit(s.j); err != nil {
			return false, err
		}
		if s.key < h {
			if err := a.Set(s.j+1, h); err != nil {
				return false, err
			}
			s.j--
			return false, nil
		}
		return false, s.place(a)
	}
}

// place drops the key at j+1 and moves on to the next bar. A key that never
// moved is not rewritten.
func (s *Insertion) place(a Array) error {
	if s.j+1 != s.i {
		if err := a.Set(s.j+1, s.key); err != nil {
			return err
		}
	}
	s.i++
	s.lifted = false
	return nil
}
