package sorting

// Bubble compares adjacent pairs and swaps them when out of order. It never
// exits early, so it always performs n(n-1)/2 comparisons.
type Bubble struct {
	i, j int
}

func NewBubble() *Bubble { return &Bubble{} }

func (b *Bubble) Name() string { return string(AlgoBubble) }

func (b *Bubble) Reset() { b.i, b.j = 0, 0 }

func (b *Bubble) Step(a Array, emit Emit) (bool, error) {
	n := a.Len()
	for {
		if b.i >= n {
			return true, nil
		}
		if b.j >= n-b.i-1 {
			b.i++
			b.j = 0
			continue
		}

		j := b.j
		c, err := a.Compare(j, j+1)
		if err != nil {
			return false, err
		}
		if err := emit(j, j+1); err != nil {
			return false, err
		}
		if c > 0 {
			if err := a.Swap(j, j+1); err != nil {
				return false, err
			}
		}
		b.j++
		return false, nil
	}
}
