package sorting

// Array is the view of the bar array a driver steps over.
// *bars.Array satisfies it.
type Array interface {
	Len() int
	Get(i int) (int, error)
	Compare(i, j int) (int, error)
	Swap(i, j int) error
	Set(i, v int) error
}

// Emit receives the highlight set of one comparison. It is called before the
// comparison's mutation is applied. A non-nil error ends the step with
// the array untouched.
type Emit func(highlight ...int) error

// Driver is one sorting algorithm expressed as a state machine.
type Driver interface {
	Name() string
	// Step performs one comparison and calls emit exactly once, or returns
	// done without calling emit when nothing is left to compare.
	Step(a Array, emit Emit) (done bool, err error)
	// Reset returns the driver to its initial state.
	Reset()
}

// Stats counts the work a driver has done.
type Stats struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Writes      int `json:"writes"`
}

// Counting wraps an Array and counts swaps and writes going through it.
// Comparisons are counted by whoever receives the emits.
type Counting struct {
	Array
	Stats Stats
}

func (c *Counting) Swap(i, j int) error {
	if err := c.Array.Swap(i, j); err != nil {
		return err
	}
	c.Stats.Swaps++
	return nil
}

func (c *Counting) Set(i, v int) error {
	if err := c.Array.Set(i, v); err != nil {
		return err
	}
	c.Stats.Writes++
	return nil
}

// Run steps d over a until it is done, forwarding every highlight set to emit
// (which may be nil). It returns the counted work.
func Run(d Driver, a Array, emit Emit) (Stats, error) {
	c := &Counting{Array: a}
	counted := func(idx ...int) error {
		if emit != nil {
			if err := emit(idx...); err != nil {
				return err
			}
		}
		c.Stats.Comparisons++
		return nil
	}
	for {
		done, err := d.Step(c, counted)
		if err != nil {
			return c.Stats, err
		}
		if done {
			return c.Stats, nil
		}
	}
}
