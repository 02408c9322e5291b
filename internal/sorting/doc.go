// Package sorting provides the sorting algorithms as stepping state machines.
//
// Each algorithm implements [Driver]. A call to [Driver.Step] performs exactly
// one comparison, reports the compared indices through an [Emit] callback
// before it mutates the array, and returns done once the array is sorted:
//
//   - [Bubble]: adjacent compare-and-swap passes, n(n-1)/2 comparisons
//   - [Selection]: running-minimum scan then one swap per pass
//   - [Insertion]: shifts larger bars right until the key fits
//   - [None]: pass-through, zero comparisons
//
// Drivers are selected by name through a [Registry]:
//
//	d, err := sorting.NewRegistry().Get("bubble")
//	for {
//	    done, err := d.Step(arr, func(idx ...int) { render(idx) })
//	    if err != nil || done {
//	        break
//	    }
//	}
package sorting
