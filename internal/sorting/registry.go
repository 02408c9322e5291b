package sorting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Algorithm names a driver.
type Algorithm string

const (
	AlgoBubble    Algorithm = "bubble"
	AlgoSelection Algorithm = "selection"
	AlgoInsertion Algorithm = "insertion"
	AlgoNone      Algorithm = "none"
)

var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

type Registry struct {
	drivers map[Algorithm]func() Driver
	aliases map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		drivers: make(map[Algorithm]func() Driver),
		aliases: make(map[string]Algorithm),
	}

	r.drivers[AlgoBubble] = func() Driver { return NewBubble() }
	r.drivers[AlgoSelection] = func() Driver { return NewSelection() }
	r.drivers[AlgoInsertion] = func() Driver { return NewInsertion() }
	r.drivers[AlgoNone] = func() Driver { return NewNone() }

	r.aliases["bubble_sort"] = AlgoBubble
	r.aliases["selection_sort"] = AlgoSelection
	r.aliases["insertion_sort"] = AlgoInsertion
	r.aliases["identity"] = AlgoNone

	return r
}

// Resolve maps a user-supplied name, case-insensitively and with aliases, to
// its Algorithm.
func (r *Registry) Resolve(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if _, ok := r.drivers[Algorithm(key)]; ok {
		return Algorithm(key), nil
	}
	if algo, ok := r.aliases[key]; ok {
		return algo, nil
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownAlgorithm, name, strings.Join(r.Names(), ", "))
}

func (r *Registry) Get(name string) (Driver, error) {
	algo, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return r.drivers[algo](), nil
}

// Names returns the canonical algorithm names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.drivers))
	for algo := range r.drivers {
		names = append(names, string(algo))
	}
	sort.Strings(names)
	return names
}
