package sorting

import (
	"errors"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		input string
		want  string
	}{
		{"bubble", "bubble"},
		{"Selection", "selection"},
		{" insertion ", "insertion"},
		{"bubble_sort", "bubble"},
		{"insertion_sort", "insertion"},
		{"none", "none"},
		{"identity", "none"},
	}

	for _, tt := range tests {
		d, err := r.Get(tt.input)
		if err != nil {
			t.Errorf("Get(%q): %v", tt.input, err)
			continue
		}
		if d.Name() != tt.want {
			t.Errorf("Get(%q).Name() = %q, want %q", tt.input, d.Name(), tt.want)
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	for _, name := range []string{"", "quick", "oracle", "self.bubble_sort()"} {
		if _, err := NewRegistry().Get(name); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("Get(%q): expected ErrUnknownAlgorithm, got %v", name, err)
		}
	}
}

func TestRegistryFreshDrivers(t *testing.T) {
	r := NewRegistry()
	a, _ := r.Get("bubble")
	b, _ := r.Get("bubble")
	if a == b {
		t.Error("expected a new driver per Get")
	}
}

func TestRegistryNames(t *testing.T) {
	names := NewRegistry().Names()
	want := []string{"bubble", "insertion", "none", "selection"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
