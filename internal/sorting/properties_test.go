package sorting_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/sorting"
)

var _ = Describe("Drivers", func() {
	registry := sorting.NewRegistry()

	for _, name := range []string{"bubble", "selection", "insertion"} {
		name := name

		Describe(name, func() {
			DescribeTable("sorts any input into a permutation of itself",
				func(n, min, max int, seed int64) {
					a, err := bars.New(n, min, max, seed)
					Expect(err).NotTo(HaveOccurred())
					initial := a.Heights()

					d, err := registry.Get(name)
					Expect(err).NotTo(HaveOccurred())

					_, err = sorting.Run(d, a, func(idx ...int) error {
						Expect(a.Len()).To(Equal(n))
						for _, i := range idx {
							Expect(i).To(BeNumerically(">=", 0))
							Expect(i).To(BeNumerically("<", n))
						}
						for _, h := range a.Heights() {
							Expect(h).To(BeNumerically(">=", min))
							Expect(h).To(BeNumerically("<=", max))
						}
						return nil
					})
					Expect(err).NotTo(HaveOccurred())
					Expect(a.IsSorted()).To(BeTrue())

					sort.Ints(initial)
					Expect(a.Heights()).To(Equal(initial))
				},
				Entry("default array", 50, bars.DefaultMinHeight, bars.DefaultMaxHeight, int64(1)),
				Entry("many duplicates", 60, 1, 3, int64(2)),
				Entry("all equal", 20, 5, 5, int64(3)),
				Entry("two bars", 2, 10, 300, int64(4)),
				Entry("odd length", 33, 0, 1000, int64(5)),
			)

			It("is deterministic for the same input", func() {
				a, _ := bars.New(30, 10, 300, 11)
				b := a.Clone()

				var framesA, framesB [][]int
				d1, _ := registry.Get(name)
				d2, _ := registry.Get(name)
				sA, err := sorting.Run(d1, a, func(idx ...int) error {
					framesA = append(framesA, append([]int(nil), idx...))
					return nil
				})
				Expect(err).NotTo(HaveOccurred())
				sB, err := sorting.Run(d2, b, func(idx ...int) error {
					framesB = append(framesB, append([]int(nil), idx...))
					return nil
				})
				Expect(err).NotTo(HaveOccurred())

				Expect(sA).To(Equal(sB))
				Expect(framesA).To(Equal(framesB))
			})
		})
	}

	It("never lets insertion exceed n(n-1)/2 comparisons", func() {
		for seed := int64(0); seed < 10; seed++ {
			a, _ := bars.New(25, 10, 300, seed)
			stats, err := sorting.Run(sorting.NewInsertion(), a, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Comparisons).To(BeNumerically(">=", 24))
			Expect(stats.Comparisons).To(BeNumerically("<=", 25*24/2))
		}
	})
})
