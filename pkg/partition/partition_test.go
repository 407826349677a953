package partition

import (
	"fmt"
	"math"
	"slices"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/reductor/pkg/api"
)

func exampleUniverse() *api.Universe {
	return api.MustUniverse(
		api.Instance{1, 1, 1},
		api.Instance{1, 1, 1},
		api.Instance{2, 1, 2},
		api.Instance{2, 2, 1},
	)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name       string
		universe   *api.Universe
		attributes api.AttributeSet
		classes    []Class
	}{
		{name: "should partition by all attributes",
			universe: exampleUniverse(),
			classes:  []Class{{0, 1}, {2}, {3}},
		},
		{name: "should return one class for the empty set",
			universe:   exampleUniverse(),
			attributes: api.AttributeSet{},
			classes:    []Class{{0, 1, 2, 3}},
		},
		{name: "should order classes by the first attribute",
			universe:   exampleUniverse(),
			attributes: api.AttributeSet{2, 1},
			classes:    []Class{{0, 1}, {3}, {2}},
		},
		{name: "should tolerate duplicate attributes",
			universe:   exampleUniverse(),
			attributes: api.AttributeSet{2, 2},
			classes:    []Class{{0, 1, 3}, {2}},
		},
		{name: "should return nothing for an empty universe",
			universe: api.MustUniverse(),
			classes:  nil,
		},
		{name: "should group missing values like any other value",
			universe: api.MustUniverse(
				api.Instance{0, api.Missing},
				api.Instance{1, 3},
				api.Instance{1, api.Missing},
			),
			classes: []Class{{0, 2}, {1}},
		},
		{name: "should fall back to sorting for wide value ranges",
			universe: api.MustUniverse(
				api.Instance{0, 1 << 30},
				api.Instance{1, 0},
				api.Instance{1, 1 << 30},
			),
			classes: []Class{{1}, {0, 2}},
		},
		{name: "should fall back to sorting for the full int range",
			universe: api.MustUniverse(
				api.Instance{0, math.MaxInt},
				api.Instance{1, math.MinInt},
				api.Instance{1, 0},
				api.Instance{0, math.MaxInt},
			),
			classes: []Class{{1}, {2}, {0, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			classes, err := EquivalenceClasses(tt.universe, tt.attributes)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(classes).To(Equal(tt.classes))
		})
	}
}

func TestPartitionIllegalAttribute(t *testing.T) {
	g := NewGomegaWithT(t)
	_, err := EquivalenceClasses(exampleUniverse(), api.AttributeSet{1, 3})
	g.Expect(err).To(MatchError(api.ErrIllegalAttribute))
}

func TestPartitionProperty(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed: %d", seed), func(t *testing.T) {
			g := NewGomegaWithT(t)
			u := randomUniverse(seed, 200, 6, 4)
			s := NewScratch()
			for _, attrs := range []api.AttributeSet{{1}, {2, 5}, {6, 1, 3}, nil} {
				classes, err := Partition(u, u.IDs(), attrs, s)
				g.Expect(err).ToNot(HaveOccurred())
				attrs, _ = u.Resolve(attrs)

				// disjoint cover of the universe
				members := Members(classes)
				slices.Sort(members)
				g.Expect(members).To(Equal(u.IDs()))

				for i, c := range classes {
					g.Expect(c).ToNot(BeEmpty())
					g.Expect(slices.IsSorted(c)).To(BeTrue(), "ids keep their relative order")
					for _, id := range c {
						g.Expect(key(u, id, attrs)).To(Equal(key(u, c[0], attrs)))
					}
					if i > 0 {
						g.Expect(slices.Compare(key(u, classes[i-1][0], attrs), key(u, c[0], attrs))).To(Equal(-1))
					}
				}
			}
		})
	}
}

func TestPartitionSubset(t *testing.T) {
	g := NewGomegaWithT(t)
	u := exampleUniverse()
	classes, err := Partition(u, []int{3, 1, 2}, api.AttributeSet{1}, nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(classes).To(Equal([]Class{{1, 2}, {3}}))
}

func TestRefine(t *testing.T) {
	g := NewGomegaWithT(t)
	u := randomUniverse(42, 300, 5, 3)
	s := NewScratch()

	coarse, err := Partition(u, u.IDs(), api.AttributeSet{1, 2}, s)
	g.Expect(err).ToNot(HaveOccurred())
	refined, err := Refine(u, coarse, api.AttributeSet{4}, s)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(refined).To(HaveLen(len(coarse)))

	fine, err := Partition(u, u.IDs(), api.AttributeSet{1, 2, 4}, s)
	g.Expect(err).ToNot(HaveOccurred())
	var flat []Class
	for i, children := range refined {
		g.Expect(Size(children)).To(Equal(coarse[i].Size()))
		flat = append(flat, children...)
	}
	g.Expect(flat).To(Equal(fine))
}

func TestRefineEmpty(t *testing.T) {
	g := NewGomegaWithT(t)
	refined, err := Refine(exampleUniverse(), nil, api.AttributeSet{1}, nil)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(refined).To(BeEmpty())

	_, err = Refine(exampleUniverse(), []Class{{0}}, api.AttributeSet{7}, nil)
	g.Expect(err).To(MatchError(api.ErrIllegalAttribute))
}
