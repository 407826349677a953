package region

import (
	"slices"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/partition"
)

// Child is one sub-class of a nested class, keyed by its values on the
// refining attributes.
type Child struct {
	Key      []int
	Class    partition.Class
	Decision Decision
}

// Nested is a class under a coarser attribute set together with its
// sub-classes under the finer set.
type Nested struct {
	Parent   partition.Class
	Refined  api.AttributeSet
	Children []Child
}

// Lookup finds the sub-class with the given key on the refining attributes.
func (n *Nested) Lookup(key []int) (partition.Class, bool) {
	for _, c := range n.Children {
		if slices.Equal(c.Key, key) {
			return c.Class, true
		}
	}
	return nil, false
}

// Refinement is the outcome of re-partitioning a boundary on additional
// attributes.
type Refinement struct {
	// Nested is only filled by RefineBoundary.
	Nested []Nested
	// Boundary holds the sub-classes which are still boundary classes.
	Boundary []partition.Class
	// Resolved counts the instances which moved out of the boundary.
	Resolved int
}

// RefineBoundary re-partitions only the instances of boundary, class by
// class, on the added attributes and keeps the nested structure. Classes
// outside of the boundary are consistent and stay so under any finer
// attribute set, therefore they are never looked at again.
func RefineBoundary(u *api.Universe, boundary []partition.Class, added api.AttributeSet, s *partition.Scratch) (*Refinement, error) {
	return refine(u, boundary, added, s, true)
}

// ResolveBoundary is RefineBoundary without the nested structure. Only
// Boundary and Resolved are filled.
func ResolveBoundary(u *api.Universe, boundary []partition.Class, added api.AttributeSet, s *partition.Scratch) (*Refinement, error) {
	return refine(u, boundary, added, s, false)
}

func refine(u *api.Universe, boundary []partition.Class, added api.AttributeSet, s *partition.Scratch, nested bool) (*Refinement, error) {
	added, err := u.Resolve(added)
	if err != nil {
		return nil, err
	}
	refined, err := partition.Refine(u, boundary, added, s)
	if err != nil {
		return nil, err
	}
	r := &Refinement{}
	if nested {
		r.Nested = make([]Nested, 0, len(boundary))
	}
	for i, parent := range boundary {
		var n Nested
		if nested {
			n = Nested{Parent: parent, Refined: added, Children: make([]Child, 0, len(refined[i]))}
		}
		for _, c := range refined[i] {
			d := Summarize(u, c)
			if nested {
				n.Children = append(n.Children, Child{Key: key(u, c[0], added), Class: c, Decision: d})
			}
			if d.IsBoundary() {
				r.Boundary = append(r.Boundary, c)
			} else {
				r.Resolved += len(c)
			}
		}
		if nested {
			r.Nested = append(r.Nested, n)
		}
	}
	return r, nil
}

func key(u *api.Universe, id int, attributes api.AttributeSet) []int {
	k := make([]int, 0, len(attributes))
	for _, a := range attributes {
		k = append(k, u.Value(id, a))
	}
	return k
}
