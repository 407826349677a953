package partition

import (
	"github.com/rmohr/reductor/pkg/api"
)

// Class is an equivalence class, the identities of instances which agree on
// every attribute of the partitioning set.
type Class []int

func (c Class) Size() int {
	return len(c)
}

// Size sums up the sizes of all given classes.
func Size(classes []Class) int {
	n := 0
	for _, c := range classes {
		n += len(c)
	}
	return n
}

// Members flattens classes back into a list of instance identities.
func Members(classes []Class) []int {
	ids := make([]int, 0, Size(classes))
	for _, c := range classes {
		ids = append(ids, c...)
	}
	return ids
}

// EquivalenceClasses partitions the whole universe. A nil attribute set
// partitions by all conditional attributes.
func EquivalenceClasses(u *api.Universe, attributes api.AttributeSet) ([]Class, error) {
	return Partition(u, u.IDs(), attributes, nil)
}

// Partition groups the instances ids by their values on attributes. The
// returned classes are ordered lexicographically by their key, the first
// attribute being the most significant one; inside a class the relative
// order of ids is preserved. Passing a nil Scratch allocates a fresh one.
func Partition(u *api.Universe, ids []int, attributes api.AttributeSet, s *Scratch) ([]Class, error) {
	attributes, err := u.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	order := make([]int, len(ids))
	copy(order, ids)
	if len(attributes) == 0 {
		return []Class{order}, nil
	}
	if s == nil {
		s = NewScratch()
	}

	// least significant attribute first, like a LSD radix sort
	for i := len(attributes) - 1; i >= 0; i-- {
		s.distribute(order, column(u, attributes[i]))
	}
	return split(order, func(prev, cur int) bool {
		for _, a := range attributes {
			if u.Value(prev, a) != u.Value(cur, a) {
				return true
			}
		}
		return false
	}), nil
}

// Refine partitions every given class on attributes separately. The result
// holds the sub-classes of classes[i] at index i. Only the instances inside
// classes are touched, so refining a small boundary is cheap regardless of
// the universe size.
func Refine(u *api.Universe, classes []Class, attributes api.AttributeSet, s *Scratch) ([][]Class, error) {
	attributes, err := u.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	refined := make([][]Class, len(classes))
	total := Size(classes)
	if total == 0 {
		return refined, nil
	}
	if s == nil {
		s = NewScratch()
	}

	owner := s.owners(u.Size())
	order := make([]int, 0, total)
	for i, c := range classes {
		for _, id := range c {
			owner[id] = i
		}
		order = append(order, c...)
	}
	for i := len(attributes) - 1; i >= 0; i-- {
		s.distribute(order, column(u, attributes[i]))
	}
	// the owning class is the most significant key
	s.distribute(order, func(id int) int { return owner[id] })

	for _, c := range split(order, func(prev, cur int) bool {
		if owner[prev] != owner[cur] {
			return true
		}
		for _, a := range attributes {
			if u.Value(prev, a) != u.Value(cur, a) {
				return true
			}
		}
		return false
	}) {
		i := owner[c[0]]
		refined[i] = append(refined[i], c)
	}
	return refined, nil
}

func column(u *api.Universe, attribute int) func(id int) int {
	return func(id int) int {
		return u.Instances[id][attribute]
	}
}

// split cuts a sorted order into maximal runs. The classes share the backing
// array of order.
func split(order []int, differs func(prev, cur int) bool) []Class {
	var classes []Class
	start := 0
	for i := 1; i < len(order); i++ {
		if differs(order[i-1], order[i]) {
			classes = append(classes, order[start:i:i])
			start = i
		}
	}
	return append(classes, order[start:len(order):len(order)])
}
