package partition

import (
	"cmp"
	"slices"
)

// maxTableSize bounds the frequency table. Attributes with a wider value
// range fall back to a stable comparison sort.
const maxTableSize = 1 << 22

// Scratch holds the frequency, offset and placement buffers of the counting
// passes. A Scratch must not be shared between goroutines, but can be reused
// for any number of consecutive calls.
type Scratch struct {
	counts []int
	buf    []int
	owner  []int
}

func NewScratch() *Scratch {
	return &Scratch{}
}

// distribute stably reorders ids by key in a single counting pass.
func (s *Scratch) distribute(ids []int, key func(id int) int) {
	if len(ids) < 2 {
		return
	}
	lo, hi := key(ids[0]), key(ids[0])
	for _, id := range ids[1:] {
		v := key(id)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return
	}
	// the distance in uint can not overflow, hi - lo in int can
	if uint(hi)-uint(lo) >= maxTableSize {
		slices.SortStableFunc(ids, func(a, b int) int {
			return cmp.Compare(key(a), key(b))
		})
		return
	}
	width := hi - lo + 1

	counts := s.table(width + 1)
	for _, id := range ids {
		counts[key(id)-lo+1]++
	}
	// counts[v-lo+1] becomes the exclusive end offset of value v
	for i := 1; i <= width; i++ {
		counts[i] += counts[i-1]
	}
	out := s.buffer(len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		slot := key(ids[i]) - lo + 1
		counts[slot]--
		out[counts[slot]] = ids[i]
	}
	copy(ids, out)
}

func (s *Scratch) table(n int) []int {
	if cap(s.counts) < n {
		s.counts = make([]int, n)
		return s.counts
	}
	s.counts = s.counts[:n]
	clear(s.counts)
	return s.counts
}

func (s *Scratch) buffer(n int) []int {
	if cap(s.buf) < n {
		s.buf = make([]int, n)
	}
	return s.buf[:n]
}

func (s *Scratch) owners(n int) []int {
	if cap(s.owner) < n {
		s.owner = make([]int, n)
	}
	return s.owner[:n]
}
