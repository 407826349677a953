package significance

import (
	"fmt"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/partition"
	"github.com/rmohr/reductor/pkg/region"
	"github.com/sirupsen/logrus"
)

// State is the significance of one attribute set together with the boundary
// it leaves behind. The boundary is what the incremental path continues
// from.
type State struct {
	Attributes api.AttributeSet
	Boundary   []partition.Class
	// Positive is the number of instances in consistent classes.
	Positive int
	Value    float64
}

// BoundarySize is the number of instances inside boundary classes.
func (s *State) BoundarySize() int {
	return partition.Size(s.Boundary)
}

// Calculator computes significance values over one universe. It keeps a
// partition.Scratch and must therefore not be used from multiple goroutines.
type Calculator struct {
	Universe *api.Universe
	Measure  Measure
	// Verify cross-checks every incremental result against the from-scratch
	// path.
	Verify  bool
	scratch *partition.Scratch
}

func NewCalculator(u *api.Universe, m Measure) *Calculator {
	if m == nil {
		m = PositiveRegion
	}
	return &Calculator{
		Universe: u,
		Measure:  m,
		scratch:  partition.NewScratch(),
	}
}

func (c *Calculator) state(attributes api.AttributeSet, boundary []partition.Class) *State {
	positive := c.Universe.Size() - partition.Size(boundary)
	return &State{
		Attributes: attributes,
		Boundary:   boundary,
		Positive:   positive,
		Value:      c.Measure.Value(positive, c.Universe.Size()),
	}
}

// FromScratch partitions the whole universe on attributes.
func (c *Calculator) FromScratch(attributes api.AttributeSet) (*State, error) {
	attributes, err := c.Universe.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	classes, err := partition.Partition(c.Universe, c.Universe.IDs(), attributes, c.scratch)
	if err != nil {
		return nil, err
	}
	return c.state(attributes.Clone(), region.BoundarySet(c.Universe, classes)), nil
}

// Initial is the state of the empty attribute set: the whole universe is one
// class.
func (c *Calculator) Initial() *State {
	s, _ := c.FromScratch(api.AttributeSet{})
	return s
}

// Incremental computes the state of from.Attributes extended by added. Only
// the boundary of from is re-partitioned.
func (c *Calculator) Incremental(from *State, added ...int) (*State, error) {
	// With copies into a non-nil set: no added attributes must not mean all attributes
	refinement, err := region.ResolveBoundary(c.Universe, from.Boundary, api.AttributeSet(added).With(), c.scratch)
	if err != nil {
		return nil, err
	}
	next := c.state(from.Attributes.With(added...), refinement.Boundary)
	if next.Positive != from.Positive+refinement.Resolved {
		return nil, fmt.Errorf("positive region of %v is %d, but %d + %d instances were expected: %w",
			next.Attributes, next.Positive, from.Positive, refinement.Resolved, api.ErrInconsistentState)
	}
	if c.Verify {
		full, err := c.FromScratch(next.Attributes)
		if err != nil {
			return nil, err
		}
		if full.Positive != next.Positive || full.Value != next.Value {
			return nil, fmt.Errorf("incremental significance %v of %v differs from %v computed from scratch: %w",
				next.Value, next.Attributes, full.Value, api.ErrInconsistentState)
		}
		logrus.Debugf("verified significance %v of %v", next.Value, next.Attributes)
	}
	return next, nil
}

// BoundaryExceeds reports whether the boundary under attributes holds more
// than limit instances. The universe is partitioned in full, only the scan
// over the classes stops at the limit.
func (c *Calculator) BoundaryExceeds(attributes api.AttributeSet, limit int) (bool, error) {
	classes, err := partition.Partition(c.Universe, c.Universe.IDs(), attributes, c.scratch)
	if err != nil {
		return false, err
	}
	return region.BoundaryExceeds(c.Universe, classes, limit), nil
}

// Significance computes the significance of attributes from scratch.
func Significance(u *api.Universe, attributes api.AttributeSet, m Measure) (float64, error) {
	s, err := NewCalculator(u, m).FromScratch(attributes)
	if err != nil {
		return 0, err
	}
	return s.Value, nil
}
