package region

import (
	"fmt"
	"math"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/partition"
)

// AnyDecision as target decision makes every consistent class positive.
const AnyDecision = math.MinInt

type Tag int

const (
	Consistent Tag = iota
	Conflicting
)

// Decision is the cached decision summary of a class: either one consistent
// decision value or the conflicting marker.
type Decision struct {
	Tag   Tag
	Value int
}

func (d Decision) String() string {
	if d.Tag == Conflicting {
		return "conflicting"
	}
	if d.Value == api.Missing {
		return "unresolved"
	}
	return fmt.Sprintf("consistent(%d)", d.Value)
}

// IsBoundary is true for conflicting classes and for classes which agree on
// the unresolved decision.
func (d Decision) IsBoundary() bool {
	return d.Tag == Conflicting || d.Value == api.Missing
}

// Summarize inspects a class once. The decision of the first member is the
// reference, the scan stops at the first member deciding differently.
func Summarize(u *api.Universe, c partition.Class) Decision {
	if len(c) == 0 {
		return Decision{Tag: Conflicting}
	}
	ref := u.Decision(c[0])
	for _, id := range c[1:] {
		if u.Decision(id) != ref {
			return Decision{Tag: Conflicting}
		}
	}
	return Decision{Tag: Consistent, Value: ref}
}

type Region int

const (
	Positive Region = iota
	Negative
	Boundary
)

func (r Region) String() string {
	switch r {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "boundary"
	}
}

// Labeled is a class together with its decision summary and region.
type Labeled struct {
	Class    partition.Class
	Decision Decision
	Region   Region
}

type Regions struct {
	Classes  []Labeled
	Positive []partition.Class
	Negative []partition.Class
	Boundary []partition.Class
}

// Classify labels every class. Consistent classes deciding target are
// positive, other consistent classes negative. With AnyDecision as target
// all consistent classes are positive.
func Classify(u *api.Universe, classes []partition.Class, target int) *Regions {
	r := &Regions{Classes: make([]Labeled, 0, len(classes))}
	for _, c := range classes {
		d := Summarize(u, c)
		l := Labeled{Class: c, Decision: d}
		switch {
		case d.IsBoundary():
			l.Region = Boundary
			r.Boundary = append(r.Boundary, c)
		case target == AnyDecision || d.Value == target:
			l.Region = Positive
			r.Positive = append(r.Positive, c)
		default:
			l.Region = Negative
			r.Negative = append(r.Negative, c)
		}
		r.Classes = append(r.Classes, l)
	}
	return r
}

// BoundarySet returns the conflict set, all boundary classes in input order.
func BoundarySet(u *api.Universe, classes []partition.Class) []partition.Class {
	var boundary []partition.Class
	for _, c := range classes {
		if Summarize(u, c).IsBoundary() {
			boundary = append(boundary, c)
		}
	}
	return boundary
}

// BoundaryExceeds reports whether the boundary of classes holds more than
// limit instances. It stops as soon as the limit is passed.
func BoundaryExceeds(u *api.Universe, classes []partition.Class, limit int) bool {
	n := 0
	for _, c := range classes {
		if Summarize(u, c).IsBoundary() {
			n += len(c)
			if n > limit {
				return true
			}
		}
	}
	return false
}

// ConflictRegion partitions the universe on attributes and returns its
// boundary classes.
func ConflictRegion(u *api.Universe, attributes api.AttributeSet) ([]partition.Class, error) {
	classes, err := partition.EquivalenceClasses(u, attributes)
	if err != nil {
		return nil, err
	}
	return BoundarySet(u, classes), nil
}
