package significance

import "fmt"

// Measure turns the size of the positive region into a significance value.
// Implementations must be monotone non-decreasing in positive.
type Measure interface {
	Name() string
	Value(positive, total int) float64
}

type positiveRegion struct{}

func (positiveRegion) Name() string {
	return "positive"
}

func (positiveRegion) Value(positive, _ int) float64 {
	return float64(positive)
}

type dependency struct{}

func (dependency) Name() string {
	return "dependency"
}

// Value returns the dependency degree |POS| / |U|, 0 for an empty universe.
func (dependency) Value(positive, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(positive) / float64(total)
}

var (
	PositiveRegion Measure = positiveRegion{}
	Dependency     Measure = dependency{}
)

// MeasureByName resolves the name given on the command line.
func MeasureByName(name string) (Measure, error) {
	switch name {
	case "", PositiveRegion.Name():
		return PositiveRegion, nil
	case Dependency.Name():
		return Dependency, nil
	}
	return nil, fmt.Errorf("unknown significance measure %q, expected one of %q or %q", name, PositiveRegion.Name(), Dependency.Name())
}
