package reduct

import (
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/sirupsen/logrus"
)

// Core returns the attributes whose removal enlarges the boundary of
// attributes, in enumeration order. Sets with less than two attributes are
// their own core.
func (e *Engine) Core(attributes api.AttributeSet, global *significance.State) (api.AttributeSet, error) {
	if len(attributes) < 2 {
		return attributes.Clone(), nil
	}
	globalBoundary := global.BoundarySize()
	core := api.AttributeSet{}
	for _, a := range attributes {
		without, err := e.calc.FromScratch(attributes.Without(a))
		if err != nil {
			return nil, err
		}
		if without.BoundarySize() != globalBoundary {
			logrus.Debugf("attribute %s is indispensable, boundary grows from %d to %d", e.name(a), globalBoundary, without.BoundarySize())
			core = append(core, a)
		}
	}
	return core, nil
}
