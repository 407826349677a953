package reduct

import (
	"fmt"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/sirupsen/logrus"
)

// Inspect removes every non-core attribute from reduct whose absence keeps
// the boundary of global. Attributes are tested once, in reduct order, and
// reinstated immediately when they turn out to be required. The result is
// minimal with respect to single attribute removal.
func (e *Engine) Inspect(reduct, core api.AttributeSet, global *significance.State) (api.AttributeSet, error) {
	globalBoundary := global.BoundarySize()
	current := reduct.Clone()
	for _, a := range reduct {
		if core.Contains(a) {
			continue
		}
		trial := current.Without(a)
		redundant, err := e.redundant(trial, globalBoundary)
		if err != nil {
			return nil, err
		}
		if redundant {
			logrus.Debugf("attribute %s is redundant", e.name(a))
			current = trial
		}
	}

	check, err := e.calc.FromScratch(current)
	if err != nil {
		return nil, err
	}
	if check.Positive != global.Positive {
		return nil, fmt.Errorf("inspected reduct %v has significance %v, expected %v: %w",
			current, check.Value, global.Value, api.ErrInconsistentState)
	}
	return current, nil
}

func (e *Engine) redundant(trial api.AttributeSet, globalBoundary int) (bool, error) {
	if e.opts.FastExit {
		// one boundary instance more than the global boundary proves the attribute required
		exceeds, err := e.calc.BoundaryExceeds(trial, globalBoundary)
		if err != nil {
			return false, err
		}
		return !exceeds, nil
	}
	s, err := e.calc.FromScratch(trial)
	if err != nil {
		return false, err
	}
	return s.BoundarySize() == globalBoundary, nil
}
