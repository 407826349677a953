package reduct

import (
	"fmt"

	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/sirupsen/logrus"
)

// SearchContext is the state carried from one greedy step to the next.
type SearchContext struct {
	Reduct api.AttributeSet
	// State belongs to Reduct and is only ever advanced incrementally.
	State  *significance.State
	Global *significance.State
	Steps  []Step
}

// Step records one attribute picked by the greedy search.
type Step struct {
	Attribute    int
	Significance float64
	Boundary     int
}

// Done is the sole exit condition of the search.
func (s *SearchContext) Done() bool {
	return s.State.Positive == s.Global.Positive
}

// MostSignificantAttribute evaluates every candidate which is not yet part of
// the reduct incrementally and returns the one with the highest
// significance. On ties the first candidate in enumeration order wins.
func (e *Engine) MostSignificantAttribute(ctx *SearchContext, candidates api.AttributeSet) (int, *significance.State, error) {
	best := -1
	var bestState *significance.State
	for _, a := range candidates {
		if ctx.Reduct.Contains(a) {
			continue
		}
		next, err := e.calc.Incremental(ctx.State, a)
		if err != nil {
			return -1, nil, err
		}
		if bestState == nil || next.Value > bestState.Value {
			best, bestState = a, next
		}
		if next.Positive == ctx.Global.Positive {
			// no later candidate can be strictly better
			break
		}
	}
	return best, bestState, nil
}

// Search grows the core attribute by attribute until the significance of the
// reduct equals the significance of attributes.
func (e *Engine) Search(attributes, core api.AttributeSet, global *significance.State) (*SearchContext, error) {
	ctx := &SearchContext{Reduct: core.Clone(), Global: global}
	if ctx.Reduct == nil {
		ctx.Reduct = api.AttributeSet{}
	}
	var err error
	if len(ctx.Reduct) == 0 {
		ctx.State = e.calc.Initial()
	} else if ctx.State, err = e.calc.FromScratch(ctx.Reduct); err != nil {
		return nil, err
	}

	if ctx.Done() || len(ctx.Reduct) == len(attributes) {
		logrus.Debugf("core %v already reaches significance %v", e.names(ctx.Reduct), global.Value)
		return ctx, nil
	}

	for !ctx.Done() {
		a, next, err := e.MostSignificantAttribute(ctx, attributes)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, fmt.Errorf("all attributes used, but significance %v of %v is below %v: %w",
				ctx.State.Value, ctx.Reduct, global.Value, api.ErrInconsistentState)
		}
		ctx.Reduct = append(ctx.Reduct, a)
		ctx.State = next
		ctx.Steps = append(ctx.Steps, Step{Attribute: a, Significance: next.Value, Boundary: next.BoundarySize()})
		logrus.Debugf("adding %s, significance %v, %d boundary instances left", e.name(a), next.Value, next.BoundarySize())
	}
	return ctx, nil
}
