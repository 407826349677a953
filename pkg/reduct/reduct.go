package reduct

import (
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/significance"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Measure significance.Measure
	// FastExit lets the inspector stop scanning the classes of a candidate as
	// soon as its boundary outgrows the global boundary. The candidate is
	// still partitioned in full.
	FastExit bool
	// Verify cross-checks every incremental step against a full partition.
	Verify bool
}

// Engine runs the reduct search over one universe. An Engine is not safe for
// concurrent use, create one per goroutine.
type Engine struct {
	universe *api.Universe
	calc     *significance.Calculator
	opts     Options
}

func NewEngine(u *api.Universe, opts Options) *Engine {
	calc := significance.NewCalculator(u, opts.Measure)
	calc.Verify = opts.Verify
	opts.Measure = calc.Measure
	return &Engine{
		universe: u,
		calc:     calc,
		opts:     opts,
	}
}

func (e *Engine) Calculator() *significance.Calculator {
	return e.calc
}

// Result is the outcome of a reduct search.
type Result struct {
	Attributes   api.AttributeSet
	Core         api.AttributeSet
	Reduct       api.AttributeSet
	Significance float64
	// Candidate is the reduct before inspection.
	Candidate api.AttributeSet
	Steps     []Step
}

// Reduct computes the global significance and the core of attributes, runs
// the greedy search and inspects its outcome. A nil attribute set stands for
// all conditional attributes.
func (e *Engine) Reduct(attributes api.AttributeSet) (*Result, error) {
	attributes, err := e.universe.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	global, err := e.calc.FromScratch(attributes)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("global significance %v, %d boundary instances", global.Value, global.BoundarySize())

	core, err := e.Core(attributes, global)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("core: %v", e.names(core))

	ctx, err := e.Search(attributes, core, global)
	if err != nil {
		return nil, err
	}
	reduct, err := e.Inspect(ctx.Reduct, core, global)
	if err != nil {
		return nil, err
	}
	return &Result{
		Attributes:   attributes.Clone(),
		Core:         core,
		Reduct:       reduct,
		Significance: global.Value,
		Candidate:    ctx.Reduct,
		Steps:        ctx.Steps,
	}, nil
}

// Reduct runs the search with the positive region measure.
func Reduct(u *api.Universe, attributes api.AttributeSet) (api.AttributeSet, error) {
	r, err := NewEngine(u, Options{}).Reduct(attributes)
	if err != nil {
		return nil, err
	}
	return r.Reduct, nil
}

// Core returns the core of attributes with the positive region measure.
func Core(u *api.Universe, attributes api.AttributeSet) (api.AttributeSet, error) {
	attributes, err := u.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	e := NewEngine(u, Options{})
	global, err := e.calc.FromScratch(attributes)
	if err != nil {
		return nil, err
	}
	return e.Core(attributes, global)
}

// MostSignificantAttribute picks the best attribute of candidates to extend
// reduct with. It returns -1 when every candidate is part of reduct already.
func MostSignificantAttribute(u *api.Universe, reduct, candidates api.AttributeSet, m significance.Measure) (int, error) {
	e := NewEngine(u, Options{Measure: m})
	state, err := e.calc.FromScratch(reduct)
	if err != nil {
		return -1, err
	}
	global, err := e.calc.FromScratch(nil)
	if err != nil {
		return -1, err
	}
	a, _, err := e.MostSignificantAttribute(&SearchContext{Reduct: state.Attributes, State: state, Global: global}, candidates)
	return a, err
}

func (e *Engine) name(a int) string {
	return e.universe.AttributeName(a)
}

func (e *Engine) names(attributes api.AttributeSet) []string {
	return e.universe.Names(attributes)
}
