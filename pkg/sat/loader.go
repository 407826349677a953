package sat

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/rmohr/reductor/pkg/partition"
	"github.com/rmohr/reductor/pkg/region"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

type Loader struct {
	m         *Model
	varsCount int
}

func NewLoader() *Loader {
	return &Loader{
		m: &Model{
			vars:        map[string]*Var{},
			byAttribute: map[int]*Var{},
		},
		varsCount: 0,
	}
}

// Load builds the discernibility function of u restricted to attributes. Two
// classes of the full partition have to be discerned when their decision
// summaries differ and at least one of them is not a boundary class.
func (loader *Loader) Load(u *api.Universe, attributes api.AttributeSet) (*Model, error) {
	attributes, err := u.Resolve(attributes)
	if err != nil {
		return nil, err
	}
	loader.m.attributes = attributes.Clone()
	for _, a := range attributes {
		v := &Var{satVarName: loader.ticket(), Attribute: a, Name: u.AttributeName(a)}
		loader.m.vars[v.satVarName] = v
		loader.m.byAttribute[a] = v
	}

	classes, err := partition.EquivalenceClasses(u, attributes)
	if err != nil {
		return nil, err
	}
	summaries := make([]region.Decision, len(classes))
	for i, c := range classes {
		summaries[i] = region.Summarize(u, c)
	}

	unique := map[string]api.AttributeSet{}
	for i := range classes {
		for j := i + 1; j < len(classes); j++ {
			if !mustDiscern(summaries[i], summaries[j]) {
				continue
			}
			clause := api.AttributeSet{}
			for _, a := range attributes {
				if u.Value(classes[i][0], a) != u.Value(classes[j][0], a) {
					clause = append(clause, a)
				}
			}
			if len(clause) == 0 {
				return nil, fmt.Errorf("classes %d and %d are not discernible on %v: %w", i, j, attributes, api.ErrInconsistentState)
			}
			unique[fmt.Sprint(clause)] = clause
		}
	}

	keys := maps.Keys(unique)
	slices.Sort(keys)
	clauses := make([]api.AttributeSet, 0, len(keys))
	for _, k := range keys {
		clauses = append(clauses, unique[k])
	}
	loader.m.clauses = absorb(clauses)
	for _, clause := range loader.m.clauses {
		loader.m.ors = append(loader.m.ors, bf.Or(loader.toBFVars(clause)...))
	}
	logrus.Infof("Generated %v discernibility clauses over %v variables.", len(loader.m.clauses), len(loader.m.vars))
	return loader.m, nil
}

func mustDiscern(a, b region.Decision) bool {
	if a.IsBoundary() && b.IsBoundary() {
		return false
	}
	return a != b
}

// absorb drops every clause which is a superset of another clause.
func absorb(clauses []api.AttributeSet) []api.AttributeSet {
	slices.SortStableFunc(clauses, func(a, b api.AttributeSet) int {
		return len(a) - len(b)
	})
	var kept []api.AttributeSet
	for _, c := range clauses {
		absorbed := false
		for _, k := range kept {
			if subset(k, c) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			kept = append(kept, c)
		}
	}
	return kept
}

func subset(a, b api.AttributeSet) bool {
	for _, x := range a {
		if !b.Contains(x) {
			return false
		}
	}
	return true
}

func (loader *Loader) ticket() string {
	loader.varsCount++
	return "x" + strconv.Itoa(loader.varsCount)
}

func (loader *Loader) toBFVars(attributes api.AttributeSet) (bfvars []bf.Formula) {
	for _, a := range attributes {
		bfvars = append(bfvars, bf.Var(loader.m.byAttribute[a].satVarName))
	}
	return
}
