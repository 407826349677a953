package sat

import (
	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/reductor/pkg/api"
)

// Var binds a SAT variable to a conditional attribute.
type Var struct {
	satVarName string
	Attribute  int
	Name       string
}

func (v *Var) String() string {
	return v.Name + "(" + v.satVarName + ")"
}

// Model is the discernibility function of a universe: one clause per pair of
// classes which have to stay discernible to keep the positive region. An
// attribute set keeps the positive region exactly when it satisfies every
// clause.
type Model struct {
	attributes api.AttributeSet
	// vars maps SAT variable names to attributes
	vars map[string]*Var
	// byAttribute maps attributes to their variables
	byAttribute map[int]*Var
	// clauses holds the absorbed discernibility clauses as attribute sets
	clauses []api.AttributeSet
	ors     []bf.Formula
}

func (m *Model) Clauses() []api.AttributeSet {
	return m.clauses
}

// Formula returns the conjunction of all discernibility clauses.
func (m *Model) Formula() bf.Formula {
	return bf.And(m.ors...)
}

// Satisfied reports whether attributes discern every pair the full attribute
// set discerns, i.e. whether attributes is a super-reduct.
func (m *Model) Satisfied(attributes api.AttributeSet) bool {
	for _, clause := range m.clauses {
		hit := false
		for _, a := range clause {
			if attributes.Contains(a) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
