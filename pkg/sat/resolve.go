package sat

import (
	"fmt"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/reductor/pkg/api"
	"github.com/sirupsen/logrus"
)

// Resolve finds a reduct of minimum cardinality. It asks the solver for a
// model of the discernibility function with at most k attributes, for
// growing k. The answer is exact but exponential in the worst case; it is
// meant for small tables and for verifying the greedy search.
func Resolve(m *Model) (api.AttributeSet, error) {
	if len(m.ors) == 0 {
		return api.AttributeSet{}, nil
	}
	for k := 1; k <= len(m.attributes); k++ {
		logrus.Debugf("Solving for reducts with at most %d attributes.", k)
		model := bf.Solve(bf.And(m.Formula(), atMost(m.attributes, m.byAttribute, k)))
		if model == nil {
			continue
		}
		reduct := api.AttributeSet{}
		for _, a := range m.attributes {
			if model[m.byAttribute[a].satVarName] {
				reduct = append(reduct, a)
			}
		}
		return reduct, nil
	}
	return nil, fmt.Errorf("discernibility function over %v is not satisfiable: %w", m.attributes, api.ErrInconsistentState)
}

// atMost encodes that at most k of the attribute variables are true with a
// sequential counter: s_i_j holds when at least j of the first i variables
// are true.
func atMost(attributes api.AttributeSet, vars map[int]*Var, k int) bf.Formula {
	n := len(attributes)
	x := func(i int) bf.Formula {
		return bf.Var(vars[attributes[i-1]].satVarName)
	}
	s := func(i, j int) bf.Formula {
		return bf.Var(fmt.Sprintf("s%d_%d", i, j))
	}
	if k >= n {
		return bf.Or(x(1), bf.Not(x(1)))
	}
	var ands []bf.Formula
	if k == 0 {
		for i := 1; i <= n; i++ {
			ands = append(ands, bf.Not(x(i)))
		}
		return bf.And(ands...)
	}

	ands = append(ands, bf.Implies(x(1), s(1, 1)))
	for j := 2; j <= k; j++ {
		ands = append(ands, bf.Not(s(1, j)))
	}
	for i := 2; i < n; i++ {
		ands = append(ands, bf.Implies(x(i), s(i, 1)))
		ands = append(ands, bf.Implies(s(i-1, 1), s(i, 1)))
		for j := 2; j <= k; j++ {
			ands = append(ands, bf.Implies(bf.And(x(i), s(i-1, j-1)), s(i, j)))
			ands = append(ands, bf.Implies(s(i-1, j), s(i, j)))
		}
		ands = append(ands, bf.Not(bf.And(x(i), s(i-1, k))))
	}
	ands = append(ands, bf.Not(bf.And(x(n), s(n-1, k))))
	return bf.And(ands...)
}
