package reduct

import (
	"math/rand"

	"github.com/rmohr/reductor/pkg/api"
)

// randomUniverse draws a decision table whose decision depends on a few of
// the attributes, with a little noise on top.
func randomUniverse(seed int64, size, attributes, values int) *api.Universe {
	r := rand.New(rand.NewSource(seed))
	instances := make([]api.Instance, 0, size)
	for i := 0; i < size; i++ {
		inst := make(api.Instance, attributes+1)
		for a := 1; a <= attributes; a++ {
			inst[a] = r.Intn(values)
		}
		inst[0] = (inst[1] + inst[attributes]*inst[2]) % 3
		if r.Intn(20) == 0 {
			inst[0] = r.Intn(3)
		}
		instances = append(instances, inst)
	}
	return api.MustUniverse(instances...)
}

func exampleUniverse() *api.Universe {
	return api.MustUniverse(
		api.Instance{1, 1, 1},
		api.Instance{1, 1, 1},
		api.Instance{2, 1, 2},
		api.Instance{2, 2, 1},
	)
}

func constantUniverse() *api.Universe {
	return api.MustUniverse(
		api.Instance{7, 1, 1},
		api.Instance{7, 2, 1},
		api.Instance{7, 1, 2},
	)
}

// a2 is a copy of a1, which determines the decision, a3 is noise
func copyUniverse() *api.Universe {
	return api.MustUniverse(
		api.Instance{0, 0, 0, 0},
		api.Instance{0, 0, 0, 1},
		api.Instance{1, 1, 1, 0},
		api.Instance{1, 1, 1, 1},
		api.Instance{2, 2, 2, 0},
	)
}
