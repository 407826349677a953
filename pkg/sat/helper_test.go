package sat

import (
	"math/rand"

	"github.com/rmohr/reductor/pkg/api"
)

func randomUniverse(seed int64, size, attributes, values int) *api.Universe {
	r := rand.New(rand.NewSource(seed))
	instances := make([]api.Instance, 0, size)
	for i := 0; i < size; i++ {
		inst := make(api.Instance, attributes+1)
		for a := 1; a <= attributes; a++ {
			inst[a] = r.Intn(values)
		}
		inst[0] = (inst[2] + inst[attributes]) % 2
		if r.Intn(15) == 0 {
			inst[0] = r.Intn(2)
		}
		instances = append(instances, inst)
	}
	return api.MustUniverse(instances...)
}
