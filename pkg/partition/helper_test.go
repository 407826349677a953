package partition

import (
	"math/rand"

	"github.com/rmohr/reductor/pkg/api"
)

func randomUniverse(seed int64, size, attributes, values int) *api.Universe {
	r := rand.New(rand.NewSource(seed))
	instances := make([]api.Instance, 0, size)
	for i := 0; i < size; i++ {
		inst := make(api.Instance, attributes+1)
		inst[0] = r.Intn(2)
		for a := 1; a <= attributes; a++ {
			inst[a] = r.Intn(values+1) - 1
		}
		instances = append(instances, inst)
	}
	return api.MustUniverse(instances...)
}

func key(u *api.Universe, id int, attributes api.AttributeSet) []int {
	k := []int{}
	for _, a := range attributes {
		k = append(k, u.Value(id, a))
	}
	return k
}
