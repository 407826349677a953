package significance

import (
	"math/rand"

	"github.com/rmohr/reductor/pkg/api"
)

func randomUniverse(seed int64, size, attributes, values int) *api.Universe {
	r := rand.New(rand.NewSource(seed))
	instances := make([]api.Instance, 0, size)
	for i := 0; i < size; i++ {
		inst := make(api.Instance, attributes+1)
		inst[0] = r.Intn(3)
		for a := 1; a <= attributes; a++ {
			inst[a] = r.Intn(values)
		}
		instances = append(instances, inst)
	}
	return api.MustUniverse(instances...)
}

// subsets enumerates all subsets of 1..n in ascending bit order.
func subsets(n int) []api.AttributeSet {
	var all []api.AttributeSet
	for mask := 0; mask < 1<<n; mask++ {
		s := api.AttributeSet{}
		for a := 1; a <= n; a++ {
			if mask&(1<<(a-1)) != 0 {
				s = append(s, a)
			}
		}
		all = append(all, s)
	}
	return all
}
