package api

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DecisionIndex is the position of the decision value inside every Instance.
	DecisionIndex = 0
	// Missing marks a value which is missing or inapplicable for an instance.
	// A decision equal to Missing is treated as unresolved.
	Missing = -1
)

// Instance is one record of a decision table. Index 0 carries the decision,
// indices 1..n the integer coded conditional attribute values.
type Instance []int

func (i Instance) Decision() int {
	return i[DecisionIndex]
}

func (i Instance) Value(attribute int) int {
	return i[attribute]
}

func (i Instance) String() string {
	values := make([]string, 0, len(i))
	for _, v := range i[1:] {
		values = append(values, valueString(v))
	}
	return fmt.Sprintf("(%s | %s)", strings.Join(values, ","), valueString(i.Decision()))
}

func valueString(v int) string {
	if v == Missing {
		return "?"
	}
	return strconv.Itoa(v)
}

// AttributeSet is an ordered list of 1-based conditional attribute indices.
// A nil AttributeSet stands for all conditional attributes of a universe,
// an empty non-nil one for the empty set.
type AttributeSet []int

func (a AttributeSet) Contains(attribute int) bool {
	for _, x := range a {
		if x == attribute {
			return true
		}
	}
	return false
}

// Without returns a copy of the set without the given attribute.
func (a AttributeSet) Without(attribute int) AttributeSet {
	r := make(AttributeSet, 0, len(a))
	for _, x := range a {
		if x != attribute {
			r = append(r, x)
		}
	}
	return r
}

// With returns a copy of the set with the attributes appended.
func (a AttributeSet) With(attributes ...int) AttributeSet {
	r := make(AttributeSet, 0, len(a)+len(attributes))
	r = append(r, a...)
	return append(r, attributes...)
}

func (a AttributeSet) Clone() AttributeSet {
	if a == nil {
		return nil
	}
	return append(AttributeSet{}, a...)
}

// Universe is the immutable collection of instances under analysis. The
// identity of an instance is its position in Instances.
type Universe struct {
	Name string
	// Attributes holds the display names, Attributes[0] names the decision.
	Attributes []string
	Instances  []Instance
	// decisions caches column 0 for the hot paths of the classifier.
	decisions []int
	width     int
}

// NewUniverse validates the shape of the given instances. All instances must
// have the same length of at least one (the decision).
func NewUniverse(name string, attributes []string, instances []Instance) (*Universe, error) {
	width := len(attributes)
	if len(instances) > 0 {
		if width == 0 {
			width = len(instances[0])
		}
	}
	for i, inst := range instances {
		if len(inst) == 0 {
			return nil, fmt.Errorf("instance %d carries no decision: %w", i, ErrInvalidInput)
		}
		if len(inst) != width {
			return nil, fmt.Errorf("instance %d has %d values, expected %d: %w", i, len(inst), width, ErrInvalidInput)
		}
	}
	if width == 0 {
		width = 1
	}
	if len(attributes) == 0 {
		attributes = make([]string, width)
		attributes[0] = "d"
		for i := 1; i < width; i++ {
			attributes[i] = "a" + strconv.Itoa(i)
		}
	}
	decisions := make([]int, len(instances))
	for i, inst := range instances {
		decisions[i] = inst.Decision()
	}
	return &Universe{
		Name:       name,
		Attributes: attributes,
		Instances:  instances,
		decisions:  decisions,
		width:      width,
	}, nil
}

// MustUniverse is NewUniverse for literal tables in tests and examples.
func MustUniverse(instances ...Instance) *Universe {
	u, err := NewUniverse("", nil, instances)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *Universe) Size() int {
	return len(u.Instances)
}

// ConditionalCount returns the number of conditional attributes.
func (u *Universe) ConditionalCount() int {
	return u.width - 1
}

// AllAttributes returns 1..ConditionalCount in ascending order.
func (u *Universe) AllAttributes() AttributeSet {
	all := make(AttributeSet, 0, u.ConditionalCount())
	for a := 1; a <= u.ConditionalCount(); a++ {
		all = append(all, a)
	}
	return all
}

// Resolve maps nil to all conditional attributes and validates the range of
// every index.
func (u *Universe) Resolve(attributes AttributeSet) (AttributeSet, error) {
	if attributes == nil {
		return u.AllAttributes(), nil
	}
	for _, a := range attributes {
		if a < 1 || a > u.ConditionalCount() {
			return nil, fmt.Errorf("attribute %d not in [1,%d]: %w", a, u.ConditionalCount(), ErrIllegalAttribute)
		}
	}
	return attributes, nil
}

func (u *Universe) Decision(id int) int {
	return u.decisions[id]
}

func (u *Universe) Value(id, attribute int) int {
	return u.Instances[id][attribute]
}

// IDs returns the identities of all instances in load order.
func (u *Universe) IDs() []int {
	ids := make([]int, len(u.Instances))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// AttributeName returns the display name of an attribute index.
func (u *Universe) AttributeName(attribute int) string {
	if attribute >= 0 && attribute < len(u.Attributes) {
		return u.Attributes[attribute]
	}
	return "#" + strconv.Itoa(attribute)
}

// Names maps an attribute set to display names.
func (u *Universe) Names(attributes AttributeSet) []string {
	names := make([]string, 0, len(attributes))
	for _, a := range attributes {
		names = append(names, u.AttributeName(a))
	}
	return names
}

// Lookup maps display names or numeric indices back to attribute indices.
func (u *Universe) Lookup(names []string) (AttributeSet, error) {
	attrs := AttributeSet{}
	for _, name := range names {
		found := false
		for i := 1; i < len(u.Attributes); i++ {
			if u.Attributes[i] == name {
				attrs = append(attrs, i)
				found = true
				break
			}
		}
		if found {
			continue
		}
		i, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("unknown attribute %q: %w", name, ErrIllegalAttribute)
		}
		attrs = append(attrs, i)
	}
	return u.Resolve(attrs)
}
