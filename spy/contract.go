package spy

import (
	"reflect"

	"github.com/kbukum/spykit/util"
)

// Contract is the set of members a target actually exposes. It is built
// from the target's pointer method set (so value and pointer receiver
// methods both count) and polices every proxy call.
type Contract struct {
	target  reflect.Type
	methods map[string]reflect.Method
}

// newContract builds the contract for a target struct type.
func newContract(target reflect.Type) *Contract {
	pt := reflect.PointerTo(target)
	methods := make(map[string]reflect.Method, pt.NumMethod())
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		methods[m.Name] = m
	}
	return &Contract{target: target, methods: methods}
}

// Target returns the struct type this contract was built from.
func (c *Contract) Target() reflect.Type { return c.target }

// Allows reports whether name is part of the contract.
func (c *Contract) Allows(name string) bool {
	_, ok := c.methods[name]
	return ok
}

// Method returns the contract member with the given name.
func (c *Contract) Method(name string) (reflect.Method, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Methods returns the member names of the contract in ascending order.
func (c *Contract) Methods() []string {
	return util.SortedKeys(c.methods)
}

// Implements reports whether the contract covers the given interface
// type. This is the substitutability check for proxies: a proxy can
// stand in for any interface its target satisfies.
func (c *Contract) Implements(iface reflect.Type) bool {
	if iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	return reflect.PointerTo(c.target).Implements(iface)
}
