// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

import (
	"github.com/wdamron/typeapp/internal/util"
)

// MethodSet is a set of named function-types declared for a capability or instance.
type MethodSet map[string]*Arrow

// Capability is a parameterized, type-class-like interface over types.
// Constraint resolution dispatches over the capability's declared instances,
// keyed by the concrete type-parameter, never by runtime reflection.
type Capability struct {
	// Id should be unique
	Id int
	// Name should be unique
	Name      string
	Param     Type
	Methods   MethodSet
	Super     map[int]*Capability
	Sub       map[int]*Capability
	Instances []*Instance
}

// Instance of a parameterized capability
type Instance struct {
	Capability *Capability
	Param      Type
	Methods    MethodSet
	// MethodNames maps method names to names of their implementations within the type-environment.
	MethodNames map[string]string
}

// InstanceConstraint constrains a type-variable to types which implement a capability.
type InstanceConstraint struct {
	Capability *Capability
}

// Create a new named/parameterized capability with a set of method declarations.
func NewCapability(id int, name string, param Type, methods MethodSet) *Capability {
	return &Capability{Id: id, Name: name, Param: param, Methods: methods}
}

// Add a super-capability. This is an alias for `super.AddSub(sub)`.
func (sub *Capability) AddSuper(super *Capability) { super.AddSub(sub) }

// Add a sub-capability.
func (super *Capability) AddSub(sub *Capability) {
	if super.Sub != nil && super.Sub[sub.Id] != nil {
		return
	}
	if sub.Super == nil {
		sub.Super = make(map[int]*Capability)
	}
	if super.Sub == nil {
		super.Sub = make(map[int]*Capability)
	}
	sub.Super[super.Id] = super
	super.Sub[sub.Id] = sub
}

// Add an instance to the capability with param as the type-parameter.
//
// methodNames must map from method names to names of their implementations within the type-environment.
func (c *Capability) AddInstance(param Type, methods MethodSet, methodNames map[string]string) *Instance {
	inst := &Instance{Capability: c, Param: param, Methods: methods, MethodNames: methodNames}
	c.Instances = append(c.Instances, inst)
	return inst
}

// Check if a capability is declared as a sub-capability of another capability.
func (c *Capability) HasSuper(super *Capability) bool {
	seen := util.NewIntDedupeMap()
	found := c.hasSuper(seen, super.Id)
	seen.Release()
	return found
}

func (c *Capability) hasSuper(seen util.IntDedupeMap, id int) bool {
	seen[c.Id] = true
	for superId, super := range c.Super {
		switch {
		case seen[superId]:
			return false
		case superId == id, super.hasSuper(seen, id):
			return true
		}
	}
	return false
}

// Visit all instances for the capability and all sub-capabilities.
// Sub-capabilities will be visited first. If found returns true, the search
// stops.
func (c *Capability) FindInstance(found func(*Instance) bool) bool {
	seen := util.NewIntDedupeMap()
	ok, _ := c.findInstance(seen, found)
	seen.Release()
	return ok
}

func (c *Capability) findInstance(seen util.IntDedupeMap, found func(*Instance) bool) (ok, shouldContinue bool) {
	if seen[c.Id] {
		return false, true
	}
	seen[c.Id] = true
	for _, sub := range c.Sub {
		if ok, shouldContinue = sub.findInstance(seen, found); !shouldContinue {
			return ok, false
		}
	}
	for _, inst := range c.Instances {
		if found(inst) {
			return true, false
		}
	}
	return false, true
}
