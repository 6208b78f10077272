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

// Special binding-levels (used as flags):
const (
	GenericVarLevel = 1<<31 - 1
	LinkVarLevel    = -1 << 31
)

// Type-variable
//
// Two type-variables are equal iff their ids match; the display name is
// cosmetic only. Same-named variables introduced in different scopes carry
// distinct ids.
type Var struct {
	name        string
	link        Type
	constraints []InstanceConstraint
	id          int32
	level       int32
}

// Instance of a type-variable
type VarType int

const (
	// Unbound type-variable
	UnboundVar VarType = iota
	// Linked type-variable
	LinkVar
	// Generic type-variable
	GenericVar
)

// Create a new type-variable with the given id and binding-level.
func NewVar(id, level int) *Var {
	return &Var{id: int32(id), level: int32(level)}
}

// Create a new generic type-variable.
func NewGenericVar(id int) *Var {
	return &Var{id: int32(id), level: GenericVarLevel}
}

// Create a new generic type-variable with a display name.
func NewNamedGenericVar(id int, name string) *Var {
	return &Var{id: int32(id), level: GenericVarLevel, name: name}
}

// VarType indicates whether the type-variable is linked, unbound, or generic.
func (tv *Var) VarType() VarType {
	switch tv.level {
	case LinkVarLevel:
		return LinkVar
	case GenericVarLevel:
		return GenericVar
	default:
		return UnboundVar
	}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Level returns the adjusted binding-level of the type-variable.
func (tv *Var) Level() int { return int(tv.level) }

// Name returns the display name of the type-variable, which may be empty.
func (tv *Var) Name() string { return tv.name }

// Link returns the type which the type-variable is bound to, if the type-variable is bound.
func (tv *Var) Link() Type { return tv.link }

// Constraints returns the capability constraints applied to the type-variable.
func (tv *Var) Constraints() []InstanceConstraint { return tv.constraints }

func (tv *Var) IsUnboundVar() bool { return tv.level != LinkVarLevel && tv.level != GenericVarLevel }
func (tv *Var) IsLinkVar() bool    { return tv.level == LinkVarLevel }
func (tv *Var) IsGenericVar() bool { return tv.level == GenericVarLevel }

// Set the unique identifier of the type-variable.
func (tv *Var) SetId(id int) { tv.id = int32(id) }

// Set the adjusted binding-level of the type-variable.
func (tv *Var) SetLevel(level int) { tv.level = int32(level) }

// Set the display name of the type-variable.
func (tv *Var) SetName(name string) { tv.name = name }

// Set the type which the type-variable is bound to.
func (tv *Var) SetLink(t Type) { tv.link, tv.level = t, LinkVarLevel }

// Set the binding-level of the type-variable to the generic level.
func (tv *Var) SetGeneric() { tv.link, tv.level = nil, GenericVarLevel }

// Replace the capability constraints applied to the type-variable.
func (tv *Var) SetConstraints(constraints []InstanceConstraint) { tv.constraints = constraints }

// Add a capability constraint to the type-variable.
func (tv *Var) AddConstraint(c InstanceConstraint) {
	for _, existing := range tv.constraints {
		if existing.Capability.Id == c.Capability.Id {
			return
		}
	}
	tv.constraints = append(tv.constraints, c)
}

// Flatten a chain of linked type-variables.
func (tv *Var) Flatten() {
	if tv.IsLinkVar() {
		tv.link = RealType(tv.link)
	}
}
