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
	"github.com/benbjohnson/immutable"
)

var emptySubstMap = immutable.NewSortedMap(nil)

// EmptySubst is a substitution with no mappings.
var EmptySubst = Subst{emptySubstMap}

// Subst contains immutable mappings from type-variable ids to types. Entries
// iterate in ascending id order, so a substitution prints and compares
// deterministically.
type Subst struct {
	m *immutable.SortedMap
}

func NewSubst() Subst { return Subst{emptySubstMap} }

// Get the number of entries in the substitution.
func (s Subst) Len() int { return s.m.Len() }

// Get the type mapped for a type-variable.
func (s Subst) Get(tv *Var) (Type, bool) { return s.GetId(tv.Id()) }

// Get the type mapped for a type-variable id.
func (s Subst) GetId(id int) (Type, bool) {
	t, ok := s.m.Get(id)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Iterate over entries in the substitution in ascending id order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(int, Type) bool) {
	iter := s.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(int), v.(Type)) {
			return
		}
	}
}

// Apply rewrites t, replacing each mapped type-variable with its substituted
// type. Unmapped variables and all other types are preserved.
func (s Subst) Apply(t Type) Type {
	switch t := RealType(t).(type) {
	case *Var:
		if sub, ok := s.GetId(t.Id()); ok {
			return sub
		}
		return t
	case *App:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &App{Const: t.Const, Args: args}
	case *Arrow:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &Arrow{Args: args, Return: s.Apply(t.Return)}
	case *FuncApp:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.Apply(arg)
		}
		return &FuncApp{Func: t.Func, Args: args}
	default:
		return t
	}
}

// Convert the substitution to a builder for modification, without mutating
// the existing substitution.
func (s Subst) Builder() SubstBuilder {
	imm := s.m
	if imm == nil {
		imm = emptySubstMap
	}
	return SubstBuilder{immutable.NewSortedMapBuilder(imm)}
}

// SubstBuilder enables in-place updates of a substitution before finalization.
type SubstBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewSubstBuilder() SubstBuilder {
	return SubstBuilder{immutable.NewSortedMapBuilder(emptySubstMap)}
}

// Get the number of entries in the builder.
func (b SubstBuilder) Len() int { return b.b.Len() }

// Set the type mapped for a type-variable in the builder.
func (b SubstBuilder) Set(tv *Var, t Type) SubstBuilder {
	b.b.Set(tv.Id(), t)
	return b
}

// Finalize the builder into an immutable substitution.
func (b SubstBuilder) Build() Subst { return Subst{b.b.Map()} }
