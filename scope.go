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

package typeapp

import (
	"github.com/wdamron/typeapp/types"
)

// ScopeMode selects how unbound type-variable names resolve.
type ScopeMode int

const (
	// LegacyScoping implicitly quantifies an unbound name at the nearest
	// enclosing signature, so a name reused within the signature denotes a
	// single variable.
	LegacyScoping ScopeMode = iota
	// StrictScoping rejects any name with no binding in an enclosing explicit
	// quantifier.
	StrictScoping
)

// Scope is one frame of the lexical environment for type-variable names.
// Frames form a parent chain; an explicit quantifier introduces a frame, and
// each signature introduces a frame which collects implicit bindings under
// LegacyScoping.
type Scope struct {
	parent    *Scope
	vars      map[string]*types.Var
	order     []*types.Var
	signature bool
}

// Parent returns the enclosing scope, or nil at the outermost frame.
func (s *Scope) Parent() *Scope { return s.parent }

// Lookup resolves a name against this scope and its ancestors. An inner
// binding shadows any same-named outer binding.
func (s *Scope) Lookup(name string) *types.Var {
	for scope := s; scope != nil; scope = scope.parent {
		if tv, ok := scope.vars[name]; ok {
			return tv
		}
	}
	return nil
}

// Vars returns the variables bound directly in this scope, in declaration
// order.
func (s *Scope) Vars() []*types.Var {
	vars := make([]*types.Var, len(s.order))
	copy(vars, s.order)
	return vars
}

func (s *Scope) bind(name string, tv *types.Var) {
	if s.vars == nil {
		s.vars = make(map[string]*types.Var)
	}
	s.vars[name] = tv
	s.order = append(s.order, tv)
}

// Resolver resolves type-variable names to variables, minting fresh generic
// variables through its environment so distinct bindings never share an id.
type Resolver struct {
	env  *TypeEnv
	mode ScopeMode
}

func NewResolver(env *TypeEnv, mode ScopeMode) *Resolver {
	return &Resolver{env: env, mode: mode}
}

// EnterQuantifier opens a scope binding the named variables of an explicit
// quantifier. Each name receives a fresh generic variable; a name matching an
// outer binding shadows it for the extent of the new scope.
func (r *Resolver) EnterQuantifier(parent *Scope, names ...string) *Scope {
	scope := &Scope{parent: parent}
	for _, name := range names {
		scope.bind(name, r.env.NewGenericVar(name))
	}
	return scope
}

// EnterSignature opens the scope of a signature. Under LegacyScoping,
// unbound names referenced within the signature are implicitly quantified
// here.
func (r *Resolver) EnterSignature(parent *Scope) *Scope {
	return &Scope{parent: parent, signature: true}
}

// Resolve returns the variable bound for a name. A name bound by an enclosing
// quantifier always resolves to that binding, so reuse of the name within
// nested signatures denotes the same variable. An unbound name is a ScopeError
// under StrictScoping; under LegacyScoping it is implicitly quantified at the
// nearest enclosing signature scope.
func (r *Resolver) Resolve(scope *Scope, name string) (*types.Var, error) {
	if tv := scope.Lookup(name); tv != nil {
		return tv, nil
	}
	if r.mode == StrictScoping {
		return nil, &ScopeError{Name: name}
	}
	target := scope
	for s := scope; s != nil; s = s.parent {
		if s.signature {
			target = s
			break
		}
	}
	tv := r.env.NewGenericVar(name)
	target.bind(name, tv)
	return tv, nil
}
