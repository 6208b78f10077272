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
	"errors"
)

// Constraint applies a capability to one or more types, usually quantified
// type-variables. Constraints precede the quantified body in left-to-right
// reading order.
type Constraint struct {
	Capability *Capability
	Args       []Type
}

// Signature pairs a constrained, quantified type with its binder order.
type Signature struct {
	// Constraints precede the body in reading order.
	Constraints []Constraint
	// Quantifiers fixes the written order of the explicit binder. Order is
	// significant and part of the signature's public contract: reordering a
	// published quantifier list is a breaking change. When nil, the effective
	// order is the first free occurrence of each variable, constraints first.
	Quantifiers []*Var
	Body        Type
	// AllowAmbiguous marks the declaration as explicitly permitting
	// quantified variables which inference alone cannot determine.
	AllowAmbiguous bool
}

// QuantifiedVars returns the variables bound by the signature. With an
// explicit quantifier list the list is returned as written; otherwise
// variables appear in order of first free occurrence, constraints before the
// body.
func (s *Signature) QuantifiedVars() []*Var {
	if s.Quantifiers != nil {
		return s.Quantifiers
	}
	var free []*Var
	for _, c := range s.Constraints {
		for _, arg := range c.Args {
			free = appendFreeTypeVars(free, arg)
		}
	}
	return appendFreeTypeVars(free, s.Body)
}

// FreeVars returns the free variables of the signature's constraints and
// body, in order of first occurrence.
func (s *Signature) FreeVars() []*Var {
	var free []*Var
	for _, c := range s.Constraints {
		for _, arg := range c.Args {
			free = appendFreeTypeVars(free, arg)
		}
	}
	return appendFreeTypeVars(free, s.Body)
}

// Validate checks that every variable appearing free in the signature's body
// or constraints appears exactly once in the signature's effective quantifier
// order, and that no quantified variable is unused.
func (s *Signature) Validate() error {
	if s.Quantifiers == nil {
		return nil
	}
	seen := make(map[int]*Var, len(s.Quantifiers))
	for _, tv := range s.Quantifiers {
		if _, dup := seen[tv.Id()]; dup {
			return errors.New("Type-variable " + VarString(tv) + " is quantified more than once")
		}
		seen[tv.Id()] = tv
	}
	free := s.FreeVars()
	for _, tv := range free {
		if _, ok := seen[tv.Id()]; !ok {
			return errors.New("Type-variable " + VarString(tv) + " is free but not quantified")
		}
	}
	if len(free) != len(seen) {
		for _, tv := range s.Quantifiers {
			used := false
			for _, fv := range free {
				if fv.Id() == tv.Id() {
					used = true
					break
				}
			}
			if !used {
				return errors.New("Quantified type-variable " + VarString(tv) + " does not occur in the signature")
			}
		}
	}
	return nil
}
