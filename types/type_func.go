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

// FuncKind discriminates catalog entries during injectivity derivation.
type FuncKind int

const (
	// Data constructor, injective in every argument position by construction.
	ConstructorFunc FuncKind = iota
	// Transparent synonym with an expansible right-hand side.
	SynonymFunc
	// Opaque type-level function or family, non-injective unless annotated.
	FamilyFunc
)

func (k FuncKind) String() string {
	switch k {
	case ConstructorFunc:
		return "constructor"
	case SynonymFunc:
		return "synonym"
	default:
		return "family"
	}
}

// TypeLevelFunc describes a named type-level function: a data constructor, an
// expansible synonym, or an opaque family.
type TypeLevelFunc struct {
	Name  string
	Arity int
	Kind  FuncKind
	// Params and Expansion define a synonym's right-hand side. Params also
	// fixes the declared parameter order used when an application site
	// targets the function directly.
	Params    []*Var
	Expansion Type
	// Injective is a trusted per-position annotation. A nil slice leaves the
	// positions to derivation: injective everywhere for constructors,
	// structural for synonyms, non-injective for families.
	Injective []bool
}
