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

// TopLevel is the binding-level of the outermost inference pass. Fresh
// inference variables are allocated above this level.
const TopLevel = 0

// Type is the base interface for all types.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string     { return "Var" }
func (t *Const) TypeName() string   { return "Const" }
func (t *App) TypeName() string     { return "App" }
func (t *Arrow) TypeName() string   { return "Arrow" }
func (t *FuncApp) TypeName() string { return "FuncApp" }

// Type constant: `int` or `bool`
type Const struct {
	Name string
}

// Constructor application: `List[int]`
//
// Data constructors are injective in every argument position by construction.
type App struct {
	Const string
	Args  []Type
}

// Function type: `(int, int) -> int`
type Arrow struct {
	Args   []Type
	Return Type
}

// Type-level function application: `Elem[c]`
//
// The function is referenced by name and resolved against a catalog of
// type-level functions during analysis.
type FuncApp struct {
	Func string
	Args []Type
}

// Get the underlying type for a chain of linked type-variables, when applicable.
func RealType(t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		if !tv.IsLinkVar() {
			return t
		}
		t = tv.Link()
	}
}

// HasGenericVars reports whether any generic type-variable occurs in t.
func HasGenericVars(t Type) bool {
	switch t := t.(type) {
	case *Var:
		if t.IsLinkVar() {
			return HasGenericVars(t.Link())
		}
		return t.IsGenericVar()
	case *App:
		for _, arg := range t.Args {
			if HasGenericVars(arg) {
				return true
			}
		}
	case *Arrow:
		for _, arg := range t.Args {
			if HasGenericVars(arg) {
				return true
			}
		}
		return HasGenericVars(t.Return)
	case *FuncApp:
		for _, arg := range t.Args {
			if HasGenericVars(arg) {
				return true
			}
		}
	}
	return false
}

// FreeTypeVars collects the free type-variables of t in order of first
// occurrence, left to right. Linked variables are flattened to their
// underlying types before being visited.
func FreeTypeVars(t Type) []*Var {
	var free []*Var
	return appendFreeTypeVars(free, t)
}

func appendFreeTypeVars(free []*Var, t Type) []*Var {
	switch t := t.(type) {
	case *Var:
		if t.IsLinkVar() {
			return appendFreeTypeVars(free, t.Link())
		}
		for _, tv := range free {
			if tv.Id() == t.Id() {
				return free
			}
		}
		return append(free, t)
	case *App:
		for _, arg := range t.Args {
			free = appendFreeTypeVars(free, arg)
		}
	case *Arrow:
		for _, arg := range t.Args {
			free = appendFreeTypeVars(free, arg)
		}
		free = appendFreeTypeVars(free, t.Return)
	case *FuncApp:
		for _, arg := range t.Args {
			free = appendFreeTypeVars(free, arg)
		}
	}
	return free
}
