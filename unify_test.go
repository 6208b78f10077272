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
	"testing"

	"github.com/wdamron/typeapp/construct"
	"github.com/wdamron/typeapp/types"
)

func TestUnifyStructures(t *testing.T) {
	env := NewTypeEnv(nil)
	inf := NewInferencer(env)

	a, b := env.NewVar(types.TopLevel+1), env.NewVar(types.TopLevel+1)
	left := construct.TApp("List", a)
	right := construct.TApp("List", construct.TConst("int"))
	if err := inf.Unify(left, right); err != nil {
		t.Fatal(err)
	}
	if types.TypeString(left) != "List[int]" {
		t.Fatalf("expected List[int], got %s", types.TypeString(left))
	}

	if err := inf.Unify(construct.TArrow1(b, b), construct.TArrow1(construct.TConst("bool"), construct.TConst("bool"))); err != nil {
		t.Fatal(err)
	}
	if types.TypeString(b) != "bool" {
		t.Fatalf("expected bool, got %s", types.TypeString(b))
	}

	if err := inf.Unify(construct.TConst("int"), construct.TConst("bool")); err == nil {
		t.Fatalf("expected a mismatch error")
	}
	if err := inf.Unify(construct.TApp("List", construct.TConst("int")), construct.TApp("Set", construct.TConst("int"))); err == nil {
		t.Fatalf("expected a constructor mismatch error")
	}
}

func TestUnifyFuncAppsSyntactically(t *testing.T) {
	env := NewTypeEnv(nil)
	inf := NewInferencer(env)

	a := env.NewVar(types.TopLevel + 1)
	if err := inf.Unify(construct.TFunc("Elem", a), construct.TFunc("Elem", construct.TConst("int"))); err != nil {
		t.Fatal(err)
	}
	if types.TypeString(a) != "int" {
		t.Fatalf("expected int, got %s", types.TypeString(a))
	}

	if err := inf.Unify(construct.TFunc("Elem", construct.TConst("int")), construct.TFunc("Rep", construct.TConst("int"))); err == nil {
		t.Fatalf("expected distinct functions not to unify")
	}
}

func TestOccursCheck(t *testing.T) {
	env := NewTypeEnv(nil)
	inf := NewInferencer(env)

	a := env.NewVar(types.TopLevel + 1)
	if err := inf.Unify(a, construct.TApp("List", a)); err == nil {
		t.Fatalf("expected an occurs-check error")
	}
}

func TestGeneralization(t *testing.T) {
	env := NewTypeEnv(nil)
	inf := NewInferencer(env)

	a := env.NewVar(types.TopLevel + 1)
	arrow := construct.TArrow1(a, a)
	generalized := inf.Generalize(arrow)
	if !types.HasGenericVars(generalized) {
		t.Fatalf("expected the variable to be generalized")
	}
	if !a.IsGenericVar() {
		t.Fatalf("expected the unbound variable to become generic")
	}

	// variables at or below the generalization level stay monomorphic
	b := env.NewVar(types.TopLevel)
	inf.Generalize(b)
	if b.IsGenericVar() {
		t.Fatalf("expected a top-level variable to stay monomorphic")
	}
}
