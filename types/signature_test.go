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
	"testing"
)

func TestSignatureValidation(t *testing.T) {
	a := NewNamedGenericVar(0, "a")
	b := NewNamedGenericVar(1, "b")

	valid := &Signature{
		Quantifiers: []*Var{a, b},
		Body:        &Arrow{Args: []Type{a}, Return: b},
	}
	if err := valid.Validate(); err != nil {
		t.Fatal(err)
	}

	duplicated := &Signature{
		Quantifiers: []*Var{a, a},
		Body:        &Arrow{Args: []Type{a}, Return: a},
	}
	if err := duplicated.Validate(); err == nil {
		t.Fatalf("expected an error for a duplicated quantifier")
	}

	unquantified := &Signature{
		Quantifiers: []*Var{a},
		Body:        &Arrow{Args: []Type{a}, Return: b},
	}
	if err := unquantified.Validate(); err == nil {
		t.Fatalf("expected an error for a free but unquantified variable")
	}

	unused := &Signature{
		Quantifiers: []*Var{a, b},
		Body:        &Arrow{Args: []Type{a}, Return: a},
	}
	if err := unused.Validate(); err == nil {
		t.Fatalf("expected an error for an unused quantifier")
	}
}

func TestQuantifiedVarOrder(t *testing.T) {
	a := NewNamedGenericVar(0, "a")
	b := NewNamedGenericVar(1, "b")

	// explicit quantifier lists are returned as written
	explicit := &Signature{
		Quantifiers: []*Var{b, a},
		Body:        &Arrow{Args: []Type{a}, Return: b},
	}
	vars := explicit.QuantifiedVars()
	if len(vars) != 2 || vars[0].Id() != b.Id() || vars[1].Id() != a.Id() {
		t.Fatalf("expected the written quantifier order to be preserved")
	}

	// without a quantifier list, first free occurrence wins
	implicit := &Signature{
		Body: &Arrow{Args: []Type{b, a}, Return: b},
	}
	vars = implicit.QuantifiedVars()
	if len(vars) != 2 || vars[0].Id() != b.Id() || vars[1].Id() != a.Id() {
		t.Fatalf("expected first-occurrence order")
	}
}

func TestPrinting(t *testing.T) {
	a := NewNamedGenericVar(0, "a")
	b := NewNamedGenericVar(1, "b")
	arrow := &Arrow{
		Args:   []Type{a, &App{Const: "List", Args: []Type{b}}},
		Return: &FuncApp{Func: "Elem", Args: []Type{b}},
	}
	if s := TypeString(arrow); s != "('a, List['b]) -> Elem['b]" {
		t.Fatalf("unexpected type string: %s", s)
	}

	sig := &Signature{
		Quantifiers: []*Var{a, b},
		Body:        arrow,
	}
	if s := SignatureString(sig); s != "forall 'a 'b. ('a, List['b]) -> Elem['b]" {
		t.Fatalf("unexpected signature string: %s", s)
	}

	// unnamed variables print with sequential display names
	anon := &Arrow{Args: []Type{NewGenericVar(7)}, Return: NewGenericVar(8)}
	if s := TypeString(anon); s != "'a -> 'b" {
		t.Fatalf("unexpected type string for unnamed variables: %s", s)
	}
}

func TestSubst(t *testing.T) {
	a := NewNamedGenericVar(0, "a")
	b := NewNamedGenericVar(1, "b")

	sub := NewSubstBuilder().
		Set(a, &Const{Name: "int"}).
		Set(b, &App{Const: "List", Args: []Type{&Const{Name: "bool"}}}).
		Build()
	if sub.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", sub.Len())
	}

	rewritten := sub.Apply(&Arrow{Args: []Type{a}, Return: b})
	if s := TypeString(rewritten); s != "int -> List[bool]" {
		t.Fatalf("unexpected rewritten type: %s", s)
	}

	// iteration follows ascending id order
	var ids []int
	sub.Range(func(id int, _ Type) bool {
		ids = append(ids, id)
		return true
	})
	if len(ids) != 2 || ids[0] != 0 || ids[1] != 1 {
		t.Fatalf("unexpected iteration order: %v", ids)
	}

	// the original substitution is untouched by builder updates
	extended := sub.Builder().Set(NewNamedGenericVar(2, "c"), &Const{Name: "float"}).Build()
	if sub.Len() != 2 || extended.Len() != 3 {
		t.Fatalf("expected builder updates to leave the original intact")
	}
}
