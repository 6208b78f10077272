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
)

func TestQuantifierScopeReuse(t *testing.T) {
	env := NewTypeEnv(nil)
	r := NewResolver(env, LegacyScoping)

	outer := r.EnterQuantifier(nil, "a")
	bound := outer.Lookup("a")
	if bound == nil {
		t.Fatalf("expected binding for a in quantifier scope")
	}

	// a nested signature without its own quantifier sees the outer binding
	inner := r.EnterSignature(outer)
	tv, err := r.Resolve(inner, "a")
	if err != nil {
		t.Fatal(err)
	}
	if tv.Id() != bound.Id() {
		t.Fatalf("expected a to resolve to the outer binding, got ids %d and %d", tv.Id(), bound.Id())
	}

	// repeated references within the signature denote a single variable
	again, err := r.Resolve(inner, "a")
	if err != nil {
		t.Fatal(err)
	}
	if again.Id() != tv.Id() {
		t.Fatalf("expected repeated references to resolve to one variable")
	}
}

func TestLegacyImplicitQuantification(t *testing.T) {
	env := NewTypeEnv(nil)
	r := NewResolver(env, LegacyScoping)

	sig := r.EnterSignature(nil)
	first, err := r.Resolve(sig, "b")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Resolve(sig, "b")
	if err != nil {
		t.Fatal(err)
	}
	if first.Id() != second.Id() {
		t.Fatalf("expected implicit binding to be reused within the signature")
	}
	if !first.IsGenericVar() {
		t.Fatalf("expected implicit binding to be generic")
	}
	if vars := sig.Vars(); len(vars) != 1 || vars[0].Id() != first.Id() {
		t.Fatalf("expected the signature scope to collect the implicit binding")
	}

	// a sibling signature mints a distinct variable for the same name
	sibling := r.EnterSignature(nil)
	other, err := r.Resolve(sibling, "b")
	if err != nil {
		t.Fatal(err)
	}
	if other.Id() == first.Id() {
		t.Fatalf("expected distinct signatures to mint distinct variables")
	}
}

func TestStrictScopingRejectsUnboundNames(t *testing.T) {
	env := NewTypeEnv(nil)
	r := NewResolver(env, StrictScoping)

	sig := r.EnterSignature(nil)
	_, err := r.Resolve(sig, "a")
	if err == nil {
		t.Fatalf("expected an error for an unbound name under strict scoping")
	}
	scopeErr, ok := err.(*ScopeError)
	if !ok {
		t.Fatalf("expected ScopeError, got %T", err)
	}
	if scopeErr.Name != "a" {
		t.Fatalf("expected the error to name a, got %s", scopeErr.Name)
	}

	// a bound name still resolves
	quant := r.EnterQuantifier(nil, "a")
	inner := r.EnterSignature(quant)
	if _, err := r.Resolve(inner, "a"); err != nil {
		t.Fatal(err)
	}
}

func TestQuantifierShadowing(t *testing.T) {
	env := NewTypeEnv(nil)
	r := NewResolver(env, StrictScoping)

	outer := r.EnterQuantifier(nil, "a")
	inner := r.EnterQuantifier(outer, "a")

	outerVar, err := r.Resolve(outer, "a")
	if err != nil {
		t.Fatal(err)
	}
	innerVar, err := r.Resolve(inner, "a")
	if err != nil {
		t.Fatal(err)
	}
	if outerVar.Id() == innerVar.Id() {
		t.Fatalf("expected the inner binding to shadow the outer binding")
	}
}
