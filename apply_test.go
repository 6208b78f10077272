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

func TestSkipSlots(t *testing.T) {
	env := NewTypeEnv(nil)
	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	a, b, c := env.NewGenericVar("a"), env.NewGenericVar("b"), env.NewGenericVar("c")
	sig := construct.TSig([]*types.Var{a, b, c},
		construct.TArrow([]types.Type{a, b, c}, construct.TConst("int")))

	// skips count toward positions, so the third slot binds c
	app, err := elab.Elaborate("f", sig, Apply(Skip(), Skip(), Arg(construct.TConst("int"))))
	if err != nil {
		t.Fatal(err)
	}
	bound, ok := app.Subst.Get(c)
	if !ok {
		t.Fatalf("expected a mapping for c")
	}
	if types.TypeString(bound) != "int" {
		t.Fatalf("expected c to be bound to int, got %s", types.TypeString(bound))
	}
	if len(app.Deferred) != 2 || app.Deferred[0].Id() != a.Id() || app.Deferred[1].Id() != b.Id() {
		t.Fatalf("expected a and b to be deferred to inference")
	}
}

func TestCanonicalOrderIsDeterministic(t *testing.T) {
	env := NewTypeEnv(nil)
	a, b := env.NewGenericVar("a"), env.NewGenericVar("b")
	show, err := env.DeclareCapability("Show", nil)
	if err != nil {
		t.Fatal(err)
	}

	// constraint variables precede the quantifier list
	sig := construct.TQualSig(
		[]types.Constraint{construct.TConstraint(show, b)},
		[]*types.Var{a, b},
		construct.TArrow1(a, b))

	order := CanonicalOrder(sig)
	if len(order) != 2 || order[0].Id() != b.Id() || order[1].Id() != a.Id() {
		t.Fatalf("expected canonical order [b, a], got %v", varNameList(order))
	}
	// two identical sites see the same order
	again := CanonicalOrder(sig)
	for i := range order {
		if order[i].Id() != again[i].Id() {
			t.Fatalf("expected canonical order to be stable across calls")
		}
	}
}

func TestQuantifierOrderBindsPositions(t *testing.T) {
	env := NewTypeEnv(nil)
	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	a, b := env.NewGenericVar("a"), env.NewGenericVar("b")
	body := construct.TArrow2(a, b, a)

	// the first slot binds whichever variable the written binder lists first
	forward := construct.TSig([]*types.Var{a, b}, body)
	app, err := elab.Elaborate("f", forward, Apply(Arg(construct.TConst("int"))))
	if err != nil {
		t.Fatal(err)
	}
	if bound, _ := app.Subst.Get(a); types.TypeString(bound) != "int" {
		t.Fatalf("expected slot 1 to bind a")
	}

	reversed := construct.TSig([]*types.Var{b, a}, body)
	app, err = elab.Elaborate("f", reversed, Apply(Arg(construct.TConst("int"))))
	if err != nil {
		t.Fatal(err)
	}
	if bound, _ := app.Subst.Get(b); types.TypeString(bound) != "int" {
		t.Fatalf("expected slot 1 to bind b after reordering the binder")
	}
	if bound, _ := app.Subst.Get(a); types.TypeString(bound) == "int" {
		t.Fatalf("expected a to stay unbound after reordering the binder")
	}
}

func TestExplicitInstantiationWithConstraints(t *testing.T) {
	env := NewTypeEnv(nil)
	show, err := env.DeclareCapability("Show", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.DeclareInstance(show, construct.TConst("int"), map[string]string{}); err != nil {
		t.Fatal(err)
	}

	a := env.NewGenericVar("a")
	sig := construct.TQualSig(
		[]types.Constraint{construct.TConstraint(show, a)},
		[]*types.Var{a},
		construct.TArrow1(a, construct.TConst("string")))

	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	app, err := elab.Elaborate("show", sig, Apply(Arg(construct.TConst("int"))))
	if err != nil {
		t.Fatal(err)
	}
	if bound, _ := app.Subst.Get(a); types.TypeString(bound) != "int" {
		t.Fatalf("expected a to be bound to int, got %s", types.TypeString(bound))
	}

	// a slot incompatible with the variable's constraints fails
	_, err = elab.Elaborate("show", sig, Apply(Arg(construct.TConst("float"))))
	if err == nil {
		t.Fatalf("expected an error for a slot with no matching instance")
	}
	unifyErr, ok := err.(*UnificationError)
	if !ok {
		t.Fatalf("expected UnificationError, got %T (%v)", err, err)
	}
	t.Log(unifyErr.Error())
}

func TestArityError(t *testing.T) {
	env := NewTypeEnv(nil)
	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	a := env.NewGenericVar("a")
	sig := construct.TSig([]*types.Var{a}, construct.TArrow1(a, a))

	_, err := elab.Elaborate("id", sig, Apply(Arg(construct.TConst("int")), Arg(construct.TConst("bool"))))
	if err == nil {
		t.Fatalf("expected an error for excess slots")
	}
	arityErr, ok := err.(*ArityError)
	if !ok {
		t.Fatalf("expected ArityError, got %T (%v)", err, err)
	}
	if arityErr.Slots != 2 || arityErr.Vars != 1 {
		t.Fatalf("expected 2 slots for 1 variable, got %d for %d", arityErr.Slots, arityErr.Vars)
	}
}

func TestDeferredResolution(t *testing.T) {
	env := NewTypeEnv(nil)
	inf := NewInferencer(env)
	elab := NewElaborator(env, inf, NewClassifier(env))

	a := env.NewGenericVar("a")
	sig := construct.TSig([]*types.Var{a}, construct.TArrow1(a, a))

	app, err := elab.Elaborate("id", sig, Apply())
	if err != nil {
		t.Fatal(err)
	}
	if len(app.Deferred) != 1 {
		t.Fatalf("expected a to be deferred")
	}

	// unresolved deferrals fail at the end of the pass
	if _, err := app.Finish(); err == nil {
		t.Fatalf("expected an error for an unresolved deferral")
	} else if _, ok := err.(*UnresolvedVariableError); !ok {
		t.Fatalf("expected UnresolvedVariableError, got %T (%v)", err, err)
	}

	// inference determines the deferred variable, then finishing succeeds
	if err := inf.Unify(app.Fresh[a.Id()], construct.TConst("bool")); err != nil {
		t.Fatal(err)
	}
	sub, err := app.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if bound, _ := sub.Get(a); types.TypeString(bound) != "bool" {
		t.Fatalf("expected a to resolve to bool, got %s", types.TypeString(bound))
	}
}

func TestElaborateFunc(t *testing.T) {
	env := NewTypeEnv(nil)
	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	fn, err := env.DeclareFamily("Index", 2, []bool{true, false})
	if err != nil {
		t.Fatal(err)
	}

	app, err := elab.ElaborateFunc(fn, Apply(Skip(), Arg(construct.TConst("int"))))
	if err != nil {
		t.Fatal(err)
	}
	if bound, _ := app.Subst.Get(fn.Params[1]); types.TypeString(bound) != "int" {
		t.Fatalf("expected the second parameter to be bound to int")
	}
	if len(app.Deferred) != 1 || app.Deferred[0].Id() != fn.Params[0].Id() {
		t.Fatalf("expected the first parameter to be deferred")
	}

	if _, err := elab.ElaborateFunc(fn, Apply(Skip(), Skip(), Skip())); err == nil {
		t.Fatalf("expected an arity error for excess slots")
	}
}

func TestSubstApply(t *testing.T) {
	env := NewTypeEnv(nil)
	elab := NewElaborator(env, NewInferencer(env), NewClassifier(env))

	a, b := env.NewGenericVar("a"), env.NewGenericVar("b")
	sig := construct.TSig([]*types.Var{a, b},
		construct.TArrow2(a, b, construct.TApp("Pair", a, b)))

	app, err := elab.Elaborate("pair", sig, Apply(Arg(construct.TConst("int")), Arg(construct.TConst("bool"))))
	if err != nil {
		t.Fatal(err)
	}
	rewritten := app.Subst.Apply(sig.Body)
	if types.TypeString(rewritten) != "(int, bool) -> Pair[int, bool]" {
		t.Fatalf("unexpected rewritten body: %s", types.TypeString(rewritten))
	}
}
