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

// Slot is one positional type argument at an application site: either an
// explicit type or a skip which leaves the corresponding variable to
// inference. Skips count toward positions but consume nothing.
type Slot struct {
	typ types.Type
}

// Arg returns an explicit slot carrying t.
func Arg(t types.Type) Slot { return Slot{typ: t} }

// Skip returns a skip slot.
func Skip() Slot { return Slot{} }

// IsSkip reports whether the slot is a skip.
func (s Slot) IsSkip() bool { return s.typ == nil }

// Type returns the explicit type of the slot, or nil for a skip.
func (s Slot) Type() types.Type { return s.typ }

// ApplicationSite is an explicit positional instantiation: slots match the
// target's canonical variable order left to right, and trailing variables
// beyond the last slot are left to inference.
type ApplicationSite struct {
	Slots []Slot
}

func Apply(slots ...Slot) ApplicationSite { return ApplicationSite{Slots: slots} }

// CanonicalOrder returns the positional order of a signature's quantified
// variables: variables appear in order of first occurrence within the
// constraint list, followed by the signature's quantified variables in their
// effective order. Each variable appears once.
func CanonicalOrder(sig *types.Signature) []*types.Var {
	var order []*types.Var
	seen := make(map[int]bool)
	for _, c := range sig.Constraints {
		for _, arg := range c.Args {
			for _, tv := range types.FreeTypeVars(arg) {
				if !seen[tv.Id()] {
					seen[tv.Id()] = true
					order = append(order, tv)
				}
			}
		}
	}
	for _, tv := range sig.QuantifiedVars() {
		if !seen[tv.Id()] {
			seen[tv.Id()] = true
			order = append(order, tv)
		}
	}
	return order
}

// Application is the elaborated form of an application site: a fresh unbound
// variable per quantified variable of the target, with explicit slots already
// unified and skipped variables deferred to inference.
type Application struct {
	// Target names the signature or type-level function applied.
	Target string
	// Order lists the target's variables in canonical positional order.
	Order []*types.Var
	// Fresh maps each variable in Order (by id) to its instantiation.
	Fresh map[int]*types.Var
	// Subst maps each variable in Order to its current resolution.
	Subst types.Subst
	// Deferred lists the variables left to inference by skips or omission.
	Deferred []*types.Var
}

// Finish rebuilds the application's substitution after inference has run,
// resolving deferred variables through their links. Variables still unbound
// produce an UnresolvedVariableError.
func (a *Application) Finish() (types.Subst, error) {
	var unresolved []*types.Var
	builder := types.NewSubstBuilder()
	for _, tv := range a.Order {
		fresh := a.Fresh[tv.Id()]
		resolved := types.RealType(fresh)
		if rv, ok := resolved.(*types.Var); ok && rv.IsUnboundVar() {
			unresolved = append(unresolved, tv)
			continue
		}
		builder.Set(tv, resolved)
	}
	if len(unresolved) > 0 {
		return types.EmptySubst, &UnresolvedVariableError{Target: a.Target, Vars: unresolved}
	}
	return builder.Build(), nil
}

// Elaborator checks and elaborates explicit application sites against
// declared signatures and type-level functions.
type Elaborator struct {
	env         *TypeEnv
	inf         Inferencer
	injectivity InjectivityQuery
}

func NewElaborator(env *TypeEnv, inf Inferencer, injectivity InjectivityQuery) *Elaborator {
	return &Elaborator{env: env, inf: inf, injectivity: injectivity}
}

// Elaborate applies an application site to a signature. Slots match the
// signature's canonical variable order; explicit slots unify immediately, and
// skipped or omitted variables are deferred to inference. Ambiguous variables
// of an allow-ambiguous signature must receive explicit slots.
func (e *Elaborator) Elaborate(name string, sig *types.Signature, site ApplicationSite) (*Application, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	ambiguous, err := CheckAmbiguity(sig, e.injectivity)
	if err != nil {
		return nil, err
	}
	if len(ambiguous) > 0 && !sig.AllowAmbiguous {
		return nil, &AmbiguousTypeError{Sig: sig, Vars: ambiguous}
	}

	order := CanonicalOrder(sig)
	if len(site.Slots) > len(order) {
		return nil, &ArityError{Target: name, Slots: len(site.Slots), Vars: len(order)}
	}

	// every ambiguous variable needs an explicit slot at its canonical position
	if len(ambiguous) > 0 {
		var missing []*types.Var
		for _, av := range ambiguous {
			explicit := false
			for i, tv := range order {
				if tv.Id() == av.Id() {
					explicit = i < len(site.Slots) && !site.Slots[i].IsSkip()
					break
				}
			}
			if !explicit {
				missing = append(missing, av)
			}
		}
		if len(missing) > 0 {
			return nil, &UnresolvedVariableError{Target: name, Vars: missing}
		}
	}

	return e.elaborateSlots(name, order, sig.Constraints, site)
}

// ElaborateFunc applies an application site directly to a type-level
// function, using its declared parameter order.
func (e *Elaborator) ElaborateFunc(fn *types.TypeLevelFunc, site ApplicationSite) (*Application, error) {
	if len(site.Slots) > len(fn.Params) {
		return nil, &ArityError{Target: fn.Name, Slots: len(site.Slots), Vars: len(fn.Params)}
	}
	return e.elaborateSlots(fn.Name, fn.Params, nil, site)
}

func (e *Elaborator) elaborateSlots(target string, order []*types.Var, constraints []types.Constraint, site ApplicationSite) (*Application, error) {
	// instantiate: one fresh unbound variable per quantified variable
	fresh := make(map[int]*types.Var, len(order))
	for _, tv := range order {
		fv := e.inf.FreshVar(types.TopLevel + 1)
		fv.SetName(tv.Name())
		for _, c := range tv.Constraints() {
			fv.AddConstraint(c)
		}
		fresh[tv.Id()] = fv
	}
	for _, c := range constraints {
		for _, arg := range c.Args {
			for _, tv := range types.FreeTypeVars(arg) {
				if fv, ok := fresh[tv.Id()]; ok {
					fv.AddConstraint(types.InstanceConstraint{Capability: c.Capability})
				}
			}
		}
	}

	var deferred []*types.Var
	builder := types.NewSubstBuilder()
	for i, tv := range order {
		fv := fresh[tv.Id()]
		if i >= len(site.Slots) || site.Slots[i].IsSkip() {
			deferred = append(deferred, tv)
			builder.Set(tv, fv)
			continue
		}
		arg := site.Slots[i].Type()
		if err := e.inf.Unify(fv, arg); err != nil {
			return nil, &UnificationError{Var: tv, Arg: arg, Reason: err}
		}
		builder.Set(tv, types.RealType(fv))
	}

	return &Application{
		Target:   target,
		Order:    order,
		Fresh:    fresh,
		Subst:    builder.Build(),
		Deferred: deferred,
	}, nil
}
