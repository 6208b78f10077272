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
	"errors"

	"github.com/wdamron/typeapp/internal/util"
	"github.com/wdamron/typeapp/types"
)

func (ctx *commonContext) occursAdjustLevels(id, level int, t types.Type) error {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return ctx.occursAdjustLevels(id, level, t.Link())
		case t.IsGenericVar():
			return errors.New("Types must be instantiated before checking for recursion")
		default: // unbound
			if t.Id() == id {
				return errors.New("Implicitly recursive types are not supported")
			}
			if t.Level() > level {
				if ctx.Speculate {
					ctx.StashLink(t)
				}
				t.SetLevel(level)
			}
		}
		return nil

	case *types.App:
		for _, arg := range t.Args {
			if err := ctx.occursAdjustLevels(id, level, arg); err != nil {
				return err
			}
		}
		return nil

	case *types.Arrow:
		for _, arg := range t.Args {
			if err := ctx.occursAdjustLevels(id, level, arg); err != nil {
				return err
			}
		}
		return ctx.occursAdjustLevels(id, level, t.Return)

	case *types.FuncApp:
		for _, arg := range t.Args {
			if err := ctx.occursAdjustLevels(id, level, arg); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}

func (ctx *commonContext) canUnify(a, b types.Type) bool {
	speculating := ctx.Speculate
	ctx.Speculate = true
	stashedLinks := ctx.LinkStash
	err := ctx.unify(a, b)
	ctx.UnstashLinks(len(ctx.LinkStash) - len(stashedLinks))
	ctx.Speculate, ctx.LinkStash = speculating, stashedLinks
	return err == nil
}

func (ctx *commonContext) applyConstraints(a *types.Var, b types.Type) error {
	aConstraints := a.Constraints()
	if len(aConstraints) == 0 {
		return nil
	}
	bv, bIsVar := b.(*types.Var)
	if bIsVar {
		bConstraints := bv.Constraints()
		// merge instance constraints into the link target
		if ctx.Speculate {
			// don't modify the existing slice of constraints
			ctx.StashLink(bv)
			bConstraintsTmp := make([]types.InstanceConstraint, len(bConstraints), len(bConstraints)+len(aConstraints))
			copy(bConstraintsTmp, bConstraints)
			bv.SetConstraints(bConstraintsTmp)
		}
		for _, c := range aConstraints {
			bv.AddConstraint(c)
		}
		a.SetConstraints(nil)
		return nil
	}

	// evaluate instance constraints (find a matching instance for each capability)
	seen := util.NewIntDedupeMap()
	for _, c := range aConstraints {
		if seen[c.Capability.Id] {
			continue
		}
		seen[c.Capability.Id] = true
		var matched *types.Instance
		if ctx.LastInstanceMatch != nil {
			if inst, ok := ctx.LastInstanceMatch[c.Capability.Id]; ok && ctx.canUnify(b, ctx.instantiate(a.Level(), inst.Param)) {
				matched = inst
			}
		}
		if matched == nil {
			c.Capability.FindInstance(func(inst *types.Instance) bool {
				if ctx.canUnify(b, ctx.instantiate(a.Level(), inst.Param)) {
					matched = inst
					return true
				}
				return false
			})
		}
		if matched == nil {
			seen.Release()
			return errors.New("No matching instance found for capability " + c.Capability.Name)
		}
		if ctx.LastInstanceMatch == nil {
			ctx.LastInstanceMatch = make(map[int]*types.Instance)
		}
		ctx.LastInstanceMatch[c.Capability.Id] = matched
	}
	seen.Release()
	return nil
}

func (ctx *commonContext) unify(a, b types.Type) error {
	a, b = types.RealType(a), types.RealType(b)
	if a == b {
		return nil
	}

	// unify type variables:

	avar, _ := a.(*types.Var)
	bvar, _ := b.(*types.Var)
	switch {
	case avar == nil && bvar != nil:
		return ctx.unify(b, a)

	case avar != nil:
		if avar.IsGenericVar() {
			return errors.New("Generic type-variable was not instantiated before unification")
		}
		if ctx.Speculate {
			ctx.StashLink(avar)
		}
		if bvar != nil && bvar.IsUnboundVar() && avar.Id() == bvar.Id() {
			return errors.New("Implicitly recursive types are not supported")
		}
		if err := ctx.occursAdjustLevels(avar.Id(), avar.Level(), b); err != nil {
			return err
		}
		if err := ctx.applyConstraints(avar, b); err != nil {
			return err
		}
		avar.SetLink(b)
		return nil
	}

	// unify types:

	switch a := a.(type) {
	case *types.Const:
		if b, ok := b.(*types.Const); ok {
			if a.Name == b.Name {
				return nil
			}
			return errors.New("Failed to unify " + a.Name + " with " + b.Name)
		}

	case *types.App:
		b, ok := b.(*types.App)
		if !ok {
			break
		}
		if a.Const != b.Const {
			return errors.New("Failed to unify " + a.Const + " with " + b.Const)
		}
		if len(a.Args) != len(b.Args) {
			return errors.New("Cannot unify constructor applications with differing arity")
		}
		for i := range a.Args {
			if err := ctx.unify(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return nil

	case *types.Arrow:
		b, ok := b.(*types.Arrow)
		if !ok {
			break
		}
		if len(a.Args) != len(b.Args) {
			return errors.New("Cannot unify arrows with differing arity")
		}
		for i := range a.Args {
			if err := ctx.unify(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return ctx.unify(a.Return, b.Return)

	case *types.FuncApp:
		// Syntactic unification only: type-level functions are not evaluated
		// here, so applications unify when the function and every argument
		// match pointwise.
		b, ok := b.(*types.FuncApp)
		if !ok {
			break
		}
		if a.Func != b.Func {
			return errors.New("Failed to unify applications of " + a.Func + " and " + b.Func)
		}
		if len(a.Args) != len(b.Args) {
			return errors.New("Cannot unify applications of " + a.Func + " with differing arity")
		}
		for i := range a.Args {
			if err := ctx.unify(a.Args[i], b.Args[i]); err != nil {
				return err
			}
		}
		return nil
	}

	return errors.New("Failed to unify " + a.TypeName() + " with " + b.TypeName())
}
