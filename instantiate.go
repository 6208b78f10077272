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

// instantiate replaces each generic type-variable in t with a fresh unbound
// type-variable at the given binding-level. Identical generic variables map
// to a single fresh variable through the instantiation lookup, which the
// caller must clear between unrelated instantiations.
func (ctx *commonContext) instantiate(level int, t types.Type) types.Type {
	if !types.HasGenericVars(t) {
		return t
	}
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			return ctx.instantiate(level, t.Link())
		case t.IsGenericVar():
			if tv, ok := ctx.InstLookup[t.Id()]; ok {
				return tv
			}
			tv := ctx.VarTracker.New(ctx.env.freshId(), level)
			tv.SetName(t.Name())
			tv.SetConstraints(t.Constraints())
			ctx.InstLookup[t.Id()] = tv
			return tv
		default:
			return t
		}

	case *types.App:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ctx.instantiate(level, arg)
		}
		return &types.App{Const: t.Const, Args: args}

	case *types.Arrow:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ctx.instantiate(level, arg)
		}
		return &types.Arrow{Args: args, Return: ctx.instantiate(level, t.Return)}

	case *types.FuncApp:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = ctx.instantiate(level, arg)
		}
		return &types.FuncApp{Func: t.Func, Args: args}
	}
	return t
}
