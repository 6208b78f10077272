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
	"github.com/wdamron/typeapp/internal/typeutil"
	"github.com/wdamron/typeapp/types"
)

// Inferencer is the ordinary-inference collaborator consulted during
// elaboration. Explicit slots unify immediately; variables deferred by skip
// slots must be resolved through the Inferencer by the end of the
// surrounding inference pass.
type Inferencer interface {
	// Unify a type with another type.
	Unify(a, b types.Type) error
	// Create an unbound type-variable with a unique id at a given binding-level.
	FreshVar(level int) *types.Var
	// Generalize all unbound type-variables in t above the top binding-level.
	Generalize(t types.Type) types.Type
}

// NewInferencer returns the default unification-based Inferencer for env.
//
// An Inferencer cannot be used concurrently; to elaborate across threads,
// create a new environment (and Inferencer) for each thread which inherits
// from a shared environment.
func NewInferencer(env *TypeEnv) Inferencer { return env.common() }

// commonContext carries the state shared by unification, instantiation, and
// constraint checking within a single environment.
type commonContext struct {
	env *TypeEnv
	typeutil.CommonContext
}

func (ctx *commonContext) Unify(a, b types.Type) error { return ctx.unify(a, b) }

func (ctx *commonContext) FreshVar(level int) *types.Var {
	return ctx.VarTracker.New(ctx.env.freshId(), level)
}

func (ctx *commonContext) Generalize(t types.Type) types.Type { return Generalize(t) }
