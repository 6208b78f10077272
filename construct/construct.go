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

// Package construct provides short constructors for building types and
// signatures by hand, primarily in tests.
package construct

import (
	"github.com/wdamron/typeapp/types"
)

// Create a new type-variable with the given id and binding-level.
func TVar(id, level int) *types.Var {
	return types.NewVar(id, level)
}

// Type constant: `int`, `bool`, etc
func TConst(name string) *types.Const {
	return &types.Const{Name: name}
}

// Constructor application: `List[int]`
func TApp(constructor string, args ...types.Type) *types.App {
	return &types.App{Const: constructor, Args: args}
}

// Function type: `(int, int) -> int`
func TArrow(args []types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: args, Return: ret}
}

// Function type: `int -> int`
func TArrow1(arg types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg}, Return: ret}
}

// Function type: `(int, int) -> int`
func TArrow2(arg1, arg2 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2}, Return: ret}
}

// Function type: `(int, int, int) -> int`
func TArrow3(arg1, arg2, arg3 types.Type, ret types.Type) *types.Arrow {
	return &types.Arrow{Args: []types.Type{arg1, arg2, arg3}, Return: ret}
}

// Type-level function application: `Elem[c]`
func TFunc(name string, args ...types.Type) *types.FuncApp {
	return &types.FuncApp{Func: name, Args: args}
}

// Signature with an explicit quantifier order: `forall a b. ...`
func TSig(quantifiers []*types.Var, body types.Type) *types.Signature {
	return &types.Signature{Quantifiers: quantifiers, Body: body}
}

// Signature with constraints preceding the body: `C a => ...`
func TQualSig(constraints []types.Constraint, quantifiers []*types.Var, body types.Type) *types.Signature {
	return &types.Signature{Constraints: constraints, Quantifiers: quantifiers, Body: body}
}

// Capability constraint over types: `C a`
func TConstraint(c *types.Capability, args ...types.Type) types.Constraint {
	return types.Constraint{Capability: c, Args: args}
}
