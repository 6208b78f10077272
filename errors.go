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
	"strconv"
	"strings"

	"github.com/wdamron/typeapp/types"
)

// All errors are reported at the granularity of a single declaration or call
// site and abort only that declaration's elaboration; shared catalogs and
// caches are never left corrupted. None are recovered silently: ambiguous
// variables are never default-guessed.

// ScopeError reports a reference to a type-variable name with no binding in
// any enclosing explicit quantifier, under strict scoping.
type ScopeError struct {
	Name string
}

func (e *ScopeError) Error() string {
	return "Type-variable name " + e.Name + " is not bound by an enclosing quantifier"
}

// ArityError reports an application site with more explicit slots than the
// target has instantiable type-variables.
type ArityError struct {
	// Target names the signature or type-level function being applied.
	Target string
	Slots  int
	Vars   int
}

func (e *ArityError) Error() string {
	return "Application of " + e.Target + " supplies " + strconv.Itoa(e.Slots) +
		" type arguments for " + strconv.Itoa(e.Vars) + " instantiable type-variables"
}

// UnificationError reports an explicit slot whose type is incompatible with
// the corresponding type-variable, including its capability constraints.
type UnificationError struct {
	Var    *types.Var
	Arg    types.Type
	Reason error
}

func (e *UnificationError) Error() string {
	return "Cannot instantiate " + types.VarString(e.Var) + " with " +
		types.TypeString(e.Arg) + ": " + e.Reason.Error()
}

// UnresolvedVariableError reports type-variables which needed determination
// but received neither explicit instantiation nor a solution from inference.
type UnresolvedVariableError struct {
	// Target names the signature or type-level function being applied.
	Target string
	Vars   []*types.Var
}

func (e *UnresolvedVariableError) Error() string {
	return "Cannot determine " + varNameList(e.Vars) + " in application of " + e.Target +
		"; supply explicit type arguments for the variable(s)"
}

// AmbiguousTypeError reports a signature quantifying variables which ordinary
// inference cannot determine, without the allow-ambiguous marker.
type AmbiguousTypeError struct {
	Sig  *types.Signature
	Vars []*types.Var
}

func (e *AmbiguousTypeError) Error() string {
	return "Ambiguous type-variable(s) " + varNameList(e.Vars) + " in signature " +
		types.SignatureString(e.Sig) + "; add a parameter which determines the variable(s)," +
		" or mark the declaration allow-ambiguous and instantiate explicitly at use sites"
}

// CyclicDefinitionError reports a self-referential type-level function chain
// encountered during injectivity derivation.
type CyclicDefinitionError struct {
	Funcs []string
}

func (e *CyclicDefinitionError) Error() string {
	return "Type-level function definitions form a cycle: " + strings.Join(e.Funcs, " -> ")
}

func varNameList(vars []*types.Var) string {
	var sb strings.Builder
	for i, tv := range vars {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(types.VarString(tv))
	}
	return sb.String()
}
