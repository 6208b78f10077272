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

// CheckAmbiguity returns the quantified variables of sig which unification
// against the signature's body cannot determine, in canonical order. A
// variable is determined when it occurs in the body reachable only through
// constructors, arrows, and injective argument positions of type-level
// functions; a variable reachable only under non-injective positions is
// ambiguous. An empty result means every quantified variable is determinable
// by ordinary inference.
func CheckAmbiguity(sig *types.Signature, inj InjectivityQuery) ([]*types.Var, error) {
	determined := make(map[int]bool)
	if err := markDetermined(sig.Body, true, inj, determined); err != nil {
		return nil, err
	}
	var ambiguous []*types.Var
	for _, tv := range CanonicalOrder(sig) {
		if !determined[tv.Id()] {
			ambiguous = append(ambiguous, tv)
		}
	}
	return ambiguous, nil
}

func markDetermined(t types.Type, det bool, inj InjectivityQuery, determined map[int]bool) error {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return markDetermined(t.Link(), det, inj, determined)
		}
		if det {
			determined[t.Id()] = true
		}
		return nil

	case *types.App:
		// constructors are injective in every position
		for _, arg := range t.Args {
			if err := markDetermined(arg, det, inj, determined); err != nil {
				return err
			}
		}
		return nil

	case *types.Arrow:
		for _, arg := range t.Args {
			if err := markDetermined(arg, det, inj, determined); err != nil {
				return err
			}
		}
		return markDetermined(t.Return, det, inj, determined)

	case *types.FuncApp:
		for i, arg := range t.Args {
			argDet := det
			if argDet {
				injective, err := inj.IsInjective(t.Func, i)
				if err != nil {
					return err
				}
				argDet = injective
			}
			if err := markDetermined(arg, argDet, inj, determined); err != nil {
				return err
			}
		}
		return nil

	default:
		return nil
	}
}
