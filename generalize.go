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

// Generalize all unbound type-variables in t above the top binding-level.
func Generalize(t types.Type) types.Type { return GeneralizeAtLevel(types.TopLevel, t) }

// Generalize all unbound type-variables in t above the given binding-level.
func GeneralizeAtLevel(level int, t types.Type) types.Type {
	generalizeVars(level, t)
	return t
}

func generalizeVars(level int, t types.Type) {
	switch t := t.(type) {
	case *types.Var:
		switch {
		case t.IsLinkVar():
			generalizeVars(level, t.Link())
		case t.IsUnboundVar():
			if t.Level() > level {
				t.SetGeneric()
			}
		}

	case *types.App:
		for _, arg := range t.Args {
			generalizeVars(level, arg)
		}

	case *types.Arrow:
		for _, arg := range t.Args {
			generalizeVars(level, arg)
		}
		generalizeVars(level, t.Return)

	case *types.FuncApp:
		for _, arg := range t.Args {
			generalizeVars(level, arg)
		}
	}
}
