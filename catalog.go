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
	"strconv"

	"github.com/wdamron/typeapp/types"
)

// Provider supplies type-level function definitions by name. A nil result
// indicates the function is not declared.
type Provider interface {
	LookupTypeLevelFunc(name string) *types.TypeLevelFunc
}

// Catalog is a collection of type-level functions. A catalog must be fully
// declared before analysis begins; it is read-only afterwards and may be
// shared across threads.
type Catalog struct {
	funcs map[string]*types.TypeLevelFunc
	names []string
}

func NewCatalog() *Catalog {
	return &Catalog{funcs: make(map[string]*types.TypeLevelFunc)}
}

// Declare adds a type-level function to the catalog. Names must be unique
// within the catalog.
func (c *Catalog) Declare(f *types.TypeLevelFunc) error {
	if _, exists := c.funcs[f.Name]; exists {
		return errors.New("Type-level function " + f.Name + " is already declared")
	}
	if f.Kind == types.SynonymFunc {
		if f.Expansion == nil {
			return errors.New("Type synonym " + f.Name + " has no expansion")
		}
		if len(f.Params) != f.Arity {
			return errors.New("Type synonym " + f.Name + " declares " + strconv.Itoa(len(f.Params)) +
				" parameters for arity " + strconv.Itoa(f.Arity))
		}
	}
	if f.Injective != nil && len(f.Injective) != f.Arity {
		return errors.New("Injectivity annotation for " + f.Name + " does not match its arity")
	}
	c.funcs[f.Name] = f
	c.names = append(c.names, f.Name)
	return nil
}

// LookupTypeLevelFunc returns the declared function with the given name, or
// nil. Catalog implements Provider.
func (c *Catalog) LookupTypeLevelFunc(name string) *types.TypeLevelFunc { return c.funcs[name] }

// Names returns the declared function names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}
