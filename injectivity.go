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
	"context"
	"errors"
	"sync"

	"github.com/benbjohnson/immutable"
	"github.com/wdamron/typeapp/internal/util"
	"github.com/wdamron/typeapp/types"
)

// InjectivityQuery answers whether a type-level function determines its
// arguments from its result, per argument position. Positions are zero-based.
type InjectivityQuery interface {
	IsInjective(fn string, pos int) (bool, error)
}

// InjectivityTable is an immutable per-position injectivity table, precomputed
// from a catalog. A table may be shared across threads.
type InjectivityTable struct {
	m *immutable.SortedMap
}

// Len returns the number of functions in the table.
func (t InjectivityTable) Len() int {
	if t.m == nil {
		return 0
	}
	return t.m.Len()
}

// Lookup returns the per-position injectivity of a function, or false if the
// function is not in the table. The returned slice must not be modified.
func (t InjectivityTable) Lookup(fn string) ([]bool, bool) {
	if t.m == nil {
		return nil, false
	}
	v, ok := t.m.Get(fn)
	if !ok {
		return nil, false
	}
	return v.([]bool), true
}

// IsInjective reports whether fn is injective at the given position. Unknown
// functions and out-of-range positions are conservatively non-injective.
// InjectivityTable implements InjectivityQuery.
func (t InjectivityTable) IsInjective(fn string, pos int) (bool, error) {
	positions, ok := t.Lookup(fn)
	if !ok || pos < 0 || pos >= len(positions) {
		return false, nil
	}
	return positions[pos], nil
}

// Classifier derives per-position injectivity for type-level functions on
// demand, resolving definitions through a Provider and memoizing results.
// Derived facts are monotone: adding unrelated declarations to the provider
// never changes a previously derived result. A Classifier may be shared
// across threads.
type Classifier struct {
	provider Provider

	mu    sync.Mutex
	memo  map[string][]bool
	stack []string
}

func NewClassifier(p Provider) *Classifier {
	return &Classifier{provider: p, memo: make(map[string][]bool)}
}

// IsInjective reports whether fn is injective at the given position.
// Classifier implements InjectivityQuery.
func (c *Classifier) IsInjective(fn string, pos int) (bool, error) {
	positions, err := c.Positions(fn)
	if err != nil {
		return false, err
	}
	if pos < 0 || pos >= len(positions) {
		return false, nil
	}
	return positions[pos], nil
}

// Positions returns the per-position injectivity of fn. The returned slice
// must not be modified.
func (c *Classifier) Positions(fn string) ([]bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	positions, err := c.positions(fn)
	if err != nil {
		c.stack = c.stack[:0]
	}
	return positions, err
}

func (c *Classifier) positions(fn string) ([]bool, error) {
	if positions, ok := c.memo[fn]; ok {
		return positions, nil
	}
	for i, pending := range c.stack {
		if pending == fn {
			cycle := make([]string, 0, len(c.stack)-i+1)
			cycle = append(cycle, c.stack[i:]...)
			cycle = append(cycle, fn)
			return nil, &CyclicDefinitionError{Funcs: cycle}
		}
	}
	f := c.provider.LookupTypeLevelFunc(fn)
	if f == nil {
		return nil, errors.New("Type-level function " + fn + " is not declared")
	}

	positions := make([]bool, f.Arity)
	switch {
	case f.Injective != nil:
		// trusted annotation
		copy(positions, f.Injective)

	case f.Kind == types.ConstructorFunc:
		for i := range positions {
			positions[i] = true
		}

	case f.Kind == types.SynonymFunc:
		c.stack = append(c.stack, fn)
		for i, param := range f.Params {
			injective, err := c.occursInjective(f.Expansion, param)
			if err != nil {
				return nil, err
			}
			positions[i] = injective
		}
		c.stack = c.stack[:len(c.stack)-1]

	default:
		// families default to non-injective everywhere
	}
	c.memo[fn] = positions
	return positions, nil
}

// occursInjective reports whether param occurs in t reachable only through
// injective argument positions.
func (c *Classifier) occursInjective(t types.Type, param *types.Var) (bool, error) {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			return c.occursInjective(t.Link(), param)
		}
		return t.Id() == param.Id(), nil

	case *types.App:
		for _, arg := range t.Args {
			injective, err := c.occursInjective(arg, param)
			if err != nil || injective {
				return injective, err
			}
		}
		return false, nil

	case *types.Arrow:
		for _, arg := range t.Args {
			injective, err := c.occursInjective(arg, param)
			if err != nil || injective {
				return injective, err
			}
		}
		return c.occursInjective(t.Return, param)

	case *types.FuncApp:
		positions, err := c.positions(t.Func)
		if err != nil {
			return false, err
		}
		for i, arg := range t.Args {
			if i >= len(positions) || !positions[i] {
				continue
			}
			injective, err := c.occursInjective(arg, param)
			if err != nil || injective {
				return injective, err
			}
		}
		return false, nil

	default:
		return false, nil
	}
}

// ClassifyCatalog precomputes an injectivity table for every function in a
// catalog. Cyclic synonym definitions are detected up front over the
// catalog's reference graph; the context cancels long-running batches.
func ClassifyCatalog(ctx context.Context, catalog *Catalog) (InjectivityTable, error) {
	names := catalog.Names()
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	// cycle check over references between unannotated synonym expansions
	graph := util.NewGraph(len(names))
	for i, name := range names {
		f := catalog.LookupTypeLevelFunc(name)
		if f.Kind != types.SynonymFunc || f.Injective != nil {
			continue
		}
		addExpansionEdges(graph, index, i, f.Expansion)
	}
	for _, component := range graph.SCC() {
		if len(component) > 1 || graph.HasEdge(component[0], component[0]) {
			funcs := make([]string, len(component))
			for i, v := range component {
				funcs[i] = names[v]
			}
			return InjectivityTable{}, &CyclicDefinitionError{Funcs: funcs}
		}
	}

	classifier := NewClassifier(catalog)
	builder := immutable.NewSortedMapBuilder(immutable.NewSortedMap(nil))
	for _, name := range names {
		select {
		case <-ctx.Done():
			return InjectivityTable{}, ctx.Err()
		default:
		}
		positions, err := classifier.Positions(name)
		if err != nil {
			return InjectivityTable{}, err
		}
		builder.Set(name, positions)
	}
	return InjectivityTable{m: builder.Map()}, nil
}

func addExpansionEdges(graph util.Graph, index map[string]int, from int, t types.Type) {
	switch t := t.(type) {
	case *types.Var:
		if t.IsLinkVar() {
			addExpansionEdges(graph, index, from, t.Link())
		}
	case *types.App:
		for _, arg := range t.Args {
			addExpansionEdges(graph, index, from, arg)
		}
	case *types.Arrow:
		for _, arg := range t.Args {
			addExpansionEdges(graph, index, from, arg)
		}
		addExpansionEdges(graph, index, from, t.Return)
	case *types.FuncApp:
		if to, ok := index[t.Func]; ok {
			graph.AddEdge(from, to)
		}
		for _, arg := range t.Args {
			addExpansionEdges(graph, index, from, arg)
		}
	}
}
