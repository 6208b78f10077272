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

	"github.com/wdamron/typeapp/types"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout for a catalog of type-level functions.
// Declarations are structured trees, not surface syntax:
//
//	funcs:
//	  - name: List
//	    kind: constructor
//	    arity: 1
//	  - name: Pair
//	    kind: synonym
//	    params: [a, b]
//	    type: {app: Tuple, args: [{var: a}, {var: b}]}
//	  - name: Elem
//	    kind: family
//	    arity: 1
//	  - name: Index
//	    kind: family
//	    arity: 2
//	    injective: [true, false]
type catalogFile struct {
	Funcs []catalogFunc `yaml:"funcs"`
}

type catalogFunc struct {
	Name      string    `yaml:"name"`
	Kind      string    `yaml:"kind"`
	Arity     int       `yaml:"arity"`
	Params    []string  `yaml:"params"`
	Injective []bool    `yaml:"injective"`
	Type      *typeNode `yaml:"type"`
}

type typeNode struct {
	Var   string      `yaml:"var"`
	Const string      `yaml:"const"`
	App   string      `yaml:"app"`
	Func  string      `yaml:"func"`
	Args  []*typeNode `yaml:"args"`
	Arrow []*typeNode `yaml:"arrow"`
}

// LoadCatalog declares the type-level functions described by YAML data within
// the environment's catalog.
func (e *TypeEnv) LoadCatalog(data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	for _, f := range file.Funcs {
		switch f.Kind {
		case "constructor":
			fn, err := e.DeclareConstructor(f.Name, f.Arity)
			if err != nil {
				return err
			}
			if f.Injective != nil {
				fn.Injective = f.Injective
			}

		case "synonym":
			params := make([]*types.Var, len(f.Params))
			names := make(map[string]*types.Var, len(f.Params))
			for i, name := range f.Params {
				params[i] = e.NewGenericVar(name)
				names[name] = params[i]
			}
			if f.Type == nil {
				return errors.New("Type synonym " + f.Name + " has no expansion")
			}
			expansion, err := f.Type.resolve(names)
			if err != nil {
				return err
			}
			fn, err := e.DeclareSynonym(f.Name, params, expansion)
			if err != nil {
				return err
			}
			if f.Injective != nil {
				fn.Injective = f.Injective
			}

		case "family":
			if _, err := e.DeclareFamily(f.Name, f.Arity, f.Injective); err != nil {
				return err
			}

		default:
			return errors.New("Unsupported kind " + f.Kind + " for type-level function " + f.Name)
		}
	}
	return nil
}

func (n *typeNode) resolve(names map[string]*types.Var) (types.Type, error) {
	switch {
	case n.Var != "":
		tv, ok := names[n.Var]
		if !ok {
			return nil, &ScopeError{Name: n.Var}
		}
		return tv, nil

	case n.Const != "":
		return &types.Const{Name: n.Const}, nil

	case n.App != "":
		args, err := resolveNodes(n.Args, names)
		if err != nil {
			return nil, err
		}
		return &types.App{Const: n.App, Args: args}, nil

	case n.Func != "":
		args, err := resolveNodes(n.Args, names)
		if err != nil {
			return nil, err
		}
		return &types.FuncApp{Func: n.Func, Args: args}, nil

	case len(n.Arrow) > 0:
		parts, err := resolveNodes(n.Arrow, names)
		if err != nil {
			return nil, err
		}
		return &types.Arrow{Args: parts[:len(parts)-1], Return: parts[len(parts)-1]}, nil

	default:
		return nil, errors.New("Empty type node in catalog")
	}
}

func resolveNodes(nodes []*typeNode, names map[string]*types.Var) ([]types.Type, error) {
	resolved := make([]types.Type, len(nodes))
	for i, node := range nodes {
		t, err := node.resolve(names)
		if err != nil {
			return nil, err
		}
		resolved[i] = t
	}
	return resolved, nil
}
