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

// TypeEnv is a type-environment containing declared signatures, capabilities,
// and the catalog of type-level functions.
//
// A type-environment cannot be used concurrently for elaboration; to share a
// type-environment across threads, create a new type-environment for each
// thread which inherits from the shared environment.
type TypeEnv struct {
	// Next unused type-variable id
	NextVarId int
	// Predeclared entries in the parent of the current type-environment
	Parent *TypeEnv
	// Mappings from identifiers to declared signatures in the current type-environment
	Signatures map[string]*types.Signature
	// Capabilities declared in the current type-environment
	Capabilities map[string]*types.Capability
	// Type-level functions declared in the current type-environment
	Catalog *Catalog

	commonCtx *commonContext
}

// Create a type-environment. The new environment will inherit declarations
// from the parent, if the parent is not nil.
func NewTypeEnv(parent *TypeEnv) *TypeEnv {
	env := &TypeEnv{
		Parent:     parent,
		Signatures: make(map[string]*types.Signature),
		Catalog:    NewCatalog(),
	}
	if parent != nil {
		env.NextVarId = parent.NextVarId
	}
	return env
}

func (e *TypeEnv) freshId() int {
	id := e.NextVarId
	e.NextVarId++
	return id
}

func (e *TypeEnv) common() *commonContext {
	if e.commonCtx == nil {
		e.commonCtx = &commonContext{env: e}
		e.commonCtx.Init()
	}
	return e.commonCtx
}

// Create an unbound type-variable with a unique id at a given binding-level.
func (e *TypeEnv) NewVar(level int) *types.Var { return types.NewVar(e.freshId(), level) }

// Create a generic type-variable with a unique id. The display name may be
// empty; it is cosmetic only and never part of the variable's identity.
func (e *TypeEnv) NewGenericVar(name string) *types.Var {
	return types.NewNamedGenericVar(e.freshId(), name)
}

// Create a generic type-variable constrained to types implementing the given
// capabilities.
func (e *TypeEnv) NewQualifiedVar(name string, constraints ...types.InstanceConstraint) *types.Var {
	tv := types.NewNamedGenericVar(e.freshId(), name)
	for _, c := range constraints {
		tv.AddConstraint(c)
	}
	return tv
}

// Declare a parameterized capability within the type environment.
//
// Each super-capability which the new capability implements will be modified
// to add a sub-capability entry; changes will be visible across all uses of
// the super-capabilities, and changes must not be made to capabilities
// concurrently.
func (e *TypeEnv) DeclareCapability(name string, bind func(*types.Var) types.MethodSet, implements ...*types.Capability) (*types.Capability, error) {
	if existing := e.LookupCapability(name); existing != nil {
		return nil, errors.New("Capability " + name + " is already declared")
	}
	param := e.NewGenericVar("")
	methods := types.MethodSet{}
	if bind != nil {
		methods = bind(param)
	}
	c := types.NewCapability(e.freshId(), name, param, methods)
	param.AddConstraint(types.InstanceConstraint{Capability: c})
	if e.Capabilities == nil {
		e.Capabilities = make(map[string]*types.Capability)
	}
	e.Capabilities[name] = c
	for _, super := range implements {
		super.AddSub(c)
	}
	return c, nil
}

// Lookup a declared capability in the environment or its parent environment(s).
func (e *TypeEnv) LookupCapability(name string) *types.Capability {
	if e.Capabilities != nil {
		if c, ok := e.Capabilities[name]; ok {
			return c
		}
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.LookupCapability(name)
}

// Declare an instance for a parameterized capability within the type
// environment. The instance type must not overlap with (i.e. unify with) any
// other instance for the capability.
//
// methodNames must map from method names to names of their implementations
// within the surrounding program.
//
// The capability which the instance implements will be modified to add an
// instance entry; changes will be visible across all uses of the capability,
// and changes must not be made to capabilities concurrently.
func (e *TypeEnv) DeclareInstance(c *types.Capability, param types.Type, methodNames map[string]string) (*types.Instance, error) {
	if _, isFunction := param.(*types.Arrow); isFunction {
		return nil, errors.New("Unsupported function instance for capability " + c.Name)
	}
	common := e.common()
	// prevent overlapping instances:
	var conflict *types.Instance
	c.FindInstance(func(inst *types.Instance) bool {
		common.ClearInstantiationLookup()
		a := common.instantiate(types.TopLevel+1, param)
		common.ClearInstantiationLookup()
		b := common.instantiate(types.TopLevel+1, inst.Param)
		if !common.canUnify(a, b) {
			return false
		}
		conflict = inst
		return true
	})
	common.ClearInstantiationLookup()
	common.VarTracker.FlattenLinks()
	if conflict != nil {
		return nil, errors.New("Found overlapping instance for capability " + c.Name +
			" at instance " + types.TypeString(conflict.Param))
	}
	return c.AddInstance(Generalize(param), types.MethodSet{}, methodNames), nil
}

// Declare a data constructor with the given arity. Parameter variables are
// minted automatically to fix the constructor's declared parameter order.
func (e *TypeEnv) DeclareConstructor(name string, arity int) (*types.TypeLevelFunc, error) {
	f := &types.TypeLevelFunc{
		Name:   name,
		Arity:  arity,
		Kind:   types.ConstructorFunc,
		Params: e.mintParams(arity),
	}
	if err := e.Catalog.Declare(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Declare a transparent type synonym. The expansion must mention no variables
// beyond params.
func (e *TypeEnv) DeclareSynonym(name string, params []*types.Var, expansion types.Type) (*types.TypeLevelFunc, error) {
	for _, tv := range types.FreeTypeVars(expansion) {
		bound := false
		for _, param := range params {
			if param.Id() == tv.Id() {
				bound = true
				break
			}
		}
		if !bound {
			return nil, errors.New("Type-variable " + types.VarString(tv) +
				" is free in the expansion of synonym " + name + " but not a parameter")
		}
	}
	f := &types.TypeLevelFunc{
		Name:      name,
		Arity:     len(params),
		Kind:      types.SynonymFunc,
		Params:    params,
		Expansion: expansion,
	}
	if err := e.Catalog.Declare(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Declare an opaque type-level function family. The injective annotation is
// trusted per argument position; a nil annotation leaves every position
// non-injective.
func (e *TypeEnv) DeclareFamily(name string, arity int, injective []bool) (*types.TypeLevelFunc, error) {
	f := &types.TypeLevelFunc{
		Name:      name,
		Arity:     arity,
		Kind:      types.FamilyFunc,
		Params:    e.mintParams(arity),
		Injective: injective,
	}
	if err := e.Catalog.Declare(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (e *TypeEnv) mintParams(arity int) []*types.Var {
	params := make([]*types.Var, arity)
	for i := range params {
		params[i] = e.NewGenericVar(paramName(i))
	}
	return params
}

func paramName(i int) string {
	if i >= 26 {
		return string(byte(97+i%26)) + strconv.Itoa(i/26)
	}
	return string(byte(97 + i%26))
}

// Lookup a declared type-level function in the environment or its parent
// environment(s). TypeEnv implements Provider.
func (e *TypeEnv) LookupTypeLevelFunc(name string) *types.TypeLevelFunc {
	if f := e.Catalog.LookupTypeLevelFunc(name); f != nil {
		return f
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.LookupTypeLevelFunc(name)
}

// Declare a signature for an identifier within the type environment.
//
// The signature is validated against its quantifier order, then checked for
// ambiguous quantified variables under the supplied injectivity facts: a
// signature with a non-empty ambiguous set and no AllowAmbiguous marker fails
// with AmbiguousTypeError.
func (e *TypeEnv) DeclareSignature(name string, sig *types.Signature, inj InjectivityQuery) error {
	if _, exists := e.Signatures[name]; exists {
		return errors.New("Signature " + name + " is already declared")
	}
	if err := sig.Validate(); err != nil {
		return err
	}
	ambiguous, err := CheckAmbiguity(sig, inj)
	if err != nil {
		return err
	}
	if len(ambiguous) > 0 && !sig.AllowAmbiguous {
		return &AmbiguousTypeError{Sig: sig, Vars: ambiguous}
	}
	e.Signatures[name] = sig
	return nil
}

// Lookup the signature for an identifier in the environment or its parent
// environment(s).
func (e *TypeEnv) LookupSignature(name string) *types.Signature {
	if sig, ok := e.Signatures[name]; ok {
		return sig
	}
	if e.Parent == nil {
		return nil
	}
	return e.Parent.LookupSignature(name)
}
