package core

import (
	"slices"

	"golang.org/x/exp/maps"
)

// An Environment is a stack of scopes mapping variable names to values. The first scope is the
// global scope, it is never popped.
type Environment struct {
	scopes []map[string]Value
}

// NewEnvironment returns an environment with a single empty scope.
func NewEnvironment() *Environment {
	return &Environment{
		scopes: []map[string]Value{{}},
	}
}

// NewDefaultEnvironment returns an environment whose global scope contains the builtin functions.
func NewDefaultEnvironment() *Environment {
	env := NewEnvironment()
	for _, builtin := range Builtins() {
		env.Declare(builtin.Name, builtin)
	}
	return env
}

func (env *Environment) Push() {
	env.scopes = append(env.scopes, map[string]Value{})
}

// Pop removes the innermost scope, it panics if only the global scope remains.
func (env *Environment) Pop() {
	if len(env.scopes) <= 1 {
		panic("core: the global scope cannot be popped")
	}
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Depth returns the number of scopes, 1 when only the global scope is present.
func (env *Environment) Depth() int {
	return len(env.scopes)
}

// Declare binds name in the innermost scope, shadowing outer bindings and overwriting
// a previous binding in the same scope.
func (env *Environment) Declare(name string, value Value) {
	env.scopes[len(env.scopes)-1][name] = value
}

// Get searches name from the innermost scope outwards.
func (env *Environment) Get(name string) (Value, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if v, ok := env.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// GetOrFail is like Get but returns an UndeclaredIdentifier exception if name is not bound.
func (env *Environment) GetOrFail(name string) (Value, error) {
	v, ok := env.Get(name)
	if !ok {
		return nil, newUndeclaredIdentifierException(name)
	}
	return v, nil
}

// Assign updates the innermost scope that binds name, it returns an UndeclaredIdentifier
// exception if there is no such scope.
func (env *Environment) Assign(name string, value Value) error {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		scope := env.scopes[i]
		if _, ok := scope[name]; ok {
			scope[name] = value
			return nil
		}
	}
	return newUndeclaredIdentifierException(name)
}

// Names returns the sorted names visible from the innermost scope.
func (env *Environment) Names() []string {
	visible := map[string]struct{}{}
	for _, scope := range env.scopes {
		for _, name := range maps.Keys(scope) {
			visible[name] = struct{}{}
		}
	}

	names := maps.Keys(visible)
	slices.Sort(names)
	return names
}
