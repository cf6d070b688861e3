package core

import (
	"testing"

	"github.com/Helset123/olang/internal/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("new environment", func(t *testing.T) {
		env := NewEnvironment()
		assert.Equal(t, 1, env.Depth())
		assert.Empty(t, env.Names())
	})

	t.Run("default environment contains the builtins", func(t *testing.T) {
		env := NewDefaultEnvironment()
		assert.Equal(t, []string{"len", "printLn", "readLn", "toString"}, env.Names())

		v, ok := env.Get("printLn")
		require.True(t, ok)
		assert.Equal(t, "printLn", v.(*BuiltinFunction).Name)
	})

	t.Run("default environments are independent", func(t *testing.T) {
		env1 := NewDefaultEnvironment()
		env2 := NewDefaultEnvironment()

		env1.Declare("len", Int(1))

		v, _ := env2.Get("len")
		assert.IsType(t, &BuiltinFunction{}, v)
	})

	t.Run("declare and get", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("a", Int(1))

		v, ok := env.Get("a")
		assert.True(t, ok)
		assert.Equal(t, Int(1), v)

		_, ok = env.Get("b")
		assert.False(t, ok)
	})

	t.Run("redeclaration in the same scope overwrites", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("a", Int(1))
		env.Declare("a", String("x"))

		v, _ := env.Get("a")
		assert.Equal(t, String("x"), v)
	})

	t.Run("shadowing", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("a", Int(1))

		env.Push()
		env.Declare("a", Int(2))
		assert.Equal(t, 2, env.Depth())

		v, _ := env.Get("a")
		assert.Equal(t, Int(2), v)

		env.Pop()
		v, _ = env.Get("a")
		assert.Equal(t, Int(1), v)
	})

	t.Run("assign updates the nearest declaring scope", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("a", Int(1))

		env.Push()
		require.NoError(t, env.Assign("a", Int(5)))
		env.Pop()

		v, _ := env.Get("a")
		assert.Equal(t, Int(5), v)
	})

	t.Run("assign does not create bindings", func(t *testing.T) {
		env := NewEnvironment()

		err := env.Assign("a", Int(1))
		kind, ok := ExceptionKindOf(err)
		require.True(t, ok)
		assert.Equal(t, UndeclaredIdentifier, kind)

		_, found := env.Get("a")
		assert.False(t, found)
	})

	t.Run("get or fail", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("a", Null{})

		v, err := env.GetOrFail("a")
		require.NoError(t, err)
		assert.Equal(t, Null{}, v)

		_, err = env.GetOrFail("b")
		assert.EqualError(t, err, "UndeclaredIdentifier: b is not declared")

		var exception *Exception
		require.ErrorAs(t, err, &exception)
		assert.Equal(t, "b", exception.Identifier)
	})

	t.Run("names of all visible scopes", func(t *testing.T) {
		env := NewEnvironment()
		env.Declare("b", Int(1))
		env.Push()
		env.Declare("a", Int(1))
		env.Declare("b", Int(2))

		assert.Equal(t, []string{"a", "b"}, env.Names())
	})

	t.Run("the global scope cannot be popped", func(t *testing.T) {
		env := NewEnvironment()
		assert.Panics(t, env.Pop)

		env.Push()
		assert.NotPanics(t, env.Pop)
		assert.Equal(t, 1, env.Depth())
	})
}
