package utils

import (
	"errors"
	"testing"

	"github.com/Helset123/olang/internal/testconfig"
	"github.com/stretchr/testify/assert"
)

func TestFindClosestString(t *testing.T) {
	testconfig.AllowParallelization(t)

	t.Run("ok", func(t *testing.T) {
		s, dist, ok := FindClosestString([]string{"aaa", "bba", "cca"}, "aa", 2)
		if !assert.True(t, ok) {
			return
		}

		assert.Equal(t, 1, dist)
		assert.Equal(t, "aaa", s)
	})

	t.Run("substitution", func(t *testing.T) {
		s, dist, ok := FindClosestString([]string{"printLn", "readLn"}, "printLm", 2)
		if !assert.True(t, ok) {
			return
		}

		assert.Equal(t, 2, dist)
		assert.Equal(t, "printLn", s)
	})

	t.Run("maxDifferences should be respected", func(t *testing.T) {
		_, _, ok := FindClosestString([]string{"aaaaa"}, "aa", 2)
		assert.False(t, ok)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, _, ok := FindClosestString(nil, "aa", 2)
		assert.False(t, ok)
	})
}

func TestConvertPanicValueToError(t *testing.T) {
	testconfig.AllowParallelization(t)

	err := errors.New("a")
	assert.Same(t, err, ConvertPanicValueToError(err))
	assert.EqualError(t, ConvertPanicValueToError("b"), `"b"`)
}

func TestStripANSISequences(t *testing.T) {
	testconfig.AllowParallelization(t)

	assert.Equal(t, "abc", StripANSISequences("\x1b[31mabc\x1b[0m"))
	assert.Equal(t, "plain", StripANSISequences("plain"))
}

func TestMust(t *testing.T) {
	testconfig.AllowParallelization(t)

	assert.Equal(t, 1, Must(1, nil))
	assert.Panics(t, func() {
		Must(0, errors.New("a"))
	})
	assert.Panics(t, func() {
		PanicIfErr(errors.New("a"))
	})
}
