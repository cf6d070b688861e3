package testconfig

import (
	"os"
	"testing"
)

const (
	PARALLEL_TESTS_ENV_VAR = "OLANG_PARALLEL_TESTS"
)

var (
	PARALLELIZE_SAME_PKG_TESTS = os.Getenv(PARALLEL_TESTS_ENV_VAR) == "1"
)

// AllowParallelization marks t as parallel if parallelization is enabled by the environment.
func AllowParallelization(t *testing.T) {
	if PARALLELIZE_SAME_PKG_TESTS {
		t.Parallel()
	}
}
