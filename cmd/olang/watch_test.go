package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Helset123/olang/internal/testconfig"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptWatcher(t *testing.T) {
	testconfig.AllowParallelization(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "script.olang")
	otherPath := filepath.Join(dir, "other.olang")
	require.NoError(t, os.WriteFile(path, []byte("1"), 0o600))

	watcher, err := newScriptWatcher(path, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	runs := make(chan struct{}, 10)
	done := make(chan struct{})

	go func() {
		defer close(done)
		watcher.Run(ctx, 10*time.Millisecond, func() {
			runs <- struct{}{}
		})
	}()

	//other files are ignored
	require.NoError(t, os.WriteFile(otherPath, []byte("2"), 0o600))

	select {
	case <-runs:
		assert.Fail(t, "a write to another file should not trigger a run")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("3"), 0o600))

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "the script should have been run again")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		assert.Fail(t, "the watcher should stop when the context is done")
	}
}

func TestRunWatchRequiresExistingScript(t *testing.T) {
	testconfig.AllowParallelization(t)

	res := runCLI("", RUN_SUBCMD, "-watch", filepath.Join(t.TempDir(), "missing.olang"))
	assert.Equal(t, ERROR_STATUS_CODE, res.statusCode)
}
