package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/pawnplanner/internal/watch"
)

func startWatcher(t *testing.T, root string, onChange func(context.Context) error) {
	t.Helper()
	w, err := watch.New([]string{root}, []string{".xml", ".png"}, 50*time.Millisecond, zaptest.NewLogger(t), onChange)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		assert.NoError(t, w.Close())
	})
}

func TestWatcher_DebouncesBurst(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32
	startWatcher(t, root, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "Genes.xml"), []byte("<Defs/>"), 0644))
	}

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32
	startWatcher(t, root, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestWatcher_WatchesNewSubdirectories(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32
	startWatcher(t, root, func(context.Context) error {
		runs.Add(1)
		return nil
	})

	sub := filepath.Join(root, "Mods", "Defs")
	require.NoError(t, os.MkdirAll(sub, 0755))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Traits.XML"), []byte("<Defs/>"), 0644))

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_HandlerErrorKeepsWatching(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32
	startWatcher(t, root, func(context.Context) error {
		runs.Add(1)
		return errors.New("bad definitions")
	})

	path := filepath.Join(root, "Genes.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Defs/>"), 0644))
	require.Eventually(t, func() bool { return runs.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("<Defs></Defs>"), 0644))
	require.Eventually(t, func() bool { return runs.Load() == 2 }, 5*time.Second, 10*time.Millisecond)
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := watch.New([]string{"/nonexistent/defs"}, []string{".xml"}, time.Millisecond, zaptest.NewLogger(t), func(context.Context) error { return nil })
	assert.Error(t, err)
}
