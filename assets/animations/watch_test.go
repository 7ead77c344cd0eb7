package animations

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	// Write then rename so the watcher never sees a half-written file
	tmp := filepath.Join(dir, "dummy.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte(minimalCharacter), 0o644))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, "dummy.yaml")))

	select {
	case r := <-w.Reloads:
		assert.Equal(t, []string{"dummy"}, r.Names())
	case err := <-w.Errors:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
}

func TestWatcherLoadsTheSettledFile(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	file := filepath.Join(dir, "dummy.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: [broken"), 0o644))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(file, []byte(minimalCharacter), 0o644))

	select {
	case r := <-w.Reloads:
		assert.Equal(t, []string{"dummy"}, r.Names())
	case err := <-w.Errors:
		t.Fatalf("half-saved file was loaded: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload")
	}
}

func TestWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
