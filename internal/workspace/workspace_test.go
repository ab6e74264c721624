package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardJSON = `{"nodes":[{"id":"a","type":"text","x":0,"y":0,"width":100,"height":50,"text":"hello"}],"edges":[]}`

func writeVault(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "board.canvas"), []byte(boardJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.canvas"), []byte(boardJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.md"), []byte("# note\n"), 0o600))
	return dir
}

type recorder struct {
	events []EventKind
}

func (r *recorder) listen(e Event) { r.events = append(r.events, e.Kind) }

func TestWorkspace_OpenEmitsFileOpenAndFocus(t *testing.T) {
	t.Parallel()

	dir := writeVault(t)
	w := New(0)
	rec := &recorder{}
	w.Subscribe(rec.listen)

	v, err := w.Open(filepath.Join(dir, "board.canvas"))
	require.NoError(t, err)
	assert.Equal(t, KindCanvas, v.Kind)
	assert.NotEqual(t, [16]byte{}, [16]byte(v.ID))
	assert.Equal(t, []EventKind{FileOpened, ActiveViewChanged}, rec.events)

	s, ok := w.ActiveSurface()
	require.True(t, ok)
	assert.Same(t, v.Viewport, s)

	// Reopening reuses the tab and still reports the file-open.
	rec.events = nil
	again, err := w.Open(filepath.Join(dir, "board.canvas"))
	require.NoError(t, err)
	assert.Same(t, v, again)
	assert.Len(t, w.Views(), 1)
	assert.Equal(t, []EventKind{FileOpened}, rec.events)
}

func TestWorkspace_NoteIsNotPannable(t *testing.T) {
	t.Parallel()

	dir := writeVault(t)
	w := New(0)

	_, ok := w.ActiveSurface()
	assert.False(t, ok, "empty workspace")

	v, err := w.Open(filepath.Join(dir, "note.md"))
	require.NoError(t, err)
	assert.Equal(t, KindNote, v.Kind)
	assert.Equal(t, "# note\n", v.Note)

	_, ok = w.ActiveSurface()
	assert.False(t, ok)
	assert.False(t, w.EditorFocused())

	require.NoError(t, w.SetEditing(true, v.Note))
	assert.True(t, w.EditorFocused())

	require.NoError(t, w.SetEditing(false, "# note\nedited\n"))
	assert.False(t, w.EditorFocused())
	data, err := os.ReadFile(filepath.Join(dir, "note.md"))
	require.NoError(t, err)
	assert.Equal(t, "# note\nedited\n", string(data))
}

func TestWorkspace_FocusCyclingAndClose(t *testing.T) {
	t.Parallel()

	dir := writeVault(t)
	w := New(0)
	for _, name := range []string{"board.canvas", "other.canvas", "note.md"} {
		_, err := w.Open(filepath.Join(dir, name))
		require.NoError(t, err)
	}
	require.Equal(t, 2, w.ActiveIndex())

	rec := &recorder{}
	w.Subscribe(rec.listen)

	assert.True(t, w.Next())
	assert.Equal(t, 0, w.ActiveIndex())
	assert.True(t, w.Prev())
	assert.Equal(t, 2, w.ActiveIndex())
	assert.True(t, w.Focus(2), "focusing the active tab is a no-op")
	assert.Equal(t, []EventKind{ActiveViewChanged, ActiveViewChanged}, rec.events)

	rec.events = nil
	require.True(t, w.Close(2))
	assert.Equal(t, 1, w.ActiveIndex())
	assert.Equal(t, []EventKind{LayoutChanged, ActiveViewChanged}, rec.events)

	rec.events = nil
	require.True(t, w.Close(0))
	assert.Equal(t, 0, w.ActiveIndex())
	assert.Equal(t, []EventKind{LayoutChanged}, rec.events)

	require.True(t, w.Close(0))
	assert.Equal(t, -1, w.ActiveIndex())
	_, ok := w.Active()
	assert.False(t, ok)
	assert.False(t, w.Close(0))
	assert.False(t, w.Next())
}

func TestWorkspace_MenuAndSettings(t *testing.T) {
	t.Parallel()

	w := New(0)
	rec := &recorder{}
	w.Subscribe(rec.listen)

	w.OpenMenu()
	assert.True(t, w.MenuOpen())
	w.CloseMenu()
	assert.False(t, w.MenuOpen())

	v := w.OpenSettings()
	assert.Equal(t, KindSettings, v.Kind)
	assert.Same(t, v, w.OpenSettings())
	assert.Len(t, w.Views(), 1)
	assert.Equal(t, []EventKind{MenuOpened, LayoutChanged, ActiveViewChanged}, rec.events)
}

func TestWorkspace_OpenRejectsUnknownFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "x.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	w := New(0)
	_, err := w.Open(path)
	require.Error(t, err)
	assert.Empty(t, w.Views())
}
