//nolint:testpackage // White-box tests drive Update and inspect unexported state.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/canvas-pan/internal/pan"
	"github.com/ensigniasec/canvas-pan/internal/settings"
	"github.com/ensigniasec/canvas-pan/internal/workspace"
)

const boardJSON = `{"nodes":[{"id":"n1","type":"text","x":-50,"y":-20,"width":100,"height":40,"text":"hello"}],"edges":[]}`

type testEnv struct {
	model Model
	clock *pan.ManualClock
	store *settings.Store
	dir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	store, err := settings.NewOrExistingStore(filepath.Join(dir, "settings.json"))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "board.canvas"), []byte(boardJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.md"), []byte("# Note\n"), 0o600))

	clock := pan.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewModel(context.Background(), store, workspace.New(0), Options{Clock: clock})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	return &testEnv{model: m, clock: clock, store: store, dir: dir}
}

func (e *testEnv) open(t *testing.T, name string) {
	t.Helper()
	e.model = send(t, e.model, openFileMsg{Path: filepath.Join(e.dir, name)})
	require.NoError(t, e.model.err)
}

func (e *testEnv) press(t *testing.T, msgs ...tea.KeyMsg) {
	t.Helper()
	for _, msg := range msgs {
		e.model = send(t, e.model, msg)
	}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func activeViewport(t *testing.T, m Model) (float64, float64) {
	t.Helper()
	v, ok := m.ws.Active()
	require.True(t, ok)
	require.True(t, v.Pannable())
	return v.Viewport.Offset()
}

func TestModel_PanKeyDrivesViewport(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")

	e.press(t, runes("w"))
	require.True(t, e.model.ctrl.Running())
	assert.Equal(t, 1, e.model.timers.count())
	assert.Equal(t, 1, e.model.held.held())

	// Key repeat does not start a second loop.
	e.press(t, runes("w"))
	assert.Equal(t, 1, e.model.timers.count())

	e.model = send(t, e.model, intervalMsg{ID: 1})
	x, y := activeViewport(t, e.model)
	assert.Zero(t, x)
	assert.Zero(t, y)

	e.clock.Advance(pan.TickInterval)
	e.model = send(t, e.model, intervalMsg{ID: 1})
	_, y = activeViewport(t, e.model)
	assert.InDelta(t, -pan.Distance(10, settings.DefaultMaxSpeed)/5, y, 1e-9)
}

func TestModel_StaleIntervalIsIgnored(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")

	next, cmd := e.model.Update(intervalMsg{ID: 42})
	assert.Nil(t, cmd)
	x, y := activeViewport(t, next.(Model))
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestModel_ReleaseAfterLastRepeat(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")

	e.press(t, runes("d"), runes("d"))
	require.True(t, e.model.ctrl.Running())

	// The first press was superseded by the repeat.
	e.model = send(t, e.model, releaseCheckMsg{Key: "d", Seq: 1})
	assert.True(t, e.model.ctrl.Running())

	e.model = send(t, e.model, releaseCheckMsg{Key: "d", Seq: 2})
	assert.False(t, e.model.ctrl.Running())
	assert.False(t, e.model.ctrl.Held(pan.East))
	assert.Zero(t, e.model.timers.count())
}

func TestModel_SwitchingViewsForceStops(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "note.md")
	e.open(t, "board.canvas")

	e.press(t, runes("w"), runes("a"))
	require.True(t, e.model.ctrl.Running())

	e.press(t, keyOf(tea.KeyTab))
	assert.False(t, e.model.ctrl.Running())
	assert.False(t, e.model.ctrl.Panning())
	assert.Zero(t, e.model.held.held())
	assert.Zero(t, e.model.timers.count())
}

func TestModel_PanningOnNoteHaltsLoop(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "note.md")

	e.press(t, runes("s"))
	require.True(t, e.model.ctrl.Running())

	e.model = send(t, e.model, intervalMsg{ID: 1})
	assert.False(t, e.model.ctrl.Running())
	assert.True(t, e.model.ctrl.Held(pan.South))
}

func TestModel_EditorSwallowsPanKeys(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "note.md")

	e.press(t, keyOf(tea.KeyCtrlE))
	require.True(t, e.model.ws.EditorFocused())

	e.press(t, runes("w"))
	assert.False(t, e.model.ctrl.Running())
	assert.Contains(t, e.model.editor.Value(), "w")

	e.press(t, keyOf(tea.KeyEsc))
	assert.False(t, e.model.ws.EditorFocused())

	data, err := os.ReadFile(filepath.Join(e.dir, "note.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "w")
}

func TestModel_MenuForceStopsAndResetsOrigin(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")

	e.press(t, runes("a"))
	e.model = send(t, e.model, intervalMsg{ID: 1})
	e.clock.Advance(time.Second)
	e.model = send(t, e.model, intervalMsg{ID: 1})
	x, _ := activeViewport(t, e.model)
	require.Negative(t, x)

	e.press(t, keyOf(tea.KeyCtrlP))
	require.True(t, e.model.ws.MenuOpen())
	assert.False(t, e.model.ctrl.Running())

	e.press(t, keyOf(tea.KeyEnter))
	assert.False(t, e.model.ws.MenuOpen())
	x, y := activeViewport(t, e.model)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestModel_SettingsRebindsControls(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.press(t, keyOf(tea.KeyCtrlS), runes("u"))
	require.True(t, e.model.capture.Active())
	assert.Contains(t, e.model.View(), "[ ? ]")

	e.press(t, runes("i"), runes("j"), runes("k"), runes("l"))
	assert.False(t, e.model.capture.Active())
	assert.Equal(t, pan.Bindings{North: "i", West: "j", South: "k", East: "l"}, e.store.Bindings())

	reloaded, err := settings.NewStore(e.store.Path)
	require.NoError(t, err)
	assert.Equal(t, e.store.Bindings(), reloaded.Bindings())

	// The old key no longer pans; the new one does.
	e.open(t, "board.canvas")
	e.press(t, runes("w"))
	assert.False(t, e.model.ctrl.Running())
	e.press(t, runes("i"))
	assert.True(t, e.model.ctrl.Running())
}

func TestModel_SettingsAdjustsSpeed(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.press(t, keyOf(tea.KeyCtrlS), runes("+"), runes("+"))
	assert.InDelta(t, settings.DefaultMaxSpeed+2*settings.SpeedStep, e.store.MaxSpeed(), 1e-9)

	e.press(t, runes("-"))
	assert.InDelta(t, settings.DefaultMaxSpeed+settings.SpeedStep, e.store.MaxSpeed(), 1e-9)

	e.press(t, runes("r"))
	assert.InDelta(t, settings.DefaultMaxSpeed, e.store.MaxSpeed(), 1e-9)
}

func TestModel_QuitStopsEverything(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")
	e.press(t, runes("w"))

	next, cmd := e.model.Update(keyOf(tea.KeyCtrlC))
	m := next.(Model)
	assert.True(t, m.quitting)
	assert.False(t, m.ctrl.Running())
	assert.NotNil(t, cmd)
}

func TestModel_ViewShowsCanvasAndStatus(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.open(t, "board.canvas")

	out := e.model.View()
	assert.Contains(t, out, "board.canvas")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "keys w/a/s/d")
}

func TestModel_DiscoveredEntriesFillPicker(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	e.model = send(t, e.model, discoveredMsg{Entries: []entryItem{
		{Path: filepath.Join(e.dir, "board.canvas"), Rel: "board.canvas", Canvas: true},
	}})
	e.press(t, keyOf(tea.KeyCtrlO))
	require.True(t, e.model.pickerOpen)

	e.press(t, keyOf(tea.KeyEnter))
	assert.False(t, e.model.pickerOpen)
	v, ok := e.model.ws.Active()
	require.True(t, ok)
	assert.Equal(t, workspace.KindCanvas, v.Kind)
}

func TestReleaseTracker_Forget(t *testing.T) {
	t.Parallel()

	r := newReleaseTracker(time.Millisecond)
	require.NotNil(t, r.pressed("w"))
	r.forget()
	assert.False(t, r.released(releaseCheckMsg{Key: "w", Seq: 1}))
}

func TestDefaultReleaseAfter_OutlastsAutoRepeatDelay(t *testing.T) {
	t.Parallel()

	// X11 waits 660ms before the first repeat.
	assert.Greater(t, DefaultReleaseAfter, 660*time.Millisecond)

	e := newTestEnv(t)
	assert.Equal(t, DefaultReleaseAfter, e.model.opts.ReleaseAfter)
	assert.Equal(t, DefaultReleaseAfter, e.model.held.after)
}
