package ui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/pomodoro/internal/notify"
	"github.com/five82/pomodoro/internal/pomodoro"
	"github.com/five82/pomodoro/internal/prefs"
	"github.com/five82/pomodoro/internal/state"
)

func newTestModel(t *testing.T) (Model, *state.Store, string) {
	t.Helper()
	store := state.NewStore(pomodoro.Config{
		WorkSeconds:       2,
		ShortRestSeconds:  1,
		LongRestSeconds:   3,
		CyclesPerLongRest: 2,
	}, nil)
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{
		Store:     store,
		PrefsPath: path,
		Prefs:     prefs.Default(),
		Bell:      notify.NewBell(io.Discard, true),
		Logger:    log.New(io.Discard),
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), store, path
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_TimerKeysDriveStore(t *testing.T) {
	m, store, _ := newTestModel(t)

	m, _ = press(t, m, runes("w"))
	if got := store.Snapshot().Phase; got != pomodoro.Working {
		t.Fatalf("after w Phase = %v, want Working", got)
	}
	if m.snapshot.Phase != pomodoro.Working {
		t.Fatalf("model snapshot Phase = %v, want Working without waiting for refresh", m.snapshot.Phase)
	}

	m, _ = press(t, m, runes("r"))
	if got := store.Snapshot().Phase; got != pomodoro.ShortResting {
		t.Fatalf("after r Phase = %v, want Short Rest", got)
	}

	m, _ = press(t, m, runes("R"))
	if got := store.Snapshot().Phase; got != pomodoro.LongResting {
		t.Fatalf("after R Phase = %v, want Long Rest", got)
	}

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	if space.String() != " " {
		t.Fatalf("space key reports %q, want a literal space", space.String())
	}
	m, _ = press(t, m, space)
	if store.Counting() {
		t.Fatal("after space Counting = true, want paused")
	}
	if got := m.pauseLabel(); got != "Continue" {
		t.Fatalf("pauseLabel = %q, want Continue", got)
	}

	m, _ = press(t, m, runes("p"))
	if !store.Counting() {
		t.Fatal("after p Counting = false, want resumed")
	}
	if got := m.pauseLabel(); got != "Pause" {
		t.Fatalf("pauseLabel = %q, want Pause", got)
	}
}

func TestModel_PauseWhileIdleIsInert(t *testing.T) {
	m, store, _ := newTestModel(t)
	_, _ = press(t, m, runes("p"))
	if store.Counting() || store.Snapshot().Phase != pomodoro.Idle {
		t.Fatal("pause while idle must not start anything")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q returned no command, want tea.Quit", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%q command did not quit", msg.String())
		}
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	m, store, _ := newTestModel(t)

	m, _ = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatal("showHelp = false after ?")
	}
	if view := m.View(); !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "Short rest") {
		t.Fatalf("help view missing content:\n%s", view)
	}

	// any key closes help without acting
	m, _ = press(t, m, runes("w"))
	if m.showHelp {
		t.Fatal("showHelp = true after a key, want closed")
	}
	if got := store.Snapshot().Phase; got != pomodoro.Idle {
		t.Fatalf("key that closed help changed Phase to %v", got)
	}
}

func TestModel_ThemeCyclePersists(t *testing.T) {
	m, _, path := newTestModel(t)
	if m.theme.Name != "Nightfox" {
		t.Fatalf("initial theme = %q, want Nightfox", m.theme.Name)
	}

	m, _ = press(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme after T = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(path).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestModel_BellTogglePersists(t *testing.T) {
	m, _, path := newTestModel(t)

	m, _ = press(t, m, runes("m"))
	if m.bell.Enabled() {
		t.Fatal("bell still enabled after m")
	}
	if prefs.Load(path).BellEnabled() {
		t.Fatal("saved bell = true, want false")
	}
	if m.notice != "bell off" {
		t.Fatalf("notice = %q, want %q", m.notice, "bell off")
	}

	m, _ = press(t, m, runes("m"))
	if !m.bell.Enabled() || !prefs.Load(path).BellEnabled() {
		t.Fatal("bell not re-enabled after second m")
	}
}

func TestModel_SnapshotMessages(t *testing.T) {
	m, store, _ := newTestModel(t)

	store.StartWork()
	store.Tick()

	next, cmd := m.Update(tickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("tick returned no command")
	}

	next, _ = m.Update(snapshotMsg(store.Snapshot()))
	m = next.(Model)
	if m.snapshot.RemainingSeconds != 1 || m.snapshot.TotalWorkedSeconds != 1 {
		t.Fatalf("snapshot = %+v, want 1s left and 1s worked", m.snapshot.Snapshot)
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestKeyMap_PauseKeysMatchBubbleTea(t *testing.T) {
	keys := DefaultKeyMap()
	got := keys.Pause.Keys()
	if len(got) != 2 || got[0] != " " || got[1] != "p" {
		t.Fatalf("Pause keys = %q, want [\" \" \"p\"]", got)
	}
}

func TestModel_FailedPrefsSaveIsAnError(t *testing.T) {
	m, _, _ := newTestModel(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m.prefsPath = filepath.Join(blocker, "prefs.toml")

	m, _ = press(t, m, runes("m"))
	if m.notice != "prefs not saved" || !m.noticeErr {
		t.Fatalf("notice = %q (err %v), want prefs not saved as an error", m.notice, m.noticeErr)
	}

	m.prefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	m, _ = press(t, m, runes("m"))
	if m.noticeErr {
		t.Fatalf("noticeErr still set after a successful save, notice = %q", m.notice)
	}
}
