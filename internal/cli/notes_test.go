package cli

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/notr/internal/core"
	"github.com/inovacc/notr/internal/model"
)

// stubStore keeps everything in memory so UI tests need no disk.
type stubStore struct {
	notes []model.Note
}

func (s *stubStore) Ping() error { return nil }

func (s *stubStore) LoadNotes() ([]model.Note, error) {
	out := make([]model.Note, len(s.notes))
	copy(out, s.notes)

	return out, nil
}

func (s *stubStore) SaveNotes(notes []model.Note) error {
	s.notes = make([]model.Note, len(notes))
	copy(s.notes, notes)

	return nil
}

func (s *stubStore) GetConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	return &cfg, nil
}

func (s *stubStore) SaveConfig(*model.Config) error { return nil }

func (s *stubStore) Close() error { return nil }

func newTestModel(t *testing.T) NotesModel {
	t.Helper()

	svc := core.NewService(&stubStore{},
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	return NewNotesModel(svc)
}

func press(t *testing.T, m tea.Model, msg tea.Msg) NotesModel {
	t.Helper()

	next, _ := m.Update(msg)

	nm, ok := next.(NotesModel)
	if !ok {
		t.Fatalf("Update returned %T, want NotesModel", next)
	}

	return nm
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m NotesModel, s string) NotesModel {
	t.Helper()

	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func createNote(t *testing.T, m NotesModel, title string) NotesModel {
	t.Helper()

	m = press(t, m, keyRunes("a"))
	m = typeText(t, m, title)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateList {
		t.Fatalf("expected list state after submit, got %v", m.state)
	}

	return m
}

func TestAddFlow(t *testing.T) {
	m := newTestModel(t)

	if m.state != stateList {
		t.Fatalf("initial state = %v, want stateList", m.state)
	}

	m = press(t, m, keyRunes("a"))
	if m.state != stateAdd {
		t.Fatalf("state after 'a' = %v, want stateAdd", m.state)
	}

	m = typeText(t, m, "Groceries")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateList {
		t.Errorf("state after submit = %v, want stateList", m.state)
	}

	notes := m.svc.Notes()
	if len(notes) != 1 {
		t.Fatalf("got %d notes, want 1", len(notes))
	}

	if notes[0].Title != "Groceries" {
		t.Errorf("title = %q, want %q", notes[0].Title, "Groceries")
	}

	if notes[0].Edited() {
		t.Error("fresh note reports Edited()")
	}
}

func TestAddRejectsWhitespaceTitle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyRunes("a"))
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.state != stateAdd {
		t.Errorf("state after invalid submit = %v, want stateAdd (form stays open)", m.state)
	}

	if m.form.errMsg == "" {
		t.Error("expected inline validation error")
	}

	if m.form.focusIndex != 0 {
		t.Error("focus must return to the title field")
	}

	if len(m.svc.Notes()) != 0 {
		t.Error("invalid submit must not add a note")
	}
}

func TestEscapeDiscardsDraft(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyRunes("a"))
	m = typeText(t, m, "Unsaved draft")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.state != stateList {
		t.Errorf("state after esc = %v, want stateList", m.state)
	}

	if len(m.svc.Notes()) != 0 {
		t.Error("escape must discard the draft without saving")
	}

	// Reopening the form starts blank.
	m = press(t, m, keyRunes("a"))
	if title, _ := m.form.Values(); title != "" {
		t.Errorf("reopened form title = %q, want empty", title)
	}
}

func TestModeExclusivity(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Groceries")

	m = press(t, m, keyRunes("e"))
	if m.state != stateEdit {
		t.Fatalf("state after 'e' = %v, want stateEdit", m.state)
	}

	if m.editingID == "" {
		t.Error("edit mode must carry the note id")
	}

	// Leaving edit always clears the editing id; only one mode can hold.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.editingID != "" {
		t.Error("editingID must be cleared when edit mode closes")
	}

	m = press(t, m, keyRunes("a"))
	if m.state != stateAdd || m.editingID != "" {
		t.Error("add mode must not coexist with an editing id")
	}
}

func TestEditFlow(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Groceries")

	orig := m.svc.Notes()[0]

	m = press(t, m, keyRunes("e"))

	if title, _ := m.form.Values(); title != "Groceries" {
		t.Errorf("form seeded with %q, want existing title", title)
	}

	m = typeText(t, m, " v2")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	got := m.svc.Notes()[0]

	if got.ID != orig.ID {
		t.Error("edit changed the note id")
	}

	if got.Title != "Groceries v2" {
		t.Errorf("title = %q, want %q", got.Title, "Groceries v2")
	}

	if !got.CreatedAt.Equal(orig.CreatedAt) {
		t.Error("edit changed CreatedAt")
	}
}

func TestDeleteDeclined(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Groceries")

	orig := m.svc.Notes()[0]

	m = press(t, m, keyRunes("d"))
	if m.state != stateConfirmDelete {
		t.Fatalf("state after 'd' = %v, want stateConfirmDelete", m.state)
	}

	m = press(t, m, keyRunes("n"))

	if m.state != stateList {
		t.Errorf("state after decline = %v, want stateList", m.state)
	}

	notes := m.svc.Notes()
	if len(notes) != 1 {
		t.Fatal("declining the confirmation must leave the collection unchanged")
	}

	got := notes[0]
	if got.ID != orig.ID || got.Title != orig.Title || got.Content != orig.Content ||
		!got.CreatedAt.Equal(orig.CreatedAt) || !got.UpdatedAt.Equal(orig.UpdatedAt) {
		t.Errorf("surviving note = %+v, want every field unchanged: %+v", got, orig)
	}
}

func TestDeleteConfirmed(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Taxes")
	m = createNote(t, m, "Groceries")

	m = press(t, m, keyRunes("d"))
	m = press(t, m, keyRunes("y"))

	notes := m.svc.Notes()
	if len(notes) != 1 {
		t.Fatalf("got %d notes after confirmed delete, want 1", len(notes))
	}

	if notes[0].Title != "Taxes" {
		t.Errorf("remaining note = %q, want %q (only the targeted note is removed)", notes[0].Title, "Taxes")
	}
}

func TestSearchFiltersLive(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Taxes")
	m = createNote(t, m, "Groceries")

	m = press(t, m, keyRunes("/"))
	if m.state != stateSearch {
		t.Fatalf("state after '/' = %v, want stateSearch", m.state)
	}

	m = typeText(t, m, "groc")

	items := m.list.Items()
	if len(items) != 1 {
		t.Fatalf("filtered list has %d items, want 1", len(items))
	}

	if items[0].(noteItem).note.Title != "Groceries" {
		t.Errorf("filtered item = %q, want Groceries", items[0].(noteItem).note.Title)
	}

	// Enter keeps the query active back in the list.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateList || m.query != "groc" {
		t.Errorf("state/query = %v/%q, want stateList/groc", m.state, m.query)
	}

	// Escape from search clears the filter entirely.
	m = press(t, m, keyRunes("/"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.query != "" {
		t.Errorf("query after esc = %q, want empty", m.query)
	}

	if len(m.list.Items()) != 2 {
		t.Errorf("list has %d items after clearing, want 2", len(m.list.Items()))
	}
}

func TestEmptyStateMessages(t *testing.T) {
	m := newTestModel(t)

	if view := m.viewEmpty(); !strings.Contains(view, "first note") {
		t.Errorf("first-run empty state = %q, want a welcome with the add hint", view)
	}

	m.query = "zebra"

	if view := m.viewEmpty(); !strings.Contains(view, "zebra") {
		t.Errorf("no-results empty state = %q, want the active query named", view)
	}
}

func TestViewState(t *testing.T) {
	m := newTestModel(t)
	m = createNote(t, m, "Groceries")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateView {
		t.Fatalf("state after enter = %v, want stateView", m.state)
	}

	out := m.viewNote()
	if out == "" {
		t.Fatal("viewNote rendered nothing")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateList {
		t.Errorf("state after esc = %v, want stateList", m.state)
	}
}
