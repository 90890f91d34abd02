package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/notr/internal/core"
	"github.com/inovacc/notr/internal/model"
)

// sessionState selects the active view. Exactly one state holds at a time,
// so the add form and edit mode can never be open together.
type sessionState int

const (
	stateList sessionState = iota
	stateSearch
	stateAdd
	stateEdit
	stateView
	stateConfirmDelete
)

type noteItem struct {
	note model.Note
	now  time.Time
}

func (i noteItem) Title() string {
	return i.note.Title
}

func (i noteItem) Description() string {
	desc := fmt.Sprintf("Created %s", core.RelativeAge(i.note.CreatedAt, i.now))

	if i.note.Edited() {
		desc = fmt.Sprintf("%s · Updated %s", desc, core.RelativeAge(i.note.UpdatedAt, i.now))
	}

	return desc
}

func (i noteItem) FilterValue() string {
	return i.note.Title + " " + i.note.Content
}

// NotesModel is the application root: it owns the UI mode, the search
// query, and dispatches every mutation through the service.
type NotesModel struct {
	svc    *core.Service
	state  sessionState
	list   list.Model
	search textinput.Model
	form   noteForm

	// editingID is set only while state == stateEdit
	editingID string
	// viewingID is set only while state == stateView
	viewingID string

	// confirm target, valid while state == stateConfirmDelete
	confirmID    string
	confirmTitle string
	confirmFrom  sessionState

	query      string
	status     string
	statusErr  bool
	previewLen int
	now        func() time.Time
	width      int
	height     int
	quitting   bool
}

// NewNotesModel builds the root model over a hydrated service.
func NewNotesModel(svc *core.Service) NotesModel {
	si := textinput.New()
	si.Placeholder = "search notes..."
	si.CharLimit = 128
	si.Width = 40

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	m := NotesModel{
		svc:        svc,
		state:      stateList,
		search:     si,
		list:       l,
		previewLen: svc.Config().PreviewLength,
		now:        time.Now,
	}

	m.refreshList()

	return m
}

// refreshList rebuilds the visible items from the current query.
func (m *NotesModel) refreshList() {
	notes := m.svc.Filter(m.query)
	now := m.now()

	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n, now: now}
	}

	m.list.SetItems(items)
}

func (m NotesModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height

		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-4)
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateSearch:
		return m.updateSearch(msg)
	case stateAdd, stateEdit:
		return m.updateForm(msg)
	case stateView:
		return m.updateView(msg)
	case stateConfirmDelete:
		return m.updateConfirm(msg)
	}

	return m, nil
}

func (m NotesModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "a":
			m.form = newNoteForm(nil)
			m.state = stateAdd
			m.status = ""

			return m, textinput.Blink

		case "/":
			m.search.SetValue(m.query)
			m.search.Focus()
			m.state = stateSearch
			m.status = ""

			return m, textinput.Blink

		case "c":
			if m.query != "" {
				m.query = ""
				m.search.SetValue("")
				m.refreshList()
				m.setStatus("Cleared search", false)
			}

			return m, nil

		case "enter":
			if it, ok := m.list.SelectedItem().(noteItem); ok {
				m.viewingID = it.note.ID
				m.state = stateView
				m.status = ""
			}

			return m, nil

		case "e":
			if it, ok := m.list.SelectedItem().(noteItem); ok {
				m.startEdit(it.note)

				return m, textinput.Blink
			}

			return m, nil

		case "d":
			if it, ok := m.list.SelectedItem().(noteItem); ok {
				m.startConfirmDelete(it.note, stateList)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m NotesModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			m.search.Blur()
			m.state = stateList

			return m, nil

		case "esc":
			m.query = ""
			m.search.SetValue("")
			m.search.Blur()
			m.refreshList()
			m.state = stateList

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	// The input is a controlled field: every keystroke re-derives the
	// visible subset.
	if m.query != m.search.Value() {
		m.query = m.search.Value()
		m.refreshList()
	}

	return m, cmd
}

func (m NotesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.quitting = true

			return m, tea.Quit

		case "esc":
			// Global cancel: discard the draft, whichever form is open.
			m.closeForm()

			return m, nil

		case "ctrl+s":
			return m.submitForm()

		case "enter":
			// Plain enter submits from the title field only; in the
			// content field it inserts a newline.
			if m.form.focusIndex == 0 {
				return m.submitForm()
			}
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	return m, cmd
}

func (m NotesModel) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.Validate() {
		return m, textinput.Blink
	}

	title, content := m.form.Values()

	switch m.state {
	case stateAdd:
		if _, err := m.svc.Create(title, content); err != nil {
			m.setStatus(err.Error(), true)

			return m, nil
		}

		m.setStatus("Added note: "+title, false)

	case stateEdit:
		if _, err := m.svc.Update(m.editingID, title, content); err != nil {
			m.setStatus(err.Error(), true)

			return m, nil
		}

		m.setStatus("Updated note: "+title, false)
	}

	m.closeForm()
	m.refreshList()

	return m, nil
}

func (m *NotesModel) closeForm() {
	m.form = noteForm{}
	m.editingID = ""
	m.state = stateList
}

func (m *NotesModel) startEdit(n model.Note) {
	m.form = newNoteForm(&n)
	m.editingID = n.ID
	m.state = stateEdit
	m.status = ""
}

func (m *NotesModel) startConfirmDelete(n model.Note, from sessionState) {
	m.confirmID = n.ID
	m.confirmTitle = n.Title
	m.confirmFrom = from
	m.state = stateConfirmDelete
}

func (m NotesModel) updateView(msg tea.Msg) (tea.Model, tea.Cmd) {
	note, ok := m.svc.Get(m.viewingID)
	if !ok {
		m.viewingID = ""
		m.state = stateList

		return m, nil
	}

	if key, okKey := msg.(tea.KeyMsg); okKey {
		switch key.String() {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "esc", "b":
			m.viewingID = ""
			m.state = stateList

			return m, nil

		case "e":
			m.startEdit(note)

			return m, textinput.Blink

		case "d":
			m.startConfirmDelete(note, stateView)

			return m, nil
		}
	}

	return m, nil
}

func (m NotesModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y":
		title := m.confirmTitle
		if title == "" {
			title = "this note"
		}

		if err := m.svc.Delete(m.confirmID); err != nil {
			m.setStatus(err.Error(), true)
		} else {
			m.setStatus("Deleted: "+title, false)
		}

		m.confirmID = ""
		m.confirmTitle = ""
		m.viewingID = ""
		m.state = stateList
		m.refreshList()

		return m, nil

	case "n", "N", "esc":
		// Declined: nothing changes.
		state := m.confirmFrom
		m.confirmID = ""
		m.confirmTitle = ""
		m.state = state

		return m, nil
	}

	return m, nil
}

func (m *NotesModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m NotesModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	switch m.state {
	case stateList, stateSearch:
		s.WriteString(m.viewList())
	case stateAdd:
		s.WriteString(titleStyle.Render("New note"))
		s.WriteString("\n\n")
		s.WriteString(m.form.View())
	case stateEdit:
		s.WriteString(titleStyle.Render("Edit note"))
		s.WriteString("\n\n")
		s.WriteString(m.form.View())
	case stateView:
		s.WriteString(m.viewNote())
	case stateConfirmDelete:
		title := m.confirmTitle
		if title == "" {
			title = "this note"
		}

		s.WriteString(warningStyle.Render(fmt.Sprintf("Delete note '%s'? (y/N)", title)))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("y: confirm  n/esc: cancel"))
	}

	if m.status != "" && m.state != stateAdd && m.state != stateEdit {
		s.WriteString("\n")

		if m.statusErr {
			s.WriteString(errorStyle.Render(m.status))
		} else {
			s.WriteString(successStyle.Render(m.status))
		}
	}

	return docStyle.Render(s.String())
}

func (m NotesModel) viewList() string {
	var s strings.Builder

	if m.state == stateSearch || m.query != "" {
		s.WriteString(" Search: ")
		s.WriteString(m.search.View())
		s.WriteString("\n\n")
	}

	if len(m.list.Items()) == 0 {
		s.WriteString(m.viewEmpty())
	} else {
		s.WriteString(m.list.View())
	}

	s.WriteString("\n")

	if m.state == stateSearch {
		s.WriteString(helpStyle.Render("enter: apply  esc: clear search"))
	} else {
		help := "a: add  enter: view  e: edit  d: delete  /: search"
		if m.query != "" {
			help += "  c: clear search"
		}

		help += "  q: quit"

		s.WriteString(helpStyle.Render(help))
	}

	return s.String()
}

// viewEmpty renders the placeholder branch: a no-results message while a
// query is active, a first-run welcome otherwise.
func (m NotesModel) viewEmpty() string {
	if strings.TrimSpace(m.query) != "" {
		return fmt.Sprintf(" No notes match %q.\n\n %s",
			m.query, helpStyle.Render("press a to add a note, c to clear the search"))
	}

	return " Welcome to notr!\n\n " +
		helpStyle.Render("no notes yet - press a to create your first note")
}

func (m NotesModel) viewNote() string {
	note, ok := m.svc.Get(m.viewingID)
	if !ok {
		return ""
	}

	now := m.now()

	var s strings.Builder

	s.WriteString(titleStyle.Render(note.Title))
	s.WriteString("\n\n")

	if content := note.Excerpt(m.previewLen); content != "" {
		s.WriteString(content)
		s.WriteString("\n\n")
	}

	s.WriteString(helpStyle.Render("Created " + core.RelativeAge(note.CreatedAt, now)))

	if note.Edited() {
		s.WriteString("  ")
		s.WriteString(badgeStyle.Render("Updated " + core.RelativeAge(note.UpdatedAt, now)))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("e: edit  d: delete  esc: back"))

	return s.String()
}

// Run starts the interactive UI and blocks until the user quits.
func Run(svc *core.Service) error {
	p := tea.NewProgram(NewNotesModel(svc), tea.WithAltScreen())

	_, err := p.Run()

	return err
}
