package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/notr/internal/model"
)

// noteForm is the shared title+content form used by both the add and the
// edit flows.
type noteForm struct {
	title      textinput.Model
	content    textarea.Model
	focusIndex int
	errMsg     string
}

func newNoteForm(seed *model.Note) noteForm {
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 256
	ti.Width = 48
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	ta := textarea.New()
	ta.Placeholder = "Write your note here..."
	ta.SetWidth(60)
	ta.SetHeight(8)

	if seed != nil {
		ti.SetValue(seed.Title)
		ta.SetValue(seed.Content)
	}

	// Auto-focus the title field with the cursor at the end of any
	// seeded value.
	ti.Focus()
	ti.CursorEnd()

	return noteForm{title: ti, content: ta}
}

// Values returns the current draft, title trimmed.
func (f noteForm) Values() (title, content string) {
	return strings.TrimSpace(f.title.Value()), f.content.Value()
}

// Validate checks the draft and records the inline error. A failed
// validation moves focus back to the title field.
func (f *noteForm) Validate() bool {
	if strings.TrimSpace(f.title.Value()) == "" {
		f.errMsg = "Title is required"
		f.focusTitle()

		return false
	}

	f.errMsg = ""

	return true
}

func (f *noteForm) focusTitle() {
	f.focusIndex = 0
	f.title.Focus()
	f.title.CursorEnd()
	f.title.PromptStyle = focusedStyle
	f.title.TextStyle = focusedStyle
	f.content.Blur()
}

func (f *noteForm) focusContent() {
	f.focusIndex = 1
	f.title.Blur()
	f.title.PromptStyle = noStyle
	f.title.TextStyle = noStyle
	f.content.Focus()
}

func (f *noteForm) cycleFocus() {
	if f.focusIndex == 0 {
		f.focusContent()

		return
	}

	f.focusTitle()
}

// Update forwards input to the focused field and handles focus cycling.
// Submission and cancellation are decided by the parent model.
func (f noteForm) Update(msg tea.Msg) (noteForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			f.cycleFocus()

			return f, nil
		}
	}

	var cmd tea.Cmd

	if f.focusIndex == 0 {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}

	return f, cmd
}

func (f noteForm) View() string {
	var s strings.Builder

	s.WriteString(" Title\n ")
	s.WriteString(f.title.View())
	s.WriteString("\n\n Content\n")
	s.WriteString(f.content.View())
	s.WriteString("\n\n")

	if f.errMsg != "" {
		s.WriteString(errorStyle.Render(" " + f.errMsg))
		s.WriteString("\n")
	}

	s.WriteString(helpStyle.Render(" enter (in title) or ctrl+s: save  tab: next field  esc: cancel"))

	return s.String()
}
