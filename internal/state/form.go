package state

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	DefaultRemoteType = "local"
	// ParamPath is the only backend parameter the form collects.
	ParamPath = "path"
	// InputWidth is how many cells of a field are shown; longer values scroll.
	InputWidth = 30
)

// FormMode says whether the form creates a remote or updates one.
type FormMode int

const (
	FormCreate FormMode = iota
	FormEdit
)

// FormField identifies one input of the remote form.
type FormField int

const (
	FieldName FormField = iota
	FieldType
	FieldPath
)

const fieldCount = 3

func (f FormField) String() string {
	switch f {
	case FieldType:
		return "Type"
	case FieldPath:
		return "Path"
	default:
		return "Name"
	}
}

// RemoteForm collects the name, backend type and path of a remote. Each field
// is a text input whose cursor stays at the end, so edits only append or
// remove the last character.
type RemoteForm struct {
	Mode  FormMode
	Focus FormField
	// Err is shown inside the form until the next edit.
	Err string

	inputs [fieldCount]textinput.Model
}

func (f *RemoteForm) modalKind() string {
	if f.Mode == FormEdit {
		return "edit"
	}
	return "create"
}

func newFormInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = InputWidth
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func newRemoteForm(mode FormMode, name string) *RemoteForm {
	f := &RemoteForm{Mode: mode}
	f.inputs[FieldName] = newFormInput("remote-name", 128)
	f.inputs[FieldType] = newFormInput("backend", 64)
	f.inputs[FieldPath] = newFormInput("optional", 0)
	f.SetValue(FieldName, name)
	f.SetValue(FieldType, DefaultRemoteType)
	f.syncFocus()
	return f
}

// NewCreateForm returns an empty form with the default backend type.
func NewCreateForm() *RemoteForm {
	return newRemoteForm(FormCreate, "")
}

// NewEditForm returns a form for name. The daemon's current settings are not
// fetched, so only the name is filled in.
func NewEditForm(name string) *RemoteForm {
	return newRemoteForm(FormEdit, name)
}

func (f *RemoteForm) Title() string {
	if f.Mode == FormEdit {
		return "Edit Remote"
	}
	return "Create Remote"
}

func (f *RemoteForm) Name() string { return f.Value(FieldName) }
func (f *RemoteForm) Type() string { return f.Value(FieldType) }
func (f *RemoteForm) Path() string { return f.Value(FieldPath) }

// NextField moves focus forward, wrapping after the last field.
func (f *RemoteForm) NextField() {
	f.Focus = (f.Focus + 1) % fieldCount
	f.syncFocus()
}

// PrevField moves focus backward, wrapping before the first field.
func (f *RemoteForm) PrevField() {
	f.Focus = (f.Focus + fieldCount - 1) % fieldCount
	f.syncFocus()
}

// syncFocus focuses the input under Focus and blurs the others.
func (f *RemoteForm) syncFocus() {
	for i := range f.inputs {
		if FormField(i) == f.Focus {
			if !f.inputs[i].Focused() {
				f.inputs[i].Focus()
			}
			continue
		}
		f.inputs[i].Blur()
	}
}

// Value returns the text of field.
func (f *RemoteForm) Value(field FormField) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return f.inputs[field].Value()
}

// SetValue replaces the text of field.
func (f *RemoteForm) SetValue(field FormField, value string) {
	if field < 0 || field >= fieldCount {
		return
	}
	f.inputs[field].SetValue(value)
	f.inputs[field].CursorEnd()
}

// SetFocused replaces the focused field's text.
func (f *RemoteForm) SetFocused(value string) {
	f.SetValue(f.Focus, value)
	f.Err = ""
}

// InsertRune appends r to the focused field.
func (f *RemoteForm) InsertRune(r rune) {
	f.Edit(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Backspace removes the last character of the focused field.
func (f *RemoteForm) Backspace() {
	f.Edit(tea.KeyMsg{Type: tea.KeyBackspace})
}

// Edit forwards a key to the focused input with the cursor pinned to the end.
// Callers only pass printable runes, space and backspace. A change to the
// value clears Err.
func (f *RemoteForm) Edit(msg tea.KeyMsg) tea.Cmd {
	f.syncFocus()
	in := &f.inputs[f.Focus]
	in.CursorEnd()
	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	in.CursorEnd()
	if in.Value() != before {
		f.Err = ""
	}
	return cmd
}

// FieldView renders field's input, cursor included when it has focus.
func (f *RemoteForm) FieldView(field FormField) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	f.syncFocus()
	return f.inputs[field].View()
}

// Validate returns a message when the form cannot be submitted.
func (f *RemoteForm) Validate() string {
	if f.Name() == "" || f.Type() == "" {
		return "Name and Type are required"
	}
	return ""
}

// Parameters returns the backend parameters to send. It is never nil; an
// empty path is left out.
func (f *RemoteForm) Parameters() map[string]string {
	params := map[string]string{}
	if path := f.Path(); path != "" {
		params[ParamPath] = path
	}
	return params
}
