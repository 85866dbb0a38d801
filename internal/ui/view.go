package ui

import (
	"strings"

	"github.com/atomicstack/lazyfile/internal/format/table"
	"github.com/atomicstack/lazyfile/internal/rclone"
	"github.com/atomicstack/lazyfile/internal/state"
	uistate "github.com/atomicstack/lazyfile/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth    = 80
	remotesPercent  = 30
	chromeLines     = 3 // help, status, message
	panelChrome     = 3 // top border, title, bottom border
	panelFrameWidth = 4 // borders and horizontal padding
	confirmWidth    = 41
	formWidth       = 46
	suggestionLimit = 4
)

// View implements tea.Model.
func (m *Model) View() string {
	if !m.session.Running {
		return ""
	}
	switch modal := m.session.Modal.(type) {
	case *state.ConfirmModal:
		return m.overlay(m.viewConfirm(modal))
	case *state.RemoteForm:
		return m.overlay(m.viewForm(modal))
	}
	return m.viewMain()
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// panelRows returns how many list rows fit in a panel, or 0 when the terminal
// height is unknown and every row is shown.
func (m *Model) panelRows() int {
	if m.height <= 0 {
		return 0
	}
	rows := m.height - chromeLines - panelChrome
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) viewMain() string {
	width := m.layoutWidth()
	m.help.Width = width

	left := width * remotesPercent / 100
	right := width - left
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPanel("Remotes", m.remoteRows(left-panelFrameWidth), left, m.session.FocusedPanel == state.PanelRemotes),
		m.renderPanel("Files", m.fileRows(right-panelFrameWidth), right, m.session.FocusedPanel == state.PanelFiles),
	)

	lines := []string{
		render(styles.Help, m.help.View(m.keys.Panel)),
		panels,
		m.statusLine(width),
		m.messageLine(width),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderPanel(title string, rows []string, width int, focused bool) string {
	style := styles.Panel
	if focused {
		style = styles.PanelFocused
	}
	body := append([]string{render(styles.PanelTitle, title)}, rows...)
	s := style.Copy().Width(width - 2)
	if rowsVisible := m.panelRows(); rowsVisible > 0 {
		s = s.Height(rowsVisible + 1)
	}
	return s.Render(strings.Join(body, "\n"))
}

func (m *Model) remoteRows(width int) []string {
	s := m.session
	if len(s.Remotes) == 0 {
		return []string{render(styles.Placeholder, "(no remotes)")}
	}
	start, end := m.remotesView.Window(s.RemotesSelected, len(s.Remotes), m.panelRows())
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, listRow(s.Remotes[i], i == s.RemotesSelected, s.FocusedPanel == state.PanelRemotes, width, styles.Item))
	}
	return rows
}

func (m *Model) fileRows(width int) []string {
	s := m.session
	if !s.Browsing() {
		return []string{render(styles.Placeholder, "Select a remote")}
	}
	if len(s.Files) == 0 {
		return []string{render(styles.Placeholder, "(empty)")}
	}
	start, end := m.filesView.Window(s.FilesSelected, len(s.Files), m.panelRows())
	cells := make([][]string, 0, end-start)
	for _, item := range s.Files[start:end] {
		cells = append(cells, fileCells(item))
	}
	nameMax := width - 2 - 24
	if nameMax < 8 {
		nameMax = 8
	}
	formatted := table.Format(cells, []table.Column{
		{Align: table.AlignLeft, Max: nameMax},
		{Align: table.AlignRight},
		{Align: table.AlignLeft},
	})
	rows := make([]string, 0, len(formatted))
	for i, text := range formatted {
		idx := start + i
		style := styles.Item
		if s.Files[idx].IsDir {
			style = styles.Directory
		}
		rows = append(rows, listRow(text, idx == s.FilesSelected, s.FocusedPanel == state.PanelFiles, width, style))
	}
	return rows
}

func fileCells(item rclone.FileItem) []string {
	name := item.Name
	size := "-"
	if item.IsDir {
		name = "[" + item.Name + "]"
	} else if item.Size >= 0 {
		size = humanize.Bytes(uint64(item.Size))
	}
	modified := ""
	if ts, ok := item.Modified(); ok {
		modified = humanize.Time(ts)
	}
	return []string{name, size, modified}
}

// listRow marks the selected row; the highlight only shows in the focused
// panel, the marker always does.
func listRow(text string, selected, focused bool, width int, style *lipgloss.Style) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}
	line := prefix + text
	if width > 0 && ansi.StringWidth(line) > width {
		line = truncate.StringWithTail(line, uint(width), "…")
	}
	if selected && focused {
		return render(styles.SelectedItem, line)
	}
	return render(style, line)
}

func (m *Model) statusLine(width int) string {
	location := m.session.Location()
	if location == "" {
		location = "Select a remote"
	}
	conn := render(styles.Connected, "Connected")
	if !m.connected {
		conn = render(styles.Disconnected, "Disconnected")
	}
	line := "  " + render(styles.Status, location) + " | " + conn + "  "
	return ansi.Truncate(line, width, "…")
}

func (m *Model) messageLine(width int) string {
	var line string
	switch {
	case m.busy:
		line = render(styles.Loading, m.pendingLabel+"…")
	case m.errMsg != "":
		line = render(styles.Error, "Error: "+m.errMsg)
	default:
		if info := m.currentInfo(); info != "" {
			line = render(styles.Info, info)
		}
	}
	return ansi.Truncate(line, width, "…")
}

// overlay centres box on a blank backdrop covering the whole screen.
func (m *Model) overlay(box string) string {
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
	)
}

func (m *Model) viewConfirm(c *state.ConfirmModal) string {
	yes, no := styles.Button, styles.ButtonActive
	if c.Confirmed() {
		yes, no = styles.ButtonActive, styles.Button
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, render(yes, "Yes"), "  ", render(no, "No"))
	m.help.Width = confirmWidth
	lines := []string{
		render(styles.ModalTitle, c.Title),
		"",
		render(styles.ModalBody, c.Message),
		"",
		buttons,
		"",
		render(styles.Help, m.help.View(m.keys.Confirm)),
	}
	return styles.Modal.Copy().Width(confirmWidth).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewForm(f *state.RemoteForm) string {
	lines := []string{render(styles.ModalTitle, f.Title()), ""}
	for _, field := range []state.FormField{state.FieldName, state.FieldType, state.FieldPath} {
		lines = append(lines, formFieldLine(f, field))
		if field == state.FieldType && f.Focus == state.FieldType {
			if hint := typeHint(f.Type()); hint != "" {
				lines = append(lines, render(styles.Suggestion, hint))
			}
		}
	}
	lines = append(lines, "")
	switch {
	case m.busy:
		lines = append(lines, render(styles.Loading, m.pendingLabel+"…"))
	case f.Err != "":
		lines = append(lines, render(styles.FormError, ansi.Wrap(f.Err, formWidth-4, "")))
	default:
		m.help.Width = formWidth
		lines = append(lines, render(styles.Help, m.help.View(m.keys.Form)))
	}
	return styles.Modal.Copy().Width(formWidth).Render(strings.Join(lines, "\n"))
}

func formFieldLine(f *state.RemoteForm, field state.FormField) string {
	label := styles.FieldLabel
	if f.Focus == field {
		label = styles.FieldFocused
	}
	return render(label, field.String()+":") + render(styles.FieldValue, f.FieldView(field))
}

// typeHint lists known backend types close to the typed one. An exact match
// needs no hint.
func typeHint(typed string) string {
	suggestions := uistate.SuggestTypes(typed, rclone.KnownBackends, suggestionLimit)
	if len(suggestions) == 0 || (len(suggestions) == 1 && suggestions[0] == typed) {
		return ""
	}
	return "      " + strings.Join(suggestions, ", ")
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
