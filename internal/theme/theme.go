package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Panel        *lipgloss.Style
	PanelFocused *lipgloss.Style
	PanelTitle   *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Directory    *lipgloss.Style
	Placeholder  *lipgloss.Style
	Help         *lipgloss.Style
	Status       *lipgloss.Style
	Connected    *lipgloss.Style
	Disconnected *lipgloss.Style
	Loading      *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style

	Modal        *lipgloss.Style
	ModalTitle   *lipgloss.Style
	ModalBody    *lipgloss.Style
	Button       *lipgloss.Style
	ButtonActive *lipgloss.Style
	FieldLabel   *lipgloss.Style
	FieldFocused *lipgloss.Style
	FieldValue   *lipgloss.Style
	Suggestion   *lipgloss.Style
	FormError    *lipgloss.Style
}

var defaultStyles = Styles{
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	PanelFocused: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Directory: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Connected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Disconnected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Modal: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("214")).Padding(1, 2),
	),
	ModalTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	ModalBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 2),
	),
	ButtonActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 2),
	),
	FieldLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(6),
	),
	FieldFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Width(6),
	),
	FieldValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FormError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
