package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Address        *lipgloss.Style
	AddressFocused *lipgloss.Style
	AddressPrompt  *lipgloss.Style
	Spinner        *lipgloss.Style

	Heading1     *lipgloss.Style
	Heading2     *lipgloss.Style
	Heading3     *lipgloss.Style
	Text         *lipgloss.Style
	Link         *lipgloss.Style
	LinkIndex    *lipgloss.Style
	Quote        *lipgloss.Style
	ListItem     *lipgloss.Style
	Preformatted *lipgloss.Style

	ErrorIcon  *lipgloss.Style
	ErrorTitle *lipgloss.Style
	ErrorBody  *lipgloss.Style

	PanelTitle   *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Filter       *lipgloss.Style
	FilterPrompt *lipgloss.Style

	Status      *lipgloss.Style
	StatusError *lipgloss.Style
	Message     *lipgloss.Style
	Help        *lipgloss.Style
}

var defaultStyles = Styles{
	Address: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	AddressFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")),
	),
	AddressPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Heading1: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
	),
	Heading2: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	Heading3: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	),
	LinkIndex: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Quote: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	ListItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Preformatted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	),
	ErrorIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	ErrorTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	ErrorBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
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
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Help: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
