package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/rentdesk/internal/i18n"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// View switching
	NextView    key.Binding
	PrevView    key.Binding
	ViewRent    key.Binding
	ViewReturn  key.Binding
	ViewReports key.Binding

	// Navigation
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Actions
	Submit       key.Binding
	ReturnRental key.Binding
	CancelRental key.Binding
	Refresh      key.Binding

	// Confirmation prompt
	Confirm key.Binding
	Deny    key.Binding
}

// newKeyMap returns the default key bindings with help text in the
// localizer's language.
func newKeyMap(loc *i18n.Localizer) keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", loc.T("key.quit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", loc.T("key.help")),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", loc.T("key.theme")),
		),

		// View switching
		NextView: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", loc.T("key.next_view")),
		),
		PrevView: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", loc.T("key.prev_view")),
		),
		ViewRent: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", loc.T("key.view_rent")),
		),
		ViewReturn: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", loc.T("key.view_return")),
		),
		ViewReports: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", loc.T("key.view_reports")),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", loc.T("key.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", loc.T("key.down")),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", loc.T("key.next_field")),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", loc.T("key.prev_field")),
		),

		// Actions
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.T("key.submit")),
		),
		ReturnRental: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", loc.T("key.return")),
		),
		CancelRental: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", loc.T("key.cancel_rental")),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", loc.T("key.refresh")),
		),

		// Confirmation prompt
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", loc.T("key.confirm")),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", loc.T("key.deny")),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ViewRent, k.ViewReturn, k.ViewReports, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Views
		{k.ViewRent, k.ViewReturn, k.ViewReports, k.NextView, k.PrevView},
		// Navigation
		{k.Up, k.Down, k.NextField, k.PrevField},
		// Rentals
		{k.Submit, k.ReturnRental, k.CancelRental, k.Refresh},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
