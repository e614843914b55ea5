package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal is a blocking yes/no prompt. Confirm runs OnConfirm; Deny
// closes without side effects.
type confirmModal struct {
	Title     string
	Label     string
	Hint      string
	OnConfirm func() tea.Msg
}

var _ Modal = confirmModal{}

func newConfirmModal(title, label, hint string, onConfirm func() tea.Msg) confirmModal {
	return confirmModal{Title: title, Label: label, Hint: hint, OnConfirm: onConfirm}
}

func (m confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Confirm):
		if m.OnConfirm == nil {
			return m, nil, true
		}
		return m, m.OnConfirm, true
	case key.Matches(keyMsg, keys.Deny):
		return m, nil, true
	}
	return m, nil, false
}

func (m confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	boxWidth := 56
	if width > 0 && width-4 < boxWidth {
		boxWidth = max(width-4, 20)
	}

	content := styles.WarningText.Bold(true).Render(m.Title) + "\n\n" +
		styles.Text.Width(boxWidth-4).Render(m.Label)
	if m.Hint != "" {
		content += "\n\n" + styles.FaintText.Render(m.Hint)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
