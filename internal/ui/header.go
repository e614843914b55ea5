package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHeader renders the title, the view tabs and the API health badge.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	if !compact(m.width) {
		parts = append(parts, bg.Render(m.loc.T("app.title"), styles.Logo))
	}
	parts = append(parts, m.renderTabs(styles, bg), m.renderHealth(styles, bg))

	return styles.Header.Width(max(m.width, 0)).Render(strings.Join(parts, sep))
}

// renderTabs marks the mounted view. Brackets keep the active tab visible
// on terminals without color.
func (m Model) renderTabs(styles Styles, bg BgStyle) string {
	labels := [viewCount]string{
		m.loc.T("nav.rent"),
		m.loc.T("nav.return"),
		m.loc.T("nav.reports"),
	}
	tabs := make([]string, 0, len(labels))
	for i, label := range labels {
		if View(i) == m.currentView {
			tabs = append(tabs, styles.ActiveTab.Render("["+label+"]"))
			continue
		}
		tabs = append(tabs, bg.Render(" "+label+" ", styles.Tab))
	}
	return strings.Join(tabs, bg.Space())
}

func (m Model) renderHealth(styles Styles, bg BgStyle) string {
	snap := m.snapshot
	switch {
	case m.store == nil || !snap.HasChecked:
		return bg.Render(m.loc.T("status.checking"), styles.MutedText)
	case snap.Online:
		return bg.Render("● "+m.loc.T("status.online"), styles.SuccessText)
	case snap.IsOffline():
		return bg.Render("● "+m.loc.T("status.offline"), styles.DangerText)
	default:
		return bg.Render("● "+m.loc.T("status.unstable"), styles.WarningText.Bold(true))
	}
}

// renderFooter renders the mounted screen's bindings followed by the global
// ones.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bindings := append([]key.Binding{}, m.screen.ShortHelp(m.keys)...)
	bindings = append(bindings, m.keys.ShortHelp()...)
	return styles.Footer.Render(m.help.ShortHelpView(bindings))
}
