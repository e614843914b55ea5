package ui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rentdesk/internal/i18n"
)

// screen is one of the three views the shell can mount. Screens keep all of
// their state locally and lose it when the shell switches away.
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg, keys keyMap) (screen, tea.Cmd)
	View(rc renderContext) string
	// Capturing reports whether the screen wants every key, e.g. while a
	// confirmation prompt is open.
	Capturing() bool
	ShortHelp(keys keyMap) []key.Binding
	ApplyTheme(theme Theme) screen
}

// renderContext carries what a screen needs to draw itself.
type renderContext struct {
	theme  Theme
	styles Styles
	loc    *i18n.Localizer
	width  int
	height int
}

// messageKind classifies the single status line each screen shows.
type messageKind int

const (
	messageNone messageKind = iota
	messageSuccess
	messageError
)

// statusMessage is overwritten on every action; screens never queue them.
type statusMessage struct {
	text string
	kind messageKind
}

func (s statusMessage) render(styles Styles) string {
	if s.text == "" {
		return ""
	}
	switch s.kind {
	case messageSuccess:
		return styles.SuccessText.Render(s.text)
	case messageError:
		return styles.DangerText.Render(s.text)
	default:
		return styles.MutedText.Render(s.text)
	}
}

// mountedMsg tags a screen result with the mount it was issued from so the
// shell can drop results that arrive after the user switched views.
type mountedMsg struct {
	mount int
	msg   tea.Msg
}

// scoped wraps cmd so its result comes back as a mountedMsg. Batches are
// wrapped recursively so every member stays tagged.
func scoped(mount int, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
			return nil
		case tea.BatchMsg:
			wrapped := make([]tea.Cmd, 0, len(msg))
			for _, c := range msg {
				if c != nil {
					wrapped = append(wrapped, scoped(mount, c))
				}
			}
			return tea.BatchMsg(wrapped)
		case tea.QuitMsg:
			return msg
		default:
			return mountedMsg{mount: mount, msg: msg}
		}
	}
}

// logRequestError writes transport and status failures to the diagnostic log.
func logRequestError(what string, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	log.Printf("%s: %v", what, err)
}

func isDigitInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) == 0 {
		return false
	}
	for _, r := range msg.Runes {
		if (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// isTextEditKey reports keys a numeric field consumes. Letters are left to the
// shell so single-letter shortcuts keep working while a field has focus.
func isTextEditKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		return isDigitInput(msg)
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlA, tea.KeyCtrlE,
		tea.KeyCtrlK, tea.KeyCtrlU, tea.KeyCtrlW:
		return true
	}
	return false
}

// cardWidth clamps a card to the terminal width, leaving room for the border.
func cardWidth(termWidth, preferred int) int {
	if termWidth <= 0 {
		return preferred
	}
	return max(min(termWidth-2, preferred), 20)
}
