package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
)

const (
	fieldCustomer = iota
	fieldInventory
	fieldStaff
	rentFieldCount
)

type rentalCreatedMsg struct {
	receipt dvdapi.RentalReceipt
	err     error
}

// rentForm creates rentals from three numeric ids.
type rentForm struct {
	ctx    context.Context
	api    dvdapi.API
	loc    *i18n.Localizer
	labels [rentFieldCount]string
	inputs [rentFieldCount]textinput.Model
	focus  int
	// submitting blocks a second POST until the first one resolves.
	submitting bool
	message    statusMessage
}

func newRentForm(ctx context.Context, api dvdapi.API, loc *i18n.Localizer) rentForm {
	f := rentForm{ctx: ctx, api: api, loc: loc}
	f.labels = [rentFieldCount]string{
		loc.T("rent.customer"),
		loc.T("rent.inventory"),
		loc.T("rent.staff"),
	}
	for i := range f.inputs {
		f.inputs[i] = newIDInput("0")
	}
	f.inputs[fieldCustomer].Focus()
	return f
}

// newIDInput returns a text input for a numeric id.
func newIDInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 19
	ti.Width = 24
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (f rentForm) Init() tea.Cmd {
	return nil
}

func (f rentForm) Capturing() bool {
	return false
}

func (f rentForm) ApplyTheme(Theme) screen {
	return f
}

func (f rentForm) ShortHelp(keys keyMap) []key.Binding {
	return []key.Binding{keys.NextField, keys.PrevField, keys.Submit}
}

func (f rentForm) Update(msg tea.Msg, keys keyMap) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg, keys)
	case rentalCreatedMsg:
		f.submitting = false
		if msg.err != nil {
			logRequestError("create rental", msg.err)
			f.message = statusMessage{text: f.loc.T("rent.error"), kind: messageError}
			return f, nil
		}
		f.message = statusMessage{
			text: f.loc.T("rent.success", strconv.FormatInt(msg.receipt.RentalID, 10)),
			kind: messageSuccess,
		}
		for i := range f.inputs {
			f.inputs[i].Reset()
		}
		return f, nil
	}
	return f, nil
}

func (f rentForm) handleKey(msg tea.KeyMsg, keys keyMap) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return f.submit()
	case key.Matches(msg, keys.NextField):
		f.setFocus((f.focus + 1) % rentFieldCount)
		return f, nil
	case key.Matches(msg, keys.PrevField):
		f.setFocus((f.focus + rentFieldCount - 1) % rentFieldCount)
		return f, nil
	}
	if !isTextEditKey(msg) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *rentForm) setFocus(idx int) {
	for i := range f.inputs {
		if i == idx {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = idx
}

// submit sends the draft as is. Values that do not parse are sent as null and
// left for the server to reject.
func (f rentForm) submit() (screen, tea.Cmd) {
	if f.submitting {
		return f, nil
	}
	req := dvdapi.RentalRequest{
		CustomerID:  parseID(f.inputs[fieldCustomer].Value()),
		InventoryID: parseID(f.inputs[fieldInventory].Value()),
		StaffID:     parseID(f.inputs[fieldStaff].Value()),
	}
	f.submitting = true
	f.message = statusMessage{text: f.loc.T("rent.processing")}

	ctx, api := f.ctx, f.api
	return f, func() tea.Msg {
		receipt, err := api.CreateRental(ctx, req)
		return rentalCreatedMsg{receipt: receipt, err: err}
	}
}

func parseID(value string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func (f rentForm) View(rc renderContext) string {
	styles := rc.styles
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(f.loc.T("rent.title")))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, label := range f.labels {
		labelWidth = max(labelWidth, lipgloss.Width(label))
	}
	for i, label := range f.labels {
		labelStyle := styles.MutedText
		marker := "  "
		if i == f.focus {
			labelStyle = styles.FocusedField
			marker = "▸ "
		}
		b.WriteString(marker)
		b.WriteString(labelStyle.Width(labelWidth + 2).Render(label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Button.Render(f.loc.T("rent.submit")))
	if line := f.message.render(styles); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}

	return styles.Card.Width(cardWidth(rc.width, 72)).Render(b.String())
}
