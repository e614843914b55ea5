package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
)

type overdueLoadedMsg struct {
	seq     int
	rentals []dvdapi.OverdueRental
	err     error
}

type rentalReturnedMsg struct {
	id  int64
	err error
}

type rentalCancelledMsg struct {
	id  int64
	err error
}

// cancelConfirmedMsg is emitted by the confirmation prompt.
type cancelConfirmedMsg struct {
	id int64
}

// returnView lists overdue rentals and lets the operator return or cancel them.
// Rows are never patched locally: every successful mutation re-fetches the
// whole list.
type returnView struct {
	ctx     context.Context
	api     dvdapi.API
	loc     *i18n.Localizer
	table   table.Model
	rentals []dvdapi.OverdueRental
	loading bool
	// loadSeq identifies the newest list request; older responses are dropped.
	loadSeq int
	message statusMessage
	modal   Modal
}

func newReturnView(ctx context.Context, api dvdapi.API, loc *i18n.Localizer, theme Theme) returnView {
	t := table.New(
		table.WithColumns(overdueColumns(loc)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(theme.TableStyles())
	// The first load is issued by Init.
	return returnView{ctx: ctx, api: api, loc: loc, table: t, loading: true, loadSeq: 1}
}

func overdueColumns(loc *i18n.Localizer) []table.Column {
	return []table.Column{
		{Title: loc.T("return.col_id"), Width: 10},
		{Title: loc.T("return.col_film"), Width: 30},
		{Title: loc.T("return.col_customer"), Width: 24},
		{Title: loc.T("return.col_date"), Width: 14},
	}
}

func (v returnView) Init() tea.Cmd {
	return v.loadCmd()
}

// load starts a fresh overdue request and returns the updated view.
func (v returnView) load() (returnView, tea.Cmd) {
	v.loadSeq++
	v.loading = true
	return v, v.loadCmd()
}

func (v returnView) loadCmd() tea.Cmd {
	ctx, api, seq := v.ctx, v.api, v.loadSeq
	return func() tea.Msg {
		rentals, err := api.OverdueRentals(ctx)
		return overdueLoadedMsg{seq: seq, rentals: rentals, err: err}
	}
}

func (v returnView) Capturing() bool {
	return v.modal != nil
}

func (v returnView) ApplyTheme(theme Theme) screen {
	v.table.SetStyles(theme.TableStyles())
	return v
}

func (v returnView) ShortHelp(keys keyMap) []key.Binding {
	if v.modal != nil {
		return []key.Binding{keys.Confirm, keys.Deny}
	}
	return []key.Binding{keys.Up, keys.Down, keys.ReturnRental, keys.CancelRental, keys.Refresh}
}

func (v returnView) Update(msg tea.Msg, keys keyMap) (screen, tea.Cmd) {
	if v.modal != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			modal, cmd, closed := v.modal.Update(msg, keys)
			if closed {
				v.modal = nil
			} else {
				v.modal = modal
			}
			return v, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg, keys)

	case overdueLoadedMsg:
		if msg.seq != v.loadSeq {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			logRequestError("load overdue rentals", msg.err)
			v.rentals = nil
			v.message = statusMessage{text: v.loc.T("return.load_error"), kind: messageError}
		} else {
			v.rentals = msg.rentals
		}
		v.syncRows()
		return v, nil

	case rentalReturnedMsg:
		ref := strconv.FormatInt(msg.id, 10)
		if msg.err != nil {
			logRequestError("return rental "+ref, msg.err)
			v.message = statusMessage{text: v.loc.T("return.error", ref), kind: messageError}
			return v, nil
		}
		v.message = statusMessage{text: v.loc.T("return.success", ref), kind: messageSuccess}
		return v.load()

	case cancelConfirmedMsg:
		ref := strconv.FormatInt(msg.id, 10)
		v.message = statusMessage{text: v.loc.T("cancel.processing", ref)}
		ctx, api, id := v.ctx, v.api, msg.id
		return v, func() tea.Msg {
			return rentalCancelledMsg{id: id, err: api.CancelRental(ctx, id)}
		}

	case rentalCancelledMsg:
		ref := strconv.FormatInt(msg.id, 10)
		if msg.err != nil {
			logRequestError("cancel rental "+ref, msg.err)
			v.message = statusMessage{text: v.loc.T("cancel.error", ref), kind: messageError}
			return v, nil
		}
		v.message = statusMessage{text: v.loc.T("cancel.success", ref), kind: messageSuccess}
		return v.load()
	}
	return v, nil
}

func (v returnView) handleKey(msg tea.KeyMsg, keys keyMap) (screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Refresh):
		if v.loading {
			return v, nil
		}
		v.message = statusMessage{}
		return v.load()

	case key.Matches(msg, keys.ReturnRental):
		rental, ok := v.selected()
		if !ok {
			return v, nil
		}
		ref := strconv.FormatInt(rental.RentalID, 10)
		v.message = statusMessage{text: v.loc.T("return.processing", ref)}
		ctx, api, id := v.ctx, v.api, rental.RentalID
		return v, func() tea.Msg {
			return rentalReturnedMsg{id: id, err: api.ReturnRental(ctx, id)}
		}

	case key.Matches(msg, keys.CancelRental):
		rental, ok := v.selected()
		if !ok {
			return v, nil
		}
		id := rental.RentalID
		v.modal = newConfirmModal(
			v.loc.T("cancel.title"),
			v.loc.T("cancel.confirm", strconv.FormatInt(id, 10)),
			keys.Confirm.Help().Key+": "+keys.Confirm.Help().Desc+"   "+keys.Deny.Help().Key+": "+keys.Deny.Help().Desc,
			func() tea.Msg { return cancelConfirmedMsg{id: id} },
		)
		return v, nil
	}

	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// selected returns the rental under the cursor. The placeholder row of an
// empty list selects nothing.
func (v returnView) selected() (dvdapi.OverdueRental, bool) {
	if v.loading || len(v.rentals) == 0 {
		return dvdapi.OverdueRental{}, false
	}
	idx := v.table.Cursor()
	if idx < 0 || idx >= len(v.rentals) {
		return dvdapi.OverdueRental{}, false
	}
	return v.rentals[idx], true
}

func (v *returnView) syncRows() {
	if len(v.rentals) == 0 {
		v.table.SetRows([]table.Row{{"", v.loc.T("return.empty"), "", ""}})
		v.table.SetCursor(0)
		return
	}
	rows := make([]table.Row, 0, len(v.rentals))
	for _, r := range v.rentals {
		date := v.loc.Date(r.ParsedRentalDate())
		if date == "" {
			date = r.RentalDate
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.RentalID, 10),
			r.FilmTitle,
			r.CustomerName,
			date,
		})
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(len(rows) - 1)
	}
}

func (v returnView) View(rc renderContext) string {
	styles := rc.styles
	if v.modal != nil {
		return v.modal.View(rc.theme, rc.width, rc.height)
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(v.loc.T("return.title")))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(v.loc.T("return.subtitle")))
	b.WriteString("\n\n")

	if line := v.message.render(styles); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if v.loading {
		b.WriteString(styles.MutedText.Render(v.loc.T("return.loading")))
	} else {
		b.WriteString(v.table.View())
	}

	return styles.Card.Width(cardWidth(rc.width, 86)).Render(b.String())
}
