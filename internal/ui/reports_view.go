package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
)

const defaultHistoryCustomer = "1"

type mostRentedMsg struct {
	batch int
	films []dvdapi.FilmRentalCount
	err   error
}

type staffRevenueMsg struct {
	batch int
	rows  []dvdapi.StaffRevenue
	err   error
}

type customerRentalsMsg struct {
	seq        int
	customerID int64
	rentals    []dvdapi.CustomerRental
	err        error
}

// reportsView shows the two general reports plus a per-customer history
// search.
type reportsView struct {
	ctx context.Context
	api dvdapi.API
	loc *i18n.Localizer

	// batch identifies the current pair of general report requests and
	// pending counts how many of them are still outstanding.
	batch   int
	pending int
	films   []dvdapi.FilmRentalCount
	revenue []dvdapi.StaffRevenue

	search    textinput.Model
	searchSeq int
	history   table.Model
	message   statusMessage
}

func newReportsView(ctx context.Context, api dvdapi.API, loc *i18n.Localizer, theme Theme) reportsView {
	search := newIDInput(loc.T("reports.customer"))
	search.SetValue(defaultHistoryCustomer)
	search.Focus()

	history := table.New(
		table.WithColumns([]table.Column{
			{Title: loc.T("reports.col_film"), Width: 32},
			{Title: loc.T("reports.col_rented"), Width: 16},
			{Title: loc.T("reports.col_returned"), Width: 20},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	history.SetStyles(theme.TableStyles())

	// Init issues batch 1.
	return reportsView{
		ctx:     ctx,
		api:     api,
		loc:     loc,
		batch:   1,
		pending: 2,
		search:  search,
		history: history,
	}
}

func (v reportsView) Init() tea.Cmd {
	return v.generalReportsCmd()
}

// Loading reports whether either general report is still in flight.
func (v reportsView) Loading() bool {
	return v.pending > 0
}

// generalReportsCmd runs both report requests concurrently.
func (v reportsView) generalReportsCmd() tea.Cmd {
	ctx, api, batch := v.ctx, v.api, v.batch
	return tea.Batch(
		func() tea.Msg {
			films, err := api.MostRentedFilms(ctx)
			return mostRentedMsg{batch: batch, films: films, err: err}
		},
		func() tea.Msg {
			rows, err := api.StaffRevenue(ctx)
			return staffRevenueMsg{batch: batch, rows: rows, err: err}
		},
	)
}

func (v reportsView) reload() (reportsView, tea.Cmd) {
	v.batch++
	v.pending = 2
	return v, v.generalReportsCmd()
}

func (v reportsView) Capturing() bool {
	return false
}

func (v reportsView) ApplyTheme(theme Theme) screen {
	v.history.SetStyles(theme.TableStyles())
	return v
}

func (v reportsView) ShortHelp(keys keyMap) []key.Binding {
	search := keys.Submit
	search.SetHelp("enter", v.loc.T("reports.search"))
	return []key.Binding{search, keys.Up, keys.Down, keys.Refresh}
}

func (v reportsView) Update(msg tea.Msg, keys keyMap) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg, keys)

	case mostRentedMsg:
		if msg.batch != v.batch {
			return v, nil
		}
		v.pending--
		if msg.err != nil {
			logRequestError("load most rented films", msg.err)
			v.films = nil
		} else {
			v.films = msg.films
		}
		return v, nil

	case staffRevenueMsg:
		if msg.batch != v.batch {
			return v, nil
		}
		v.pending--
		if msg.err != nil {
			logRequestError("load staff revenue", msg.err)
			v.revenue = nil
		} else {
			v.revenue = msg.rows
		}
		return v, nil

	case customerRentalsMsg:
		if msg.seq != v.searchSeq {
			return v, nil
		}
		if msg.err != nil {
			ref := strconv.FormatInt(msg.customerID, 10)
			logRequestError("load rentals for customer "+ref, msg.err)
			v.message = statusMessage{text: v.loc.T("reports.search_error", ref), kind: messageError}
			return v, nil
		}
		v.message = statusMessage{}
		v.setHistory(msg.rentals)
		return v, nil
	}
	return v, nil
}

func (v reportsView) handleKey(msg tea.KeyMsg, keys keyMap) (screen, tea.Cmd) {
	if v.Loading() {
		return v, nil
	}
	switch {
	case key.Matches(msg, keys.Submit):
		return v.searchCustomer()
	case key.Matches(msg, keys.Refresh):
		return v.reload()
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown,
		msg.Type == tea.KeyPgUp, msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		v.history, cmd = v.history.Update(msg)
		return v, cmd
	}
	if !isTextEditKey(msg) {
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

// searchCustomer fetches one customer's history. An id that does not parse
// is reported locally instead of producing a malformed URL.
func (v reportsView) searchCustomer() (screen, tea.Cmd) {
	raw := strings.TrimSpace(v.search.Value())
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		v.message = statusMessage{text: v.loc.T("reports.invalid_id", raw), kind: messageError}
		return v, nil
	}
	v.searchSeq++
	ctx, api, seq := v.ctx, v.api, v.searchSeq
	return v, func() tea.Msg {
		rentals, err := api.CustomerRentals(ctx, id)
		return customerRentalsMsg{seq: seq, customerID: id, rentals: rentals, err: err}
	}
}

func (v *reportsView) setHistory(rentals []dvdapi.CustomerRental) {
	rows := make([]table.Row, 0, len(rentals))
	for _, r := range rentals {
		rented := v.loc.Date(r.ParsedRentalDate())
		if rented == "" {
			rented = r.RentalDate
		}
		returned := v.loc.T("reports.pending")
		if r.Returned() {
			returned = v.loc.Date(r.ParsedReturnDate())
			if returned == "" {
				returned = *r.ReturnDate
			}
		}
		rows = append(rows, table.Row{r.FilmTitle, rented, returned})
	}
	v.history.SetRows(rows)
	v.history.SetCursor(0)
}

func (v reportsView) View(rc renderContext) string {
	styles := rc.styles
	if v.Loading() {
		return styles.Card.Render(styles.MutedText.Render(v.loc.T("reports.loading")))
	}

	half := cardWidth(rc.width/2, reportCardWidth)
	if compact(rc.width) {
		half = cardWidth(rc.width, reportCardWidth)
	}
	// Card padding takes two columns.
	entryWidth := half - 2

	var top strings.Builder
	top.WriteString(styles.AccentText.Bold(true).Render(v.loc.T("reports.top")))
	top.WriteString("\n")
	for i, f := range v.films {
		rank := strconv.Itoa(i+1) + ". "
		top.WriteString(styles.FaintText.Render(rank))
		entry := v.loc.T("reports.top_entry", f.FilmTitle, f.RentalCount)
		top.WriteString(styles.Text.Render(truncate(entry, entryWidth-len(rank))))
		top.WriteString("\n")
	}

	var revenue strings.Builder
	revenue.WriteString(styles.AccentText.Bold(true).Render(v.loc.T("reports.revenue")))
	revenue.WriteString("\n")
	for _, s := range v.revenue {
		revenue.WriteString("• ")
		entry := v.loc.T("reports.revenue_entry", s.StaffName, string(s.TotalRevenue))
		revenue.WriteString(styles.Text.Render(truncate(entry, entryWidth-2)))
		revenue.WriteString("\n")
	}

	join := lipgloss.JoinHorizontal
	if compact(rc.width) {
		join = func(_ lipgloss.Position, blocks ...string) string {
			return lipgloss.JoinVertical(lipgloss.Left, blocks...)
		}
	}
	grid := join(lipgloss.Top,
		styles.Card.Width(half).Render(strings.TrimRight(top.String(), "\n")),
		styles.Card.Width(half).Render(strings.TrimRight(revenue.String(), "\n")),
	)

	var hist strings.Builder
	hist.WriteString(styles.AccentText.Bold(true).Render(v.loc.T("reports.history")))
	hist.WriteString("\n")
	hist.WriteString(styles.FocusedField.Render(v.loc.T("reports.customer") + ": "))
	hist.WriteString(v.search.View())
	hist.WriteString("  ")
	hist.WriteString(styles.Button.Render(v.loc.T("reports.search")))
	hist.WriteString("\n")
	if line := v.message.render(styles); line != "" {
		hist.WriteString(line)
		hist.WriteString("\n")
	}
	hist.WriteString("\n")
	hist.WriteString(v.history.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		grid,
		styles.Card.Width(cardWidth(rc.width, 2*half+2)).Render(hist.String()),
	)
}
