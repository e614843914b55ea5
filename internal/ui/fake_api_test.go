package ui

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/rentdesk/internal/dvdapi"
	"github.com/five82/rentdesk/internal/i18n"
)

// fakeAPI records every request as "METHOD path" and answers from canned
// data.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []string
	ctxErrs []error

	created   []dvdapi.RentalRequest
	receipt   dvdapi.RentalReceipt
	createErr error

	overdue    []dvdapi.OverdueRental
	overdueErr error
	returnErr  error
	cancelErr  error

	films      []dvdapi.FilmRentalCount
	filmsErr   error
	revenue    []dvdapi.StaffRevenue
	revenueErr error
	history    map[int64][]dvdapi.CustomerRental
	historyErr error
}

var _ dvdapi.API = (*fakeAPI)(nil)

func (f *fakeAPI) record(ctx context.Context, call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Health(ctx context.Context) error {
	f.record(ctx, "GET /health")
	return nil
}

func (f *fakeAPI) CreateRental(ctx context.Context, req dvdapi.RentalRequest) (dvdapi.RentalReceipt, error) {
	f.record(ctx, "POST /api/rentals")
	f.mu.Lock()
	f.created = append(f.created, req)
	f.mu.Unlock()
	if f.createErr != nil {
		return dvdapi.RentalReceipt{}, f.createErr
	}
	return f.receipt, nil
}

func (f *fakeAPI) OverdueRentals(ctx context.Context) ([]dvdapi.OverdueRental, error) {
	f.record(ctx, "GET /api/rentals/overdue")
	return f.overdue, f.overdueErr
}

func (f *fakeAPI) ReturnRental(ctx context.Context, id int64) error {
	f.record(ctx, fmt.Sprintf("PUT /api/rentals/%d/return", id))
	return f.returnErr
}

func (f *fakeAPI) CancelRental(ctx context.Context, id int64) error {
	f.record(ctx, fmt.Sprintf("DELETE /api/rentals/%d", id))
	return f.cancelErr
}

func (f *fakeAPI) MostRentedFilms(ctx context.Context) ([]dvdapi.FilmRentalCount, error) {
	f.record(ctx, "GET /api/films/most-rented")
	return f.films, f.filmsErr
}

func (f *fakeAPI) StaffRevenue(ctx context.Context) ([]dvdapi.StaffRevenue, error) {
	f.record(ctx, "GET /api/staff/revenue")
	return f.revenue, f.revenueErr
}

func (f *fakeAPI) CustomerRentals(ctx context.Context, id int64) ([]dvdapi.CustomerRental, error) {
	f.record(ctx, fmt.Sprintf("GET /api/customers/%d/rentals", id))
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.history[id], nil
}

func testLocalizer() *i18n.Localizer {
	return i18n.New("es")
}

// newTestModel mounts view and runs its Init commands to completion.
func newTestModel(t *testing.T, api dvdapi.API, view View) Model {
	t.Helper()
	m := New(Options{
		Context:     context.Background(),
		API:         api,
		Localizer:   testLocalizer(),
		PollTick:    time.Millisecond,
		PrefsPath:   t.TempDir() + "/prefs.toml",
		InitialView: view,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return drain(t, next.(Model), m.Init())
}

// drain runs cmd and every command it produces, feeding each message back
// into the model. Ticks are dropped so the loop terminates.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 1000, "command loop did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil, tickMsg, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			next, nextCmd := m.Update(msg)
			m = next.(Model)
			queue = append(queue, nextCmd)
		}
	}
	return m
}

// press delivers one key and drains the resulting commands.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return press(t, m, runes(s))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}
