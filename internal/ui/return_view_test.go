package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/rentdesk/internal/dvdapi"
)

func overdueFixture() []dvdapi.OverdueRental {
	return []dvdapi.OverdueRental{
		{RentalID: 7, FilmTitle: "ACADEMY DINOSAUR", CustomerName: "MARY SMITH", RentalDate: "2005-05-24T22:53:30Z"},
		{RentalID: 11, FilmTitle: "ALIEN CENTER", CustomerName: "LINDA WILLIAMS", RentalDate: "not a date"},
	}
}

func TestReturnView_EmptyListShowsPlaceholderRow(t *testing.T) {
	api := &fakeAPI{overdue: []dvdapi.OverdueRental{}}
	m := newTestModel(t, api, ViewReturn)

	require.Equal(t, []string{"GET /api/rentals/overdue"}, api.Calls())

	v := m.screen.(returnView)
	require.False(t, v.loading)
	require.Equal(t, []table.Row{{"", testLocalizer().T("return.empty"), "", ""}}, v.table.Rows())
	_, ok := v.selected()
	require.False(t, ok, "placeholder row must not be selectable")
}

func TestReturnView_RowsFormatDates(t *testing.T) {
	api := &fakeAPI{overdue: overdueFixture()}
	m := newTestModel(t, api, ViewReturn)

	rows := m.screen.(returnView).table.Rows()
	require.Len(t, rows, 2)
	require.Equal(t, "7", rows[0][0])
	require.Equal(t, "ACADEMY DINOSAUR", rows[0][1])
	require.Equal(t, "MARY SMITH", rows[0][2])
	require.NotEqual(t, "2005-05-24T22:53:30Z", rows[0][3])
	require.Equal(t, "not a date", rows[1][3], "unparseable dates are shown as received")
}

func TestReturnView_ReturnRefetchesList(t *testing.T) {
	api := &fakeAPI{overdue: overdueFixture()}
	m := newTestModel(t, api, ViewReturn)

	m = press(t, m, keyOf(tea.KeyEnter))

	require.Equal(t, []string{
		"GET /api/rentals/overdue",
		"PUT /api/rentals/7/return",
		"GET /api/rentals/overdue",
	}, api.Calls())
	v := m.screen.(returnView)
	require.Equal(t, messageSuccess, v.message.kind)
	require.Contains(t, v.message.text, "7")
}

func TestReturnView_ReturnFailureDoesNotRefetch(t *testing.T) {
	api := &fakeAPI{
		overdue:   overdueFixture(),
		returnErr: &dvdapi.StatusError{Method: "PUT", Path: "/api/rentals/11/return", Code: 500},
	}
	m := newTestModel(t, api, ViewReturn)

	m = press(t, m, keyOf(tea.KeyDown))
	m = press(t, m, keyOf(tea.KeyEnter))

	require.Equal(t, []string{
		"GET /api/rentals/overdue",
		"PUT /api/rentals/11/return",
	}, api.Calls())
	v := m.screen.(returnView)
	require.Equal(t, messageError, v.message.kind)
	require.Equal(t, testLocalizer().T("return.error", "11"), v.message.text)
}

func TestReturnView_CancelRequiresConfirmation(t *testing.T) {
	api := &fakeAPI{overdue: overdueFixture()}
	m := newTestModel(t, api, ViewReturn)

	m = press(t, m, runes("x"))
	require.True(t, m.screen.Capturing())
	require.Contains(t, m.View(), testLocalizer().T("cancel.title"))

	// Shell shortcuts are swallowed while the prompt is open.
	m = press(t, m, keyOf(tea.KeyF1))
	require.Equal(t, ViewReturn, m.CurrentView())

	m = press(t, m, runes("n"))
	require.False(t, m.screen.Capturing())
	require.Equal(t, []string{"GET /api/rentals/overdue"}, api.Calls(), "denying must not send a request")

	m = press(t, m, runes("x"))
	m = press(t, m, runes("y"))
	require.Equal(t, []string{
		"GET /api/rentals/overdue",
		"DELETE /api/rentals/7",
		"GET /api/rentals/overdue",
	}, api.Calls())
	v := m.screen.(returnView)
	require.Equal(t, testLocalizer().T("cancel.success", "7"), v.message.text)
}

func TestReturnView_CancelFailureShowsError(t *testing.T) {
	api := &fakeAPI{overdue: overdueFixture(), cancelErr: errors.New("connection reset")}
	m := newTestModel(t, api, ViewReturn)

	m = press(t, m, runes("x"))
	m = press(t, m, keyOf(tea.KeyEnter))

	require.Equal(t, []string{
		"GET /api/rentals/overdue",
		"DELETE /api/rentals/7",
	}, api.Calls())
	v := m.screen.(returnView)
	require.Equal(t, messageError, v.message.kind)
	require.Equal(t, testLocalizer().T("cancel.error", "7"), v.message.text)
}

func TestReturnView_LoadFailureLeavesListEmpty(t *testing.T) {
	api := &fakeAPI{overdueErr: errors.New("dial tcp: connection refused")}
	m := newTestModel(t, api, ViewReturn)

	v := m.screen.(returnView)
	require.Empty(t, v.rentals)
	require.Equal(t, messageError, v.message.kind)
	require.Equal(t, testLocalizer().T("return.load_error"), v.message.text)
}

func TestReturnView_DropsStaleLoads(t *testing.T) {
	api := &fakeAPI{}
	keys := newKeyMap(testLocalizer())
	v := newReturnView(context.Background(), api, testLocalizer(), GetTheme(""))

	v, _ = v.load()
	require.Equal(t, 2, v.loadSeq)

	next, _ := v.Update(overdueLoadedMsg{seq: 1, rentals: overdueFixture()}, keys)
	require.True(t, next.(returnView).loading, "stale response must be ignored")

	next, _ = next.Update(overdueLoadedMsg{seq: 2, rentals: overdueFixture()[:1]}, keys)
	require.False(t, next.(returnView).loading)
	require.Len(t, next.(returnView).rentals, 1)
}

func TestReturnView_RefreshReloads(t *testing.T) {
	api := &fakeAPI{overdue: overdueFixture()}
	m := newTestModel(t, api, ViewReturn)

	m = press(t, m, runes("r"))

	require.Equal(t, []string{
		"GET /api/rentals/overdue",
		"GET /api/rentals/overdue",
	}, api.Calls())
	require.False(t, m.screen.(returnView).loading)
}
