package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		in   string
		want language.Tag
	}{
		{"", language.Spanish},
		{"es", language.Spanish},
		{"es_MX", language.Spanish},
		{"en", language.English},
		{"en-US", language.English},
		{" EN ", language.English},
		{"fr", language.Spanish},
		{"not a locale!", language.Spanish},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, Resolve(tc.in))
		})
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	tags := Supported()
	require.Len(t, tags, 2)
	tags[0] = language.French
	require.Equal(t, language.Spanish, Default())
}

func TestLocalizerMessages(t *testing.T) {
	es := New("es")
	require.Equal(t, "¡Renta exitosa! Nuevo ID de Renta: 42", es.T("rent.success", "42"))
	require.Equal(t, "No hay rentas pendientes.", es.T("return.empty"))
	require.Equal(t, "Pendiente", es.T("reports.pending"))
	require.Equal(t, "Mike: $33489.47", es.T("reports.revenue_entry", "Mike", "33489.47"))

	en := New("en")
	require.Equal(t, "Rental created! New Rental ID: 42", en.T("rent.success", "42"))
	require.Equal(t, "No pending rentals.", en.T("return.empty"))
	require.Equal(t, "Pending", en.T("reports.pending"))
	require.Equal(t, "BUCKET BROTHERHOOD (34 rentals)", en.T("reports.top_entry", "BUCKET BROTHERHOOD", 34))
}

func TestEveryKeyHasBothLanguages(t *testing.T) {
	keys := []string{
		"app.title", "nav.rent", "nav.return", "nav.reports",
		"rent.title", "rent.error", "return.title", "return.empty",
		"cancel.confirm", "reports.top", "reports.revenue", "reports.history",
		"reports.pending", "key.quit", "help.title",
	}
	es, en := New("es"), New("en")
	for _, key := range keys {
		require.NotEqual(t, key, es.T(key), "missing es message for %s", key)
		require.NotEqual(t, key, en.T(key), "missing en message for %s", key)
		require.NotEqual(t, es.T(key), en.T(key), "es and en share text for %s", key)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2005, time.May, 24, 12, 0, 0, 0, time.Local)
	require.Equal(t, "24/05/2005", New("es").Date(d))
	require.Equal(t, "5/24/2005", New("en").Date(d))
	require.Equal(t, "", New("es").Date(time.Time{}))
	require.Equal(t, language.English, New("en-GB").Tag())
}
