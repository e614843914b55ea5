package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "ACADEMY DINOSAUR", 20, "ACADEMY DINOSAUR"},
		{"trims", "  ALIEN CENTER ", 20, "ALIEN CENTER"},
		{"ellipsis", "BUCKET BROTHERHOOD", 10, "BUCKET ..."},
		{"tiny_limit", "BUCKET", 2, "BU"},
		{"no_limit", "BUCKET", 0, "BUCKET"},
		{"runes", "Película número uno", 8, "Pelíc..."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, truncate(tc.in, tc.limit))
		})
	}
}

func TestCompact(t *testing.T) {
	require.False(t, compact(0), "unknown width is not compact")
	require.True(t, compact(80))
	require.False(t, compact(layoutCompactWidth))
}

func TestBgStyleRenderKeepsSpacing(t *testing.T) {
	bg := NewBgStyle("#000000")
	styles := GetTheme("").Styles()

	require.Empty(t, bg.Render("", styles.Text))
	// Without a terminal no escape codes are emitted, so only the text remains.
	require.Equal(t, "API  EN LÍNEA", bg.Render("API  EN LÍNEA", styles.Text))
	require.Equal(t, "   ", bg.Spaces(3))
	require.Empty(t, bg.Spaces(-1))
}
