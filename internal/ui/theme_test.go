package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	require.Equal(t, []string{"Nightfox", "Kanagawa", "Slate"}, names)

	names[0] = "mutated"
	require.Equal(t, "Nightfox", ThemeNames()[0], "ThemeNames should return a copy")
}

func TestNextTheme(t *testing.T) {
	require.Equal(t, "Kanagawa", NextTheme("Nightfox"))
	require.Equal(t, "Slate", NextTheme("Kanagawa"))
	require.Equal(t, "Nightfox", NextTheme("Slate"))
	require.Equal(t, "Nightfox", NextTheme("Unknown"))
}

func TestGetTheme(t *testing.T) {
	require.Equal(t, "Slate", GetTheme("Slate").Name)
	require.Equal(t, "Nightfox", GetTheme("Unknown").Name, "unknown names fall back to Nightfox")

	for _, name := range ThemeNames() {
		th := GetTheme(name)
		require.NotEmpty(t, th.Text, "%s text color", name)
		require.NotEmpty(t, th.SelectionBg, "%s selection color", name)
	}
}
