package ui

// Terminal width thresholds for responsive layouts.
const (
	// layoutCompactWidth is the threshold below which the header drops the
	// title and the report cards stack vertically.
	layoutCompactWidth = 100

	// reportCardWidth is the preferred width of each general report card.
	reportCardWidth = 48
)

func compact(width int) bool {
	return width > 0 && width < layoutCompactWidth
}
