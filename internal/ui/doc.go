// Package ui provides the Bubble Tea terminal interface for Rentdesk.
//
// # Architecture Overview
//
// The root Model is a thin shell that holds a single View value and exactly
// one mounted screen. There is no routing, no URL state and no store shared
// between screens: each screen keeps its own state and throws it away when
// the operator switches views. Switching back mounts a fresh screen, which
// re-fetches everything it shows.
//
// # Screens
//
//   - Rent form: three numeric ids posted to /api/rentals
//   - Returns: overdue rentals with return and cancel actions; every
//     successful mutation re-fetches the whole list
//   - Reports: most-rented films and staff revenue loaded concurrently,
//     plus a per-customer rental history search
//
// # Request Lifecycle
//
// Screens never block. An action returns a tea.Cmd that performs one
// request through dvdapi.API and reports back with a message. The shell tags
// every command with the id of the mount that issued it and hands each
// screen a context that is cancelled on unmount, so a response that arrives
// after a view switch is dropped instead of being written into the new
// screen. Screens that can issue overlapping requests (list reloads and
// history searches) additionally keep a sequence number and ignore
// responses that are not the latest.
//
// # Key Bindings
//
//   - F1/F2/F3 or ctrl+←/→: switch views
//   - tab/shift+tab: move between rent form fields
//   - enter: submit, return the selected rental, or search
//   - x: cancel the selected rental (asks for confirmation)
//   - r: reload the current list or reports
//   - T: cycle theme (saved to the preferences file)
//   - ?: help
//   - q or ctrl+c: quit
package ui
