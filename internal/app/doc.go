// Package app is the composition root of the rental desk.
//
// Run wires everything together in this order:
//
//  1. config.Load, then command-line overrides (-api, -locale)
//  2. Redirect the standard logger to <log_dir>/rentdesk.log via tea.LogToFile,
//     since the terminal belongs to the TUI
//  3. telemetry.Setup (no-op unless otel_endpoint is set)
//  4. dvdapi.NewClient with the configured request timeout
//  5. prefs.Load for the saved theme
//  6. StartPoller, which probes /health into a state.Store
//     (skipped when health_interval is 0)
//  7. ui.Run, which blocks until the user quits or ctx is cancelled
//
// # Poller
//
//	┌──────────────────────────────┐
//	│ StartPoller() goroutine      │
//	│  ├─> client.Health(ctx)      │
//	│  └─> store.Update(err)       │
//	│      └─> UI reads Snapshot() │
//	└──────────────────────────────┘
//
// The poller runs at a fixed cadence with no backoff. Failures are logged and
// counted. Errors caused by shutdown are dropped so a cancelled context never
// flips the header to OFFLINE on the way out.
package app
