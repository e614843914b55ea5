// Package config loads the rental desk configuration.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/rentdesk/config.toml)
//  3. RENTDESK_* environment variables
//  4. Command-line flags, applied by the caller
//
// A missing file is not an error. A file that exists but cannot be parsed is.
//
// # Fields
//
//	api_host        = "http://dvd-api.local"   # RENTDESK_API_HOST
//	request_timeout = "10s"                    # RENTDESK_REQUEST_TIMEOUT
//	locale          = "es"                     # RENTDESK_LOCALE (es or en)
//	log_dir         = "~/.local/share/rentdesk/logs"  # RENTDESK_LOG_DIR
//	health_interval = "15s"                    # RENTDESK_HEALTH_INTERVAL, 0 disables
//	otel_endpoint   = ""                       # RENTDESK_OTEL_ENDPOINT, empty disables tracing
//
// Durations use time.ParseDuration syntax. Paths starting with ~ are expanded
// to the user's home directory and made absolute.
//
// # Errors
//
//   - "open config: ..." when the file exists but cannot be opened
//   - "read config: ..." on I/O failure
//   - "parse config: ..." on invalid TOML or durations
//   - "parse env: ..." on malformed environment values
package config
