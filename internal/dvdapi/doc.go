// Package dvdapi provides an HTTP client for the DVD rental API.
//
// # Overview
//
// The client wraps the handful of JSON endpoints the rental desk uses:
//
//   - GET /health: liveness probe used by the status poller
//   - POST /api/rentals: create a rental
//   - GET /api/rentals/overdue: rentals still out
//   - PUT /api/rentals/{id}/return: mark a rental returned
//   - DELETE /api/rentals/{id}: cancel a rental
//   - GET /api/films/most-rented: top films report
//   - GET /api/staff/revenue: revenue per staff member
//   - GET /api/customers/{id}/rentals: one customer's history
//
// # Client Usage
//
//	client, err := dvdapi.NewClient("http://dvd-api.local", dvdapi.WithTimeout(5*time.Second))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//	receipt, err := client.CreateRental(ctx, req)
//
// # Error Handling
//
// Success is any 2xx status. Anything else is reported as *StatusError and
// response bodies of failed calls are never parsed. Transport failures are
// wrapped as "execute request: ..." and malformed JSON as
// "decode response: ...".
//
// Mutating calls (return, cancel) only check the status code; whatever the
// server sends back is discarded.
//
// # Tracing
//
// Every request runs inside a client span from the global OpenTelemetry
// tracer provider and carries W3C trace context headers. With no provider
// installed the spans are no-ops.
//
// # Thread Safety
//
// Client is safe for concurrent use.
package dvdapi
