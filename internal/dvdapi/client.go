package dvdapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// API defines the rental operations the UI performs.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	Health(ctx context.Context) error
	CreateRental(ctx context.Context, req RentalRequest) (RentalReceipt, error)
	OverdueRentals(ctx context.Context) ([]OverdueRental, error)
	ReturnRental(ctx context.Context, rentalID int64) error
	CancelRental(ctx context.Context, rentalID int64) error
	MostRentedFilms(ctx context.Context) ([]FilmRentalCount, error)
	StaffRevenue(ctx context.Context) ([]StaffRevenue, error)
	CustomerRentals(ctx context.Context, customerID int64) ([]CustomerRental, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the DVD rental HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultAPIHost is the host the rental API is published on.
	DefaultAPIHost        = "http://dvd-api.local"
	DefaultRequestTimeout = 10 * time.Second
	defaultUserAgent      = "rentdesk/0.1"
)

var tracer = otel.Tracer("github.com/five82/rentdesk/internal/dvdapi")

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for the given API host. A bare host:port is
// treated as plain http.
func NewClient(apiHost string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiHost)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: DefaultRequestTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Health checks that the API answers its liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, "/health", "/health", nil, nil)
}

// CreateRental registers a new rental and returns the server receipt.
func (c *Client) CreateRental(ctx context.Context, req RentalRequest) (RentalReceipt, error) {
	if c == nil {
		return RentalReceipt{}, fmt.Errorf("client is nil")
	}
	var receipt RentalReceipt
	if err := c.do(ctx, http.MethodPost, "/api/rentals", "/api/rentals", req, &receipt); err != nil {
		return RentalReceipt{}, err
	}
	return receipt, nil
}

// OverdueRentals lists rentals that have not been returned yet.
func (c *Client) OverdueRentals(ctx context.Context) ([]OverdueRental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []OverdueRental
	if err := c.do(ctx, http.MethodGet, "/api/rentals/overdue", "/api/rentals/overdue", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// ReturnRental marks a rental as returned. Only the status code is checked.
func (c *Client) ReturnRental(ctx context.Context, rentalID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	path := "/api/rentals/" + strconv.FormatInt(rentalID, 10) + "/return"
	return c.do(ctx, http.MethodPut, "/api/rentals/{id}/return", path, nil, nil)
}

// CancelRental deletes a rental. Only the status code is checked.
func (c *Client) CancelRental(ctx context.Context, rentalID int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	path := "/api/rentals/" + strconv.FormatInt(rentalID, 10)
	return c.do(ctx, http.MethodDelete, "/api/rentals/{id}", path, nil, nil)
}

// MostRentedFilms returns the most rented films in server order.
func (c *Client) MostRentedFilms(ctx context.Context) ([]FilmRentalCount, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []FilmRentalCount
	if err := c.do(ctx, http.MethodGet, "/api/films/most-rented", "/api/films/most-rented", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// StaffRevenue returns the revenue collected by each staff member.
func (c *Client) StaffRevenue(ctx context.Context) ([]StaffRevenue, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []StaffRevenue
	if err := c.do(ctx, http.MethodGet, "/api/staff/revenue", "/api/staff/revenue", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CustomerRentals returns the rental history of one customer.
func (c *Client) CustomerRentals(ctx context.Context, customerID int64) ([]CustomerRental, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	path := "/api/customers/" + strconv.FormatInt(customerID, 10) + "/rentals"
	var payload []CustomerRental
	if err := c.do(ctx, http.MethodGet, "/api/customers/{id}/rentals", path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Code)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

func (c *Client) do(ctx context.Context, method, route, path string, body, dest any) (err error) {
	ctx, span := tracer.Start(ctx, method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("http.route", route),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiHost string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiHost)
	if trimmed == "" {
		trimmed = DefaultAPIHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api host %q: %w", apiHost, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api host %q: missing host", apiHost)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
