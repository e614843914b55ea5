package dvdapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const apiTimestampLayout = "2006-01-02 15:04:05"

// RentalRequest mirrors the body of POST /api/rentals. A nil field is sent as
// null so the server decides how to reject it.
type RentalRequest struct {
	CustomerID  *int64 `json:"customer_id"`
	InventoryID *int64 `json:"inventory_id"`
	StaffID     *int64 `json:"staff_id"`
}

// RentalReceipt is the subset of the creation response the client reads.
type RentalReceipt struct {
	RentalID   int64  `json:"rental_id"`
	RentalDate string `json:"rental_date,omitempty"`
}

// OverdueRental mirrors an entry of /api/rentals/overdue.
type OverdueRental struct {
	RentalID     int64  `json:"rental_id"`
	FilmTitle    string `json:"film_title"`
	CustomerName string `json:"customer_name"`
	RentalDate   string `json:"rental_date"`
}

// ParsedRentalDate returns the rental date as time.Time when possible.
func (r OverdueRental) ParsedRentalDate() time.Time {
	return parseTime(r.RentalDate)
}

// FilmRentalCount mirrors an entry of /api/films/most-rented.
type FilmRentalCount struct {
	FilmTitle   string `json:"film_title"`
	RentalCount int64  `json:"rental_count"`
}

// StaffRevenue mirrors an entry of /api/staff/revenue.
type StaffRevenue struct {
	StaffName    string `json:"staff_name"`
	TotalRevenue Amount `json:"total_revenue"`
}

// Amount is a decimal kept as text. The API sends it as a string but a bare
// JSON number is accepted too.
type Amount string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(n.String())
	return nil
}

// CustomerRental mirrors an entry of /api/customers/{id}/rentals.
type CustomerRental struct {
	RentalID   int64   `json:"rental_id"`
	FilmTitle  string  `json:"film_title"`
	RentalDate string  `json:"rental_date"`
	ReturnDate *string `json:"return_date"`
}

// Returned reports whether the rental carries a return date.
func (r CustomerRental) Returned() bool {
	return r.ReturnDate != nil && *r.ReturnDate != ""
}

// ParsedRentalDate returns the rental date as time.Time when possible.
func (r CustomerRental) ParsedRentalDate() time.Time {
	return parseTime(r.RentalDate)
}

// ParsedReturnDate returns the return date, or the zero time when absent.
func (r CustomerRental) ParsedReturnDate() time.Time {
	if r.ReturnDate == nil {
		return time.Time{}
	}
	return parseTime(*r.ReturnDate)
}

// ParseTime parses the timestamp formats the API is known to emit.
func ParseTime(value string) time.Time {
	return parseTime(value)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	for _, layout := range []string{apiTimestampLayout, time.DateOnly} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
