package dvdapi

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	if parseTime("").IsZero() != true {
		t.Fatalf("parseTime on empty should be zero")
	}
	if ParseTime("2005-05-24T22:53:30Z").IsZero() {
		t.Fatalf("parseTime should parse RFC3339")
	}
	got := parseTime("2005-05-24 22:53:30")
	if got.Year() != 2005 || got.Month() != time.May || got.Day() != 24 {
		t.Fatalf("parseTime = %v, want 2005-05-24", got)
	}
	if parseTime("2005-05-24").IsZero() {
		t.Fatalf("parseTime should parse date-only values")
	}
	if !parseTime("yesterday").IsZero() {
		t.Fatalf("parseTime should return zero for garbage")
	}
}

func TestAmountAcceptsStringOrNumber(t *testing.T) {
	var rows []StaffRevenue
	payload := `[{"staff_name":"a","total_revenue":"10.50"},{"staff_name":"b","total_revenue":7.25},{"staff_name":"c","total_revenue":null}]`
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rows[0].TotalRevenue != "10.50" || rows[1].TotalRevenue != "7.25" || rows[2].TotalRevenue != "" {
		t.Fatalf("amounts = %q/%q/%q", rows[0].TotalRevenue, rows[1].TotalRevenue, rows[2].TotalRevenue)
	}

	var bad StaffRevenue
	if err := json.Unmarshal([]byte(`{"total_revenue":true}`), &bad); err == nil {
		t.Fatalf("boolean amount should fail")
	}
}

func TestCustomerRentalReturnDate(t *testing.T) {
	empty := ""
	if (CustomerRental{ReturnDate: &empty}).Returned() {
		t.Fatalf("empty return date should not count as returned")
	}
	date := "2005-06-01 09:00:00"
	r := CustomerRental{ReturnDate: &date}
	if !r.Returned() || r.ParsedReturnDate().IsZero() {
		t.Fatalf("return date %q should parse", date)
	}
}
