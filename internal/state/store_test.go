package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_ZeroValue(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.HasChecked || snap.Online || snap.LastError != nil {
		t.Fatalf("zero snapshot = %#v, want unchecked", snap)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false before any check")
	}
}

func TestStore_UpdateSuccess(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update(nil)

	snap := s.Snapshot()
	if !snap.HasChecked || !snap.Online {
		t.Fatalf("snapshot = %#v, want checked and online", snap)
	}
	if snap.LastChecked.Before(before) {
		t.Fatalf("LastChecked = %v, want >= %v", snap.LastChecked, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestStore_UpdateErrorIsCloned(t *testing.T) {
	var s Store

	origErr := errors.New("boom")
	s.Update(origErr)

	snap := s.Snapshot()
	if snap.Online {
		t.Fatalf("Online = true after failed check")
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	s.Update(errors.New("fail 1"))
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Update(errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Update(errors.New("fail 3"))
	if got := s.Snapshot().ConsecutiveFailures; got != 3 {
		t.Fatalf("ConsecutiveFailures = %d, want 3", got)
	}

	// Success resets counter
	s.Update(nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsOffline() {
		t.Fatalf("snapshot after success = %#v, want online with no failures", snap)
	}
}
