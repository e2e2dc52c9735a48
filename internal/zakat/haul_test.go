package zakat

import (
	"errors"
	"testing"
	"time"
)

var haulNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func startDaysAgo(days int) string {
	return haulNow.AddDate(0, 0, -days).Format("2006-01-02")
}

func TestHaulStatusDueAtExactlyLunarYear(t *testing.T) {
	status, err := HaulStatus(startDaysAgo(354), haulNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.IsDue {
		t.Fatal("expected due at exactly 354 days")
	}
	if status.ProgressPercent != 100 {
		t.Fatalf("expected 100%%, got %d", status.ProgressPercent)
	}
	if status.DaysRemaining != 0 {
		t.Fatalf("expected 0 days remaining, got %d", status.DaysRemaining)
	}
	if status.Message == "" {
		t.Fatal("expected a due message")
	}
}

func TestHaulStatusHalfway(t *testing.T) {
	status, err := HaulStatus(startDaysAgo(177), haulNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.IsDue {
		t.Fatal("177 days must not be due")
	}
	if status.ProgressPercent != 50 {
		t.Fatalf("expected floor progress 50, got %d", status.ProgressPercent)
	}
	if status.DaysRemaining != 354-177 {
		t.Fatalf("expected %d days remaining, got %d", 354-177, status.DaysRemaining)
	}
}

func TestHaulStatusTable(t *testing.T) {
	tests := []struct {
		name         string
		daysAgo      int
		wantDue      bool
		wantProgress int
	}{
		{"fresh start", 0, false, 0},
		{"one day", 1, false, 0},
		{"hundred days", 100, false, 28}, // floor(100/354*100)
		{"one short", 353, false, 99},
		{"well past due", 500, true, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := HaulStatus(startDaysAgo(tt.daysAgo), haulNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if status.IsDue != tt.wantDue {
				t.Fatalf("expected due=%v, got %v", tt.wantDue, status.IsDue)
			}
			if status.ProgressPercent != tt.wantProgress {
				t.Fatalf("expected progress %d, got %d", tt.wantProgress, status.ProgressPercent)
			}
			if status.DaysRemaining < 0 {
				t.Fatalf("days remaining must never be negative, got %d", status.DaysRemaining)
			}
		})
	}
}

func TestHaulStatusDueDate(t *testing.T) {
	status, err := HaulStatus("2024-01-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 354).Format("2006-01-02")
	if status.DueDate != want {
		t.Fatalf("expected due date %s, got %s", want, status.DueDate)
	}
}

func TestHaulStatusRejectsFutureStart(t *testing.T) {
	future := haulNow.AddDate(0, 0, 2).Format("2006-01-02")
	_, err := HaulStatus(future, haulNow)
	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("expected InvalidDateError, got %v", err)
	}
	if dateErr.Field != "haul_start_date" {
		t.Fatalf("expected haul_start_date, got %q", dateErr.Field)
	}
}

func TestHaulStatusRejectsUnparseableDate(t *testing.T) {
	for _, bad := range []string{"", "15/06/2025", "2025-13-40", "yesterday"} {
		_, err := HaulStatus(bad, haulNow)
		var dateErr *InvalidDateError
		if !errors.As(err, &dateErr) {
			t.Fatalf("input %q: expected InvalidDateError, got %v", bad, err)
		}
	}
}

func TestHaulStatusIdempotent(t *testing.T) {
	a, err := HaulStatus(startDaysAgo(200), haulNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := HaulStatus(startDaysAgo(200), haulNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Fatalf("identical inputs produced different outputs: %+v vs %+v", a, b)
	}
}
