package folio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-07-01", NewDate(2025, time.July, 1)},
		{"2025-7-1", NewDate(2025, time.July, 1)},
		{" 2024-12-31 ", NewDate(2024, time.December, 31)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Errorf("ParseDate(%q) error = nil, want error", "not-a-date")
	}
}

func TestParseDateRelative(t *testing.T) {
	today := Today()
	tests := []struct {
		in   string
		want Date
	}{
		{"-1d", today.Add(-1)},
		{"-2w", today.Add(-14)},
		{"+3d", today.Add(3)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDateAddNormalizes(t *testing.T) {
	got := NewDate(2025, time.January, 31).Add(1)
	want := NewDate(2025, time.February, 1)
	if got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 31)
	if got := a.DaysUntil(b); got != 30 {
		t.Errorf("DaysUntil() = %v, want 30", got)
	}
	if got := b.DaysUntil(a); got != -30 {
		t.Errorf("DaysUntil() reversed = %v, want -30", got)
	}
}

func TestStartOf(t *testing.T) {
	// 2025-07-16 is a Wednesday
	d := NewDate(2025, time.July, 16)
	tests := []struct {
		period Period
		want   Date
	}{
		{Daily, d},
		{Weekly, NewDate(2025, time.July, 14)},
		{Monthly, NewDate(2025, time.July, 1)},
		{Quarterly, NewDate(2025, time.July, 1)},
		{Yearly, NewDate(2025, time.January, 1)},
	}
	for _, tt := range tests {
		if got := d.StartOf(tt.period); got != tt.want {
			t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	// 2025-07-20 is a Sunday; weeks start on Monday
	d := NewDate(2025, time.July, 20)
	want := NewDate(2025, time.July, 14)
	if got := d.StartOf(Weekly); got != want {
		t.Errorf("StartOf(Weekly) = %v, want %v", got, want)
	}
}
