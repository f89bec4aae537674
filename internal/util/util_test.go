package util

import "testing"

func TestClampInt(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, 0},
		{42, 42},
		{150, 100},
	}
	for _, tt := range tests {
		if got := ClampInt(tt.in, 0, 100); got != tt.want {
			t.Errorf("ClampInt(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSafeRatio(t *testing.T) {
	if got := SafeRatio(3, 0); got != 0 {
		t.Fatalf("expected 0 for zero denominator, got %v", got)
	}
	if got := SafeRatio(3, 2); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
}

func TestTruncateStringRunes(t *testing.T) {
	if got := TruncateString("halo dunia", 4); got != "halo..." {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := TruncateString("hai", 10); got != "hai" {
		t.Fatalf("expected untouched string, got %q", got)
	}
}

func TestCompactStrings(t *testing.T) {
	got := CompactStrings([]string{" a ", "", "  ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestDayKeyUsesWIB(t *testing.T) {
	day, err := ParseDay("2025-11-10")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := DayKey(day); got != "2025-11-10" {
		t.Fatalf("expected round trip, got %s", got)
	}
}
