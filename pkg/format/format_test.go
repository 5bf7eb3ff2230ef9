package format

import (
	"strings"
	"testing"
)

func TestCurrencySymbolPrefix(t *testing.T) {
	if got := Currency(99.9, "₹"); got != "₹99.90" {
		t.Fatalf("expected ₹99.90, got %q", got)
	}
	if got := Currency(5, "Rs."); got != "Rs.5.00" {
		t.Fatalf("expected Rs.5.00, got %q", got)
	}
}

func TestCurrencyDefaultsToDollar(t *testing.T) {
	if got := Currency(12.5, ""); got != "$12.50" {
		t.Fatalf("expected $12.50, got %q", got)
	}
}

func TestCurrencyISOCode(t *testing.T) {
	got := Currency(100, "USD")
	if !strings.Contains(got, "100.00") {
		t.Fatalf("expected 2-decimal amount in %q", got)
	}
	if !strings.Contains(got, "$") {
		t.Fatalf("expected dollar symbol in %q", got)
	}
}

func TestCurrencyLowercaseIsLiteral(t *testing.T) {
	// Only exact 3-letter uppercase strings are ISO codes.
	if got := Currency(10, "usd"); got != "usd10.00" {
		t.Fatalf("expected literal prefix, got %q", got)
	}
}

func TestCurrencyUnknownISOFallsBack(t *testing.T) {
	if got := Currency(10, "ZZZ"); got != "ZZZ10.00" {
		t.Fatalf("expected prefix fallback for unknown code, got %q", got)
	}
}

func TestCurrencyNegative(t *testing.T) {
	if got := Currency(-42, "€"); got != "€-42.00" {
		t.Fatalf("expected €-42.00, got %q", got)
	}
}

func TestDateLevels(t *testing.T) {
	if got := Date("2026-03-14", DateShort); got != "Mar 14, 2026" {
		t.Fatalf("short: got %q", got)
	}
	if got := Date("2026-03-14", DateMedium); got != "Mar 14, 2026" {
		t.Fatalf("medium: got %q", got)
	}
	if got := Date("2026-03-14", DateLong); got != "March 14, 2026" {
		t.Fatalf("long: got %q", got)
	}
}

func TestDatePassThrough(t *testing.T) {
	if got := Date("not-a-date", DateMedium); got != "not-a-date" {
		t.Fatalf("expected verbatim pass-through, got %q", got)
	}
	if got := Date("", DateMedium); got != "" {
		t.Fatalf("expected empty for empty input, got %q", got)
	}
}
