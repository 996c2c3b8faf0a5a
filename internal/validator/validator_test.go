package validator

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTicker(t *testing.T) {
	cases := map[string]string{
		"aapl":     "AAPL",
		"  msft  ": "MSFT",
		"Brk-B":    "BRK-B",
		"^gspc":    "^GSPC",
	}
	for in, want := range cases {
		got, err := ValidateTicker(in)
		if err != nil {
			t.Fatalf("ValidateTicker(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ValidateTicker(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateTicker_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := ValidateTicker(in)
		var iie *InvalidInputError
		if !errors.As(err, &iie) {
			t.Fatalf("ValidateTicker(%q): expected InvalidInputError, got %v", in, err)
		}
		if iie.Reason != ReasonEmpty {
			t.Errorf("ValidateTicker(%q): reason = %v, want ReasonEmpty", in, iie.Reason)
		}
	}
}

func TestValidatePeriod_Predefined(t *testing.T) {
	cases := map[string]string{
		"1d":   "1d",
		"5D":   "5d",
		" 1mo": "1mo",
		"MAX":  "max",
		"10Y":  "10y",
	}
	for in, want := range cases {
		got, err := ValidatePeriod(in)
		if err != nil {
			t.Fatalf("ValidatePeriod(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ValidatePeriod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePeriod_Days(t *testing.T) {
	cases := map[string]string{
		"1":    "1d",
		"30":   "30d",
		"365":  "365d",
		"3650": "3650d",
	}
	for in, want := range cases {
		got, err := ValidatePeriod(in)
		if err != nil {
			t.Fatalf("ValidatePeriod(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ValidatePeriod(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidatePeriod_Invalid(t *testing.T) {
	cases := []struct {
		in     string
		reason Reason
	}{
		{"0", ReasonTooSmall},
		{"-5", ReasonTooSmall},
		{"3651", ReasonTooLarge},
		{"abc", ReasonUnrecognized},
		{"1w", ReasonUnrecognized},
		{"", ReasonUnrecognized},
	}
	for _, tc := range cases {
		_, err := ValidatePeriod(tc.in)
		var iie *InvalidInputError
		if !errors.As(err, &iie) {
			t.Fatalf("ValidatePeriod(%q): expected InvalidInputError, got %v", tc.in, err)
		}
		if iie.Reason != tc.reason {
			t.Errorf("ValidatePeriod(%q): reason = %v, want %v", tc.in, iie.Reason, tc.reason)
		}
	}
}

func TestValidatePeriod_UnrecognizedListsPeriods(t *testing.T) {
	_, err := ValidatePeriod("abc")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, tag := range PredefinedPeriods {
		if !strings.Contains(err.Error(), tag) {
			t.Errorf("message %q does not mention %q", err.Error(), tag)
		}
	}
}

func TestNewQuery(t *testing.T) {
	q, err := NewQuery(" tsla ", "1Y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Ticker != "TSLA" || q.Period != "1y" || q.IsDayCount() {
		t.Errorf("unexpected query: %+v", q)
	}

	q, err = NewQuery("msft", "365")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Period != "365d" || q.Days != 365 {
		t.Errorf("unexpected query: %+v", q)
	}

	if _, err := NewQuery("", "1y"); err == nil {
		t.Error("expected error for empty ticker")
	}
	if _, err := NewQuery("AAPL", "9999"); err == nil {
		t.Error("expected error for out-of-range period")
	}
}
