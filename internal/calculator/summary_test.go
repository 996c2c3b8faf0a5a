package calculator

import (
	"testing"
	"time"

	"TickerScope/internal/model"

	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func makeRecords(closes []float64) []model.PriceRecord {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	recs := make([]model.PriceRecord, len(closes))
	for i, c := range closes {
		recs[i] = model.PriceRecord{
			Date:   start.AddDate(0, 0, i),
			Open:   d(c - 1),
			High:   d(c + 2),
			Low:    d(c - 3),
			Close:  d(c),
			Volume: int64(1000 * (i + 1)),
		}
	}
	return recs
}

func TestSummarize(t *testing.T) {
	recs := makeRecords([]float64{100, 102, 98, 105, 110})
	s, err := Summarize(recs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checks := []struct {
		name string
		got  decimal.Decimal
		want decimal.Decimal
	}{
		{"FirstClose", s.FirstClose, d(100)},
		{"LastClose", s.LastClose, d(110)},
		{"AbsoluteChange", s.AbsoluteChange, d(10)},
		{"PercentChange", s.PercentChange, d(10)},
		{"MaxHigh", s.MaxHigh, d(112)},
		{"MinLow", s.MinLow, d(95)},
		{"AverageVolume", s.AverageVolume, d(3000)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if s.PercentChange.StringFixed(2) != "10.00" {
		t.Errorf("PercentChange formatted = %s, want 10.00", s.PercentChange.StringFixed(2))
	}
	if s.Records != 5 || !s.FirstDate.Equal(recs[0].Date) || !s.LastDate.Equal(recs[4].Date) {
		t.Errorf("unexpected bounds: %+v", s)
	}
}

func TestSummarize_Negative(t *testing.T) {
	s, err := Summarize(makeRecords([]float64{200, 150}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.AbsoluteChange.Equal(d(-50)) {
		t.Errorf("AbsoluteChange = %s, want -50", s.AbsoluteChange)
	}
	if !s.PercentChange.Equal(d(-25)) {
		t.Errorf("PercentChange = %s, want -25", s.PercentChange)
	}
}

func TestSummarize_ZeroFirstClose(t *testing.T) {
	if _, err := Summarize(makeRecords([]float64{0, 10})); err == nil {
		t.Error("expected error for zero first close")
	}
}

func TestSummarize_Empty(t *testing.T) {
	if _, err := Summarize(nil); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestCalculateRange_Single(t *testing.T) {
	h, l, err := CalculateRange(makeRecords([]float64{50}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.Equal(d(52)) || !l.Equal(d(47)) {
		t.Errorf("range = %s/%s, want 52/47", h, l)
	}
}
