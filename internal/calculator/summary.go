package calculator

import (
	"errors"

	"TickerScope/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateRange scans every record and returns the highest High and lowest Low.
func CalculateRange(records []model.PriceRecord) (high, low decimal.Decimal, err error) {
	if len(records) == 0 {
		return decimal.Zero, decimal.Zero, errors.New("no records provided")
	}
	high = records[0].High
	low = records[0].Low
	for _, r := range records[1:] {
		if r.High.GreaterThan(high) {
			high = r.High
		}
		if r.Low.LessThan(low) {
			low = r.Low
		}
	}
	return high, low, nil
}

// CalculateAverageVolume returns the arithmetic mean of the Volume column.
func CalculateAverageVolume(records []model.PriceRecord) (decimal.Decimal, error) {
	if len(records) == 0 {
		return decimal.Zero, errors.New("no records provided")
	}
	var sum int64
	for _, r := range records {
		sum += r.Volume
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(records)))), nil
}

// CalculatePercentChange returns (last - first) / first * 100.
func CalculatePercentChange(first, last decimal.Decimal) (decimal.Decimal, error) {
	if first.IsZero() {
		return decimal.Zero, errors.New("first close is zero, percent change undefined")
	}
	return last.Sub(first).Div(first).Mul(hundred), nil
}

// Summarize computes the summary statistics of a date-ascending series.
func Summarize(records []model.PriceRecord) (*model.SummaryStats, error) {
	if len(records) == 0 {
		return nil, errors.New("no records provided")
	}
	first := records[0]
	last := records[len(records)-1]

	pct, err := CalculatePercentChange(first.Close, last.Close)
	if err != nil {
		return nil, err
	}
	high, low, err := CalculateRange(records)
	if err != nil {
		return nil, err
	}
	avgVol, err := CalculateAverageVolume(records)
	if err != nil {
		return nil, err
	}

	return &model.SummaryStats{
		Records:        len(records),
		FirstDate:      first.Date,
		LastDate:       last.Date,
		FirstClose:     first.Close,
		LastClose:      last.Close,
		AbsoluteChange: last.Close.Sub(first.Close),
		PercentChange:  pct,
		MaxHigh:        high,
		MinLow:         low,
		AverageVolume:  avgVol,
	}, nil
}
