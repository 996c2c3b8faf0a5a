package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord represents a single trading session.
type PriceRecord struct {
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}

// CompanyInfo holds descriptive metadata for a ticker.
type CompanyInfo struct {
	LongName  string
	ShortName string
}

// DisplayName returns the long name, then the short name, then fallback.
func (c *CompanyInfo) DisplayName(fallback string) string {
	if c == nil {
		return fallback
	}
	if c.LongName != "" {
		return c.LongName
	}
	if c.ShortName != "" {
		return c.ShortName
	}
	return fallback
}

// SummaryStats holds aggregate statistics over a price series.
type SummaryStats struct {
	Records        int
	FirstDate      time.Time
	LastDate       time.Time
	FirstClose     decimal.Decimal
	LastClose      decimal.Decimal
	AbsoluteChange decimal.Decimal
	PercentChange  decimal.Decimal
	MaxHigh        decimal.Decimal
	MinLow         decimal.Decimal
	AverageVolume  decimal.Decimal
}
