package collector

import (
	"fmt"

	"TickerScope/internal/model"
)

// MarketDataSource defines the operations a market data provider must offer.
type MarketDataSource interface {
	GetInfo(ticker string) (*model.CompanyInfo, error)
	GetHistory(q model.Query) ([]model.PriceRecord, error)
	Name() string
}

// DataSourceError wraps any failure while retrieving price history.
// Network errors, rate limits and unknown tickers are not distinguished.
type DataSourceError struct {
	Source string
	Op     string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }
