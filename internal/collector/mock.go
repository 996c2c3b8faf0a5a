package collector

import (
	"errors"
	"time"

	"TickerScope/internal/model"

	"github.com/shopspring/decimal"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Info       *model.CompanyInfo
	InfoErr    error
	Records    []model.PriceRecord
	HistoryErr error
	// Price seeds generated records when Records is nil.
	Price float64

	InfoCalls    int
	HistoryCalls int
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) GetInfo(_ string) (*model.CompanyInfo, error) {
	m.InfoCalls++
	if m.InfoErr != nil {
		return nil, m.InfoErr
	}
	if m.Info == nil {
		return nil, errors.New("mock: no company info")
	}
	return m.Info, nil
}

func (m *MockSource) GetHistory(q model.Query) ([]model.PriceRecord, error) {
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return nil, &DataSourceError{Source: m.Name(), Op: "history", Err: m.HistoryErr}
	}
	if m.Records != nil {
		return m.Records, nil
	}
	days := q.Days
	if days == 0 {
		days = 30
	}
	return GenerateMockRecords(m.Price, days), nil
}

// GenerateMockRecords builds count daily records drifting around basePrice.
func GenerateMockRecords(basePrice float64, count int) []model.PriceRecord {
	recs := make([]model.PriceRecord, count)
	start := time.Now().Truncate(24*time.Hour).AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p := decimal.NewFromFloat(basePrice * (1 + float64(i-count/2)*0.001))
		recs[i] = model.PriceRecord{
			Date:   start.AddDate(0, 0, i),
			Open:   p.Mul(decimal.NewFromFloat(0.999)),
			High:   p.Mul(decimal.NewFromFloat(1.005)),
			Low:    p.Mul(decimal.NewFromFloat(0.995)),
			Close:  p,
			Volume: 1000000,
		}
	}
	return recs
}
