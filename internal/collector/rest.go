package collector

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"TickerScope/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// RESTSource implements MarketDataSource against a generic JSON bars API.
type RESTSource struct {
	BaseURL string
	APIKey  string
	Client  *resty.Client
}

// NewRESTSource creates a new source with optional proxy support.
func NewRESTSource(baseURL, apiKey, proxyURL string) *RESTSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &RESTSource{BaseURL: baseURL, APIKey: apiKey, Client: client}
}

func (s *RESTSource) Name() string { return "rest" }

// restBar is the expected JSON shape of one bar.
type restBar struct {
	Timestamp int64           `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    int64           `json:"volume"`
}

type restProfile struct {
	LongName  string `json:"long_name"`
	ShortName string `json:"short_name"`
}

func (s *RESTSource) get(path string, params map[string]string, out interface{}) error {
	resp, err := s.Client.R().SetQueryParams(params).Get(path)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("fetch %s: status %d, body: %s", path, resp.StatusCode(), resp.String())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *RESTSource) GetInfo(ticker string) (*model.CompanyInfo, error) {
	var p restProfile
	if err := s.get("/api/v1/profile", map[string]string{"symbol": ticker}, &p); err != nil {
		return nil, err
	}
	return &model.CompanyInfo{LongName: p.LongName, ShortName: p.ShortName}, nil
}

func (s *RESTSource) GetHistory(q model.Query) ([]model.PriceRecord, error) {
	var bars []restBar
	params := map[string]string{"symbol": q.Ticker, "period": q.Period}
	if err := s.get("/api/v1/bars/daily", params, &bars); err != nil {
		return nil, &DataSourceError{Source: s.Name(), Op: "history", Err: err}
	}
	recs := make([]model.PriceRecord, len(bars))
	for i, b := range bars {
		recs[i] = model.PriceRecord{
			Date:   time.Unix(b.Timestamp, 0).UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
	return recs, nil
}
