package collector

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"TickerScope/internal/model"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	yahooBaseURL   = "https://query1.finance.yahoo.com"
	yahooChartPath = "/v8/finance/chart/{symbol}"
	defaultAgent   = "Mozilla/5.0"
)

// YahooSource implements MarketDataSource using the Yahoo Finance chart API.
type YahooSource struct {
	Client    *resty.Client
	SymbolMap map[string]string // maps user-facing symbol to Yahoo ticker
	Now       func() time.Time
}

// NewYahooSource creates a Yahoo Finance source with optional proxy support.
func NewYahooSource(proxyURL, userAgent string, symbolMap map[string]string) *YahooSource {
	if userAgent == "" {
		userAgent = defaultAgent
	}
	client := resty.New().
		SetBaseURL(yahooBaseURL).
		SetTimeout(30*time.Second).
		SetHeader("User-Agent", userAgent)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}

	m := map[string]string{
		"SPX500": "^GSPC",
		"SPX":    "^GSPC",
		"SP500":  "^GSPC",
	}
	for k, v := range symbolMap {
		m[k] = v
	}
	return &YahooSource{Client: client, SymbolMap: m, Now: time.Now}
}

func (s *YahooSource) Name() string { return "yahoo" }

func (s *YahooSource) yahooSymbol(symbol string) string {
	if mapped, ok := s.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

type yahooMeta struct {
	Symbol    string `json:"symbol"`
	LongName  string `json:"longName"`
	ShortName string `json:"shortName"`
	Timezone  string `json:"exchangeTimezoneName"`
	GMTOffset int    `json:"gmtoffset"`
}

// yahooChart is the response structure from Yahoo Finance chart API.
// Null entries (holidays, halts) decode as nil pointers.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta       yahooMeta `json:"meta"`
			Timestamp  []int64   `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (s *YahooSource) fetchChart(symbol string, params map[string]string) (*yahooChart, error) {
	resp, err := s.Client.R().
		SetPathParam("symbol", s.yahooSymbol(symbol)).
		SetQueryParams(params).
		Get(yahooChartPath)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}

	var chart yahooChart
	decodeErr := json.Unmarshal(resp.Body(), &chart)
	if decodeErr == nil && chart.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode(), resp.String())
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("yahoo decode: %w", decodeErr)
	}
	return &chart, nil
}

// GetInfo reads company names from the chart metadata block.
func (s *YahooSource) GetInfo(ticker string) (*model.CompanyInfo, error) {
	chart, err := s.fetchChart(ticker, map[string]string{"interval": "1d", "range": "1d"})
	if err != nil {
		return nil, err
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no metadata for %s", ticker)
	}
	meta := chart.Chart.Result[0].Meta
	return &model.CompanyInfo{LongName: meta.LongName, ShortName: meta.ShortName}, nil
}

// GetHistory returns daily records for the query period, oldest first.
func (s *YahooSource) GetHistory(q model.Query) ([]model.PriceRecord, error) {
	params := map[string]string{"interval": "1d", "events": "div,splits"}
	if q.IsDayCount() {
		end := s.Now()
		start := end.AddDate(0, 0, -q.Days)
		params["period1"] = strconv.FormatInt(start.Unix(), 10)
		params["period2"] = strconv.FormatInt(end.Unix(), 10)
	} else {
		params["range"] = q.Period
	}

	chart, err := s.fetchChart(q.Ticker, params)
	if err != nil {
		return nil, &DataSourceError{Source: s.Name(), Op: "history", Err: err}
	}
	return chartRecords(chart), nil
}

func chartRecords(chart *yahooChart) []model.PriceRecord {
	if len(chart.Chart.Result) == 0 {
		return []model.PriceRecord{}
	}
	result := chart.Chart.Result[0]
	if len(result.Timestamp) == 0 || len(result.Indicators.Quote) == 0 {
		return []model.PriceRecord{}
	}
	quote := result.Indicators.Quote[0]
	loc := time.FixedZone(result.Meta.Timezone, result.Meta.GMTOffset)

	recs := make([]model.PriceRecord, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o, okO := at(quote.Open, i)
		h, okH := at(quote.High, i)
		l, okL := at(quote.Low, i)
		c, okC := at(quote.Close, i)
		if !okO || !okH || !okL || !okC {
			continue // skip null bars
		}
		vol, _ := at(quote.Volume, i)
		recs = append(recs, model.PriceRecord{
			Date:   time.Unix(ts, 0).In(loc),
			Open:   decimal.NewFromFloat(o),
			High:   decimal.NewFromFloat(h),
			Low:    decimal.NewFromFloat(l),
			Close:  decimal.NewFromFloat(c),
			Volume: int64(vol),
		})
	}

	sort.Slice(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })
	return recs
}

func at(vals []*float64, i int) (float64, bool) {
	if i >= len(vals) || vals[i] == nil {
		return 0, false
	}
	return *vals[i], true
}
