package report

import (
	"fmt"
	"io"
	"log"
	"time"

	"TickerScope/internal/calculator"
	"TickerScope/internal/collector"
	"TickerScope/internal/model"
)

// DefaultTableRows is the number of sessions shown in the price table.
const DefaultTableRows = 20

// Outcome describes how a successful run ended.
type Outcome int

const (
	OutcomeReported Outcome = iota
	OutcomeNoData
)

// Generator fetches history for a query and renders the text report.
type Generator struct {
	Source    collector.MarketDataSource
	Out       io.Writer
	TableRows int
	Now       func() time.Time
}

// NewGenerator creates a Generator writing to out.
func NewGenerator(src collector.MarketDataSource, out io.Writer) *Generator {
	return &Generator{Source: src, Out: out, TableRows: DefaultTableRows, Now: time.Now}
}

// Run executes one report. History failures are returned as
// *collector.DataSourceError; an empty series yields OutcomeNoData.
func (g *Generator) Run(q model.Query) (Outcome, error) {
	fmt.Fprint(g.Out, FormatHeader(q.Ticker, q.Period, g.Now()))

	// Company metadata is cosmetic; failures only warn.
	if info, err := g.Source.GetInfo(q.Ticker); err != nil {
		log.Printf("[WARN] %s info for %s failed: %v", g.Source.Name(), q.Ticker, err)
		fmt.Fprintf(g.Out, "⚠️  Warning: could not fetch company information for %s\n\n", q.Ticker)
	} else {
		fmt.Fprintf(g.Out, "📈 %s (%s)\n\n", info.DisplayName(q.Ticker), q.Ticker)
	}

	fmt.Fprintln(g.Out, "Fetching historical data...")
	records, err := g.Source.GetHistory(q)
	if err != nil {
		return OutcomeReported, err
	}
	if len(records) == 0 {
		fmt.Fprint(g.Out, FormatNoData(q.Ticker, q.Period))
		return OutcomeNoData, nil
	}
	log.Printf("[INFO] %s returned %d records for %s (%s)", g.Source.Name(), len(records), q.Ticker, q.Period)

	stats, err := calculator.Summarize(records)
	if err != nil {
		return OutcomeReported, fmt.Errorf("summarize %s: %w", q.Ticker, err)
	}

	fmt.Fprint(g.Out, FormatSummary(stats))
	fmt.Fprint(g.Out, FormatTable(q.Period, records, g.TableRows))
	return OutcomeReported, nil
}
