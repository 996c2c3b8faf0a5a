package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"TickerScope/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// FormatHeader formats the report title and the resolved period.
func FormatHeader(ticker, period string, at time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== Historical prices for %s - %s ===\n", ticker, at.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Period queried: %s\n\n", period))
	return b.String()
}

// FormatSummary formats the record count, date bounds and summary block.
func FormatSummary(s *model.SummaryStats) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n📊 Records retrieved: %d\n", s.Records))
	b.WriteString(fmt.Sprintf("Range: %s to %s\n\n", s.FirstDate.Format(dateLayout), s.LastDate.Format(dateLayout)))

	b.WriteString("💰 Period summary:\n")
	b.WriteString(fmt.Sprintf("   Starting price: %s\n", money(s.FirstClose)))
	b.WriteString(fmt.Sprintf("   Final price: %s\n", money(s.LastClose)))
	b.WriteString(fmt.Sprintf("   Total change: %s (%s%%)\n", money(s.AbsoluteChange), signed(s.PercentChange)))
	b.WriteString(fmt.Sprintf("   Highest price: %s\n", money(s.MaxHigh)))
	b.WriteString(fmt.Sprintf("   Lowest price: %s\n", money(s.MinLow)))
	b.WriteString(fmt.Sprintf("   Average volume: %s\n", humanize.Comma(s.AverageVolume.Round(0).IntPart())))
	return b.String()
}

// FormatTable renders the OHLCV table. Only the last maxRows records are
// shown when there are more, preceded by a truncation notice.
func FormatTable(period string, records []model.PriceRecord, maxRows int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\n📈 Price history (%s):\n", period))

	rows := records
	if maxRows > 0 && len(records) > maxRows {
		b.WriteString(fmt.Sprintf("(Showing the last %d sessions)\n", maxRows))
		rows = records[len(records)-maxRows:]
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tOpen\tHigh\tLow\tClose\tVolume\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t\n",
			r.Date.Format(dateLayout),
			r.Open.StringFixed(2), r.High.StringFixed(2), r.Low.StringFixed(2), r.Close.StringFixed(2),
			r.Volume)
	}
	tw.Flush()
	return b.String()
}

// FormatNoData explains an empty history response.
func FormatNoData(ticker, period string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("❌ No data found for %s in period %s\n", ticker, period))
	b.WriteString("\nPossible causes:\n")
	b.WriteString("- Ticker is wrong or does not exist\n")
	b.WriteString("- Period too wide for this ticker\n")
	b.WriteString("- Connection problems\n")
	return b.String()
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
