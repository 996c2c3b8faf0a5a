package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"TickerScope/internal/collector"
	"TickerScope/internal/report"
	"TickerScope/internal/validator"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// App wires a data source to the report generator for one invocation.
type App struct {
	Source    collector.MarketDataSource
	Stdout    io.Writer
	Stderr    io.Writer
	TableRows int
	Now       func() time.Time
}

// Run parses args (without the program name), runs the report and returns
// the process exit code.
func (a *App) Run(args []string) int {
	fs := flag.NewFlagSet("tickerscope", flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(a.Stdout, Usage())
			return ExitOK
		}
		fmt.Fprint(a.Stderr, Usage())
		return ExitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintf(a.Stderr, "expected 2 arguments (ticker, period), got %d\n\n", fs.NArg())
		fmt.Fprint(a.Stderr, Usage())
		return ExitUsage
	}

	q, err := validator.NewQuery(fs.Arg(0), fs.Arg(1))
	if err != nil {
		return a.fail(err)
	}

	gen := report.NewGenerator(a.Source, a.Stdout)
	if a.TableRows > 0 {
		gen.TableRows = a.TableRows
	}
	if a.Now != nil {
		gen.Now = a.Now
	}
	if _, err := gen.Run(q); err != nil {
		return a.fail(err)
	}
	return ExitOK
}

// fail maps an error kind to its message template and exit code.
func (a *App) fail(err error) int {
	var invalid *validator.InvalidInputError
	if errors.As(err, &invalid) {
		fmt.Fprintf(a.Stdout, "❌ Validation error: %s\n", invalid.Msg)
		return ExitError
	}

	fmt.Fprintf(a.Stdout, "❌ Error fetching data: %v\n", err)
	fmt.Fprint(a.Stdout, Remediation())
	return ExitError
}

// Remediation lists the generic hints printed after a retrieval failure.
func Remediation() string {
	var b strings.Builder
	b.WriteString("\nPossible solutions:\n")
	b.WriteString("- Check your internet connection\n")
	b.WriteString("- Confirm the ticker is correct\n")
	b.WriteString("- Try a shorter period\n")
	b.WriteString("- Wait a few minutes before trying again\n")
	return b.String()
}

// Usage returns the help text.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: tickerscope <ticker> <period>\n\n")
	b.WriteString("Query historical stock prices.\n\n")
	b.WriteString("positional arguments:\n")
	b.WriteString("  ticker   ticker symbol (e.g. AAPL, GOOGL, TSLA)\n")
	b.WriteString(fmt.Sprintf("  period   number of days (1-%d) or predefined period (%s)\n\n",
		validator.MaxDays, strings.Join(validator.PredefinedPeriods, ", ")))
	b.WriteString("Examples:\n")
	b.WriteString("  tickerscope AAPL 30      # Apple, last 30 days\n")
	b.WriteString("  tickerscope GOOGL max    # Google, all available data\n")
	b.WriteString("  tickerscope TSLA 1y      # Tesla, last year (predefined period)\n")
	b.WriteString("  tickerscope MSFT 365     # Microsoft, last 365 days\n\n")
	b.WriteString("Limitations:\n")
	b.WriteString("- Intraday data: only the last 7-60 days\n")
	b.WriteString("- Historical data: up to ~10 years, or use 'max'\n")
	b.WriteString("- Avoid many queries in a row (risk of being blocked)\n")
	return b.String()
}
