package validator

import (
	"fmt"
	"strconv"
	"strings"

	"TickerScope/internal/model"
)

// MaxDays is the largest accepted day-count period (~10 years).
const MaxDays = 3650

// PredefinedPeriods lists the lookback tags accepted verbatim by the providers.
var PredefinedPeriods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "max"}

// Reason classifies why an input was rejected.
type Reason int

const (
	ReasonEmpty Reason = iota
	ReasonUnrecognized
	ReasonTooSmall
	ReasonTooLarge
)

// InvalidInputError is returned for arguments the user has to correct.
type InvalidInputError struct {
	Reason Reason
	Input  string
	Msg    string
}

func (e *InvalidInputError) Error() string { return e.Msg }

// ValidateTicker trims and uppercases a ticker symbol.
func ValidateTicker(raw string) (string, error) {
	t := strings.TrimSpace(raw)
	if t == "" {
		return "", &InvalidInputError{Reason: ReasonEmpty, Input: raw, Msg: "ticker cannot be empty"}
	}
	return strings.ToUpper(t), nil
}

// ValidatePeriod returns the canonical period tag for raw: a lowercase
// predefined tag, or "<N>d" for an integer number of days in [1, MaxDays].
func ValidatePeriod(raw string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(raw))
	for _, tag := range PredefinedPeriods {
		if p == tag {
			return tag, nil
		}
	}

	days, err := strconv.Atoi(p)
	if err != nil {
		return "", &InvalidInputError{
			Reason: ReasonUnrecognized,
			Input:  raw,
			Msg: fmt.Sprintf("invalid period '%s'. Use a number of days (1-%d) or a predefined period: %s",
				raw, MaxDays, strings.Join(PredefinedPeriods, ", ")),
		}
	}
	if days < 1 {
		return "", &InvalidInputError{Reason: ReasonTooSmall, Input: raw, Msg: "number of days must be greater than 0"}
	}
	if days > MaxDays {
		return "", &InvalidInputError{
			Reason: ReasonTooLarge,
			Input:  raw,
			Msg:    fmt.Sprintf("maximum number of days is %d (~10 years). Use 'max' to get all available data", MaxDays),
		}
	}
	return fmt.Sprintf("%dd", days), nil
}

// NewQuery validates both arguments and builds a Query.
func NewQuery(rawTicker, rawPeriod string) (model.Query, error) {
	ticker, err := ValidateTicker(rawTicker)
	if err != nil {
		return model.Query{}, err
	}
	period, err := ValidatePeriod(rawPeriod)
	if err != nil {
		return model.Query{}, err
	}
	q := model.Query{Ticker: ticker, Period: period}
	if !isPredefined(period) {
		q.Days, _ = strconv.Atoi(strings.TrimSuffix(period, "d"))
	}
	return q, nil
}

func isPredefined(period string) bool {
	for _, tag := range PredefinedPeriods {
		if period == tag {
			return true
		}
	}
	return false
}
