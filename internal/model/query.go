package model

// Query is a validated history request.
type Query struct {
	Ticker string
	Period string // predefined tag ("1mo", "max") or day-count tag ("30d")
	Days   int    // N for day-count tags, 0 for predefined tags
}

// IsDayCount reports whether the period was given as a number of days.
func (q Query) IsDayCount() bool { return q.Days > 0 }
