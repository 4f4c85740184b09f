package figures

import (
	"strings"
	"time"
)

// Period is the temporal bucket size of a summary row. It affects tick-label
// formatting and the guard's yearly bypass, never the data shape.
type Period string

const (
	PeriodDaily    Period = "daily"
	PeriodBiweekly Period = "biweekly"
	PeriodMonthly  Period = "monthly"
	PeriodYearly   Period = "yearly"
)

// ParsePeriod normalizes a period string case-insensitively. Empty or
// unrecognized values fall back to daily so that the guard and the tick
// planner stay total functions.
func ParsePeriod(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "biweekly":
		return PeriodBiweekly
	case "monthly":
		return PeriodMonthly
	case "yearly":
		return PeriodYearly
	default:
		return PeriodDaily
	}
}

// Label formats a tick label for this granularity. Biweekly and anything
// unrecognized use the daily format.
func (p Period) Label(t time.Time) string {
	switch p {
	case PeriodMonthly:
		return t.Format("January 2006")
	case PeriodYearly:
		return t.Format("2006")
	default:
		return t.Format("02 Jan 2006")
	}
}
