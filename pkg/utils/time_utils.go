package utils

import (
	"fmt"
	"time"
)

// Period keys for usage buckets. All calendar math is done in the server's
// local zone at day granularity, matching the streak rules.

func DayKey(t time.Time) string { return t.Format("2006-01-02") }

func MonthKey(t time.Time) string { return t.Format("2006-01") }

func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsYesterday reports whether a falls on the calendar day immediately before
// b. Elapsed hours are irrelevant; only day boundaries count.
func IsYesterday(a, b time.Time) bool {
	return SameCalendarDay(a, b.AddDate(0, 0, -1))
}

func NowISO() string { return time.Now().Format(time.RFC3339) }
