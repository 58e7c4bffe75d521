package pagination

import (
	"strings"
	"time"
)

type TimeKey string

const (
	TimeHour  TimeKey = "hour"
	TimeDay   TimeKey = "day"
	TimeWeek  TimeKey = "week"
	TimeMonth TimeKey = "month"
	TimeYear  TimeKey = "year"
	TimeAll   TimeKey = "all"
)

func ParseTimeKey(raw string) TimeKey {
	return TimeKey(strings.ToLower(strings.TrimSpace(raw)))
}

// WindowStart returns the lower bound of the window ending at now. Months and
// years are calendar units.
func WindowStart(key TimeKey, now time.Time) (time.Time, bool) {
	switch key {
	case TimeHour:
		return now.Add(-time.Hour), true
	case TimeDay:
		return now.AddDate(0, 0, -1), true
	case TimeWeek:
		return now.AddDate(0, 0, -7), true
	case TimeMonth:
		return now.AddDate(0, -1, 0), true
	case TimeYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// ResolveTimeWindow returns createdAt >= start for top sorts, nil otherwise.
func ResolveTimeWindow(key TimeKey, sort SortKey, now time.Time) *Condition {
	if sort != SortTop {
		return nil
	}
	start, ok := WindowStart(key, now)
	if !ok {
		return nil
	}
	return &Condition{Field: FieldCreatedAt, Op: OpGreaterOrEqual, Value: start}
}
