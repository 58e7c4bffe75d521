package pagination

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
	MinLimit     = 1
)

var (
	ErrConflictingCursors = errors.New("Can't set before and after")
	ErrInvalidID          = errors.New("Invalid id")
)

// Request is one listing call as decoded from the query string.
type Request struct {
	Before string
	After  string
	Limit  int
	Sort   SortKey
	Time   TimeKey
}

// ParseRequest decodes before, after, limit, sort and time.
func ParseRequest(q url.Values) Request {
	return Request{
		Before: strings.TrimSpace(q.Get("before")),
		After:  strings.TrimSpace(q.Get("after")),
		Limit:  ResolveLimit(q.Get("limit")),
		Sort:   ParseSortKey(q.Get("sort")),
		Time:   ParseTimeKey(q.Get("time")),
	}
}

// Direction returns which side of the anchor the request pages to, or
// ErrConflictingCursors when both cursors are set.
func (r Request) Direction() (Direction, error) {
	switch {
	case r.Before != "" && r.After != "":
		return DirectionUnspecified, ErrConflictingCursors
	case r.Before != "":
		return DirectionBefore, nil
	case r.After != "":
		return DirectionAfter, nil
	default:
		return DirectionUnspecified, nil
	}
}

// Anchor returns the cursor id matching Direction.
func (r Request) Anchor() string {
	if r.Before != "" {
		return r.Before
	}
	return r.After
}

// PageSize is Limit clamped to the allowed range; zero means default.
func (r Request) PageSize() int {
	if r.Limit == 0 {
		return DefaultLimit
	}
	return ClampLimit(r.Limit)
}

// ResolveLimit parses a client supplied limit. It never fails.
func ResolveLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if strings.HasPrefix(raw, "-") {
				return MinLimit
			}
			return MaxLimit
		}
		return DefaultLimit
	}
	return ClampLimit(n)
}

func ClampLimit(n int) int {
	if n > MaxLimit {
		return MaxLimit
	}
	if n < MinLimit {
		return MinLimit
	}
	return n
}
