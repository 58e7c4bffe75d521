package pagination

import "slices"

type Child[T any] struct {
	ID   string `json:"id"`
	Data T      `json:"data"`
}

// Page is the envelope every listing returns. Before and After are empty when
// the page touches the start or the end of the ordering.
type Page[T any] struct {
	Before   string     `json:"before"`
	After    string     `json:"after"`
	Children []Child[T] `json:"children"`
}

func (p Page[T]) Items() []T {
	out := make([]T, 0, len(p.Children))
	for _, c := range p.Children {
		out = append(out, c.Data)
	}
	return out
}

// Build turns the rows fetched for q into a page. Rows must be in q.Sort
// order and may contain the lookahead row.
func Build[T Item](rows []T, q Query) Page[T] {
	rows = slices.DeleteFunc(slices.Clone(rows), func(it T) bool { return it.Deleted() })

	size := q.PageSize
	if size <= 0 {
		size = len(rows)
	}

	more := len(rows) > size
	if more {
		rows = rows[:size]
	}
	if q.Direction == DirectionBefore {
		slices.Reverse(rows)
	}

	page := Page[T]{Children: toChildren(rows)}
	if len(rows) == 0 {
		return page
	}

	first, last := rows[0].ItemID(), rows[len(rows)-1].ItemID()
	switch q.Direction {
	case DirectionAfter:
		page.Before = first
		if more {
			page.After = last
		}
	case DirectionBefore:
		if more {
			page.Before = first
		}
		page.After = last
	default:
		if more {
			page.After = last
		}
	}
	return page
}

// Window pages over an ordered in-memory array with the same boundary rules
// as Build. An unknown anchor is ErrInvalidID.
func Window[T Item](items []T, limit int, before, after string) (Page[T], error) {
	if before != "" && after != "" {
		return Page[T]{}, ErrConflictingCursors
	}
	limit = ClampLimit(limit)

	live := slices.DeleteFunc(slices.Clone(items), func(it T) bool { return it.Deleted() })
	n := len(live)

	var (
		page       = Page[T]{Children: []Child[T]{}}
		start, end int
	)

	switch {
	case before != "":
		i := indexOf(live, before)
		if i < 0 {
			return Page[T]{}, ErrInvalidID
		}
		start, end = max(0, i-limit), i
		if start == end {
			return page, nil
		}
		if start > 0 {
			page.Before = live[start].ItemID()
		}
		// the anchor itself is still below the window
		page.After = live[end-1].ItemID()

	case after != "":
		i := indexOf(live, after)
		if i < 0 {
			return Page[T]{}, ErrInvalidID
		}
		start, end = i+1, min(n, i+limit+1)
		if start >= end {
			return page, nil
		}
		page.Before = live[start].ItemID()
		if end < n {
			page.After = live[end-1].ItemID()
		}

	default:
		start, end = 0, min(limit, n)
		if end == 0 {
			return page, nil
		}
		if end < n {
			page.After = live[end-1].ItemID()
		}
	}

	page.Children = toChildren(live[start:end])
	return page, nil
}

func indexOf[T Item](items []T, id string) int {
	return slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
}

func toChildren[T Item](rows []T) []Child[T] {
	out := make([]Child[T], 0, len(rows))
	for _, r := range rows {
		out = append(out, Child[T]{ID: r.ItemID(), Data: r})
	}
	return out
}
