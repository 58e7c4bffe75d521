package pagination

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	abcd := items("A", "B", "C", "D")

	tests := []struct {
		name       string
		items      []testItem
		limit      int
		before     string
		after      string
		wantIDs    []string
		wantBefore string
		wantAfter  string
		wantErr    error
	}{
		{
			name:      "first page",
			items:     items("A", "B", "C"),
			limit:     2,
			wantIDs:   []string{"A", "B"},
			wantAfter: "B",
		},
		{
			name:    "first page holds everything",
			items:   items("A", "B"),
			limit:   5,
			wantIDs: []string{"A", "B"},
		},
		{
			name:       "after with items beyond",
			items:      abcd,
			limit:      1,
			after:      "B",
			wantIDs:    []string{"C"},
			wantBefore: "C",
			wantAfter:  "C",
		},
		{
			name:       "after reaching the end",
			items:      abcd,
			limit:      5,
			after:      "B",
			wantIDs:    []string{"C", "D"},
			wantBefore: "C",
		},
		{
			name:    "after last element",
			items:   abcd,
			limit:   2,
			after:   "D",
			wantIDs: []string{},
		},
		{
			name:      "before reaching the start",
			items:     abcd,
			limit:     5,
			before:    "C",
			wantIDs:   []string{"A", "B"},
			wantAfter: "B",
		},
		{
			name:       "before inside",
			items:      abcd,
			limit:      1,
			before:     "C",
			wantIDs:    []string{"B"},
			wantBefore: "B",
			wantAfter:  "B",
		},
		{
			name:       "before last element keeps after on the last taken",
			items:      abcd,
			limit:      2,
			before:     "D",
			wantIDs:    []string{"B", "C"},
			wantBefore: "B",
			wantAfter:  "C",
		},
		{
			name:    "before first element",
			items:   abcd,
			limit:   3,
			before:  "A",
			wantIDs: []string{},
		},
		{
			name:    "empty array",
			limit:   3,
			wantIDs: []string{},
		},
		{
			name:    "both cursors",
			items:   abcd,
			limit:   1,
			before:  "A",
			after:   "B",
			wantErr: ErrConflictingCursors,
		},
		{
			name:    "unknown before",
			items:   abcd,
			limit:   1,
			before:  "not-a-real-id",
			wantErr: ErrInvalidID,
		},
		{
			name:    "unknown after",
			items:   abcd,
			limit:   1,
			after:   "nope",
			wantErr: ErrInvalidID,
		},
		{
			name:    "deleted anchor is unknown",
			items:   []testItem{{id: "A"}, {id: "B", deleted: true}, {id: "C"}},
			limit:   1,
			after:   "B",
			wantErr: ErrInvalidID,
		},
		{
			name:      "deleted entries are skipped",
			items:     []testItem{{id: "A"}, {id: "B", deleted: true}, {id: "C"}, {id: "D"}},
			limit:     2,
			wantIDs:   []string{"A", "C"},
			wantAfter: "C",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Window(tt.items, tt.limit, tt.before, tt.after)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantIDs, childIDs(page))
			require.Equal(t, tt.wantBefore, page.Before)
			require.Equal(t, tt.wantAfter, page.After)
		})
	}
}

func TestWindow_ErrorMessages(t *testing.T) {
	t.Parallel()

	_, err := Window(items("A", "B"), 1, "A", "B")
	require.EqualError(t, err, "Can't set before and after")

	_, err = Window(items("A", "B"), 1, "not-a-real-id", "")
	require.EqualError(t, err, "Invalid id")
}

func TestWindow_RoundTrip(t *testing.T) {
	t.Parallel()

	all := items("A", "B", "C", "D", "E", "F", "G")

	for limit := 1; limit <= 8; limit++ {
		var (
			got   []string
			after string
		)
		for i := 0; i < 20; i++ {
			page, err := Window(all, limit, "", after)
			require.NoError(t, err)
			got = append(got, childIDs(page)...)
			if page.After == "" {
				break
			}
			after = page.After
		}
		require.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, got, "limit %d", limit)
	}
}

// fetch emulates a store: filter, sort and limit.
func fetch(all []testItem, q Query) []testItem {
	out := make([]testItem, 0)
	for _, it := range all {
		if Match(it, q) {
			out = append(out, it)
		}
	}
	Sort(out, q.Sort)
	if len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func list(all []testItem, req Request) Page[testItem] {
	now := time.Now()
	opts := Options{Sort: SortOptions{Best: FieldNumberOfVotes}}

	var cur *ResolvedCursor
	if dir, _ := req.Direction(); dir != DirectionUnspecified {
		idx := slices.IndexFunc(all, func(it testItem) bool { return it.id == req.Anchor() })
		if idx >= 0 {
			cur = NewCursor(all[idx], opts.Order(req), dir)
		}
	}
	q := Assemble(req, opts, cur, now)
	return Build(fetch(all, q), q)
}

func voteItems() []testItem {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	// duplicated vote counts and timestamps exercise the id tiebreak
	return []testItem{
		{id: "01", createdAt: base, votes: 5},
		{id: "02", createdAt: base.Add(time.Minute), votes: 3},
		{id: "03", createdAt: base.Add(time.Minute), votes: 5},
		{id: "04", createdAt: base.Add(2 * time.Minute), votes: 1},
		{id: "05", createdAt: base.Add(3 * time.Minute), votes: 5},
		{id: "06", createdAt: base.Add(3 * time.Minute), votes: 3},
		{id: "07", createdAt: base.Add(4 * time.Minute), votes: 0, deleted: true},
		{id: "08", createdAt: base.Add(5 * time.Minute), votes: 8},
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	t.Parallel()

	all := voteItems()

	for _, sort := range []SortKey{SortNew, SortOld, SortTop} {
		live := make([]testItem, 0)
		for _, it := range all {
			if !it.deleted {
				live = append(live, it)
			}
		}
		Sort(live, SortTerms(ResolveSort(sort, SortOptions{})))
		var want []string
		for _, it := range live {
			want = append(want, it.id)
		}

		for limit := 1; limit <= 8; limit++ {
			t.Run(string(sort), func(t *testing.T) {
				var (
					forward []string
					last    Page[testItem]
				)
				req := Request{Sort: sort, Limit: limit}
				for i := 0; i < 20; i++ {
					page := list(all, req)
					forward = append(forward, childIDs(page)...)
					last = page
					if page.After == "" {
						break
					}
					req.After = page.After
				}
				require.Equal(t, want, forward, "forward limit %d", limit)

				// walk back from the last page
				backward := childIDs(last)
				req = Request{Sort: sort, Limit: limit, Before: last.Before}
				for i := 0; i < 20 && req.Before != ""; i++ {
					page := list(all, req)
					backward = append(childIDs(page), backward...)
					req.Before = page.Before
				}
				require.Equal(t, want, backward, "backward limit %d", limit)
			})
		}
	}
}

func TestBuild_Boundaries(t *testing.T) {
	t.Parallel()

	all := voteItems()

	first := list(all, Request{Limit: 3})
	require.Equal(t, []string{"08", "06", "05"}, childIDs(first))
	require.Empty(t, first.Before)
	require.Equal(t, "05", first.After)

	t.Run("cursor exclusivity", func(t *testing.T) {
		for _, it := range all {
			for _, req := range []Request{{Before: it.id, Limit: 100}, {After: it.id, Limit: 100}} {
				page := list(all, req)
				require.NotContains(t, childIDs(page), it.id)
			}
		}
	})

	t.Run("before first item is empty", func(t *testing.T) {
		page := list(all, Request{Before: "08", Limit: 3})
		require.Empty(t, page.Children)
		require.Empty(t, page.Before)
		require.Empty(t, page.After)
	})

	t.Run("after last item is empty", func(t *testing.T) {
		page := list(all, Request{After: "01", Limit: 3})
		require.Empty(t, page.Children)
		require.Empty(t, page.Before)
		require.Empty(t, page.After)
	})

	t.Run("before reaching start", func(t *testing.T) {
		page := list(all, Request{Before: "05", Limit: 5})
		require.Equal(t, []string{"08", "06"}, childIDs(page))
		require.Empty(t, page.Before)
		require.Equal(t, "06", page.After)
	})

	t.Run("after reaching end", func(t *testing.T) {
		page := list(all, Request{After: "03", Limit: 5})
		require.Equal(t, []string{"02", "01"}, childIDs(page))
		require.Equal(t, "02", page.Before)
		require.Empty(t, page.After)
	})

	t.Run("unknown anchor serves first page", func(t *testing.T) {
		page := list(all, Request{After: "zz", Limit: 3})
		require.Equal(t, childIDs(first), childIDs(page))
	})
}

func TestBuild_DropsDeletedRows(t *testing.T) {
	t.Parallel()

	rows := []testItem{{id: "a"}, {id: "b", deleted: true}, {id: "c"}}
	page := Build(rows, Query{PageSize: 5})
	require.Equal(t, []string{"a", "c"}, childIDs(page))
	require.Empty(t, page.Before)
	require.Empty(t, page.After)
	require.Equal(t, []testItem{{id: "a"}, {id: "c"}}, page.Items())
}
