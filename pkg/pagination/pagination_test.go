package pagination

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testItem struct {
	id        string
	createdAt time.Time
	votes     int64
	deleted   bool
}

func (i testItem) ItemID() string { return i.id }
func (i testItem) Deleted() bool  { return i.deleted }

func (i testItem) Value(f Field) (any, bool) {
	switch f {
	case FieldCreatedAt:
		return i.createdAt, true
	case FieldNumberOfVotes:
		return i.votes, true
	default:
		return nil, false
	}
}

func items(ids ...string) []testItem {
	out := make([]testItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, testItem{id: id})
	}
	return out
}

func childIDs[T any](p Page[T]) []string {
	out := make([]string, 0, len(p.Children))
	for _, c := range p.Children {
		out = append(out, c.ID)
	}
	return out
}

func TestResolveLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "empty", raw: "", want: 25},
		{name: "garbage", raw: "abc", want: 25},
		{name: "float", raw: "2.5", want: 25},
		{name: "regular", raw: "42", want: 42},
		{name: "padded", raw: " 7 ", want: 7},
		{name: "upper bound", raw: "100", want: 100},
		{name: "above max", raw: "101", want: 100},
		{name: "overflow", raw: "99999999999999999999999", want: 100},
		{name: "negative overflow", raw: "-99999999999999999999999", want: 1},
		{name: "zero", raw: "0", want: 1},
		{name: "negative", raw: "-5", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveLimit(tt.raw))
		})
	}
}

func TestClampLimit(t *testing.T) {
	t.Parallel()

	for n := -300; n <= 300; n++ {
		got := ClampLimit(n)
		switch {
		case n > 100:
			require.Equal(t, 100, got)
		case n <= 0:
			require.Equal(t, 1, got)
		default:
			require.Equal(t, n, got)
		}
	}
}

func TestParseRequest(t *testing.T) {
	t.Parallel()

	q := url.Values{}
	q.Set("after", " abc ")
	q.Set("limit", "500")
	q.Set("sort", "TOP")
	q.Set("time", "Week")

	req := ParseRequest(q)
	require.Equal(t, Request{After: "abc", Limit: 100, Sort: SortTop, Time: TimeWeek}, req)

	dir, err := req.Direction()
	require.NoError(t, err)
	require.Equal(t, DirectionAfter, dir)
	require.Equal(t, "abc", req.Anchor())

	empty := ParseRequest(url.Values{})
	require.Equal(t, 25, empty.PageSize())
}

func TestRequest_Direction(t *testing.T) {
	t.Parallel()

	_, err := Request{Before: "a", After: "b"}.Direction()
	require.ErrorIs(t, err, ErrConflictingCursors)
	require.EqualError(t, err, "Can't set before and after")

	dir, err := Request{Before: "a"}.Direction()
	require.NoError(t, err)
	require.Equal(t, DirectionBefore, dir)

	dir, err = Request{}.Direction()
	require.NoError(t, err)
	require.Equal(t, DirectionUnspecified, dir)
}

func TestResolveSort(t *testing.T) {
	t.Parallel()

	posts := SortOptions{Best: FieldNumberOfVotes}
	messages := SortOptions{Fixed: true}
	conversations := SortOptions{Default: Order{Field: FieldLatestDate, Direction: Descending}, Fixed: true}
	subreddits := SortOptions{Fields: []Field{FieldCreatedAt, FieldNumberOfViews}}

	tests := []struct {
		name string
		key  SortKey
		opts SortOptions
		want Order
	}{
		{name: "new", key: SortNew, want: Order{FieldCreatedAt, Descending}},
		{name: "old", key: SortOld, want: Order{FieldCreatedAt, Ascending}},
		{name: "hot", key: SortHot, want: Order{FieldHotScore, Descending}},
		{name: "best default", key: SortBest, want: Order{FieldBestScore, Descending}},
		{name: "best posts", key: SortBest, opts: posts, want: Order{FieldNumberOfVotes, Descending}},
		{name: "top", key: SortTop, want: Order{FieldNumberOfVotes, Descending}},
		{name: "trending", key: SortTrending, want: Order{FieldNumberOfViews, Descending}},
		{name: "empty", key: "", want: NaturalOrder},
		{name: "unknown", key: "random", want: NaturalOrder},
		{name: "fixed ignores key", key: SortOld, opts: messages, want: NaturalOrder},
		{name: "fixed custom default", key: SortTop, opts: conversations, want: Order{FieldLatestDate, Descending}},
		{name: "unstored hot falls back", key: SortHot, opts: subreddits, want: NaturalOrder},
		{name: "unstored best falls back", key: SortBest, opts: subreddits, want: NaturalOrder},
		{name: "unstored top falls back", key: SortTop, opts: subreddits, want: NaturalOrder},
		{name: "stored trending", key: SortTrending, opts: subreddits, want: Order{FieldNumberOfViews, Descending}},
		{name: "stored old", key: SortOld, opts: subreddits, want: Order{FieldCreatedAt, Ascending}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveSort(tt.key, tt.opts))
		})
	}
}

func TestCursorOperator(t *testing.T) {
	t.Parallel()

	require.Equal(t, OpLessThan, CursorOperator(DirectionBefore, Ascending))
	require.Equal(t, OpGreaterThan, CursorOperator(DirectionBefore, Descending))
	require.Equal(t, OpGreaterThan, CursorOperator(DirectionAfter, Ascending))
	require.Equal(t, OpLessThan, CursorOperator(DirectionAfter, Descending))
}

func TestNewCursor(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	anchor := testItem{id: "x", createdAt: now, votes: 9}

	cur := NewCursor(anchor, NaturalOrder, DirectionAfter)
	require.Equal(t, &ResolvedCursor{
		Field:     FieldCreatedAt,
		Value:     now,
		Operator:  OpLessThan,
		AnchorID:  "x",
		Direction: DirectionAfter,
	}, cur)

	require.Nil(t, NewCursor(anchor, NaturalOrder, DirectionUnspecified))
	require.Nil(t, NewCursor(testItem{id: "gone", deleted: true}, NaturalOrder, DirectionBefore))

	t.Run("missing field falls back to id", func(t *testing.T) {
		cur := NewCursor(anchor, Order{Field: FieldHotScore, Direction: Descending}, DirectionBefore)
		require.Equal(t, FieldID, cur.Field)
		require.Equal(t, "x", cur.Value)
		require.Equal(t, OpGreaterThan, cur.Operator)
	})
}

func TestResolveTimeWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		key  TimeKey
		sort SortKey
		want *time.Time
	}{
		{name: "hour", key: TimeHour, sort: SortTop, want: ptr(now.Add(-time.Hour))},
		{name: "day", key: TimeDay, sort: SortTop, want: ptr(time.Date(2024, 3, 30, 10, 0, 0, 0, time.UTC))},
		{name: "week", key: TimeWeek, sort: SortTop, want: ptr(time.Date(2024, 3, 24, 10, 0, 0, 0, time.UTC))},
		{name: "calendar month", key: TimeMonth, sort: SortTop, want: ptr(now.AddDate(0, -1, 0))},
		{name: "calendar year", key: TimeYear, sort: SortTop, want: ptr(time.Date(2023, 3, 31, 10, 0, 0, 0, time.UTC))},
		{name: "all", key: TimeAll, sort: SortTop},
		{name: "empty", key: "", sort: SortTop},
		{name: "not top", key: TimeDay, sort: SortNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTimeWindow(tt.key, tt.sort, now)
			if tt.want == nil {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, FieldCreatedAt, got.Field)
			require.Equal(t, OpGreaterOrEqual, got.Op)
			require.Equal(t, *tt.want, got.Value)
		})
	}
}

func TestTimeWindow_DayExcludesOlderItems(t *testing.T) {
	t.Parallel()

	now := time.Now()
	fresh := testItem{id: "fresh", createdAt: now.Add(-time.Hour)}
	stale := testItem{id: "stale", createdAt: now.Add(-25 * time.Hour)}

	q := Assemble(Request{Sort: SortTop, Time: TimeDay}, Options{}, nil, now)
	require.True(t, Match(fresh, q))
	require.False(t, Match(stale, q))
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	opts := Options{Scope: []Condition{Eq(FieldSubredditID, "r1")}}

	t.Run("first page", func(t *testing.T) {
		q := Assemble(Request{Limit: 10}, opts, nil, now)
		require.Equal(t, []Condition{Eq(FieldSubredditID, "r1")}, q.Where)
		require.Nil(t, q.Keyset)
		require.Equal(t, []SortTerm{{FieldCreatedAt, Descending}, {FieldID, Descending}}, q.Sort)
		require.Equal(t, 11, q.Limit)
		require.Equal(t, 10, q.PageSize)
		require.Equal(t, DirectionUnspecified, q.Direction)
	})

	t.Run("before reverses fetch order", func(t *testing.T) {
		cur := &ResolvedCursor{Field: FieldCreatedAt, Value: now, Operator: OpGreaterThan, AnchorID: "a", Direction: DirectionBefore}
		q := Assemble(Request{Before: "a"}, opts, cur, now)
		require.Equal(t, []SortTerm{{FieldCreatedAt, Ascending}, {FieldID, Ascending}}, q.Sort)
		require.Equal(t, &Keyset{Field: FieldCreatedAt, Op: OpGreaterThan, Value: now, AnchorID: "a"}, q.Keyset)
		require.Equal(t, NaturalOrder, q.Order)
		require.Equal(t, 26, q.Limit)
	})

	t.Run("top adds time window", func(t *testing.T) {
		q := Assemble(Request{Sort: SortTop, Time: TimeHour}, opts, nil, now)
		require.Len(t, q.Where, 2)
		require.Equal(t, Condition{Field: FieldCreatedAt, Op: OpGreaterOrEqual, Value: now.Add(-time.Hour)}, q.Where[1])
		require.Equal(t, []SortTerm{{FieldNumberOfVotes, Descending}, {FieldID, Descending}}, q.Sort)
	})

	t.Run("fixed collections skip time window", func(t *testing.T) {
		q := Assemble(Request{Sort: SortTop, Time: TimeHour}, Options{Sort: SortOptions{Fixed: true}}, nil, now)
		require.Empty(t, q.Where)
		require.Equal(t, NaturalOrder, q.Order)
	})

	t.Run("top without votes skips time window", func(t *testing.T) {
		restricted := Options{Sort: SortOptions{Fields: []Field{FieldCreatedAt, FieldNumberOfViews}}}
		q := Assemble(Request{Sort: SortTop, Time: TimeHour}, restricted, nil, now)
		require.Empty(t, q.Where)
		require.Equal(t, NaturalOrder, q.Order)
		require.Equal(t, []SortTerm{{FieldCreatedAt, Descending}, {FieldID, Descending}}, q.Sort)
	})

	t.Run("id order has no tiebreak", func(t *testing.T) {
		q := Assemble(Request{}, Options{Sort: SortOptions{Default: Order{Field: FieldID, Direction: Ascending}}}, nil, now)
		require.Equal(t, []SortTerm{{FieldID, Ascending}}, q.Sort)
	})
}

func TestSortOptions_Supports(t *testing.T) {
	t.Parallel()

	require.True(t, SortOptions{}.Supports(FieldHotScore))

	opts := SortOptions{Fields: []Field{FieldCreatedAt}}
	require.True(t, opts.Supports(FieldCreatedAt))
	require.True(t, opts.Supports(FieldID))
	require.False(t, opts.Supports(FieldHotScore))
}

func TestComparable(t *testing.T) {
	t.Parallel()

	for _, v := range []any{time.Now(), int64(1), 1, 1.5, "a", true} {
		require.True(t, Comparable(v), "%T", v)
	}
	for _, v := range []any{nil, int32(1), &time.Time{}, []string{"a"}} {
		require.False(t, Comparable(v), "%T", v)
	}
}

func ptr[T any](v T) *T { return &v }
