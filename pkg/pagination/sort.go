package pagination

import (
	"slices"
	"strings"
)

// Field names a value an Item exposes to the engine. The set is closed: items
// resolve it through a switch in Value, stores map it to a column or a key.
type Field string

const (
	FieldID            Field = "_id"
	FieldCreatedAt     Field = "createdAt"
	FieldNumberOfVotes Field = "numberOfVotes"
	FieldHotScore      Field = "hotScore"
	FieldBestScore     Field = "bestScore"
	FieldNumberOfViews Field = "numberOfViews"
	FieldLatestDate    Field = "latestDate"

	// scoping fields, never used as an order
	FieldSubredditID  Field = "subredditId"
	FieldPostID       Field = "postId"
	FieldParentID     Field = "parentId"
	FieldAuthorID     Field = "authorId"
	FieldSenderID     Field = "senderId"
	FieldReceiverID   Field = "receiverId"
	FieldUserID       Field = "userId"
	FieldParticipants Field = "participants"
	FieldCategory     Field = "category"
	FieldTitle        Field = "title"
)

func (f Field) String() string { return string(f) }

type SortKey string

const (
	SortNew      SortKey = "new"
	SortOld      SortKey = "old"
	SortHot      SortKey = "hot"
	SortBest     SortKey = "best"
	SortTop      SortKey = "top"
	SortTrending SortKey = "trending"
)

// ParseSortKey lowercases the raw value. Unknown keys are kept as is and fall
// back to the collection default in ResolveSort.
func ParseSortKey(raw string) SortKey {
	return SortKey(strings.ToLower(strings.TrimSpace(raw)))
}

type SortDirection int

const (
	Descending SortDirection = iota
	Ascending
)

func (d SortDirection) Reverse() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d SortDirection) String() string {
	if d == Ascending {
		return "ASC"
	}
	return "DESC"
}

// Order is a concrete field and direction.
type Order struct {
	Field     Field
	Direction SortDirection
}

// SortOptions are the per-collection sort defaults.
type SortOptions struct {
	// Default is the natural order used for an empty or unknown key.
	Default Order
	// Best is the field ranked by "best": bestScore for comments,
	// numberOfVotes for posts.
	Best Field
	// Fixed collections ignore the key entirely.
	Fixed bool
	// Fields lists the order fields the collection stores. A key resolving to
	// any other field falls back to Default. Empty means every field.
	Fields []Field
}

// Supports reports whether f can order the collection. The id always can.
func (o SortOptions) Supports(f Field) bool {
	return len(o.Fields) == 0 || f == FieldID || slices.Contains(o.Fields, f)
}

// NaturalOrder is createdAt descending.
var NaturalOrder = Order{Field: FieldCreatedAt, Direction: Descending}

// ResolveSort maps a symbolic key to a concrete order.
func ResolveSort(key SortKey, opts SortOptions) Order {
	def := opts.Default
	if def.Field == "" {
		def = NaturalOrder
	}
	if opts.Fixed {
		return def
	}

	order := keyOrder(key, opts.Best)
	if order.Field == "" || !opts.Supports(order.Field) {
		return def
	}
	return order
}

func keyOrder(key SortKey, best Field) Order {
	switch key {
	case SortNew:
		return Order{Field: FieldCreatedAt, Direction: Descending}
	case SortOld:
		return Order{Field: FieldCreatedAt, Direction: Ascending}
	case SortHot:
		return Order{Field: FieldHotScore, Direction: Descending}
	case SortBest:
		if best == "" {
			best = FieldBestScore
		}
		return Order{Field: best, Direction: Descending}
	case SortTop:
		return Order{Field: FieldNumberOfVotes, Direction: Descending}
	case SortTrending:
		return Order{Field: FieldNumberOfViews, Direction: Descending}
	default:
		return Order{}
	}
}
