package pagination

import "time"

type Operator int

const (
	OpEq Operator = iota
	OpGreaterThan
	OpLessThan
	OpGreaterOrEqual
	OpLessOrEqual
	// OpIn: the field equals one of Value ([]string).
	OpIn
	// OpHas: the array field contains Value (string).
	OpHas
	// OpContains: case-insensitive substring match of Value (string).
	OpContains
	// OpNotSet: the field is absent, null or empty.
	OpNotSet
)

func (o Operator) String() string {
	switch o {
	case OpEq:
		return "="
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	case OpGreaterOrEqual:
		return ">="
	case OpLessOrEqual:
		return "<="
	case OpIn:
		return "IN"
	case OpHas:
		return "HAS"
	case OpContains:
		return "CONTAINS"
	case OpNotSet:
		return "NOT SET"
	default:
		return "?"
	}
}

type Condition struct {
	Field Field
	Op    Operator
	Value any
}

func Eq(f Field, v any) Condition { return Condition{Field: f, Op: OpEq, Value: v} }

// Keyset selects items strictly beyond an anchor in (Field, _id) order:
// (Field Op Value) OR (Field = Value AND _id Op AnchorID).
// With Field == FieldID it is just _id Op AnchorID.
type Keyset struct {
	Field    Field
	Op       Operator
	Value    any
	AnchorID string
}

type SortTerm struct {
	Field     Field
	Direction SortDirection
}

// Query is everything a store needs for one page. Soft-deleted records are
// always excluded by the store, it is not part of Where.
type Query struct {
	Where  []Condition
	Keyset *Keyset
	// Sort is the fetch order: for before pages it is the reverse of Order.
	Sort []SortTerm
	// Limit includes one lookahead row.
	Limit int

	Order     Order
	PageSize  int
	Direction Direction
}

// Options are the collection defaults and the request scope.
type Options struct {
	Sort  SortOptions
	Scope []Condition
}

// Order resolves the order active for req.
func (o Options) Order(req Request) Order {
	return ResolveSort(req.Sort, o.Sort)
}

// Assemble combines scope, time window, cursor, sort and limit into a Query.
func Assemble(req Request, opts Options, cur *ResolvedCursor, now time.Time) Query {
	order := opts.Order(req)
	size := req.PageSize()

	where := make([]Condition, 0, len(opts.Scope)+1)
	where = append(where, opts.Scope...)
	// no time window when top falls back to the default order
	if !opts.Sort.Fixed && opts.Sort.Supports(FieldNumberOfVotes) {
		if w := ResolveTimeWindow(req.Time, req.Sort, now); w != nil {
			where = append(where, *w)
		}
	}

	q := Query{
		Where:    where,
		Sort:     SortTerms(order),
		Limit:    size + 1,
		Order:    order,
		PageSize: size,
	}

	if cur != nil {
		q.Keyset = cur.Keyset()
		q.Direction = cur.Direction
		if cur.Direction == DirectionBefore {
			for i := range q.Sort {
				q.Sort[i].Direction = q.Sort[i].Direction.Reverse()
			}
		}
	}

	return q
}

// SortTerms returns the order with an _id tiebreak in the same direction.
func SortTerms(order Order) []SortTerm {
	terms := []SortTerm{{Field: order.Field, Direction: order.Direction}}
	if order.Field != FieldID {
		terms = append(terms, SortTerm{Field: FieldID, Direction: order.Direction})
	}
	return terms
}
