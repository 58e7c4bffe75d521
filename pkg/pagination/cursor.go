package pagination

type Direction int

const (
	DirectionUnspecified Direction = iota
	DirectionAfter
	DirectionBefore
)

func (d Direction) String() string {
	switch d {
	case DirectionAfter:
		return "after"
	case DirectionBefore:
		return "before"
	default:
		return "none"
	}
}

// ResolvedCursor is the boundary derived from an anchor item. It is computed
// per request and never stored.
type ResolvedCursor struct {
	Field     Field
	Value     any
	Operator  Operator
	AnchorID  string
	Direction Direction
}

// CursorOperator returns the operator selecting items beyond the anchor:
// before means the items rendered above the anchor in the active order,
// after the items rendered below it.
func CursorOperator(dir Direction, sort SortDirection) Operator {
	switch {
	case dir == DirectionBefore && sort == Ascending:
		return OpLessThan
	case dir == DirectionBefore:
		return OpGreaterThan
	case sort == Ascending:
		return OpGreaterThan
	default:
		return OpLessThan
	}
}

// NewCursor reads the order field off the anchor. A nil result means the
// anchor cannot bound the page and the caller should serve a first page.
func NewCursor(anchor Item, order Order, dir Direction) *ResolvedCursor {
	if dir == DirectionUnspecified || anchor == nil || anchor.Deleted() {
		return nil
	}

	cur := &ResolvedCursor{
		Field:     order.Field,
		Operator:  CursorOperator(dir, order.Direction),
		AnchorID:  anchor.ItemID(),
		Direction: dir,
	}

	if order.Field == FieldID {
		cur.Value = anchor.ItemID()
		return cur
	}

	v, ok := anchor.Value(order.Field)
	if !ok {
		// no sort field on this item: compare raw identifiers instead
		cur.Field = FieldID
		cur.Value = anchor.ItemID()
		return cur
	}
	cur.Value = v
	return cur
}

// Keyset converts the cursor into the store filter.
func (c *ResolvedCursor) Keyset() *Keyset {
	if c == nil {
		return nil
	}
	return &Keyset{
		Field:    c.Field,
		Op:       c.Operator,
		Value:    c.Value,
		AnchorID: c.AnchorID,
	}
}
