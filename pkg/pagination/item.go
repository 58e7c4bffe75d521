package pagination

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

// Item is anything the engine can page over.
type Item interface {
	ItemID() string
	Deleted() bool
	// Value returns the value of f, false when the item has no such field.
	Value(f Field) (any, bool)
}

// Comparable reports whether Compare can order v. Order fields must only
// produce such values.
func Comparable(v any) bool {
	switch v.(type) {
	case time.Time, int64, int, float64, string, bool:
		return true
	default:
		return false
	}
}

// Compare orders two field values of the same kind. Values of different or
// unsupported kinds compare equal.
func Compare(a, b any) int {
	switch x := a.(type) {
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return 0
}

// CompareItems orders a and b by terms, falling through to the next term on ties.
func CompareItems[T Item](a, b T, terms []SortTerm) int {
	for _, t := range terms {
		av := fieldValue(a, t.Field)
		bv := fieldValue(b, t.Field)
		c := Compare(av, bv)
		if c == 0 {
			continue
		}
		if t.Direction == Descending {
			return -c
		}
		return c
	}
	return 0
}

// Sort sorts items in place by the query sort terms.
func Sort[T Item](items []T, terms []SortTerm) {
	slices.SortStableFunc(items, func(a, b T) int {
		return CompareItems(a, b, terms)
	})
}

func fieldValue(it Item, f Field) any {
	if f == FieldID {
		return it.ItemID()
	}
	v, _ := it.Value(f)
	return v
}

// Match reports whether item satisfies every condition and keyset of q.
// Deleted items never match.
func Match[T Item](item T, q Query) bool {
	if item.Deleted() {
		return false
	}
	for _, c := range q.Where {
		if !matchCondition(item, c) {
			return false
		}
	}
	if q.Keyset != nil && !matchKeyset(item, *q.Keyset) {
		return false
	}
	return true
}

func matchCondition(item Item, c Condition) bool {
	var (
		v  any
		ok = true
	)
	if c.Field == FieldID {
		v = item.ItemID()
	} else {
		v, ok = item.Value(c.Field)
	}

	switch c.Op {
	case OpNotSet:
		return !ok || isZero(v)
	case OpIn:
		vals, _ := c.Value.([]string)
		s, isStr := v.(string)
		return ok && isStr && slices.Contains(vals, s)
	case OpHas:
		vals, _ := v.([]string)
		s, _ := c.Value.(string)
		return ok && slices.Contains(vals, s)
	case OpContains:
		s, isStr := v.(string)
		sub, _ := c.Value.(string)
		return ok && isStr && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}

	if !ok {
		return false
	}
	return compareOp(Compare(v, c.Value), c.Op)
}

func matchKeyset(item Item, k Keyset) bool {
	id := item.ItemID()
	if k.Field == FieldID {
		return compareOp(strings.Compare(id, k.AnchorID), k.Op)
	}
	c := Compare(fieldValue(item, k.Field), k.Value)
	if c != 0 {
		return compareOp(c, k.Op)
	}
	return compareOp(strings.Compare(id, k.AnchorID), k.Op)
}

func compareOp(c int, op Operator) bool {
	switch op {
	case OpEq:
		return c == 0
	case OpGreaterThan:
		return c > 0
	case OpLessThan:
		return c < 0
	case OpGreaterOrEqual:
		return c >= 0
	case OpLessOrEqual:
		return c <= 0
	default:
		return false
	}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case *time.Time:
		return x == nil
	case time.Time:
		return x.IsZero()
	default:
		return false
	}
}
