package postgres

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"socialapi/internal/adapter/out/storage"
	"socialapi/pkg/pagination"
	"socialapi/pkg/tableinfo"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (t *Table[T]) column(f pagination.Field) (string, error) {
	if f == pagination.FieldID {
		return tableinfo.IDColumn, nil
	}
	col, ok := t.schema.fields[f]
	if !ok {
		return "", fmt.Errorf("%s.%s: %w", t.schema.table, f, storage.ErrUnknownField)
	}
	return col, nil
}

func (t *Table[T]) queryBuilder(q pagination.Query) (sq.SelectBuilder, error) {
	qb := sq.
		Select(t.schema.columns...).
		From(t.schema.table).
		Where(sq.Eq{tableinfo.DeletedAtColumn: nil}).
		PlaceholderFormat(sq.Dollar)

	for _, c := range q.Where {
		pred, err := t.condition(c)
		if err != nil {
			return qb, err
		}
		qb = qb.Where(pred)
	}

	if k := q.Keyset; k != nil {
		pred, err := t.keyset(*k)
		if err != nil {
			return qb, err
		}
		qb = qb.Where(pred)
	}

	order := make([]string, 0, len(q.Sort))
	for _, term := range q.Sort {
		col, err := t.column(term.Field)
		if err != nil {
			return qb, err
		}
		order = append(order, col+" "+term.Direction.String())
	}
	qb = qb.OrderBy(order...)

	if q.Limit > 0 {
		qb = qb.Limit(uint64(q.Limit))
	}
	return qb, nil
}

func (t *Table[T]) condition(c pagination.Condition) (sq.Sqlizer, error) {
	col, err := t.column(c.Field)
	if err != nil {
		return nil, err
	}

	switch c.Op {
	case pagination.OpEq, pagination.OpIn:
		// a slice value renders as IN
		return sq.Eq{col: c.Value}, nil
	case pagination.OpGreaterThan:
		return sq.Gt{col: c.Value}, nil
	case pagination.OpLessThan:
		return sq.Lt{col: c.Value}, nil
	case pagination.OpGreaterOrEqual:
		return sq.GtOrEq{col: c.Value}, nil
	case pagination.OpLessOrEqual:
		return sq.LtOrEq{col: c.Value}, nil
	case pagination.OpHas:
		return sq.Expr(fmt.Sprintf("? = ANY(%s)", col), c.Value), nil
	case pagination.OpContains:
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", col, storage.ErrBadFieldValue)
		}
		return sq.ILike{col: "%" + likeEscaper.Replace(s) + "%"}, nil
	case pagination.OpNotSet:
		return sq.Eq{col: nil}, nil
	default:
		return nil, fmt.Errorf("unsupported operator %s", c.Op)
	}
}

// keyset compares (col, id) as a row so ties on col fall through to id.
func (t *Table[T]) keyset(k pagination.Keyset) (sq.Sqlizer, error) {
	if k.Op != pagination.OpGreaterThan && k.Op != pagination.OpLessThan {
		return nil, fmt.Errorf("unsupported keyset operator %s", k.Op)
	}
	if k.Field == pagination.FieldID {
		return sq.Expr(fmt.Sprintf("%s %s ?", tableinfo.IDColumn, k.Op), k.AnchorID), nil
	}

	col, err := t.column(k.Field)
	if err != nil {
		return nil, err
	}
	return sq.Expr(
		fmt.Sprintf("(%s, %s) %s (?, ?)", col, tableinfo.IDColumn, k.Op),
		k.Value, k.AnchorID,
	), nil
}
