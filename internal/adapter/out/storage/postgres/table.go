package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"socialapi/internal/service"
	"socialapi/pkg/pagination"
	"socialapi/pkg/tableinfo"
)

var ErrBuildingQuery = errors.New("error building sql-query")

// schema describes how one model maps onto a table.
type schema[T pagination.Item] struct {
	table   string
	columns []string
	fields  map[pagination.Field]string
	scan    func(row pgx.Row) (T, error)
}

// Table reads a model through the transaction in ctx, or db when there is none.
type Table[T pagination.Item] struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
	schema schema[T]
}

func newTable[T pagination.Item](db trmpgx.Tr, getter *trmpgx.CtxGetter, s schema[T]) *Table[T] {
	return &Table[T]{db: db, getter: getter, schema: s}
}

// FindByID treats an id that is not a UUID like a missing row.
func (t *Table[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T
	if _, err := uuid.Parse(id); err != nil {
		return zero, service.ErrNotFound
	}

	query, args, err := sq.
		Select(t.schema.columns...).
		From(t.schema.table).
		Where(sq.Eq{tableinfo.IDColumn: id}).
		Where(sq.Eq{tableinfo.DeletedAtColumn: nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := t.getter.DefaultTrOrDB(ctx, t.db)
	out, err := t.schema.scan(tr.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, service.ErrNotFound
		}
		return zero, fmt.Errorf("exec select %s by id: %w", t.schema.table, err)
	}
	return out, nil
}

func (t *Table[T]) FindMany(ctx context.Context, q pagination.Query) ([]T, error) {
	qb, err := t.queryBuilder(q)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := t.getter.DefaultTrOrDB(ctx, t.db)
	rows, err := tr.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exec select %s: %w", t.schema.table, err)
	}
	defer rows.Close()

	out := make([]T, 0, max(q.Limit, 0))
	for rows.Next() {
		v, err := t.schema.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// setRead flags a row as read. The table must have an is_read column.
func (t *Table[T]) setRead(ctx context.Context, column, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return service.ErrNotFound
	}

	query, args, err := sq.
		Update(t.schema.table).
		Set(column, true).
		Where(sq.Eq{tableinfo.IDColumn: id}).
		Suffix(fmt.Sprintf("RETURNING %s", tableinfo.IDColumn)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingQuery, err)
	}

	tr := t.getter.DefaultTrOrDB(ctx, t.db)

	var dummy string
	if err := tr.QueryRow(ctx, query, args...).Scan(&dummy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrNotFound
		}
		return fmt.Errorf("exec update %s: %w", column, err)
	}
	return nil
}
