package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"socialapi/internal/metrics"
	"socialapi/pkg/logger"
	"socialapi/pkg/pagination"
)

//go:generate mockgen -source=listing.go -destination=./storage_mock.go -package=service

// Collection is what a store must offer for a listing. FindByID returns
// ErrNotFound for missing and soft-deleted records; FindMany never returns
// soft-deleted records and returns rows in q.Sort order.
type Collection[T pagination.Item] interface {
	FindByID(ctx context.Context, id string) (T, error)
	FindMany(ctx context.Context, q pagination.Query) ([]T, error)
}

// ReadMarker flags a single record as read.
type ReadMarker interface {
	MarkRead(ctx context.Context, id string) error
}

type lister[T pagination.Item] struct {
	name  string
	store Collection[T]
	sort  pagination.SortOptions
	now   func() time.Time
}

func newLister[T pagination.Item](name string, store Collection[T], sort pagination.SortOptions) *lister[T] {
	return &lister[T]{
		name:  name,
		store: store,
		sort:  sort,
		now:   time.Now,
	}
}

func (l *lister[T]) list(ctx context.Context, in pagination.Request, scope ...pagination.Condition) (pagination.Page[T], error) {
	var page pagination.Page[T]

	cur, err := l.cursor(ctx, in)
	if err != nil {
		observe(ctx, l.name, page, err)
		return page, err
	}

	q := l.assemble(in, cur, scope...)
	rows, err := l.store.FindMany(ctx, q)
	if err != nil {
		err = fmt.Errorf("find %s: %w", l.name, err)
		observe(ctx, l.name, page, err)
		return page, err
	}

	page = pagination.Build(rows, q)
	observe(ctx, l.name, page, nil)
	return page, nil
}

func (l *lister[T]) assemble(in pagination.Request, cur *pagination.ResolvedCursor, scope ...pagination.Condition) pagination.Query {
	opts := pagination.Options{Sort: l.sort, Scope: scope}
	return pagination.Assemble(in, opts, cur, l.now())
}

// cursor loads the anchor named by in. A missing or deleted anchor is not an
// error: the listing degrades to its first page.
func (l *lister[T]) cursor(ctx context.Context, in pagination.Request) (*pagination.ResolvedCursor, error) {
	dir, err := in.Direction()
	if err != nil {
		return nil, err
	}
	if dir == pagination.DirectionUnspecified {
		return nil, nil
	}

	anchor, err := l.store.FindByID(ctx, in.Anchor())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.degraded(ctx, in, dir)
			return nil, nil
		}
		return nil, fmt.Errorf("load %s anchor: %w", l.name, err)
	}

	cur := pagination.NewCursor(anchor, pagination.ResolveSort(in.Sort, l.sort), dir)
	if cur == nil {
		l.degraded(ctx, in, dir)
	}
	return cur, nil
}

func (l *lister[T]) degraded(ctx context.Context, in pagination.Request, dir pagination.Direction) {
	metrics.DegradedCursorTotal.WithLabelValues(l.name).Inc()
	logger.FromContext(ctx).Debug("cursor anchor not found, serving first page",
		"collection", l.name,
		"direction", dir.String(),
		"anchor", in.Anchor(),
	)
}

// window pages over an embedded array. Unlike store listings an unknown
// anchor is a client error.
func window[T pagination.Item](ctx context.Context, name string, items []T, in pagination.Request) (pagination.Page[T], error) {
	page, err := pagination.Window(items, in.PageSize(), in.Before, in.After)
	observe(ctx, name, page, err)
	return page, err
}

func observe[T any](ctx context.Context, name string, page pagination.Page[T], err error) {
	switch {
	case err == nil:
		metrics.ListingRequestsTotal.WithLabelValues(name, metrics.OutcomeOK).Inc()
		metrics.ListingPageSize.WithLabelValues(name).Observe(float64(len(page.Children)))
	case isClientError(err):
		metrics.ListingRequestsTotal.WithLabelValues(name, metrics.OutcomeRejected).Inc()
	default:
		metrics.ListingRequestsTotal.WithLabelValues(name, metrics.OutcomeError).Inc()
		logger.FromContext(ctx).Error("listing failed", "collection", name, "error", err)
	}
}

// markRead flags the listed unread records. Failures are logged and counted,
// the listing itself still succeeds.
func markRead[T pagination.Item](ctx context.Context, name string, marker ReadMarker, items []T, unread func(T) bool) {
	log := logger.FromContext(ctx)
	for _, it := range items {
		if !unread(it) {
			continue
		}
		if err := marker.MarkRead(ctx, it.ItemID()); err != nil {
			metrics.MarkReadErrorsTotal.WithLabelValues(name).Inc()
			log.Warn("mark read failed", "collection", name, "id", it.ItemID(), "error", err)
		}
	}
}

// loadSubject fetches the entity a listing is scoped to.
func loadSubject[T pagination.Item](ctx context.Context, store Collection[T], kind, id string) (T, error) {
	var zero T
	if err := validateID(kind, id); err != nil {
		return zero, err
	}
	v, err := store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return zero, fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
		}
		return zero, fmt.Errorf("load %s: %w", kind, err)
	}
	return v, nil
}
