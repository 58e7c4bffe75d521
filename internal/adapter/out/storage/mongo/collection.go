package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"socialapi/internal/model"
	"socialapi/internal/service"
	"socialapi/pkg/pagination"
)

// Collection reads documents keyed by ObjectID. Ids leave the adapter as hex
// strings.
type Collection[T pagination.Item] struct {
	coll *mongodriver.Collection
}

func NewCollection[T pagination.Item](coll *mongodriver.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

// FindByID treats a malformed id like a missing document.
func (c *Collection[T]) FindByID(ctx context.Context, id string) (T, error) {
	const op = "storage/mongo/FindByID"

	var out T
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return out, fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}

	filter := bson.D{{Key: "_id", Value: oid}, {Key: deletedAtKey, Value: nil}}
	if err := c.coll.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return out, fmt.Errorf("%s: %w", op, service.ErrNotFound)
		}
		return out, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (c *Collection[T]) FindMany(ctx context.Context, q pagination.Query) ([]T, error) {
	const op = "storage/mongo/FindMany"

	filter, err := buildFilter(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cur, err := c.coll.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}
	return out, nil
}

func (c *Collection[T]) markRead(ctx context.Context, id string) error {
	const op = "storage/mongo/MarkRead"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}

	res, err := c.coll.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{{Key: "isRead", Value: true}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}
	return nil
}

type Messages struct {
	*Collection[model.Message]
}

func (m *Messages) MarkRead(ctx context.Context, id string) error {
	return m.markRead(ctx, id)
}

type Mentions struct {
	*Collection[model.Mention]
}

func (m *Mentions) MarkRead(ctx context.Context, id string) error {
	return m.markRead(ctx, id)
}
