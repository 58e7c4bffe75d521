package mongo

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialapi/internal/adapter/out/storage"
	"socialapi/pkg/pagination"
)

const deletedAtKey = "deletedAt"

var comparison = map[pagination.Operator]string{
	pagination.OpGreaterThan:    "$gt",
	pagination.OpLessThan:       "$lt",
	pagination.OpGreaterOrEqual: "$gte",
	pagination.OpLessOrEqual:    "$lte",
}

// buildFilter translates q. Field names are the document keys. A null or
// missing deletedAt marks a live document.
func buildFilter(q pagination.Query) (bson.D, error) {
	clauses := bson.A{bson.D{{Key: deletedAtKey, Value: nil}}}

	for _, c := range q.Where {
		d, err := condition(c)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, d)
	}

	if q.Keyset != nil {
		d, err := keyset(*q.Keyset)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, d)
	}

	return bson.D{{Key: "$and", Value: clauses}}, nil
}

func condition(c pagination.Condition) (bson.D, error) {
	key := string(c.Field)

	switch c.Op {
	case pagination.OpNotSet:
		return bson.D{{Key: key, Value: bson.D{{Key: "$in", Value: bson.A{nil, ""}}}}}, nil

	case pagination.OpContains:
		s, ok := c.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", key, storage.ErrBadFieldValue)
		}
		return bson.D{{Key: key, Value: primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}}}, nil

	case pagination.OpIn:
		vals, ok := c.Value.([]string)
		if !ok {
			return nil, fmt.Errorf("%s: %w", key, storage.ErrBadFieldValue)
		}
		in := make(bson.A, 0, len(vals))
		for _, v := range vals {
			bv, err := value(c.Field, v)
			if err != nil {
				// cannot match any stored _id
				continue
			}
			in = append(in, bv)
		}
		return bson.D{{Key: key, Value: bson.D{{Key: "$in", Value: in}}}}, nil

	case pagination.OpEq, pagination.OpHas:
		// equality on an array key matches any element
		v, err := value(c.Field, c.Value)
		if err != nil {
			return nil, err
		}
		return bson.D{{Key: key, Value: v}}, nil
	}

	op, ok := comparison[c.Op]
	if !ok {
		return nil, fmt.Errorf("unsupported operator %s", c.Op)
	}
	v, err := value(c.Field, c.Value)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: key, Value: bson.D{{Key: op, Value: v}}}}, nil
}

// keyset yields (f op v) OR (f = v AND _id op anchor).
func keyset(k pagination.Keyset) (bson.D, error) {
	op, ok := comparison[k.Op]
	if !ok {
		return nil, fmt.Errorf("unsupported keyset operator %s", k.Op)
	}
	anchor, err := objectID(k.AnchorID)
	if err != nil {
		return nil, err
	}
	if k.Field == pagination.FieldID {
		return bson.D{{Key: "_id", Value: bson.D{{Key: op, Value: anchor}}}}, nil
	}

	key := string(k.Field)
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: key, Value: bson.D{{Key: op, Value: k.Value}}}},
		bson.D{{Key: key, Value: k.Value}, {Key: "_id", Value: bson.D{{Key: op, Value: anchor}}}},
	}}}, nil
}

func value(f pagination.Field, v any) (any, error) {
	if f != pagination.FieldID {
		return v, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%s: %w", f, storage.ErrBadFieldValue)
	}
	return objectID(s)
}

func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("object id %q: %w", hex, storage.ErrBadFieldValue)
	}
	return oid, nil
}

func findOptions(q pagination.Query) *options.FindOptions {
	sort := make(bson.D, 0, len(q.Sort))
	for _, t := range q.Sort {
		dir := -1
		if t.Direction == pagination.Ascending {
			dir = 1
		}
		sort = append(sort, bson.E{Key: string(t.Field), Value: dir})
	}

	opts := options.Find().SetSort(sort)
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}
