package model

import (
	"time"

	"socialapi/pkg/pagination"
)

type Comment struct {
	ID            string     `bson:"_id" json:"id"`
	PostID        string     `bson:"postId" json:"postId"`
	ParentID      string     `bson:"parentId,omitempty" json:"parentId,omitempty"`
	AuthorID      string     `bson:"authorId" json:"authorId"`
	Text          string     `bson:"text" json:"text"`
	NumberOfVotes int64      `bson:"numberOfVotes" json:"numberOfVotes"`
	HotScore      float64    `bson:"hotScore" json:"hotScore"`
	BestScore     float64    `bson:"bestScore" json:"bestScore"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedAt     *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

func (c Comment) ItemID() string { return c.ID }
func (c Comment) Deleted() bool  { return c.DeletedAt != nil }

func (c Comment) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return c.ID, true
	case pagination.FieldCreatedAt:
		return c.CreatedAt, true
	case pagination.FieldNumberOfVotes:
		return c.NumberOfVotes, true
	case pagination.FieldHotScore:
		return c.HotScore, true
	case pagination.FieldBestScore:
		return c.BestScore, true
	case pagination.FieldPostID:
		return c.PostID, true
	case pagination.FieldParentID:
		return c.ParentID, true
	case pagination.FieldAuthorID:
		return c.AuthorID, true
	default:
		return nil, false
	}
}

// CommentSort orders comments. Comments have no view count.
var CommentSort = pagination.SortOptions{
	Best:   pagination.FieldBestScore,
	Fields: []pagination.Field{
		pagination.FieldCreatedAt,
		pagination.FieldNumberOfVotes,
		pagination.FieldHotScore,
		pagination.FieldBestScore,
	},
}
