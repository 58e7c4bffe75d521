package model

import (
	"time"

	"socialapi/pkg/pagination"
)

type Post struct {
	ID            string     `bson:"_id" json:"id"`
	SubredditID   string     `bson:"subredditId" json:"subredditId"`
	AuthorID      string     `bson:"authorId" json:"authorId"`
	Title         string     `bson:"title" json:"title"`
	Text          string     `bson:"text" json:"text"`
	NumberOfVotes int64      `bson:"numberOfVotes" json:"numberOfVotes"`
	HotScore      float64    `bson:"hotScore" json:"hotScore"`
	BestScore     float64    `bson:"bestScore" json:"bestScore"`
	NumberOfViews int64      `bson:"numberOfViews" json:"numberOfViews"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedAt     *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

func (p Post) ItemID() string { return p.ID }
func (p Post) Deleted() bool  { return p.DeletedAt != nil }

func (p Post) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return p.ID, true
	case pagination.FieldCreatedAt:
		return p.CreatedAt, true
	case pagination.FieldNumberOfVotes:
		return p.NumberOfVotes, true
	case pagination.FieldHotScore:
		return p.HotScore, true
	case pagination.FieldBestScore:
		return p.BestScore, true
	case pagination.FieldNumberOfViews:
		return p.NumberOfViews, true
	case pagination.FieldSubredditID:
		return p.SubredditID, true
	case pagination.FieldAuthorID:
		return p.AuthorID, true
	case pagination.FieldTitle:
		return p.Title, true
	default:
		return nil, false
	}
}

// PostSort ranks best by votes.
var PostSort = pagination.SortOptions{Best: pagination.FieldNumberOfVotes}
