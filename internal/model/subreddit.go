package model

import (
	"time"

	"socialapi/pkg/pagination"
)

var mainTopics = [...]string{
	"Activism",
	"Art",
	"Business",
	"Crypto",
	"Education",
	"Fashion",
	"Food",
	"Gaming",
	"Health",
	"Movies",
	"Music",
	"News",
	"Science",
	"Sports",
	"Technology",
	"Travel",
}

// MainTopics returns a copy of the subreddit categories.
func MainTopics() []string {
	return append([]string(nil), mainTopics[:]...)
}

type Subreddit struct {
	ID            string       `bson:"_id" json:"id"`
	Name          string       `bson:"name" json:"name"`
	Category      string       `bson:"category" json:"category"`
	Description   string       `bson:"description" json:"description"`
	NumberOfViews int64        `bson:"numberOfViews" json:"numberOfViews"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	DeletedAt     *time.Time   `bson:"deletedAt,omitempty" json:"-"`
	BannedUsers   []BannedUser `bson:"bannedUsers" json:"-"`
}

func (s Subreddit) ItemID() string { return s.ID }
func (s Subreddit) Deleted() bool  { return s.DeletedAt != nil }

func (s Subreddit) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return s.ID, true
	case pagination.FieldCreatedAt:
		return s.CreatedAt, true
	case pagination.FieldNumberOfViews:
		return s.NumberOfViews, true
	case pagination.FieldCategory:
		return s.Category, true
	default:
		return nil, false
	}
}

type BannedUser struct {
	UserID   string    `bson:"userId" json:"userId"`
	Username string    `bson:"username" json:"username"`
	Reason   string    `bson:"reason" json:"reason"`
	BannedAt time.Time `bson:"bannedAt" json:"bannedAt"`
}

func (b BannedUser) ItemID() string { return b.UserID }
func (b BannedUser) Deleted() bool  { return false }

func (b BannedUser) Value(f pagination.Field) (any, bool) {
	if f == pagination.FieldCreatedAt {
		return b.BannedAt, true
	}
	return nil, false
}

// SubredditSort covers the fields a subreddit stores: creation time and views.
var SubredditSort = pagination.SortOptions{
	Fields: []pagination.Field{pagination.FieldCreatedAt, pagination.FieldNumberOfViews},
}
