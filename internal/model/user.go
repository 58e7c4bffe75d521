package model

import (
	"time"

	"socialapi/pkg/pagination"
)

type User struct {
	ID               string        `bson:"_id" json:"id"`
	Username         string        `bson:"username" json:"username"`
	JoinedSubreddits []string      `bson:"joinedSubreddits" json:"-"`
	FollowedUsers    []string      `bson:"followedUsers" json:"-"`
	BlockedUsers     []BlockedUser `bson:"blockedUsers" json:"-"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	DeletedAt        *time.Time    `bson:"deletedAt,omitempty" json:"-"`
}

func (u User) ItemID() string { return u.ID }
func (u User) Deleted() bool  { return u.DeletedAt != nil }

func (u User) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return u.ID, true
	case pagination.FieldCreatedAt:
		return u.CreatedAt, true
	default:
		return nil, false
	}
}

type BlockedUser struct {
	UserID    string    `bson:"userId" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	BlockedAt time.Time `bson:"blockedAt" json:"blockedAt"`
}

func (b BlockedUser) ItemID() string { return b.UserID }
func (b BlockedUser) Deleted() bool  { return false }

func (b BlockedUser) Value(f pagination.Field) (any, bool) {
	if f == pagination.FieldCreatedAt {
		return b.BlockedAt, true
	}
	return nil, false
}
