package model

import (
	"time"

	"socialapi/pkg/pagination"
)

type Message struct {
	ID         string     `bson:"_id" json:"id"`
	SenderID   string     `bson:"senderId" json:"senderId"`
	ReceiverID string     `bson:"receiverId" json:"receiverId"`
	Subject    string     `bson:"subject" json:"subject"`
	Text       string     `bson:"text" json:"text"`
	IsRead     bool       `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedAt  *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

func (m Message) ItemID() string { return m.ID }
func (m Message) Deleted() bool  { return m.DeletedAt != nil }

func (m Message) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return m.ID, true
	case pagination.FieldCreatedAt:
		return m.CreatedAt, true
	case pagination.FieldSenderID:
		return m.SenderID, true
	case pagination.FieldReceiverID:
		return m.ReceiverID, true
	default:
		return nil, false
	}
}

type Mention struct {
	ID        string     `bson:"_id" json:"id"`
	UserID    string     `bson:"userId" json:"userId"`
	PostID    string     `bson:"postId" json:"postId"`
	CommentID string     `bson:"commentId,omitempty" json:"commentId,omitempty"`
	IsRead    bool       `bson:"isRead" json:"isRead"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

func (m Mention) ItemID() string { return m.ID }
func (m Mention) Deleted() bool  { return m.DeletedAt != nil }

func (m Mention) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return m.ID, true
	case pagination.FieldCreatedAt:
		return m.CreatedAt, true
	case pagination.FieldUserID:
		return m.UserID, true
	case pagination.FieldPostID:
		return m.PostID, true
	default:
		return nil, false
	}
}

type Conversation struct {
	ID           string     `bson:"_id" json:"id"`
	Participants []string   `bson:"participants" json:"participants"`
	Subject      string     `bson:"subject" json:"subject"`
	LatestDate   time.Time  `bson:"latestDate" json:"latestDate"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	DeletedAt    *time.Time `bson:"deletedAt,omitempty" json:"-"`
}

func (c Conversation) ItemID() string { return c.ID }
func (c Conversation) Deleted() bool  { return c.DeletedAt != nil }

func (c Conversation) Value(f pagination.Field) (any, bool) {
	switch f {
	case pagination.FieldID:
		return c.ID, true
	case pagination.FieldLatestDate:
		return c.LatestDate, true
	case pagination.FieldCreatedAt:
		return c.CreatedAt, true
	case pagination.FieldParticipants:
		return c.Participants, true
	default:
		return nil, false
	}
}

// MessageSort is the fixed newest-first order of messages and mentions.
var MessageSort = pagination.SortOptions{Fixed: true}

// ConversationSort is fixed on the latest message date.
var ConversationSort = pagination.SortOptions{
	Default: pagination.Order{Field: pagination.FieldLatestDate, Direction: pagination.Descending},
	Fixed:   true,
}
