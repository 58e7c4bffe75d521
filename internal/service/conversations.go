package service

import (
	"context"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type ConversationService struct {
	conversations *lister[model.Conversation]
	users         Collection[model.User]
}

func NewConversationService(conversations Collection[model.Conversation], users Collection[model.User]) *ConversationService {
	return &ConversationService{
		conversations: newLister("conversations", conversations, model.ConversationSort),
		users:         users,
	}
}

// List returns the conversations userID takes part in, most recently active
// first.
func (s *ConversationService) List(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Conversation], error) {
	if _, err := loadSubject(ctx, s.users, "user", userID); err != nil {
		return pagination.Page[model.Conversation]{}, err
	}
	return s.conversations.list(ctx, in, pagination.Condition{
		Field: pagination.FieldParticipants,
		Op:    pagination.OpHas,
		Value: userID,
	})
}
