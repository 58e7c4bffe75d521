package service

import (
	"context"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type MessageStorage interface {
	Collection[model.Message]
	ReadMarker
}

type MessageService struct {
	messages *lister[model.Message]
	marker   ReadMarker
	users    Collection[model.User]
}

func NewMessageService(messages MessageStorage, users Collection[model.User]) *MessageService {
	return &MessageService{
		messages: newLister("messages", messages, model.MessageSort),
		marker:   messages,
		users:    users,
	}
}

// Inbox lists messages received by userID, newest first. Unread messages on
// the page are marked read; the page shows them as they were before.
func (s *MessageService) Inbox(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Message], error) {
	if _, err := loadSubject(ctx, s.users, "user", userID); err != nil {
		return pagination.Page[model.Message]{}, err
	}
	page, err := s.messages.list(ctx, in, pagination.Eq(pagination.FieldReceiverID, userID))
	if err != nil {
		return page, err
	}
	markRead(ctx, s.messages.name, s.marker, page.Items(), func(m model.Message) bool {
		return !m.IsRead && m.ReceiverID == userID
	})
	return page, nil
}

func (s *MessageService) Sent(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Message], error) {
	if _, err := loadSubject(ctx, s.users, "user", userID); err != nil {
		return pagination.Page[model.Message]{}, err
	}
	return s.messages.list(ctx, in, pagination.Eq(pagination.FieldSenderID, userID))
}
