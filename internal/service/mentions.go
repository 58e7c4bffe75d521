package service

import (
	"context"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type MentionStorage interface {
	Collection[model.Mention]
	ReadMarker
}

type MentionService struct {
	mentions *lister[model.Mention]
	marker   ReadMarker
	users    Collection[model.User]
}

func NewMentionService(mentions MentionStorage, users Collection[model.User]) *MentionService {
	return &MentionService{
		mentions: newLister("mentions", mentions, model.MessageSort),
		marker:   mentions,
		users:    users,
	}
}

// List returns the mentions of userID and marks the unread ones as read.
func (s *MentionService) List(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Mention], error) {
	if _, err := loadSubject(ctx, s.users, "user", userID); err != nil {
		return pagination.Page[model.Mention]{}, err
	}
	page, err := s.mentions.list(ctx, in, pagination.Eq(pagination.FieldUserID, userID))
	if err != nil {
		return page, err
	}
	markRead(ctx, s.mentions.name, s.marker, page.Items(), func(m model.Mention) bool { return !m.IsRead })
	return page, nil
}
