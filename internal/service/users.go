package service

import (
	"context"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type UserService struct {
	users Collection[model.User]
}

func NewUserService(users Collection[model.User]) *UserService {
	return &UserService{users: users}
}

// BlockedUsers pages over the user's block list in stored order.
func (s *UserService) BlockedUsers(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.BlockedUser], error) {
	user, err := loadSubject(ctx, s.users, "user", userID)
	if err != nil {
		return pagination.Page[model.BlockedUser]{}, err
	}
	return window(ctx, "blocked_users", user.BlockedUsers, in)
}
