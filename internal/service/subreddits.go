package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type SubredditService struct {
	subreddits *lister[model.Subreddit]
	validate   *validator.Validate
}

func NewSubredditService(subreddits Collection[model.Subreddit], topics []string) *SubredditService {
	return &SubredditService{
		subreddits: newLister("subreddits", subreddits, model.SubredditSort),
		validate:   NewValidator(topics),
	}
}

func (s *SubredditService) List(ctx context.Context, req ListSubredditsRequest, in pagination.Request) (pagination.Page[model.Subreddit], error) {
	if err := s.validate.Struct(req); err != nil {
		return pagination.Page[model.Subreddit]{}, invalidRequest(err)
	}
	var scope []pagination.Condition
	if req.Category != "" {
		scope = append(scope, pagination.Eq(pagination.FieldCategory, req.Category))
	}
	return s.subreddits.list(ctx, in, scope...)
}

// BannedUsers pages over the subreddit's ban list in stored order.
func (s *SubredditService) BannedUsers(ctx context.Context, subredditID string, in pagination.Request) (pagination.Page[model.BannedUser], error) {
	sub, err := loadSubject(ctx, s.subreddits.store, "subreddit", subredditID)
	if err != nil {
		return pagination.Page[model.BannedUser]{}, err
	}
	return window(ctx, "banned_users", sub.BannedUsers, in)
}
