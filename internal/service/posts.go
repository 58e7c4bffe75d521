package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type PostService struct {
	posts      *lister[model.Post]
	subreddits Collection[model.Subreddit]
	users      Collection[model.User]
	validate   *validator.Validate
}

func NewPostService(posts Collection[model.Post], subreddits Collection[model.Subreddit], users Collection[model.User]) *PostService {
	return &PostService{
		posts:      newLister("posts", posts, model.PostSort),
		subreddits: subreddits,
		users:      users,
		validate:   validator.New(),
	}
}

func (s *PostService) ListSubredditPosts(ctx context.Context, subredditID string, in pagination.Request) (pagination.Page[model.Post], error) {
	if _, err := loadSubject(ctx, s.subreddits, "subreddit", subredditID); err != nil {
		return pagination.Page[model.Post]{}, err
	}
	return s.posts.list(ctx, in, pagination.Eq(pagination.FieldSubredditID, subredditID))
}

func (s *PostService) ListUserPosts(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Post], error) {
	if _, err := loadSubject(ctx, s.users, "user", userID); err != nil {
		return pagination.Page[model.Post]{}, err
	}
	return s.posts.list(ctx, in, pagination.Eq(pagination.FieldAuthorID, userID))
}

// Search lists posts whose title contains req.Query, optionally within one
// subreddit.
func (s *PostService) Search(ctx context.Context, req SearchPostsRequest, in pagination.Request) (pagination.Page[model.Post], error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := s.validate.Struct(req); err != nil {
		return pagination.Page[model.Post]{}, invalidRequest(err)
	}

	scope := []pagination.Condition{{Field: pagination.FieldTitle, Op: pagination.OpContains, Value: req.Query}}
	if req.SubredditID != "" {
		scope = append(scope, pagination.Eq(pagination.FieldSubredditID, req.SubredditID))
	}
	return s.posts.list(ctx, in, scope...)
}
