package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

// FeedService serves a user's home feed: posts from joined subreddits and
// followed authors.
type FeedService struct {
	posts *lister[model.Post]
	users Collection[model.User]
}

func NewFeedService(posts Collection[model.Post], users Collection[model.User]) *FeedService {
	return &FeedService{
		posts: newLister("feed", posts, model.PostSort),
		users: users,
	}
}

// Home merges both candidate sets under one cursor. Each query fetches a full
// page plus lookahead so the merged head is exact.
func (s *FeedService) Home(ctx context.Context, userID string, in pagination.Request) (pagination.Page[model.Post], error) {
	var page pagination.Page[model.Post]

	user, err := loadSubject(ctx, s.users, "user", userID)
	if err != nil {
		return page, err
	}

	cur, err := s.posts.cursor(ctx, in)
	if err != nil {
		observe(ctx, s.posts.name, page, err)
		return page, err
	}

	scopes := make([]pagination.Condition, 0, 2)
	if len(user.JoinedSubreddits) > 0 {
		scopes = append(scopes, pagination.Condition{Field: pagination.FieldSubredditID, Op: pagination.OpIn, Value: user.JoinedSubreddits})
	}
	if len(user.FollowedUsers) > 0 {
		scopes = append(scopes, pagination.Condition{Field: pagination.FieldAuthorID, Op: pagination.OpIn, Value: user.FollowedUsers})
	}

	q := s.posts.assemble(in, cur)
	results := make([][]model.Post, len(scopes))

	g, gctx := errgroup.WithContext(ctx)
	for i, scope := range scopes {
		g.Go(func() error {
			rows, err := s.posts.store.FindMany(gctx, s.posts.assemble(in, cur, scope))
			if err != nil {
				return fmt.Errorf("find feed candidates by %s: %w", scope.Field, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		observe(ctx, s.posts.name, page, err)
		return page, err
	}

	merged := dedupByID(results...)
	pagination.Sort(merged, q.Sort)
	if len(merged) > q.Limit {
		merged = merged[:q.Limit]
	}

	page = pagination.Build(merged, q)
	observe(ctx, s.posts.name, page, nil)
	return page, nil
}

func dedupByID[T pagination.Item](sets ...[]T) []T {
	seen := make(map[string]struct{})
	out := make([]T, 0)
	for _, set := range sets {
		for _, it := range set {
			if _, ok := seen[it.ItemID()]; ok {
				continue
			}
			seen[it.ItemID()] = struct{}{}
			out = append(out, it)
		}
	}
	return out
}
