package service

import (
	"context"
	"fmt"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

type CommentService struct {
	comments *lister[model.Comment]
	posts    Collection[model.Post]
}

func NewCommentService(comments Collection[model.Comment], posts Collection[model.Post]) *CommentService {
	return &CommentService{
		comments: newLister("comments", comments, model.CommentSort),
		posts:    posts,
	}
}

// ListComments lists the top-level comments of a post.
func (s *CommentService) ListComments(ctx context.Context, postID string, in pagination.Request) (pagination.Page[model.Comment], error) {
	if _, err := loadSubject(ctx, s.posts, "post", postID); err != nil {
		return pagination.Page[model.Comment]{}, err
	}
	return s.comments.list(ctx, in,
		pagination.Eq(pagination.FieldPostID, postID),
		pagination.Condition{Field: pagination.FieldParentID, Op: pagination.OpNotSet},
	)
}

// ListReplies lists the direct replies to parentID.
func (s *CommentService) ListReplies(ctx context.Context, postID, parentID string, in pagination.Request) (pagination.Page[model.Comment], error) {
	if _, err := loadSubject(ctx, s.posts, "post", postID); err != nil {
		return pagination.Page[model.Comment]{}, err
	}
	parent, err := loadSubject(ctx, s.comments.store, "comment", parentID)
	if err != nil {
		return pagination.Page[model.Comment]{}, err
	}
	if parent.PostID != postID {
		return pagination.Page[model.Comment]{}, fmt.Errorf("comment %q is not on post %q: %w", parentID, postID, ErrNotFound)
	}
	return s.comments.list(ctx, in,
		pagination.Eq(pagination.FieldPostID, postID),
		pagination.Eq(pagination.FieldParentID, parentID),
	)
}
