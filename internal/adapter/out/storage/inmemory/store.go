package inmemory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"socialapi/internal/model"
)

// Store groups every collection the API reads.
type Store struct {
	Posts         *Collection[model.Post]
	Comments      *Collection[model.Comment]
	Subreddits    *Collection[model.Subreddit]
	Users         *Collection[model.User]
	Messages      *Messages
	Mentions      *Mentions
	Conversations *Collection[model.Conversation]
}

func NewStore() *Store {
	return &Store{
		Posts:         NewCollection[model.Post](),
		Comments:      NewCollection[model.Comment](),
		Subreddits:    NewCollection[model.Subreddit](),
		Users:         NewCollection[model.User](),
		Messages:      &Messages{Collection: NewCollection[model.Message]()},
		Mentions:      &Mentions{Collection: NewCollection[model.Mention]()},
		Conversations: NewCollection[model.Conversation](),
	}
}

type Messages struct {
	*Collection[model.Message]
}

func (m *Messages) MarkRead(ctx context.Context, id string) error {
	return m.Update(ctx, id, func(msg model.Message) model.Message {
		msg.IsRead = true
		return msg
	})
}

type Mentions struct {
	*Collection[model.Mention]
}

func (m *Mentions) MarkRead(ctx context.Context, id string) error {
	return m.Update(ctx, id, func(mn model.Mention) model.Mention {
		mn.IsRead = true
		return mn
	})
}

// Fixtures is the JSON seed format.
type Fixtures struct {
	Posts         []model.Post         `json:"posts"`
	Comments      []model.Comment      `json:"comments"`
	Subreddits    []subredditFixture   `json:"subreddits"`
	Users         []userFixture        `json:"users"`
	Messages      []model.Message      `json:"messages"`
	Mentions      []model.Mention      `json:"mentions"`
	Conversations []model.Conversation `json:"conversations"`
}

// Load decodes fixtures from r and inserts them.
func (s *Store) Load(ctx context.Context, r io.Reader) error {
	var f Fixtures
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return fmt.Errorf("decode fixtures: %w", err)
	}
	return s.Seed(ctx, f)
}

func (s *Store) Seed(ctx context.Context, f Fixtures) error {
	inserts := []struct {
		name string
		fn   func() error
	}{
		{"posts", func() error { return s.Posts.Insert(ctx, f.Posts...) }},
		{"comments", func() error { return s.Comments.Insert(ctx, f.Comments...) }},
		{"subreddits", func() error { return s.Subreddits.Insert(ctx, subredditRecords(f.Subreddits)...) }},
		{"users", func() error { return s.Users.Insert(ctx, userRecords(f.Users)...) }},
		{"messages", func() error { return s.Messages.Insert(ctx, f.Messages...) }},
		{"mentions", func() error { return s.Mentions.Insert(ctx, f.Mentions...) }},
		{"conversations", func() error { return s.Conversations.Insert(ctx, f.Conversations...) }},
	}
	for _, in := range inserts {
		if err := in.fn(); err != nil {
			return fmt.Errorf("seed %s: %w", in.name, err)
		}
	}
	return nil
}

// The API hides these fields from JSON output, fixtures still need to set them.
type subredditFixture struct {
	model.Subreddit
	BannedUsers []model.BannedUser `json:"bannedUsers"`
}

func (f subredditFixture) record() model.Subreddit {
	sub := f.Subreddit
	sub.BannedUsers = f.BannedUsers
	return sub
}

type userFixture struct {
	model.User
	JoinedSubreddits []string            `json:"joinedSubreddits"`
	FollowedUsers    []string            `json:"followedUsers"`
	BlockedUsers     []model.BlockedUser `json:"blockedUsers"`
}

func (f userFixture) record() model.User {
	u := f.User
	u.JoinedSubreddits = f.JoinedSubreddits
	u.FollowedUsers = f.FollowedUsers
	u.BlockedUsers = f.BlockedUsers
	return u
}

func subredditRecords(in []subredditFixture) []model.Subreddit {
	out := make([]model.Subreddit, 0, len(in))
	for _, f := range in {
		out = append(out, f.record())
	}
	return out
}

func userRecords(in []userFixture) []model.User {
	out := make([]model.User, 0, len(in))
	for _, f := range in {
		out = append(out, f.record())
	}
	return out
}
