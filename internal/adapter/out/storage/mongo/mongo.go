package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"socialapi/config"
	"socialapi/internal/model"
	"socialapi/pkg/tableinfo"
)

// Mongo holds the client and the database every collection lives in.
type Mongo struct {
	client *mongodriver.Client
	db     *mongodriver.Database
}

// New connects, pings the primary and ensures the listing indexes.
func New(ctx context.Context, cfg config.MongoConfig) (*Mongo, error) {
	if cfg.URL == "" {
		return nil, errors.New("mongo: empty url")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m := &Mongo{
		client: cli,
		db:     cli.Database(cfg.Database),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}
	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Posts() *Collection[model.Post] {
	return NewCollection[model.Post](m.db.Collection(tableinfo.PostsTableName))
}

func (m *Mongo) Comments() *Collection[model.Comment] {
	return NewCollection[model.Comment](m.db.Collection(tableinfo.CommentsTableName))
}

func (m *Mongo) Subreddits() *Collection[model.Subreddit] {
	return NewCollection[model.Subreddit](m.db.Collection(tableinfo.SubredditsTableName))
}

func (m *Mongo) Users() *Collection[model.User] {
	return NewCollection[model.User](m.db.Collection(tableinfo.UsersTableName))
}

func (m *Mongo) Messages() *Messages {
	return &Messages{Collection: NewCollection[model.Message](m.db.Collection(tableinfo.MessagesTableName))}
}

func (m *Mongo) Mentions() *Mentions {
	return &Mentions{Collection: NewCollection[model.Mention](m.db.Collection(tableinfo.MentionsTableName))}
}

func (m *Mongo) Conversations() *Collection[model.Conversation] {
	return NewCollection[model.Conversation](m.db.Collection(tableinfo.ConversationsTableName))
}

func listingKeys(keys ...string) bson.D {
	d := make(bson.D, 0, len(keys)+1)
	for i, k := range keys {
		// leading keys are equality scopes
		if i < len(keys)-1 {
			d = append(d, bson.E{Key: k, Value: 1})
			continue
		}
		d = append(d, bson.E{Key: k, Value: -1})
	}
	return append(d, bson.E{Key: "_id", Value: -1})
}

// ensureIndexes creates the scope + order + _id indexes the listings page on.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongodriver.IndexModel{
		tableinfo.PostsTableName: {
			{Keys: listingKeys("subredditId", "createdAt"), Options: options.Index().SetName("subreddit_created_desc")},
			{Keys: listingKeys("subredditId", "numberOfVotes"), Options: options.Index().SetName("subreddit_votes_desc")},
			{Keys: listingKeys("authorId", "createdAt"), Options: options.Index().SetName("author_created_desc")},
		},
		tableinfo.CommentsTableName: {
			{Keys: listingKeys("postId", "parentId", "createdAt"), Options: options.Index().SetName("post_parent_created_desc")},
		},
		tableinfo.MessagesTableName: {
			{Keys: listingKeys("receiverId", "createdAt"), Options: options.Index().SetName("receiver_created_desc")},
			{Keys: listingKeys("senderId", "createdAt"), Options: options.Index().SetName("sender_created_desc")},
		},
		tableinfo.MentionsTableName: {
			{Keys: listingKeys("userId", "createdAt"), Options: options.Index().SetName("user_created_desc")},
		},
		tableinfo.ConversationsTableName: {
			{Keys: listingKeys("participants", "latestDate"), Options: options.Index().SetName("participants_latest_desc")},
		},
		tableinfo.SubredditsTableName: {
			{Keys: listingKeys("category", "createdAt"), Options: options.Index().SetName("category_created_desc")},
		},
	}

	for name, models := range indexes {
		if _, err := m.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo ensure indexes on %s: %w", name, err)
		}
	}
	return nil
}
