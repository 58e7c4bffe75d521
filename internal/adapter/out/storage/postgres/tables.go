package postgres

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
	ti "socialapi/pkg/tableinfo"
)

// Store exposes one table per model.
type Store struct {
	db     trmpgx.Tr
	getter *trmpgx.CtxGetter
}

func NewStore(db trmpgx.Tr, getter *trmpgx.CtxGetter) *Store {
	return &Store{db: db, getter: getter}
}

var postSchema = schema[model.Post]{
	table: ti.PostsTableName,
	columns: []string{
		ti.IDColumn,
		ti.PostSubredditIDColumn,
		ti.PostAuthorIDColumn,
		ti.PostTitleColumn,
		ti.PostTextColumn,
		ti.PostNumberOfVotesColumn,
		ti.PostHotScoreColumn,
		ti.PostBestScoreColumn,
		ti.PostNumberOfViewsColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldSubredditID:   ti.PostSubredditIDColumn,
		pagination.FieldAuthorID:      ti.PostAuthorIDColumn,
		pagination.FieldTitle:         ti.PostTitleColumn,
		pagination.FieldNumberOfVotes: ti.PostNumberOfVotesColumn,
		pagination.FieldHotScore:      ti.PostHotScoreColumn,
		pagination.FieldBestScore:     ti.PostBestScoreColumn,
		pagination.FieldNumberOfViews: ti.PostNumberOfViewsColumn,
		pagination.FieldCreatedAt:     ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Post, error) {
		var p model.Post
		err := row.Scan(
			&p.ID,
			&p.SubredditID,
			&p.AuthorID,
			&p.Title,
			&p.Text,
			&p.NumberOfVotes,
			&p.HotScore,
			&p.BestScore,
			&p.NumberOfViews,
			&p.CreatedAt,
		)
		return p, err
	},
}

var commentSchema = schema[model.Comment]{
	table: ti.CommentsTableName,
	columns: []string{
		ti.IDColumn,
		ti.CommentPostIDColumn,
		ti.CommentParentIDColumn,
		ti.CommentAuthorIDColumn,
		ti.CommentTextColumn,
		ti.CommentNumberOfVotesColumn,
		ti.CommentHotScoreColumn,
		ti.CommentBestScoreColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldPostID:        ti.CommentPostIDColumn,
		pagination.FieldParentID:      ti.CommentParentIDColumn,
		pagination.FieldAuthorID:      ti.CommentAuthorIDColumn,
		pagination.FieldNumberOfVotes: ti.CommentNumberOfVotesColumn,
		pagination.FieldHotScore:      ti.CommentHotScoreColumn,
		pagination.FieldBestScore:     ti.CommentBestScoreColumn,
		pagination.FieldCreatedAt:     ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Comment, error) {
		var (
			c      model.Comment
			parent *string
		)
		err := row.Scan(
			&c.ID,
			&c.PostID,
			&parent,
			&c.AuthorID,
			&c.Text,
			&c.NumberOfVotes,
			&c.HotScore,
			&c.BestScore,
			&c.CreatedAt,
		)
		if parent != nil {
			c.ParentID = *parent
		}
		return c, err
	},
}

var messageSchema = schema[model.Message]{
	table: ti.MessagesTableName,
	columns: []string{
		ti.IDColumn,
		ti.MessageSenderIDColumn,
		ti.MessageReceiverIDColumn,
		ti.MessageSubjectColumn,
		ti.MessageTextColumn,
		ti.MessageIsReadColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldSenderID:   ti.MessageSenderIDColumn,
		pagination.FieldReceiverID: ti.MessageReceiverIDColumn,
		pagination.FieldCreatedAt:  ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Message, error) {
		var m model.Message
		err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Text, &m.IsRead, &m.CreatedAt)
		return m, err
	},
}

var mentionSchema = schema[model.Mention]{
	table: ti.MentionsTableName,
	columns: []string{
		ti.IDColumn,
		ti.MentionUserIDColumn,
		ti.MentionPostIDColumn,
		ti.MentionCommentIDColumn,
		ti.MentionIsReadColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldUserID:    ti.MentionUserIDColumn,
		pagination.FieldPostID:    ti.MentionPostIDColumn,
		pagination.FieldCreatedAt: ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Mention, error) {
		var (
			m       model.Mention
			comment *string
		)
		err := row.Scan(&m.ID, &m.UserID, &m.PostID, &comment, &m.IsRead, &m.CreatedAt)
		if comment != nil {
			m.CommentID = *comment
		}
		return m, err
	},
}

var conversationSchema = schema[model.Conversation]{
	table: ti.ConversationsTableName,
	columns: []string{
		ti.IDColumn,
		ti.ConversationParticipantsColumn,
		ti.ConversationSubjectColumn,
		ti.ConversationLatestDateColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldParticipants: ti.ConversationParticipantsColumn,
		pagination.FieldLatestDate:   ti.ConversationLatestDateColumn,
		pagination.FieldCreatedAt:    ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Conversation, error) {
		var c model.Conversation
		err := row.Scan(&c.ID, &c.Participants, &c.Subject, &c.LatestDate, &c.CreatedAt)
		return c, err
	},
}

var subredditSchema = schema[model.Subreddit]{
	table: ti.SubredditsTableName,
	columns: []string{
		ti.IDColumn,
		ti.SubredditNameColumn,
		ti.SubredditCategoryColumn,
		ti.SubredditDescriptionColumn,
		ti.SubredditNumberOfViewsColumn,
		ti.CreatedAtColumn,
		ti.SubredditBannedUsersColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldCategory:      ti.SubredditCategoryColumn,
		pagination.FieldNumberOfViews: ti.SubredditNumberOfViewsColumn,
		pagination.FieldCreatedAt:     ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.Subreddit, error) {
		var s model.Subreddit
		// banned_users is jsonb in ban order
		err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.NumberOfViews, &s.CreatedAt, &s.BannedUsers)
		return s, err
	},
}

var userSchema = schema[model.User]{
	table: ti.UsersTableName,
	columns: []string{
		ti.IDColumn,
		ti.UserUsernameColumn,
		ti.UserJoinedSubredditsColumn,
		ti.UserFollowedUsersColumn,
		ti.UserBlockedUsersColumn,
		ti.CreatedAtColumn,
	},
	fields: map[pagination.Field]string{
		pagination.FieldCreatedAt: ti.CreatedAtColumn,
	},
	scan: func(row pgx.Row) (model.User, error) {
		var u model.User
		err := row.Scan(&u.ID, &u.Username, &u.JoinedSubreddits, &u.FollowedUsers, &u.BlockedUsers, &u.CreatedAt)
		return u, err
	},
}

func (s *Store) Posts() *Table[model.Post] { return newTable(s.db, s.getter, postSchema) }

func (s *Store) Comments() *Table[model.Comment] { return newTable(s.db, s.getter, commentSchema) }

func (s *Store) Subreddits() *Table[model.Subreddit] { return newTable(s.db, s.getter, subredditSchema) }

func (s *Store) Users() *Table[model.User] { return newTable(s.db, s.getter, userSchema) }

func (s *Store) Conversations() *Table[model.Conversation] {
	return newTable(s.db, s.getter, conversationSchema)
}

func (s *Store) Messages() *Messages {
	return &Messages{Table: newTable(s.db, s.getter, messageSchema)}
}

func (s *Store) Mentions() *Mentions {
	return &Mentions{Table: newTable(s.db, s.getter, mentionSchema)}
}

type Messages struct {
	*Table[model.Message]
}

func (m *Messages) MarkRead(ctx context.Context, id string) error {
	return m.setRead(ctx, ti.MessageIsReadColumn, id)
}

type Mentions struct {
	*Table[model.Mention]
}

func (m *Mentions) MarkRead(ctx context.Context, id string) error {
	return m.setRead(ctx, ti.MentionIsReadColumn, id)
}
