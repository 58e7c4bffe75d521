// Package tableinfo names the tables, collections and columns shared by the
// storage adapters. Mongo collections use the table names.
package tableinfo

const (
	IDColumn        = "id"
	CreatedAtColumn = "created_at"
	DeletedAtColumn = "deleted_at"
)

const (
	PostsTableName = "posts"

	PostSubredditIDColumn   = "subreddit_id"
	PostAuthorIDColumn      = "author_id"
	PostTitleColumn         = "title"
	PostTextColumn          = "text"
	PostNumberOfVotesColumn = "number_of_votes"
	PostHotScoreColumn      = "hot_score"
	PostBestScoreColumn     = "best_score"
	PostNumberOfViewsColumn = "number_of_views"
)

const (
	CommentsTableName = "comments"

	CommentPostIDColumn        = "post_id"
	CommentParentIDColumn      = "parent_id"
	CommentAuthorIDColumn      = "author_id"
	CommentTextColumn          = "text"
	CommentNumberOfVotesColumn = "number_of_votes"
	CommentHotScoreColumn      = "hot_score"
	CommentBestScoreColumn     = "best_score"
)

const (
	MessagesTableName = "messages"

	MessageSenderIDColumn   = "sender_id"
	MessageReceiverIDColumn = "receiver_id"
	MessageSubjectColumn    = "subject"
	MessageTextColumn       = "text"
	MessageIsReadColumn     = "is_read"
)

const (
	MentionsTableName = "mentions"

	MentionUserIDColumn    = "user_id"
	MentionPostIDColumn    = "post_id"
	MentionCommentIDColumn = "comment_id"
	MentionIsReadColumn    = "is_read"
)

const (
	ConversationsTableName = "conversations"

	ConversationParticipantsColumn = "participants"
	ConversationSubjectColumn      = "subject"
	ConversationLatestDateColumn   = "latest_date"
)

const (
	SubredditsTableName = "subreddits"

	SubredditNameColumn          = "name"
	SubredditCategoryColumn      = "category"
	SubredditDescriptionColumn   = "description"
	SubredditNumberOfViewsColumn = "number_of_views"
	SubredditBannedUsersColumn   = "banned_users"
)

const (
	UsersTableName = "users"

	UserUsernameColumn         = "username"
	UserJoinedSubredditsColumn = "joined_subreddits"
	UserFollowedUsersColumn    = "followed_users"
	UserBlockedUsersColumn     = "blocked_users"
)
