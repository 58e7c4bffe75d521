package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"socialapi/internal/service"
	"socialapi/pkg/logger"
)

// Services holds everything the listing routes call.
type Services struct {
	Posts         *service.PostService
	Feed          *service.FeedService
	Comments      *service.CommentService
	Messages      *service.MessageService
	Mentions      *service.MentionService
	Conversations *service.ConversationService
	Subreddits    *service.SubredditService
	Users         *service.UserService
}

// NewRouter mounts the read-only listing routes. Every route accepts the
// before, after, limit, sort and time query parameters.
func NewRouter(log *slog.Logger, svc Services) chi.Router {
	h := &handler{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(withLogger(log))

	r.Get("/subreddits", h.listSubreddits)
	r.Get("/r/{subredditID}/posts", h.listSubredditPosts)
	r.Get("/r/{subredditID}/banned", h.listBannedUsers)

	r.Get("/posts/search", h.searchPosts)
	r.Get("/posts/{postID}/comments", h.listComments)
	r.Get("/posts/{postID}/comments/{commentID}/replies", h.listReplies)

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/posts", h.listUserPosts)
		r.Get("/feed", h.homeFeed)
		r.Get("/inbox", h.inbox)
		r.Get("/sent", h.sent)
		r.Get("/mentions", h.mentions)
		r.Get("/conversations", h.conversations)
		r.Get("/blocked", h.blockedUsers)
	})

	return r
}

// withLogger puts a request-scoped logger into the request context.
func withLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := log.With("request_id", middleware.GetReqID(r.Context()), "path", r.URL.Path)
			next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), l)))
		})
	}
}
