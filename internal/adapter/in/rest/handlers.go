package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialapi/internal/service"
	"socialapi/pkg/pagination"
)

type handler struct {
	svc Services
}

// respond writes page or maps err to a status.
func respond[T any](w http.ResponseWriter, r *http.Request, page pagination.Page[T], err error) {
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *handler) listSubreddits(w http.ResponseWriter, r *http.Request) {
	req := service.ListSubredditsRequest{Category: r.URL.Query().Get("category")}
	page, err := h.svc.Subreddits.List(r.Context(), req, pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) listSubredditPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Posts.ListSubredditPosts(r.Context(), chi.URLParam(r, "subredditID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) listBannedUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Subreddits.BannedUsers(r.Context(), chi.URLParam(r, "subredditID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) searchPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := service.SearchPostsRequest{Query: q.Get("q"), SubredditID: q.Get("subreddit")}
	page, err := h.svc.Posts.Search(r.Context(), req, pagination.ParseRequest(q))
	respond(w, r, page, err)
}

func (h *handler) listComments(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Comments.ListComments(r.Context(), chi.URLParam(r, "postID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) listReplies(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Comments.ListReplies(r.Context(),
		chi.URLParam(r, "postID"),
		chi.URLParam(r, "commentID"),
		pagination.ParseRequest(r.URL.Query()),
	)
	respond(w, r, page, err)
}

func (h *handler) listUserPosts(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Posts.ListUserPosts(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) homeFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Feed.Home(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) inbox(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Messages.Inbox(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) sent(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Messages.Sent(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) mentions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Mentions.List(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) conversations(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Conversations.List(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}

func (h *handler) blockedUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Users.BlockedUsers(r.Context(), chi.URLParam(r, "userID"), pagination.ParseRequest(r.URL.Query()))
	respond(w, r, page, err)
}
