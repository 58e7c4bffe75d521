package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialapi/config"
	"socialapi/internal/adapter/in/rest"
	"socialapi/internal/adapter/out/storage/inmemory"
	"socialapi/internal/adapter/out/storage/mongo"
	"socialapi/internal/adapter/out/storage/postgres"
	"socialapi/internal/model"
	"socialapi/internal/service"
	"socialapi/pkg/logger"
)

// stores is the storage surface the services are built from.
type stores struct {
	posts         service.Collection[model.Post]
	comments      service.Collection[model.Comment]
	subreddits    service.Collection[model.Subreddit]
	users         service.Collection[model.User]
	messages      service.MessageStorage
	mentions      service.MentionStorage
	conversations service.Collection[model.Conversation]
}

func (s stores) services() rest.Services {
	return rest.Services{
		Posts:         service.NewPostService(s.posts, s.subreddits, s.users),
		Feed:          service.NewFeedService(s.posts, s.users),
		Comments:      service.NewCommentService(s.comments, s.posts),
		Messages:      service.NewMessageService(s.messages, s.users),
		Mentions:      service.NewMentionService(s.mentions, s.users),
		Conversations: service.NewConversationService(s.conversations, s.users),
		Subreddits:    service.NewSubredditService(s.subreddits, model.MainTopics()),
		Users:         service.NewUserService(s.users),
	}
}

type App struct {
	cfg     config.Config
	srv     *http.Server
	closers []func(context.Context) error
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)
	a := &App{cfg: cfg}

	st, err := a.openStorage(ctx)
	if err != nil {
		_ = a.close(ctx)
		return nil, err
	}

	r := chi.NewRouter()
	r.Mount("/", rest.NewRouter(log, st.services()))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	a.srv = &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", a.srv.Addr, "storage", cfg.StorageType)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (stores, error) {
	switch a.cfg.StorageType {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, a.cfg.Postgres.GetDSN())
		if err != nil {
			return stores{}, fmt.Errorf("pgxpool: %w", err)
		}
		a.closers = append(a.closers, func(context.Context) error {
			pool.Close()
			return nil
		})
		pg := postgres.NewStore(pool, trmpgx.DefaultCtxGetter)
		return stores{
			posts:         pg.Posts(),
			comments:      pg.Comments(),
			subreddits:    pg.Subreddits(),
			users:         pg.Users(),
			messages:      pg.Messages(),
			mentions:      pg.Mentions(),
			conversations: pg.Conversations(),
		}, nil

	case config.StorageMongo:
		m, err := mongo.New(ctx, a.cfg.Mongo)
		if err != nil {
			return stores{}, fmt.Errorf("mongo: %w", err)
		}
		a.closers = append(a.closers, m.Close)
		return stores{
			posts:         m.Posts(),
			comments:      m.Comments(),
			subreddits:    m.Subreddits(),
			users:         m.Users(),
			messages:      m.Messages(),
			mentions:      m.Mentions(),
			conversations: m.Conversations(),
		}, nil

	default:
		mem := inmemory.NewStore()
		if a.cfg.SeedFile != "" {
			if err := seed(ctx, mem, a.cfg.SeedFile); err != nil {
				return stores{}, err
			}
		}
		return stores{
			posts:         mem.Posts,
			comments:      mem.Comments,
			subreddits:    mem.Subreddits,
			users:         mem.Users,
			messages:      mem.Messages,
			mentions:      mem.Mentions,
			conversations: mem.Conversations,
		}, nil
	}
}

func seed(ctx context.Context, mem *inmemory.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	if err := mem.Load(ctx, f); err != nil {
		return fmt.Errorf("load seed file %s: %w", path, err)
	}
	logger.FromContext(ctx).Info("seeded in-memory storage", "file", path)
	return nil
}

// Handler exposes the root handler for tests.
func (a *App) Handler() http.Handler { return a.srv.Handler }

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		err := a.srv.Shutdown(shCtx)
		return errors.Join(err, a.close(shCtx))

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return errors.Join(err, a.close(context.Background()))
	}
}

func (a *App) close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
