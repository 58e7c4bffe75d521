package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"testing"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"socialapi/internal/model"
	"socialapi/pkg/pagination"
)

func TestMigrations_Embedded(t *testing.T) {
	t.Parallel()

	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		body, err := fs.ReadFile(migrations, f)
		require.NoError(t, err)
		require.Contains(t, string(body), "-- +goose Up", f)
		require.Contains(t, string(body), "-- +goose Down", f)
	}
}

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("set GO_TEST_INTEGRATION to run postgres integration tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "socialapi",
				"POSTGRES_PASSWORD": "socialapi",
				"POSTGRES_DB":       "socialapi",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(context.Background()) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://socialapi:socialapi@%s:%s/socialapi?sslmode=disable", host, port.Port()))
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestMigrate_PagesPosts(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, pool))
	// applying twice is a no-op
	require.NoError(t, Migrate(ctx, pool))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := []string{postID, postID2, "0190a1b2-0000-7000-8000-000000000003"}
	for i, id := range ids {
		_, err := pool.Exec(ctx,
			`INSERT INTO posts (id, subreddit_id, author_id, title, created_at) VALUES ($1, 'golang', 'u1', $2, $3)`,
			id, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Hour),
		)
		require.NoError(t, err)
	}

	posts := NewStore(pool, trmpgx.DefaultCtxGetter).Posts()
	opts := pagination.Options{Scope: []pagination.Condition{pagination.Eq(pagination.FieldSubredditID, "golang")}}

	q := pagination.Assemble(pagination.Request{Limit: 2}, opts, nil, time.Now())
	rows, err := posts.FindMany(ctx, q)
	require.NoError(t, err)
	first := pagination.Build(rows, q)
	require.Equal(t, []string{ids[2], ids[1]}, pageIDs(first))
	require.Equal(t, ids[1], first.After)

	anchor, err := posts.FindByID(ctx, first.After)
	require.NoError(t, err)

	req := pagination.Request{Limit: 2, After: first.After}
	cur := pagination.NewCursor(anchor, opts.Order(req), pagination.DirectionAfter)
	q = pagination.Assemble(req, opts, cur, time.Now())
	rows, err = posts.FindMany(ctx, q)
	require.NoError(t, err)
	second := pagination.Build(rows, q)
	require.Equal(t, []string{ids[0]}, pageIDs(second))
	require.Empty(t, second.After)
}

func pageIDs(p pagination.Page[model.Post]) []string {
	out := make([]string, 0, len(p.Children))
	for _, c := range p.Children {
		out = append(out, c.ID)
	}
	return out
}
