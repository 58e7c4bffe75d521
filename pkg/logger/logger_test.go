package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	require.Same(t, slog.Default(), FromContext(context.Background()))

	l := New("prod")
	require.Same(t, l, FromContext(WithLogger(context.Background(), l)))
}

func TestNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.True(t, New("local").Enabled(ctx, slog.LevelDebug))
	require.False(t, New("prod").Enabled(ctx, slog.LevelDebug))
	require.True(t, New("prod").Enabled(ctx, slog.LevelInfo))
}
