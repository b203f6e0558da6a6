package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/postgres"
	"github.com/aussiebroadwan/dancereel/pkg/idx"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a throwaway postgres container and returns its DSN.
func startPostgres(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "videos",
			"POSTGRES_PASSWORD": "videos",
			"POSTGRES_DB":       "videos",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://videos:videos@%s:%s/videos?sslmode=disable", host, port.Port())
}

func TestPostgresStore(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	st, err := postgres.NewStore(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations(), "re-applying migrations is a no-op")
	require.NoError(t, st.Ping(ctx))

	videos, err := st.Videos().ListVideos(ctx)
	require.NoError(t, err)
	require.Empty(t, videos)

	alice := domain.User{
		ID:           idx.New().String(),
		Username:     "alice",
		PasswordHash: "$argon2id$dummy",
		Token:        "token-alice",
		TokenHash:    "hash-alice",
		School:       "Juilliard",
	}
	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, alice)
	}))

	dup := alice
	dup.ID = idx.New().String()
	dup.TokenHash = "hash-other"
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	got, err := st.Users().GetUserByTokenHash(ctx, alice.TokenHash)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	first, err := st.Videos().CreateVideo(ctx, domain.Video{
		Filename: "x_solo.mp4", UploaderID: alice.ID, School: alice.School,
	})
	require.NoError(t, err)
	second, err := st.Videos().CreateVideo(ctx, domain.Video{
		Filename: "y_duet.mp4", UploaderID: alice.ID, School: alice.School,
	})
	require.NoError(t, err)
	require.Less(t, first, second)

	videos, err = st.Videos().ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	require.Equal(t, first, videos[0].ID)

	_, err = st.Videos().GetVideoByID(ctx, second+100)
	require.ErrorIs(t, err, store.ErrNotFound)
}
