package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/sqlite"
	"github.com/aussiebroadwan/dancereel/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newUser(username string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$dummy",
		Token:        "token-" + username,
		TokenHash:    "hash-" + username,
		School:       "Juilliard",
	}
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	alice := newUser("alice")
	require.NoError(t, st.Users().CreateUser(ctx, alice))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, "Juilliard", got.School)
	require.Equal(t, alice.Token, got.Token)
	require.False(t, got.CreatedAt.IsZero())

	got, err = st.Users().GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	got, err = st.Users().GetUserByTokenHash(ctx, alice.TokenHash)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)

	_, err = st.Users().GetUserByUsername(ctx, "bob")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetUserByTokenHash(ctx, "nope")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Users().CreateUser(ctx, newUser("alice")))

	dup := newUser("alice")
	dup.TokenHash = "another-hash"
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestVideos(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	videos, err := st.Videos().ListVideos(ctx)
	require.NoError(t, err)
	require.NotNil(t, videos)
	require.Empty(t, videos)

	alice := newUser("alice")
	require.NoError(t, st.Users().CreateUser(ctx, alice))

	var ids []int64
	for _, name := range []string{"a_solo.mp4", "b_duet.webm", "c_group.mov"} {
		id, err := st.Videos().CreateVideo(ctx, domain.Video{
			Filename:   name,
			Title:      name,
			UploaderID: alice.ID,
			School:     alice.School,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.Less(t, ids[0], ids[1])
	require.Less(t, ids[1], ids[2])

	videos, err = st.Videos().ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 3)
	for i, v := range videos {
		require.Equal(t, ids[i], v.ID)
		require.Equal(t, "Juilliard", v.School)
	}

	v, err := st.Videos().GetVideoByID(ctx, ids[1])
	require.NoError(t, err)
	require.Equal(t, "b_duet.webm", v.Filename)
	require.Equal(t, alice.ID, v.UploaderID)

	_, err = st.Videos().GetVideoByID(ctx, 9999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestVideos_RequiresExistingUploader(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Videos().CreateVideo(context.Background(), domain.Video{
		Filename:   "ghost.mp4",
		UploaderID: "missing",
		School:     "Nowhere",
	})
	require.Error(t, err)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := errors.New("boom")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, newUser("alice")))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().CreateUser(ctx, newUser("alice"))
	}))

	_, err = st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dance.db")

	st, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	alice := newUser("alice")
	require.NoError(t, st.Users().CreateUser(ctx, alice))
	require.NoError(t, st.Close())

	st, err = sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(), "re-applying migrations is a no-op")

	got, err := st.Users().GetUserByTokenHash(ctx, alice.TokenHash)
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.NoError(t, st.Ping(ctx))
}
