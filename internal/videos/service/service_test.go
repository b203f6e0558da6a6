package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/aussiebroadwan/dancereel/internal/videos/blobs"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/sqlite"
	"github.com/aussiebroadwan/dancereel/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	identity *IdentityService
	ingest   *IngestService
	catalog  *CatalogService
	blobs    *blobs.Disk
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	disk, err := blobs.NewDisk(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	sealer, err := cryptox.NewTokenSealer("test-pepper")
	require.NoError(t, err)

	identity := &IdentityService{
		Store:  st,
		Hasher: cryptox.NewPasswordHasher("test-pepper"),
		Sealer: sealer,
	}
	return &testEnv{
		identity: identity,
		ingest:   &IngestService{Store: st, Blobs: disk, Identity: identity},
		catalog:  &CatalogService{Store: st, Blobs: disk},
		blobs:    disk,
	}
}

func (e *testEnv) register(t *testing.T, username, password, school string) string {
	t.Helper()
	token, err := e.identity.Register(context.Background(), RegisterInput{
		Username: username,
		Password: password,
		School:   school,
	})
	require.NoError(t, err)
	return token
}

func (e *testEnv) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.blobs.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.register(t, "alice", "pw123", "Juilliard")
	require.Len(t, token, 43, "256-bit base64url token")

	_, err := env.identity.Register(ctx, RegisterInput{Username: "alice", Password: "other", School: "Elsewhere"})
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// Exact match only: no case folding.
	other := env.register(t, "Alice", "pw123", "Juilliard")
	require.NotEqual(t, token, other)

	bob := env.register(t, "bob", "pw123", "Juilliard")
	require.NotEqual(t, token, bob)

	stored, err := env.identity.Store.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotEqual(t, token, stored.Token, "token must be stored sealed")
	require.Equal(t, cryptox.FingerprintToken(token), stored.TokenHash)
}

func TestRegister_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		in    RegisterInput
		field string
	}{
		{"missing username", RegisterInput{Password: "pw", School: "s"}, "username"},
		{"missing password", RegisterInput{Username: "u", School: "s"}, "password"},
		{"missing school", RegisterInput{Username: "u", Password: "pw"}, "school"},
		{"username too long", RegisterInput{Username: strings.Repeat("u", 81), Password: "pw", School: "s"}, "username"},
		{"school too long", RegisterInput{Username: "u", Password: "pw", School: strings.Repeat("s", 81)}, "school"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.identity.Register(context.Background(), tt.in)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Contains(t, verr.Fields, tt.field)
		})
	}

	// 80 multi-byte characters is within the limit.
	env.register(t, strings.Repeat("é", 80), "pw", "school")
}

func TestAuthenticateByPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.register(t, "alice", "pw123", "Juilliard")

	got, err := env.identity.AuthenticateByPassword(ctx, LoginInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	require.Equal(t, token, got)

	again, err := env.identity.AuthenticateByPassword(ctx, LoginInput{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	require.Equal(t, token, again, "login must not rotate the token")

	_, err = env.identity.AuthenticateByPassword(ctx, LoginInput{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.identity.AuthenticateByPassword(ctx, LoginInput{Username: "nobody", Password: "pw123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = env.identity.AuthenticateByPassword(ctx, LoginInput{Username: "alice"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestResolveToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.register(t, "alice", "pw123", "Juilliard")

	user, ok, err := env.identity.ResolveToken(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "Juilliard", user.School)

	for _, other := range []string{"", "garbage", token[:len(token)-1], token + "x", strings.ToUpper(token)} {
		_, ok, err := env.identity.ResolveToken(ctx, other)
		require.NoError(t, err)
		require.False(t, ok, "token %q must not resolve", other)
	}

	id, err := env.identity.AuthenticateToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, id)

	id, err = env.identity.AuthenticateToken(ctx, "garbage")
	require.NoError(t, err)
	require.Empty(t, id)
}

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		ext      string
		ok       bool
	}{
		{"solo.mp4", "mp4", true},
		{"clip.MP4", "mp4", true},
		{"duet.MoV", "mov", true},
		{"old.avi", "avi", true},
		{"web.webm", "webm", true},
		{"archive.tar.mp4", "mp4", true},
		{"clip.txt", "", false},
		{"clip.mp4.txt", "", false},
		{"mp4", "", false},
		{"clip.", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			ext, ok := AllowedExtension(tt.filename)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.ext, ext)
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"solo.mp4", "solo.mp4"},
		{"My Solo (final).mp4", "My_Solo_final.mp4"},
		{"../../etc/passwd.mp4", "passwd.mp4"},
		{`C:\Users\alice\clip.mov`, "clip.mov"},
		{"café.webm", "cafe.webm"},
		{".hidden.mp4", "hidden.mp4"},
		{"ダンス.mp4", "mp4"},
		{"", ""},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestStorageName(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{32}_solo\.mp4$`)

	a := StorageName("solo.mp4", "mp4")
	b := StorageName("solo.mp4", "mp4")
	require.Regexp(t, pattern, a)
	require.Regexp(t, pattern, b)
	require.NotEqual(t, a, b, "prefix must be random")

	require.Regexp(t, `^[0-9a-f]{32}_upload\.mp4$`, StorageName("ダンス.mp4", "mp4"))
	require.Regexp(t, `^[0-9a-f]{32}_clip\.MP4$`, StorageName("clip.MP4", "mp4"))
}

func TestIngest(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token := env.register(t, "alice", "pw123", "Juilliard")

	rec, err := env.ingest.Ingest(ctx, UploadInput{
		Token:    token,
		Filename: "solo.mp4",
		Title:    "Solo",
		Body:     strings.NewReader("dance bytes"),
	})
	require.NoError(t, err)
	require.Positive(t, rec.ID)
	require.Regexp(t, `^[0-9a-f]{32}_solo\.mp4$`, rec.Filename)

	data, err := os.ReadFile(filepath.Join(env.blobs.Dir(), rec.Filename))
	require.NoError(t, err)
	require.Equal(t, "dance bytes", string(data))

	videos, err := env.catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, "Solo", videos[0].Title)
	require.Equal(t, "Juilliard", videos[0].School)

	user, _, err := env.identity.ResolveToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, videos[0].UploaderID)

	// Empty titles are allowed.
	_, err = env.ingest.Ingest(ctx, UploadInput{
		Token: token, Filename: "clip.MP4", Body: strings.NewReader("x"),
	})
	require.NoError(t, err)
}

func TestIngest_RejectionsWriteNothing(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice", "pw123", "Juilliard")

	tests := []struct {
		name string
		in   UploadInput
		want error
	}{
		{"no token", UploadInput{Filename: "solo.mp4"}, ErrUnauthenticated},
		{"unknown token", UploadInput{Token: "nope", Filename: "solo.mp4"}, ErrUnauthenticated},
		{"bad extension", UploadInput{Token: token, Filename: "clip.txt"}, ErrUnsupportedMediaType},
		{"no extension", UploadInput{Token: token, Filename: "clip"}, ErrUnsupportedMediaType},
		{"title too long", UploadInput{Token: token, Filename: "solo.mp4", Title: strings.Repeat("t", 201)}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Body = strings.NewReader("bytes")
			_, err := env.ingest.Ingest(context.Background(), tt.in)
			require.ErrorIs(t, err, tt.want)
			require.Empty(t, env.storedFiles(t))
		})
	}

	// Authentication is checked before the extension.
	_, err := env.ingest.Ingest(context.Background(), UploadInput{Filename: "clip.txt", Body: strings.NewReader("x")})
	require.ErrorIs(t, err, ErrUnauthenticated)
}

type failingBlobs struct{}

func (failingBlobs) Put(context.Context, string, io.Reader) (int64, error) {
	return 0, errors.New("disk full")
}

func TestIngest_StorageWriteError(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "alice", "pw123", "Juilliard")

	env.ingest.Blobs = failingBlobs{}
	_, err := env.ingest.Ingest(context.Background(), UploadInput{
		Token: token, Filename: "solo.mp4", Body: strings.NewReader("x"),
	})
	require.ErrorIs(t, err, ErrStorageWrite)

	videos, err := env.catalog.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, videos, "no catalog entry without stored bytes")
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	videos, err := env.catalog.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, videos)
	require.Empty(t, videos)

	_, _, err = env.catalog.Open(ctx, 42)
	require.ErrorIs(t, err, ErrVideoNotFound)

	token := env.register(t, "alice", "pw123", "Juilliard")
	rec, err := env.ingest.Ingest(ctx, UploadInput{
		Token: token, Filename: "solo.mp4", Title: "Solo", Body: strings.NewReader("exact bytes"),
	})
	require.NoError(t, err)

	video, blob, err := env.catalog.Open(ctx, rec.ID)
	require.NoError(t, err)
	data, err := io.ReadAll(blob)
	require.NoError(t, err)
	require.NoError(t, blob.Close())
	require.Equal(t, "exact bytes", string(data))
	require.Equal(t, rec.Filename, video.Filename)

	require.NoError(t, env.blobs.Remove(rec.Filename))
	_, _, err = env.catalog.Open(ctx, rec.ID)
	require.ErrorIs(t, err, ErrVideoNotFound)
}

func TestMediaType(t *testing.T) {
	require.Equal(t, "video/mp4", MediaType("abc_solo.MP4"))
	require.Equal(t, "video/quicktime", MediaType("abc_duet.mov"))
	require.Equal(t, "video/x-msvideo", MediaType("abc_old.avi"))
	require.Equal(t, "video/webm", MediaType("abc_web.webm"))
	require.Equal(t, "application/octet-stream", MediaType("abc_notes.txt"))
}
