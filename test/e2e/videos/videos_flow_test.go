package videos_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/dancereel/pkg/videosdk"
	"github.com/stretchr/testify/require"
)

// TestUploadListPlay walks the whole user journey against the container.
func TestUploadListPlay(t *testing.T) {
	client := setupVideosContainer(t, nil)
	ctx := t.Context()

	videos, err := client.ListVideos(ctx)
	require.NoError(t, err)
	require.Empty(t, videos, "fresh catalog should be empty")

	token := registerUser(t, client, "alice", "pw123", "Juilliard")

	content := bytes.Repeat([]byte("frame"), 4096)
	uploaded, err := client.Upload(ctx, token, videosdk.UploadRequest{
		Filename: "solo.mp4",
		Title:    "Solo",
		Body:     bytes.NewReader(content),
	})
	require.NoError(t, err)
	require.Equal(t, "Uploaded!", uploaded.Message)
	require.True(t, strings.HasSuffix(uploaded.Filename, "_solo.mp4"), uploaded.Filename)

	videos, err = client.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, uploaded.ID, videos[0].ID)
	require.Equal(t, "Solo", videos[0].Title)
	require.Equal(t, uploaded.Filename, videos[0].Filename)

	body, err := client.Play(ctx, uploaded.ID)
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	played, err := io.ReadAll(body)
	require.NoError(t, err)
	require.Equal(t, content, played)
}

func TestLoginReturnsRegisteredToken(t *testing.T) {
	client := setupVideosContainer(t, nil)
	ctx := t.Context()

	token := registerUser(t, client, "bob", "secret", "Royal Ballet")

	again, err := client.Login(ctx, "bob", "secret")
	require.NoError(t, err)
	require.Equal(t, token, again, "login returns the token issued at registration")

	_, err = client.Login(ctx, "bob", "wrong")
	requireAPIError(t, err, http.StatusUnauthorized, videosdk.ErrorCodeInvalidCredentials)

	_, err = client.Register(ctx, videosdk.RegisterRequest{Username: "bob", Password: "x", School: "y"})
	requireAPIError(t, err, http.StatusBadRequest, videosdk.ErrorCodeDuplicateUsername)
}

func TestUploadRejections(t *testing.T) {
	client := setupVideosContainer(t, nil)
	ctx := t.Context()

	token := registerUser(t, client, "carol", "pw", "Bolshoi")

	_, err := client.Upload(ctx, "not-a-token", videosdk.UploadRequest{
		Filename: "solo.mp4", Title: "Solo", Body: strings.NewReader("x"),
	})
	requireAPIError(t, err, http.StatusUnauthorized, videosdk.ErrorCodeUnauthenticated)

	_, err = client.Upload(ctx, token, videosdk.UploadRequest{
		Filename: "notes.txt", Title: "Notes", Body: strings.NewReader("x"),
	})
	requireAPIError(t, err, http.StatusBadRequest, videosdk.ErrorCodeUnsupportedMediaType)

	videos, err := client.ListVideos(ctx)
	require.NoError(t, err)
	require.Empty(t, videos, "rejected uploads must not be catalogued")

	_, err = client.Play(ctx, 999)
	requireAPIError(t, err, http.StatusNotFound, videosdk.ErrorCodeNotFound)
}

func TestUploadTooLarge(t *testing.T) {
	client := setupVideosContainer(t, map[string]string{
		"VIDEOS_MAX_UPLOAD_BYTES": "1024",
	})
	ctx := t.Context()

	token := registerUser(t, client, "dave", "pw", "Joffrey")

	_, err := client.Upload(ctx, token, videosdk.UploadRequest{
		Filename: "long.webm",
		Title:    "Long",
		Body:     bytes.NewReader(make([]byte, 64<<10)),
	})
	requireAPIError(t, err, http.StatusRequestEntityTooLarge, videosdk.ErrorCodeFileTooLarge)
}
