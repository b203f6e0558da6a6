/*
Package videosdk is a Go client for the dancereel video service.

	client := videosdk.NewClient("http://localhost:5000")

	// Register once; the returned token never expires.
	token, err := client.Register(ctx, videosdk.RegisterRequest{
		Username: "alice",
		Password: "pw123",
		School:   "Juilliard",
	})

	// Logging in again returns the same token.
	token, err = client.Login(ctx, "alice", "pw123")

	// Upload a clip.
	f, _ := os.Open("solo.mp4")
	defer f.Close()
	uploaded, err := client.Upload(ctx, token, videosdk.UploadRequest{
		Filename: "solo.mp4",
		Title:    "Solo",
		Body:     f,
	})

	// List and play back.
	videos, err := client.ListVideos(ctx)
	body, err := client.Play(ctx, uploaded.ID)
	defer body.Close()

Every non-2xx response is returned as an *APIError carrying the HTTP
status and the service's error code:

	var apiErr *videosdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == videosdk.ErrorCodeDuplicateUsername {
		// pick another name
	}
*/
package videosdk
