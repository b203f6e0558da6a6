package videosdk

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload streams req.Body to POST /upload as multipart form data.
func (c *Client) Upload(ctx context.Context, token string, req UploadRequest) (*UploadResponse, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	// Unblocks the writer if the server answers before reading the body.
	defer func() { _ = pr.Close() }()

	go func() {
		err := writeUploadForm(mw, req)
		if err == nil {
			err = mw.Close()
		}
		_ = pw.CloseWithError(err)
	}()

	resp, err := c.doRequest(ctx, http.MethodPost, "/upload", pr, map[string]string{
		"Content-Type":  mw.FormDataContentType(),
		"Authorization": "Bearer " + token,
	})
	if err != nil {
		return nil, err
	}

	var uploadResp UploadResponse
	if err := decodeJSON(resp, &uploadResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &uploadResp, nil
}

func writeUploadForm(mw *multipart.Writer, req UploadRequest) error {
	if err := mw.WriteField("title", req.Title); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return err
	}
	if req.Body == nil {
		return nil
	}
	_, err = io.Copy(part, req.Body)
	return err
}

// ListVideos returns every uploaded video in id order.
func (c *Client) ListVideos(ctx context.Context) ([]Video, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/videos", nil, nil)
	if err != nil {
		return nil, err
	}

	var videos []Video
	if err := decodeJSON(resp, &videos, http.StatusOK); err != nil {
		return nil, err
	}
	return videos, nil
}

// Play opens the video's bytes. The caller must close the returned body.
func (c *Client) Play(ctx context.Context, id int64) (io.ReadCloser, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/play/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return nil, parseErrorResponse(resp, body)
	}
	return resp.Body, nil
}
