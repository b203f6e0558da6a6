package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/dancereel/internal/videos/blobs"
	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
)

// BlobOpener opens stored blobs for streaming.
type BlobOpener interface {
	Open(name string) (*blobs.Blob, error)
}

// CatalogService serves the global video listing and playback. Listings are
// not filtered by school.
type CatalogService struct {
	Store store.Store
	Blobs BlobOpener
}

// List returns every video in ascending id order. An empty catalog is an
// empty, non-nil slice.
func (s *CatalogService) List(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.Store.Videos().ListVideos(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	if videos == nil {
		videos = []domain.Video{}
	}
	return videos, nil
}

// Open looks up a video and opens its bytes. The caller must close the blob.
// A catalog entry whose blob is missing is reported as ErrVideoNotFound.
func (s *CatalogService) Open(ctx context.Context, id int64) (domain.Video, *blobs.Blob, error) {
	video, err := s.Store.Videos().GetVideoByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Video{}, nil, ErrVideoNotFound
	}
	if err != nil {
		return domain.Video{}, nil, fmt.Errorf("get video: %w", err)
	}

	blob, err := s.Blobs.Open(video.Filename)
	if errors.Is(err, blobs.ErrNotFound) {
		slogx.FromContext(ctx).Warn("catalog entry has no blob", "video_id", id, "filename", video.Filename)
		return domain.Video{}, nil, ErrVideoNotFound
	}
	if err != nil {
		return domain.Video{}, nil, fmt.Errorf("open blob: %w", err)
	}
	return video, blob, nil
}
