package sqlite

import (
	"context"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store/drivers/sqlite/gen"
)

type videosRepo struct {
	q *gen.Queries
}

func (r *videosRepo) CreateVideo(ctx context.Context, v domain.Video) (int64, error) {
	id, err := r.q.CreateVideo(ctx, gen.CreateVideoParams{
		Filename:   v.Filename,
		Title:      v.Title,
		UploaderID: v.UploaderID,
		School:     v.School,
	})
	if err != nil {
		return 0, mapConstraint(err)
	}
	return id, nil
}

func (r *videosRepo) GetVideoByID(ctx context.Context, id int64) (domain.Video, error) {
	row, err := r.q.GetVideoByID(ctx, id)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return mapVideo(row), nil
}

func (r *videosRepo) ListVideos(ctx context.Context) ([]domain.Video, error) {
	rows, err := r.q.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	videos := make([]domain.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, mapVideo(row))
	}
	return videos, nil
}
