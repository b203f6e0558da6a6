package domain

import "time"

type Video struct {
	ID         int64
	Filename   string // name of the blob inside the upload directory
	Title      string
	UploaderID string
	School     string // copied from the uploader at upload time
	CreatedAt  time.Time
}

// VideoRecord is the public projection of a Video returned by listings.
type VideoRecord struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
}

func (v Video) Record() VideoRecord {
	return VideoRecord{ID: v.ID, Filename: v.Filename}
}
