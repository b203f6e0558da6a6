package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// AllowedExtensions is the upload allow-list, lower case, without the dot.
var AllowedExtensions = []string{"mp4", "mov", "avi", "webm"}

var mediaTypes = map[string]string{
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"webm": "video/webm",
}

// MediaType returns the Content-Type for a stored video name, falling back
// to application/octet-stream.
func MediaType(filename string) string {
	if ext, ok := AllowedExtension(filename); ok {
		return mediaTypes[ext]
	}
	return "application/octet-stream"
}

// BlobWriter persists uploaded bytes under a name the caller chooses.
type BlobWriter interface {
	Put(ctx context.Context, name string, r io.Reader) (int64, error)
}

type UploadInput struct {
	Token    string
	Filename string // as sent by the client
	Title    string
	Body     io.Reader
}

// IngestService admits uploads into the catalog.
type IngestService struct {
	Store    store.Store
	Blobs    BlobWriter
	Identity *IdentityService
}

// Ingest validates and stores an upload. Checks run in a fixed order:
// caller, extension, title; nothing touches storage until all pass.
//
// If the catalog insert fails after the bytes are written, the blob is left
// on disk.
func (s *IngestService) Ingest(ctx context.Context, in UploadInput) (domain.VideoRecord, error) {
	log := slogx.FromContext(ctx)

	user, ok, err := s.Identity.ResolveToken(ctx, in.Token)
	if err != nil {
		return domain.VideoRecord{}, err
	}
	if !ok {
		return domain.VideoRecord{}, ErrUnauthenticated
	}

	ext, ok := AllowedExtension(in.Filename)
	if !ok {
		log.Warn("upload rejected: unsupported extension", "filename", in.Filename)
		return domain.VideoRecord{}, ErrUnsupportedMediaType
	}

	if utf8.RuneCountInString(in.Title) > MaxTitleLen {
		return domain.VideoRecord{}, NewValidationError(map[string]string{
			"title": fmt.Sprintf("too long (max %d)", MaxTitleLen),
		})
	}

	name := StorageName(in.Filename, ext)
	size, err := s.Blobs.Put(ctx, name, in.Body)
	if err != nil {
		log.Error("failed to write upload", "filename", name, "err", err)
		return domain.VideoRecord{}, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	id, err := s.Store.Videos().CreateVideo(ctx, domain.Video{
		Filename:   name,
		Title:      in.Title,
		UploaderID: user.ID,
		School:     user.School,
	})
	if err != nil {
		log.Error("failed to record upload; blob left orphaned", "filename", name, "err", err)
		return domain.VideoRecord{}, fmt.Errorf("create video: %w", err)
	}

	log.Info("video uploaded", "video_id", id, "filename", name, "bytes", size, "school", user.School)
	return domain.VideoRecord{ID: id, Filename: name}, nil
}

// AllowedExtension reports the lower-cased extension after the last dot of
// filename and whether it is on the allow-list.
func AllowedExtension(filename string) (string, bool) {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return ext, true
		}
	}
	return "", false
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces a client supplied name to a safe flat filename
// of ASCII letters, digits, '_', '.' and '-'. Directory components are
// dropped, accents are folded and whitespace runs become '_'. The result
// may be empty.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `\`, "/")
	name = path.Base(name)
	if name == "/" || name == "." {
		return ""
	}

	var b strings.Builder
	for _, r := range norm.NFKD.String(name) {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	name = strings.Join(strings.Fields(b.String()), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// StorageName returns an unguessable blob name: 32 hex characters of a
// random UUID, '_', and the sanitized original name. When sanitizing loses
// the extension the name falls back to "upload.<ext>".
func StorageName(original, ext string) string {
	safe := SanitizeFilename(original)
	if !strings.HasSuffix(strings.ToLower(safe), "."+ext) {
		safe = "upload." + ext
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "") + "_" + safe
}
