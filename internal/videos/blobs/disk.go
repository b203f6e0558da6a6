// Package blobs stores uploaded video bytes as flat files in a single
// directory on local disk.
package blobs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var (
	ErrNotFound      = errors.New("blobs: not found")
	ErrAlreadyExists = errors.New("blobs: already exists")
	ErrInvalidName   = errors.New("blobs: invalid name")
)

// Blob is an opened stored file, ready for http.ServeContent.
type Blob struct {
	io.ReadSeekCloser
	Name    string
	Size    int64
	ModTime time.Time
}

type Disk struct {
	dir string
}

// NewDisk returns a store rooted at dir, creating it if needed.
func NewDisk(dir string) (*Disk, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Dir() string { return d.dir }

// path resolves name inside the store directory. Names are flat: any path
// separator or dot-only name is rejected.
func (d *Disk) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", ErrInvalidName
	}
	return filepath.Join(d.dir, name), nil
}

// Put writes r to a new file called name and returns the number of bytes
// written. An existing file is never overwritten. On any failure the
// partially written file is removed.
func (d *Disk) Put(ctx context.Context, name string, r io.Reader) (int64, error) {
	p, err := d.path(name)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, fs.ErrExist) {
		return 0, ErrAlreadyExists
	}
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, &ctxReader{ctx: ctx, r: r})
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(p)
		return n, err
	}
	return n, nil
}

// Open opens the stored file called name.
func (d *Disk) Open(name string) (*Blob, error) {
	p, err := d.path(name)
	if err != nil {
		return nil, ErrNotFound
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = f.Close()
		return nil, ErrNotFound
	}

	return &Blob{ReadSeekCloser: f, Name: name, Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Remove deletes the file called name. Removing a missing file is not an error.
func (d *Disk) Remove(name string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// CheckWritable verifies the directory exists and accepts new files.
func (d *Disk) CheckWritable() error {
	f, err := os.CreateTemp(d.dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// ctxReader stops a copy once ctx is done, e.g. when the client goes away
// mid-upload.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
