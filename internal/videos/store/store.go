package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so a Tx-scoped Store can be
// handed to the same code that normally runs against the database.
type Store interface {
	Users() Users
	Videos() Videos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or token is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByTokenHash resolves a bearer token by its fingerprint. Callers
	// still compare the raw token before trusting the result.
	GetUserByTokenHash(ctx context.Context, tokenHash string) (domain.User, error)
}

type Videos interface {
	// CreateVideo inserts a catalog entry and returns its assigned id.
	// v.ID is ignored.
	CreateVideo(ctx context.Context, v domain.Video) (int64, error)

	GetVideoByID(ctx context.Context, id int64) (domain.Video, error)

	// ListVideos returns every video in ascending id order.
	ListVideos(ctx context.Context) ([]domain.Video, error)
}
