package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/dancereel/internal/videos/domain"
	"github.com/aussiebroadwan/dancereel/internal/videos/store"
	"github.com/aussiebroadwan/dancereel/pkg/cryptox"
	"github.com/aussiebroadwan/dancereel/pkg/idx"
	"github.com/aussiebroadwan/dancereel/pkg/slogx"
)

// IdentityService owns user records and the static bearer token each user
// is issued at registration. Tokens never expire and login never rotates them.
// The raw token is stored sealed; lookups go through its fingerprint.
type IdentityService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Sealer *cryptox.TokenSealer

	dummyOnce sync.Once
	dummyHash string
}

// Register creates a user and returns its freshly minted token.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (string, error) {
	log := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return "", err
	}

	// Hash outside the transaction; argon2 is slow and sqlite has one writer.
	passwordHash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	sealedToken, err := s.Sealer.Seal(token)
	if err != nil {
		return "", fmt.Errorf("seal token: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		PasswordHash: passwordHash,
		Token:        sealedToken,
		TokenHash:    cryptox.FingerprintToken(token),
		School:       in.School,
		CreatedAt:    time.Now().UTC(),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().GetUserByUsername(ctx, in.Username)
		switch {
		case err == nil:
			return ErrDuplicateUsername
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		// The unique index is authoritative; the lookup above only gives
		// the common case a clean error.
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
	if errors.Is(err, ErrDuplicateUsername) {
		log.Warn("registration rejected: duplicate username", "username", in.Username)
		return "", err
	}
	if err != nil {
		log.Error("failed to register user", "err", err)
		return "", fmt.Errorf("create user: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "school", user.School)
	return token, nil
}

// AuthenticateByPassword returns the user's stored token when the
// credentials match. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *IdentityService) AuthenticateByPassword(ctx context.Context, in LoginInput) (string, error) {
	log := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return "", err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, in.Username)
	if errors.Is(err, store.ErrNotFound) {
		// Burn the same argon2 work so response time does not reveal
		// whether the username exists.
		_ = s.Hasher.Verify(in.Password, s.dummy())
		log.Warn("login failed", "username", in.Username, "reason", "unknown user")
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	if err := s.Hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Error("stored password hash is unreadable", "user_id", user.ID, "err", err)
		}
		log.Warn("login failed", "username", in.Username, "reason", "bad password")
		return "", ErrInvalidCredentials
	}

	token, err := s.Sealer.Open(user.Token)
	if err != nil {
		log.Error("stored token is unreadable", "user_id", user.ID, "err", err)
		return "", fmt.Errorf("open token: %w", err)
	}
	return token, nil
}

// ResolveToken maps a bearer token to its user. An empty or unknown token
// reports ok=false with a nil error.
func (s *IdentityService) ResolveToken(ctx context.Context, token string) (user domain.User, ok bool, err error) {
	if token == "" {
		return domain.User{}, false, nil
	}

	user, err = s.Store.Users().GetUserByTokenHash(ctx, cryptox.FingerprintToken(token))
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, fmt.Errorf("lookup token: %w", err)
	}

	stored, err := s.Sealer.Open(user.Token)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("open token: %w", err)
	}
	if !cryptox.TokensEqual(stored, token) {
		return domain.User{}, false, nil
	}
	return user, true, nil
}

// AuthenticateToken implements httpx.TokenAuthenticator.
func (s *IdentityService) AuthenticateToken(ctx context.Context, token string) (string, error) {
	user, ok, err := s.ResolveToken(ctx, token)
	if err != nil || !ok {
		return "", err
	}
	return user.ID, nil
}

func (s *IdentityService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.Hasher.Hash("dummy-password-for-timing")
	})
	return s.dummyHash
}
