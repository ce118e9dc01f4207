package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sessionview/internal/common"
)

// TokenStore keeps the session token. Token returns "" with a nil error when
// no token is stored.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	DropToken(ctx context.Context) error
}

type RepositoryTokenStore struct {
	repo Repository
}

func NewTokenStore(repo Repository) *RepositoryTokenStore {
	return &RepositoryTokenStore{repo: repo}
}

func (s *RepositoryTokenStore) Token(ctx context.Context) (string, error) {
	token, err := s.repo.Get(ctx, common.TokenStorageKey)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	return token, err
}

func (s *RepositoryTokenStore) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return s.DropToken(ctx)
	}
	return s.repo.Set(ctx, common.TokenStorageKey, token)
}

func (s *RepositoryTokenStore) DropToken(ctx context.Context) error {
	return s.repo.Delete(ctx, common.TokenStorageKey)
}

// MemoryPath selects a process-local token store: the session ends with the
// process.
const MemoryPath = ":memory:"

// OpenTokenStore returns the token store for path together with its closer.
// MemoryPath yields a MemoryTokenStore and a nil closer; any other path opens
// the SQLite database there.
func OpenTokenStore(ctx context.Context, path string) (TokenStore, func() error, error) {
	if path == MemoryPath {
		return NewMemoryTokenStore(""), nil, nil
	}
	db, err := Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return NewTokenStore(NewSQLiteRepository(db)), db.Close, nil
}

// MemoryTokenStore is a process-local TokenStore.
type MemoryTokenStore struct {
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Token(context.Context) (string, error) { return s.token, nil }

func (s *MemoryTokenStore) SaveToken(_ context.Context, token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) DropToken(context.Context) error {
	s.token = ""
	return nil
}
