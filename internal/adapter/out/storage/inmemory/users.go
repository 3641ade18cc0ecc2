package inmemory

import (
	"context"
	"time"

	"yatube/internal/model"
	"yatube/internal/service"
)

type UserStorage struct {
	db *DB
}

func NewUserStorage(db *DB) *UserStorage {
	return &UserStorage{db: db}
}

func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.byName[in.Username]; ok {
		return model.User{}, service.ErrUsernameTaken
	}

	s.db.seq.user++
	in.ID = s.db.seq.user
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.db.users[in.ID] = in
	s.db.byName[in.Username] = in.ID
	return in, nil
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if u, ok := s.db.users[userID]; ok {
		return u, nil
	}
	return model.User{}, service.ErrNotFound
}

func (s *UserStorage) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	id, ok := s.db.byName[username]
	if !ok {
		return model.User{}, service.ErrNotFound
	}
	return s.db.users[id], nil
}
