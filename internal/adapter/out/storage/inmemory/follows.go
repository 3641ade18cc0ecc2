package inmemory

import (
	"context"
	"slices"
	"strings"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
)

type FollowStorage struct {
	db *DB
}

func NewFollowStorage(db *DB) *FollowStorage {
	return &FollowStorage{db: db}
}

// CreateFollow re-checks both invariants under the write lock, so it is safe
// to call without a surrounding transaction.
func (s *FollowStorage) CreateFollow(_ context.Context, userID, followingID int64) (model.Follow, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.users[userID]; !ok {
		return model.Follow{}, service.ErrNotFound
	}
	if _, ok := s.db.users[followingID]; !ok {
		return model.Follow{}, service.ErrNotFound
	}
	if s.exists(userID, followingID) {
		return model.Follow{}, service.ErrAlreadyFollowing
	}
	if userID == followingID {
		return model.Follow{}, service.ErrSelfFollow
	}

	s.db.seq.follow++
	f := model.Follow{ID: s.db.seq.follow, UserID: userID, FollowingID: followingID}
	s.db.follows[f.ID] = f
	return s.withNames(f), nil
}

func (s *FollowStorage) FollowExists(_ context.Context, userID, followingID int64) (bool, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return s.exists(userID, followingID), nil
}

func (s *FollowStorage) GetFollowByID(_ context.Context, followID int64) (model.Follow, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if f, ok := s.db.follows[followID]; ok {
		return s.withNames(f), nil
	}
	return model.Follow{}, service.ErrNotFound
}

func (s *FollowStorage) GetFollows(_ context.Context, params storage.GetFollowsParams) ([]model.Follow, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	search := strings.ToLower(params.Search)
	out := make([]model.Follow, 0)
	for _, f := range s.db.follows {
		if f.UserID != params.UserID {
			continue
		}
		f = s.withNames(f)
		if search != "" && !strings.Contains(strings.ToLower(f.Following), search) {
			continue
		}
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b model.Follow) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (s *FollowStorage) DeleteFollow(_ context.Context, followID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.follows[followID]; !ok {
		return service.ErrNotFound
	}
	delete(s.db.follows, followID)
	return nil
}

func (s *FollowStorage) exists(userID, followingID int64) bool {
	for _, f := range s.db.follows {
		if f.UserID == userID && f.FollowingID == followingID {
			return true
		}
	}
	return false
}

func (s *FollowStorage) withNames(f model.Follow) model.Follow {
	f.User = s.db.username(f.UserID)
	f.Following = s.db.username(f.FollowingID)
	return f
}
