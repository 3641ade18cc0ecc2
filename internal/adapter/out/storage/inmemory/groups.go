package inmemory

import (
	"context"
	"slices"

	"yatube/internal/model"
	"yatube/internal/service"
)

type GroupStorage struct {
	db *DB
}

func NewGroupStorage(db *DB) *GroupStorage {
	return &GroupStorage{db: db}
}

func (s *GroupStorage) CreateGroup(_ context.Context, in model.Group) (model.Group, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.seq.group++
	in.ID = s.db.seq.group
	s.db.groups[in.ID] = in
	return in, nil
}

func (s *GroupStorage) GetGroupByID(_ context.Context, groupID int64) (model.Group, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if g, ok := s.db.groups[groupID]; ok {
		return g, nil
	}
	return model.Group{}, service.ErrNotFound
}

func (s *GroupStorage) GetGroups(_ context.Context) ([]model.Group, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]model.Group, 0, len(s.db.groups))
	for _, g := range s.db.groups {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b model.Group) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (s *GroupStorage) UpdateGroup(_ context.Context, in model.Group) (model.Group, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.groups[in.ID]; !ok {
		return model.Group{}, service.ErrNotFound
	}
	s.db.groups[in.ID] = in
	return in, nil
}

// DeleteGroup detaches the group's posts before removing it.
func (s *GroupStorage) DeleteGroup(_ context.Context, groupID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.groups[groupID]; !ok {
		return service.ErrNotFound
	}
	for id, p := range s.db.posts {
		if p.GroupID != nil && *p.GroupID == groupID {
			p.GroupID = nil
			s.db.posts[id] = p
		}
	}
	delete(s.db.groups, groupID)
	return nil
}

func cmpID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
