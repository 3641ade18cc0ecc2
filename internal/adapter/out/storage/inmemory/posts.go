package inmemory

import (
	"context"
	"slices"
	"time"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
)

type PostStorage struct {
	db *DB
}

func NewPostStorage(db *DB) *PostStorage {
	return &PostStorage{db: db}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.users[in.AuthorID]; !ok {
		return model.Post{}, service.ErrNotFound
	}
	if in.GroupID != nil {
		if _, ok := s.db.groups[*in.GroupID]; !ok {
			return model.Post{}, service.ErrNotFound
		}
	}

	s.db.seq.post++
	in.ID = s.db.seq.post
	if in.PubDate.IsZero() {
		in.PubDate = time.Now()
	}
	in.Author = ""
	s.db.posts[in.ID] = in
	return s.withAuthor(in), nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if p, ok := s.db.posts[postID]; ok {
		return s.withAuthor(p), nil
	}
	return model.Post{}, service.ErrNotFound
}

// GetPosts lists posts in id order. A zero params.Limit returns everything
// from params.Offset on.
func (s *PostStorage) GetPosts(_ context.Context, params storage.ListParams) ([]model.Post, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	all := make([]model.Post, 0, len(s.db.posts))
	for _, p := range s.db.posts {
		all = append(all, s.withAuthor(p))
	}
	slices.SortFunc(all, func(a, b model.Post) int { return cmpID(a.ID, b.ID) })

	return window(all, params), nil
}

func (s *PostStorage) CountPosts(_ context.Context) (int, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	return len(s.db.posts), nil
}

// UpdatePost replaces the mutable fields. Author and pub date stay as stored.
func (s *PostStorage) UpdatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	p, ok := s.db.posts[in.ID]
	if !ok {
		return model.Post{}, service.ErrNotFound
	}
	if in.GroupID != nil {
		if _, ok := s.db.groups[*in.GroupID]; !ok {
			return model.Post{}, service.ErrNotFound
		}
	}

	p.Text = in.Text
	p.GroupID = in.GroupID
	p.Image = in.Image
	s.db.posts[p.ID] = p
	return s.withAuthor(p), nil
}

// DeletePost removes the post together with its comments.
func (s *PostStorage) DeletePost(_ context.Context, postID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.posts[postID]; !ok {
		return service.ErrNotFound
	}
	for id, c := range s.db.comments {
		if c.PostID == postID {
			delete(s.db.comments, id)
		}
	}
	delete(s.db.posts, postID)
	return nil
}

func (s *PostStorage) GetPostAuthorID(_ context.Context, postID int64) (int64, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	p, ok := s.db.posts[postID]
	if !ok {
		return 0, service.ErrNotFound
	}
	return p.AuthorID, nil
}

func (s *PostStorage) withAuthor(p model.Post) model.Post {
	p.Author = s.db.username(p.AuthorID)
	return p
}

func window[T any](items []T, params storage.ListParams) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	items = items[max(params.Offset, 0):]
	if params.Limit > 0 && params.Limit < len(items) {
		items = items[:params.Limit]
	}
	return items
}
