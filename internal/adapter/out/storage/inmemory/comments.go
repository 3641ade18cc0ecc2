package inmemory

import (
	"context"
	"slices"
	"time"

	"yatube/internal/model"
	"yatube/internal/service"
)

type CommentStorage struct {
	db *DB
}

func NewCommentStorage(db *DB) *CommentStorage {
	return &CommentStorage{db: db}
}

func (s *CommentStorage) CreateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.posts[in.PostID]; !ok {
		return model.Comment{}, service.ErrNotFound
	}

	s.db.seq.comment++
	in.ID = s.db.seq.comment
	if in.Created.IsZero() {
		in.Created = time.Now()
	}
	in.Author = ""
	s.db.comments[in.ID] = in
	return s.withAuthor(in), nil
}

func (s *CommentStorage) GetCommentByID(_ context.Context, commentID int64) (model.Comment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if c, ok := s.db.comments[commentID]; ok {
		return s.withAuthor(c), nil
	}
	return model.Comment{}, service.ErrNotFound
}

func (s *CommentStorage) GetCommentsByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]model.Comment, 0)
	for _, c := range s.db.comments {
		if c.PostID == postID {
			out = append(out, s.withAuthor(c))
		}
	}
	slices.SortFunc(out, func(a, b model.Comment) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

// UpdateComment only changes the text; post and author are fixed at creation.
func (s *CommentStorage) UpdateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	c, ok := s.db.comments[in.ID]
	if !ok {
		return model.Comment{}, service.ErrNotFound
	}
	c.Text = in.Text
	s.db.comments[c.ID] = c
	return s.withAuthor(c), nil
}

func (s *CommentStorage) DeleteComment(_ context.Context, commentID int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.comments[commentID]; !ok {
		return service.ErrNotFound
	}
	delete(s.db.comments, commentID)
	return nil
}

func (s *CommentStorage) withAuthor(c model.Comment) model.Comment {
	c.Author = s.db.username(c.AuthorID)
	return c
}
