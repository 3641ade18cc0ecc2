package service

import (
	"context"
	"fmt"
	"strings"

	"yatube/internal/model"
)

//go:generate mockgen -source=comments.go -destination=./comment_storage_mock.go -package=service
type CommentStorage interface {
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetCommentByID(ctx context.Context, commentID int64) (model.Comment, error)
	GetCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error)
	UpdateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type CommentService struct {
	commentStorage CommentStorage
	postStorage    PostStorage
}

func NewCommentService(commentStorage CommentStorage, postStorage PostStorage) *CommentService {
	return &CommentService{
		commentStorage: commentStorage,
		postStorage:    postStorage,
	}
}

// CreateComment attaches a comment to req.PostID. The post always comes from
// the request scope, never from the comment body.
func (s *CommentService) CreateComment(ctx context.Context, req CreateCommentRequest) (model.Comment, error) {
	if err := s.ensurePost(ctx, req.PostID); err != nil {
		return model.Comment{}, err
	}
	if err := validateStruct(req); err != nil {
		return model.Comment{}, err
	}

	return s.commentStorage.CreateComment(ctx, model.Comment{
		AuthorID: req.AuthorID,
		Text:     req.Text,
		PostID:   req.PostID,
	})
}

// GetComment returns the comment only if it belongs to postID.
func (s *CommentService) GetComment(ctx context.Context, postID, commentID int64) (model.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return model.Comment{}, err
	}
	if commentID <= 0 {
		return model.Comment{}, ErrNotFound
	}
	c, err := s.commentStorage.GetCommentByID(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}
	if c.PostID != postID {
		return model.Comment{}, fmt.Errorf("comment %d is not under post %d: %w", commentID, postID, ErrNotFound)
	}
	return c, nil
}

func (s *CommentService) GetCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if err := s.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentStorage.GetCommentsByPost(ctx, postID)
}

func (s *CommentService) UpdateComment(ctx context.Context, req UpdateCommentRequest) (model.Comment, error) {
	if err := validateStruct(req); err != nil {
		return model.Comment{}, err
	}

	c, err := s.GetComment(ctx, req.PostID, req.CommentID)
	if err != nil {
		return model.Comment{}, err
	}
	if c.AuthorID != req.UserID {
		return model.Comment{}, fmt.Errorf("%w: not a comment author", ErrForbidden)
	}

	switch {
	case req.Text == nil && !req.Partial:
		return model.Comment{}, NewValidationError("text", MsgRequired)
	case req.Text != nil && strings.TrimSpace(*req.Text) == "":
		return model.Comment{}, NewValidationError("text", MsgBlank)
	case req.Text != nil:
		c.Text = *req.Text
	}

	return s.commentStorage.UpdateComment(ctx, c)
}

func (s *CommentService) DeleteComment(ctx context.Context, postID, commentID, userID int64) error {
	c, err := s.GetComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if c.AuthorID != userID {
		return fmt.Errorf("%w: not a comment author", ErrForbidden)
	}
	return s.commentStorage.DeleteComment(ctx, commentID)
}

func (s *CommentService) ensurePost(ctx context.Context, postID int64) error {
	if postID <= 0 {
		return fmt.Errorf("postID must be > 0: %w", ErrNotFound)
	}
	_, err := s.postStorage.GetPostByID(ctx, postID)
	return err
}
