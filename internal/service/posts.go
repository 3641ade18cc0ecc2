package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/pkg/pagination"
)

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=service
type PostStorage interface {
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	GetPosts(ctx context.Context, params storage.ListParams) ([]model.Post, error)
	CountPosts(ctx context.Context) (int, error)
	UpdatePost(ctx context.Context, post model.Post) (model.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	GetPostAuthorID(ctx context.Context, postID int64) (int64, error)
}

type PostService struct {
	postStorage  PostStorage
	groupStorage GroupStorage
	media        MediaStorage
}

func NewPostService(postStorage PostStorage, groupStorage GroupStorage, media MediaStorage) *PostService {
	return &PostService{
		postStorage:  postStorage,
		groupStorage: groupStorage,
		media:        media,
	}
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if err := validateStruct(req); err != nil {
		return model.Post{}, err
	}
	if err := s.checkGroup(ctx, req.GroupID); err != nil {
		return model.Post{}, err
	}

	image, err := saveImage(ctx, s.media, req.Image)
	if err != nil {
		return model.Post{}, err
	}

	post, err := s.postStorage.CreatePost(ctx, model.Post{
		AuthorID: req.AuthorID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		Image:    image,
	})
	if err != nil {
		discardImage(ctx, s.media, image)
		return model.Post{}, err
	}
	return post, nil
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, fmt.Errorf("postID must be > 0: %w", ErrNotFound)
	}
	return s.postStorage.GetPostByID(ctx, postID)
}

// GetPosts returns every post when in is not enabled, and a limit/offset
// window otherwise.
func (s *PostService) GetPosts(ctx context.Context, in pagination.PageRequest) (pagination.Page[model.Post], error) {
	in = in.Normalize()

	if !in.Enabled() {
		posts, err := s.postStorage.GetPosts(ctx, storage.ListParams{})
		if err != nil {
			return pagination.Page[model.Post]{}, err
		}
		return pagination.NewPage(posts, len(posts), in), nil
	}

	total, err := s.postStorage.CountPosts(ctx)
	if err != nil {
		return pagination.Page[model.Post]{}, err
	}
	posts, err := s.postStorage.GetPosts(ctx, storage.ListParams{Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return pagination.Page[model.Post]{}, err
	}
	return pagination.NewPage(posts, total, in), nil
}

func (s *PostService) UpdatePost(ctx context.Context, req UpdatePostRequest) (model.Post, error) {
	if err := validateStruct(req); err != nil {
		return model.Post{}, err
	}

	post, err := s.GetPostByID(ctx, req.PostID)
	if err != nil {
		return model.Post{}, err
	}
	if post.AuthorID != req.UserID {
		return model.Post{}, fmt.Errorf("%w: not a post author", ErrForbidden)
	}

	verr := &ValidationError{}
	switch {
	case req.Text == nil && !req.Partial:
		verr.Add("text", MsgRequired)
	case req.Text != nil && strings.TrimSpace(*req.Text) == "":
		verr.Add("text", MsgBlank)
	}
	if err := verr.OrNil(); err != nil {
		return model.Post{}, err
	}

	if req.Text != nil {
		post.Text = *req.Text
	}
	if req.GroupSet {
		if err := s.checkGroup(ctx, req.GroupID); err != nil {
			return model.Post{}, err
		}
		post.GroupID = req.GroupID
	}
	var saved *string
	if req.ImageSet {
		image, err := saveImage(ctx, s.media, req.Image)
		if err != nil {
			return model.Post{}, err
		}
		post.Image = image
		saved = image
	}

	updated, err := s.postStorage.UpdatePost(ctx, post)
	if err != nil {
		discardImage(ctx, s.media, saved)
		return model.Post{}, err
	}
	return updated, nil
}

// DeletePost removes the post together with its comments.
func (s *PostService) DeletePost(ctx context.Context, postID, userID int64) error {
	if postID <= 0 {
		return ErrNotFound
	}
	authorID, err := s.postStorage.GetPostAuthorID(ctx, postID)
	if err != nil {
		return err
	}
	if authorID != userID {
		return fmt.Errorf("%w: not a post author", ErrForbidden)
	}
	return s.postStorage.DeletePost(ctx, postID)
}

func (s *PostService) checkGroup(ctx context.Context, groupID *int64) error {
	if groupID == nil {
		return nil
	}
	_, err := s.groupStorage.GetGroupByID(ctx, *groupID)
	if errors.Is(err, ErrNotFound) {
		return NewValidationError("group", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *groupID))
	}
	return err
}
