package service

import (
	"context"
	"errors"
	"fmt"

	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
)

//go:generate mockgen -source=follows.go -destination=./follow_storage_mock.go -package=service
type FollowStorage interface {
	// CreateFollow returns ErrAlreadyFollowing when the pair exists and
	// ErrSelfFollow when userID == followingID.
	CreateFollow(ctx context.Context, userID, followingID int64) (model.Follow, error)
	FollowExists(ctx context.Context, userID, followingID int64) (bool, error)
	GetFollowByID(ctx context.Context, followID int64) (model.Follow, error)
	GetFollows(ctx context.Context, params storage.GetFollowsParams) ([]model.Follow, error)
	DeleteFollow(ctx context.Context, followID int64) error
}

type FollowService struct {
	followStorage FollowStorage
	userStorage   UserStorage
	guard         *FollowGuard
	tx            TxManager
}

func NewFollowService(followStorage FollowStorage, userStorage UserStorage, tx TxManager) *FollowService {
	return &FollowService{
		followStorage: followStorage,
		userStorage:   userStorage,
		guard:         NewFollowGuard(followStorage),
		tx:            tx,
	}
}

// CreateFollow resolves the target, then checks uniqueness, then self-follow,
// and inserts, all inside one transaction.
func (s *FollowService) CreateFollow(ctx context.Context, req CreateFollowRequest) (model.Follow, error) {
	if err := validateStruct(req); err != nil {
		return model.Follow{}, err
	}
	if req.Following.IsZero() {
		return model.Follow{}, NewValidationError("following", MsgRequired)
	}

	var out model.Follow
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		target, err := resolveUser(ctx, s.userStorage, req.Following)
		if err != nil {
			return err
		}

		dup, err := s.guard.IsDuplicate(ctx, req.UserID, target.ID)
		if err != nil {
			return err
		}
		if dup {
			return ErrAlreadyFollowing
		}
		if s.guard.IsSelf(req.UserID, target.ID) {
			return ErrSelfFollow
		}

		out, err = s.followStorage.CreateFollow(ctx, req.UserID, target.ID)
		return err
	})

	switch {
	case errors.Is(err, ErrAlreadyFollowing):
		return model.Follow{}, NewValidationError(NonFieldErrors, ErrAlreadyFollowing.Error()).WithCause(ErrAlreadyFollowing)
	case errors.Is(err, ErrSelfFollow):
		return model.Follow{}, NewValidationError(NonFieldErrors, ErrSelfFollow.Error()).WithCause(ErrSelfFollow)
	case err != nil:
		return model.Follow{}, err
	}
	return out, nil
}

func (s *FollowService) GetFollows(ctx context.Context, userID int64, search string) ([]model.Follow, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	return s.followStorage.GetFollows(ctx, storage.GetFollowsParams{UserID: userID, Search: search})
}

// DeleteFollow removes one of the caller's own follows. Follows of other
// users are reported as missing.
func (s *FollowService) DeleteFollow(ctx context.Context, followID, userID int64) error {
	if followID <= 0 {
		return ErrNotFound
	}
	f, err := s.followStorage.GetFollowByID(ctx, followID)
	if err != nil {
		return err
	}
	if f.UserID != userID {
		return fmt.Errorf("follow %d belongs to another user: %w", followID, ErrNotFound)
	}
	return s.followStorage.DeleteFollow(ctx, followID)
}
