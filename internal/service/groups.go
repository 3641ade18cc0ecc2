package service

import (
	"context"

	"yatube/internal/model"
)

//go:generate mockgen -source=groups.go -destination=./group_storage_mock.go -package=service
type GroupStorage interface {
	CreateGroup(ctx context.Context, group model.Group) (model.Group, error)
	GetGroupByID(ctx context.Context, groupID int64) (model.Group, error)
	GetGroups(ctx context.Context) ([]model.Group, error)
	UpdateGroup(ctx context.Context, group model.Group) (model.Group, error)
	// DeleteGroup removes the group and detaches it from its posts.
	DeleteGroup(ctx context.Context, groupID int64) error
}

type GroupService struct {
	groupStorage GroupStorage
}

func NewGroupService(groupStorage GroupStorage) *GroupService {
	return &GroupService{groupStorage: groupStorage}
}

func (s *GroupService) CreateGroup(ctx context.Context, req GroupRequest) (model.Group, error) {
	if err := validateStruct(req); err != nil {
		return model.Group{}, err
	}
	return s.groupStorage.CreateGroup(ctx, model.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	})
}

func (s *GroupService) GetGroupByID(ctx context.Context, groupID int64) (model.Group, error) {
	if groupID <= 0 {
		return model.Group{}, ErrNotFound
	}
	return s.groupStorage.GetGroupByID(ctx, groupID)
}

func (s *GroupService) GetGroups(ctx context.Context) ([]model.Group, error) {
	return s.groupStorage.GetGroups(ctx)
}

func (s *GroupService) UpdateGroup(ctx context.Context, req UpdateGroupRequest) (model.Group, error) {
	if err := validateStruct(req); err != nil {
		return model.Group{}, err
	}

	g, err := s.GetGroupByID(ctx, req.GroupID)
	if err != nil {
		return model.Group{}, err
	}

	if !req.Partial {
		verr := &ValidationError{}
		if req.Title == nil {
			verr.Add("title", MsgRequired)
		}
		if req.Slug == nil {
			verr.Add("slug", MsgRequired)
		}
		if req.Description == nil {
			verr.Add("description", MsgRequired)
		}
		if err := verr.OrNil(); err != nil {
			return model.Group{}, err
		}
	}

	if req.Title != nil {
		g.Title = *req.Title
	}
	if req.Slug != nil {
		g.Slug = *req.Slug
	}
	if req.Description != nil {
		g.Description = *req.Description
	}

	if err := validateStruct(GroupRequest{Title: g.Title, Slug: g.Slug, Description: g.Description}); err != nil {
		return model.Group{}, err
	}
	return s.groupStorage.UpdateGroup(ctx, g)
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID int64) error {
	if groupID <= 0 {
		return ErrNotFound
	}
	return s.groupStorage.DeleteGroup(ctx, groupID)
}
