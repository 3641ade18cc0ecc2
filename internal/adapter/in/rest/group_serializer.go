package rest

import (
	"strings"

	"yatube/internal/model"
	"yatube/internal/service"
)

type groupResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

func renderGroup(g model.Group) groupResponse {
	return groupResponse{ID: g.ID, Title: g.Title, Slug: g.Slug, Description: g.Description}
}

func renderGroups(list []model.Group) []groupResponse {
	out := make([]groupResponse, 0, len(list))
	for _, g := range list {
		out = append(out, renderGroup(g))
	}
	return out
}

func groupFields(body rawBody, verr *service.ValidationError) (title, slug, description *string) {
	read := func(name string) *string {
		v := body.stringField(name, verr)
		if v != nil && strings.TrimSpace(*v) == "" {
			verr.Add(name, service.MsgBlank)
			return nil
		}
		return v
	}
	return read("title"), read("slug"), read("description")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func createGroupRequest(body rawBody) (service.GroupRequest, error) {
	verr := &service.ValidationError{}
	title, slug, description := groupFields(body, verr)
	if err := verr.OrNil(); err != nil {
		return service.GroupRequest{}, err
	}
	return service.GroupRequest{
		Title:       deref(title),
		Slug:        deref(slug),
		Description: deref(description),
	}, nil
}

func updateGroupRequest(body rawBody, groupID int64, partial bool) (service.UpdateGroupRequest, error) {
	verr := &service.ValidationError{}
	title, slug, description := groupFields(body, verr)
	if err := verr.OrNil(); err != nil {
		return service.UpdateGroupRequest{}, err
	}
	return service.UpdateGroupRequest{
		GroupID:     groupID,
		Partial:     partial,
		Title:       title,
		Slug:        slug,
		Description: description,
	}, nil
}
