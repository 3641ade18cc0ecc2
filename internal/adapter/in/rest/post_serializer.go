package rest

import (
	"strings"
	"time"

	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type postResponse struct {
	ID      int64     `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Image   *string   `json:"image"`
	Group   *int64    `json:"group"`
}

func (h *Handler) renderPost(c *gin.Context, p model.Post) postResponse {
	out := postResponse{
		ID:      p.ID,
		Author:  p.Author,
		Text:    p.Text,
		PubDate: p.PubDate,
		Group:   p.GroupID,
	}
	if p.Image != nil {
		u := absoluteURL(c, h.media.URL(*p.Image))
		out.Image = &u
	}
	return out
}

func (h *Handler) renderPosts(c *gin.Context, posts []model.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, h.renderPost(c, p))
	}
	return out
}

// textField applies the CharField rules shared by posts and comments.
func textField(body rawBody, required bool, verr *service.ValidationError) *string {
	text := body.stringField("text", verr)
	switch {
	case text == nil && required && !body.has("text"):
		verr.Add("text", service.MsgRequired)
	case text != nil && strings.TrimSpace(*text) == "":
		verr.Add("text", service.MsgBlank)
		return nil
	}
	return text
}

func createPostRequest(body rawBody, authorID int64) (service.CreatePostRequest, error) {
	verr := &service.ValidationError{}

	text := textField(body, true, verr)
	group, _ := body.pkField("group", verr)
	image, _ := body.imageField("image", verr)

	if err := verr.OrNil(); err != nil {
		return service.CreatePostRequest{}, err
	}
	return service.CreatePostRequest{
		AuthorID: authorID,
		Text:     *text,
		GroupID:  group,
		Image:    image,
	}, nil
}

func updatePostRequest(body rawBody, postID, userID int64, partial bool) (service.UpdatePostRequest, error) {
	verr := &service.ValidationError{}

	text := textField(body, !partial, verr)
	group, groupSet := body.pkField("group", verr)
	image, imageSet := body.imageField("image", verr)

	if err := verr.OrNil(); err != nil {
		return service.UpdatePostRequest{}, err
	}
	return service.UpdatePostRequest{
		PostID:   postID,
		UserID:   userID,
		Partial:  partial,
		Text:     text,
		GroupSet: groupSet,
		GroupID:  group,
		ImageSet: imageSet,
		Image:    image,
	}, nil
}
