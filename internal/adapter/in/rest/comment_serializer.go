package rest

import (
	"time"

	"yatube/internal/model"
	"yatube/internal/service"
)

type commentResponse struct {
	ID      int64     `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Post    int64     `json:"post"`
}

func renderComment(cm model.Comment) commentResponse {
	return commentResponse{
		ID:      cm.ID,
		Author:  cm.Author,
		Text:    cm.Text,
		Created: cm.Created,
		Post:    cm.PostID,
	}
}

func renderComments(list []model.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, renderComment(cm))
	}
	return out
}

// createCommentRequest ignores any "post" in the body; the post always comes
// from the URL.
func createCommentRequest(body rawBody, postID, authorID int64) (service.CreateCommentRequest, error) {
	verr := &service.ValidationError{}
	text := textField(body, true, verr)
	if err := verr.OrNil(); err != nil {
		return service.CreateCommentRequest{}, err
	}
	return service.CreateCommentRequest{PostID: postID, AuthorID: authorID, Text: *text}, nil
}

func updateCommentRequest(body rawBody, postID, commentID, userID int64, partial bool) (service.UpdateCommentRequest, error) {
	verr := &service.ValidationError{}
	text := textField(body, !partial, verr)
	if err := verr.OrNil(); err != nil {
		return service.UpdateCommentRequest{}, err
	}
	return service.UpdateCommentRequest{
		PostID:    postID,
		CommentID: commentID,
		UserID:    userID,
		Partial:   partial,
		Text:      text,
	}, nil
}
