package service

import (
	"yatube/pkg/imagecodec"
)

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type CreatePostRequest struct {
	AuthorID int64            `json:"author" validate:"required,gt=0"`
	Text     string           `json:"text" validate:"required"`
	GroupID  *int64           `json:"group"`
	Image    *imagecodec.File `json:"-"`
}

// UpdatePostRequest carries PUT/PATCH input. Nil pointers mean "not sent";
// the *Set flags distinguish "sent as null" from "not sent".
type UpdatePostRequest struct {
	PostID   int64 `validate:"gt=0"`
	UserID   int64 `validate:"gt=0"`
	Partial  bool
	Text     *string
	GroupSet bool
	GroupID  *int64
	ImageSet bool
	Image    *imagecodec.File
}

type CreateCommentRequest struct {
	PostID   int64  `json:"post" validate:"required,gt=0"`
	AuthorID int64  `json:"author" validate:"required,gt=0"`
	Text     string `json:"text" validate:"required"`
}

type UpdateCommentRequest struct {
	PostID    int64 `validate:"gt=0"`
	CommentID int64 `validate:"gt=0"`
	UserID    int64 `validate:"gt=0"`
	Partial   bool
	Text      *string
}

type GroupRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,max=50"`
	Description string `json:"description" validate:"required"`
}

type UpdateGroupRequest struct {
	GroupID     int64 `validate:"gt=0"`
	Partial     bool
	Title       *string
	Slug        *string
	Description *string
}

// UserRef identifies a user either by id or by username. ID wins when both
// are set.
type UserRef struct {
	ID       int64
	Username string
}

func (r UserRef) IsZero() bool {
	return r.ID == 0 && r.Username == ""
}

type CreateFollowRequest struct {
	UserID    int64 `validate:"gt=0"`
	Following UserRef
}
