package model

import "time"

type Comment struct {
	ID       int64
	AuthorID int64
	Author   string
	Text     string
	Created  time.Time
	PostID   int64
}
