package model

import "time"

type Post struct {
	ID       int64
	AuthorID int64
	// Author is the author's username, filled in by storage on reads.
	Author  string
	Text    string
	PubDate time.Time
	// Image is the media storage path of the attached image.
	Image   *string
	GroupID *int64
}
