package storage

// ListParams is a limit/offset window over a listing. A zero Limit lists
// everything from Offset on.
type ListParams struct {
	Limit  int
	Offset int
}

type GetFollowsParams struct {
	UserID int64
	// Search filters by a case-insensitive substring of the followed username.
	Search string
}
