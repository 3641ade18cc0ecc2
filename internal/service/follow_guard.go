package service

import "context"

// FollowExister is the read side FollowGuard needs.
type FollowExister interface {
	FollowExists(ctx context.Context, userID, followingID int64) (bool, error)
}

// FollowGuard holds the two follow invariants as separate predicates.
type FollowGuard struct {
	follows FollowExister
}

func NewFollowGuard(follows FollowExister) *FollowGuard {
	return &FollowGuard{follows: follows}
}

func (g *FollowGuard) IsSelf(userID, followingID int64) bool {
	return userID == followingID
}

// IsDuplicate must run in the same transaction as the insert it guards.
func (g *FollowGuard) IsDuplicate(ctx context.Context, userID, followingID int64) (bool, error) {
	return g.follows.FollowExists(ctx, userID, followingID)
}
