package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a limit/offset window. A zero Limit means "no pagination".
type PageRequest struct {
	Limit  int
	Offset int
}

func (r PageRequest) Enabled() bool {
	return r.Limit > 0
}

// Normalize clamps the window into the supported range.
func (r PageRequest) Normalize() PageRequest {
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return r
}

type Page[T any] struct {
	Count   int
	Items   []T
	HasNext bool
	HasPrev bool
}

func NewPage[T any](items []T, total int, req PageRequest) Page[T] {
	return Page[T]{
		Count:   total,
		Items:   items,
		HasNext: req.Enabled() && req.Offset+len(items) < total,
		HasPrev: req.Enabled() && req.Offset > 0,
	}
}

// NextURL returns base with limit/offset pointing at the next window, or nil.
func (p Page[T]) NextURL(base *url.URL, req PageRequest) *string {
	if !p.HasNext {
		return nil
	}
	return withWindow(base, req.Limit, req.Offset+req.Limit)
}

// PrevURL returns base with limit/offset pointing at the previous window, or nil.
// The first window drops the offset parameter entirely.
func (p Page[T]) PrevURL(base *url.URL, req PageRequest) *string {
	if !p.HasPrev {
		return nil
	}
	offset := req.Offset - req.Limit
	if offset <= 0 {
		offset = 0
	}
	return withWindow(base, req.Limit, offset)
}

func withWindow(base *url.URL, limit, offset int) *string {
	u := *base
	q := u.Query()
	q.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	} else {
		q.Del("offset")
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
