// Package rest is the HTTP surface of the API, built on gin.
package rest

import (
	"fmt"
	"strconv"
	"strings"

	"yatube/internal/auth"
	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "user"

type Handler struct {
	posts    *service.PostService
	comments *service.CommentService
	groups   *service.GroupService
	follows  *service.FollowService
	users    *service.UserService
	tokens   *auth.TokenManager
	media    service.MediaStorage
}

type Deps struct {
	Posts    *service.PostService
	Comments *service.CommentService
	Groups   *service.GroupService
	Follows  *service.FollowService
	Users    *service.UserService
	Tokens   *auth.TokenManager
	Media    service.MediaStorage
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		posts:    d.Posts,
		comments: d.Comments,
		groups:   d.Groups,
		follows:  d.Follows,
		users:    d.Users,
		tokens:   d.Tokens,
		media:    d.Media,
	}
}

// currentUser is only valid behind the auth middleware.
func currentUser(c *gin.Context) model.User {
	u, _ := c.Get(ctxUserKey)
	user, _ := u.(model.User)
	return user
}

// pathID reads a numeric path parameter. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad %s %q: %w", name, c.Param(name), service.ErrNotFound)
	}
	return id, nil
}

// absoluteURL prefixes host-relative links with the request origin.
func absoluteURL(c *gin.Context, u string) string {
	if !strings.HasPrefix(u, "/") {
		return u
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + c.Request.Host + u
}
