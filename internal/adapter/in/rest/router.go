package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	// MediaRoot is served under MediaPrefix when set.
	MediaRoot   string
	MediaPrefix string
	Registry    *prometheus.Registry
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), RequestLogger())

	if cfg.Registry != nil {
		r.Use(NewMetrics(cfg.Registry).Middleware())
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	if cfg.MediaRoot != "" && strings.HasPrefix(cfg.MediaPrefix, "/") {
		r.Static(strings.TrimRight(cfg.MediaPrefix, "/"), cfg.MediaRoot)
	}

	api := r.Group("/api/v1")

	handle(api, http.MethodPost, "/jwt/create", h.CreateToken)
	handle(api, http.MethodPost, "/jwt/refresh", h.RefreshToken)
	handle(api, http.MethodPost, "/jwt/verify", h.VerifyToken)

	authed := api.Group("", JWTAuth(h.tokens, h.users))

	handle(authed, http.MethodGet, "/posts", h.ListPosts)
	handle(authed, http.MethodPost, "/posts", h.CreatePost)
	handle(authed, http.MethodGet, "/posts/:post_id", h.GetPost)
	handle(authed, http.MethodPut, "/posts/:post_id", h.UpdatePost)
	handle(authed, http.MethodPatch, "/posts/:post_id", h.UpdatePost)
	handle(authed, http.MethodDelete, "/posts/:post_id", h.DeletePost)

	handle(authed, http.MethodGet, "/posts/:post_id/comments", h.ListComments)
	handle(authed, http.MethodPost, "/posts/:post_id/comments", h.CreateComment)
	handle(authed, http.MethodGet, "/posts/:post_id/comments/:comment_id", h.GetComment)
	handle(authed, http.MethodPut, "/posts/:post_id/comments/:comment_id", h.UpdateComment)
	handle(authed, http.MethodPatch, "/posts/:post_id/comments/:comment_id", h.UpdateComment)
	handle(authed, http.MethodDelete, "/posts/:post_id/comments/:comment_id", h.DeleteComment)

	handle(authed, http.MethodGet, "/groups", h.ListGroups)
	handle(authed, http.MethodPost, "/groups", h.CreateGroup)
	handle(authed, http.MethodGet, "/groups/:group_id", h.GetGroup)
	handle(authed, http.MethodPut, "/groups/:group_id", h.UpdateGroup)
	handle(authed, http.MethodPatch, "/groups/:group_id", h.UpdateGroup)
	handle(authed, http.MethodDelete, "/groups/:group_id", h.DeleteGroup)

	handle(authed, http.MethodGet, "/follow", h.ListFollows)
	handle(authed, http.MethodPost, "/follow", h.CreateFollow)
	handle(authed, http.MethodDelete, "/follow/:follow_id", h.DeleteFollow)

	return r
}

// handle registers path both with and without the trailing slash.
func handle(g *gin.RouterGroup, method, path string, h gin.HandlerFunc) {
	g.Handle(method, path, h)
	g.Handle(method, path+"/", h)
}
