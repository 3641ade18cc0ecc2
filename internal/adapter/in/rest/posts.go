package rest

import (
	"net/http"
	"net/url"
	"strconv"

	"yatube/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type pageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// pageRequest enables pagination only when the client sends "limit".
func pageRequest(c *gin.Context) pagination.PageRequest {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return pagination.PageRequest{}
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		limit = pagination.DefaultLimit
	}
	offset, _ := strconv.Atoi(c.Query("offset"))
	return pagination.PageRequest{Limit: limit, Offset: offset}.Normalize()
}

func (h *Handler) ListPosts(c *gin.Context) {
	req := pageRequest(c)

	page, err := h.posts.GetPosts(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	items := h.renderPosts(c, page.Items)
	if !req.Enabled() {
		c.JSON(http.StatusOK, items)
		return
	}

	base := &url.URL{Path: c.Request.URL.Path, RawQuery: c.Request.URL.RawQuery}
	if abs, err := url.Parse(absoluteURL(c, c.Request.URL.RequestURI())); err == nil {
		base = abs
	}
	c.JSON(http.StatusOK, pageResponse[postResponse]{
		Count:    page.Count,
		Next:     page.NextURL(base, req),
		Previous: page.PrevURL(base, req),
		Results:  items,
	})
}

func (h *Handler) CreatePost(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := createPostRequest(body, currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.posts.CreatePost(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.renderPost(c, p))
}

func (h *Handler) GetPost(c *gin.Context) {
	id, err := pathID(c, "post_id")
	if err != nil {
		writeError(c, err)
		return
	}
	p, err := h.posts.GetPostByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.renderPost(c, p))
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id, err := pathID(c, "post_id")
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := updatePostRequest(body, id, currentUser(c).ID, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.posts.UpdatePost(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.renderPost(c, p))
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := pathID(c, "post_id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.posts.DeletePost(c.Request.Context(), id, currentUser(c).ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
