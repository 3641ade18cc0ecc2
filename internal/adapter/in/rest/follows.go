package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFollows(c *gin.Context) {
	list, err := h.follows.GetFollows(c.Request.Context(), currentUser(c).ID, c.Query("search"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderFollows(list))
}

func (h *Handler) CreateFollow(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := createFollowRequest(body, currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	f, err := h.follows.CreateFollow(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderFollow(f))
}

func (h *Handler) DeleteFollow(c *gin.Context) {
	id, err := pathID(c, "follow_id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.follows.DeleteFollow(c.Request.Context(), id, currentUser(c).ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
