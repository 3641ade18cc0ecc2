package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListGroups(c *gin.Context) {
	list, err := h.groups.GetGroups(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderGroups(list))
}

func (h *Handler) CreateGroup(c *gin.Context) {
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := createGroupRequest(body)
	if err != nil {
		writeError(c, err)
		return
	}
	g, err := h.groups.CreateGroup(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderGroup(g))
}

func (h *Handler) GetGroup(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		writeError(c, err)
		return
	}
	g, err := h.groups.GetGroupByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderGroup(g))
}

func (h *Handler) UpdateGroup(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := updateGroupRequest(body, id, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}
	g, err := h.groups.UpdateGroup(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderGroup(g))
}

func (h *Handler) DeleteGroup(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.groups.DeleteGroup(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
