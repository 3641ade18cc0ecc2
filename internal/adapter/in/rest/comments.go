package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListComments(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		writeError(c, err)
		return
	}
	list, err := h.comments.GetCommentsByPost(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderComments(list))
}

func (h *Handler) CreateComment(c *gin.Context) {
	postID, err := pathID(c, "post_id")
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := createCommentRequest(body, postID, currentUser(c).ID)
	if err != nil {
		// a missing post wins over a bad body
		if _, perr := h.posts.GetPostByID(c.Request.Context(), postID); perr != nil {
			err = perr
		}
		writeError(c, err)
		return
	}

	cm, err := h.comments.CreateComment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderComment(cm))
}

func (h *Handler) GetComment(c *gin.Context) {
	postID, commentID, err := commentPath(c)
	if err != nil {
		writeError(c, err)
		return
	}
	cm, err := h.comments.GetComment(c.Request.Context(), postID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderComment(cm))
}

func (h *Handler) UpdateComment(c *gin.Context) {
	postID, commentID, err := commentPath(c)
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := decodeBody(c)
	if err != nil {
		writeError(c, err)
		return
	}
	req, err := updateCommentRequest(body, postID, commentID, currentUser(c).ID, c.Request.Method == http.MethodPatch)
	if err != nil {
		writeError(c, err)
		return
	}

	cm, err := h.comments.UpdateComment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderComment(cm))
}

func (h *Handler) DeleteComment(c *gin.Context) {
	postID, commentID, err := commentPath(c)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.comments.DeleteComment(c.Request.Context(), postID, commentID, currentUser(c).ID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func commentPath(c *gin.Context) (postID, commentID int64, err error) {
	if postID, err = pathID(c, "post_id"); err != nil {
		return 0, 0, err
	}
	if commentID, err = pathID(c, "comment_id"); err != nil {
		return 0, 0, err
	}
	return postID, commentID, nil
}
