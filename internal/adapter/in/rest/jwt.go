package rest

import (
	"errors"
	"net/http"

	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type verifyRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *Handler) CreateToken(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, requiredFields(map[string]string{
			"username": req.Username,
			"password": req.Password,
		}))
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": detailBadAccount})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	pair, err := h.tokens.IssuePair(u.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, requiredFields(map[string]string{"refresh": req.Refresh}))
		return
	}
	access, err := h.tokens.Refresh(req.Refresh)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *Handler) VerifyToken(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, requiredFields(map[string]string{"token": req.Token}))
		return
	}
	if err := h.tokens.Verify(req.Token); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func requiredFields(values map[string]string) map[string][]string {
	out := make(map[string][]string)
	for k, v := range values {
		if v == "" {
			out[k] = []string{service.MsgRequired}
		}
	}
	if len(out) == 0 {
		out[service.NonFieldErrors] = []string{"Invalid input."}
	}
	return out
}
