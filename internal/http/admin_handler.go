package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dialogue-personas/internal/service"
)

// AdminHandler maneja el login de administrador para analytics.
type AdminHandler struct {
	logger *zap.Logger
	auth   *service.AdminAuthService
}

func NewAdminHandler(logger *zap.Logger, auth *service.AdminAuthService) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		auth:   auth,
	}
}

// Login maneja POST /auth/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, expiresIn, err := h.auth.Login(req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminAuthDisabled):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin auth not configured"})
		case errors.Is(err, service.ErrInvalidCredentials):
			h.logger.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		default:
			h.logger.Error("admin login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"expires_in":   expiresIn,
	})
}
