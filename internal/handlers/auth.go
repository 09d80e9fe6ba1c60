package handlers

import (
	"errors"
	"net/http"

	"novelhub/internal/logger"
	"novelhub/internal/middleware"
	"novelhub/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *services.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBadBody(c)
		return
	}

	user, err := h.auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			RenderMessage(c, http.StatusBadRequest, "User already exists")
			return
		}
		RenderInternalError(c, h.log, "Failed to create user", err)
		return
	}

	if err := middleware.SignIn(c, user); err != nil {
		logger.FromContext(c, h.log).Warn("session not saved after signup", zap.String("user_id", user.ID), zap.Error(err))
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderBadBody(c)
		return
	}

	user, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			RenderMessage(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		RenderInternalError(c, h.log, "Failed to process login", err)
		return
	}

	if err := middleware.SignIn(c, user); err != nil {
		logger.FromContext(c, h.log).Warn("session not saved after login", zap.String("user_id", user.ID), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.SignOut(c); err != nil {
		RenderInternalError(c, h.log, "Failed to log out", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me echoes the session marker back.
func (h *AuthHandler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	}})
}
