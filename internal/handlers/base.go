package handlers

import (
	"net/http"

	"novelhub/internal/logger"
	"novelhub/internal/middleware"
	"novelhub/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RenderMessage writes the {"message": ...} body every error response uses.
func RenderMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// RenderInternalError logs err against the request and answers 500 with a
// generic message; err itself never reaches the client.
func RenderInternalError(c *gin.Context, log *zap.Logger, message string, err error) {
	_ = c.Error(err)
	logger.FromContext(c, log).Error(message, zap.Error(err))
	RenderMessage(c, http.StatusInternalServerError, message)
}

func renderBadBody(c *gin.Context) {
	RenderMessage(c, http.StatusBadRequest, "Invalid request body")
}

// currentActor is the identity handed to the services for this request.
func currentActor(c *gin.Context) services.Actor {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return services.Actor{}
	}
	return services.Actor{ID: user.ID, Username: user.Username}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
