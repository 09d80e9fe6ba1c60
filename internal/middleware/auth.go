package middleware

import (
	"net/http"

	"novelhub/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
	sessionEmail    = "email"
)

// AuthRequired rejects requests that carry no session marker.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not signed in"})
			return
		}
		c.Next()
	}
}

// LoadUser copies the user held in the signed session cookie into the context.
// The cookie is the whole session: the user is not looked up again, so a
// marker for a user that no longer exists is still honoured.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(sessionUserID).(string); ok && id != "" {
			username, _ := session.Get(sessionUsername).(string)
			email, _ := session.Get(sessionEmail).(string)
			c.Set(CheckUserKey, models.UserProfile{ID: id, Username: username, Email: email})
		}
		c.Next()
	}
}

// CurrentUser returns the session user loaded by LoadUser.
func CurrentUser(c *gin.Context) (models.UserProfile, bool) {
	v, exists := c.Get(CheckUserKey)
	if !exists {
		return models.UserProfile{}, false
	}
	user, ok := v.(models.UserProfile)
	return user, ok
}

// SignIn stores user as the session marker.
func SignIn(c *gin.Context, user models.UserProfile) error {
	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	session.Set(sessionEmail, user.Email)
	if err := session.Save(); err != nil {
		return err
	}
	c.Set(CheckUserKey, user)
	return nil
}

// SignOut drops the session marker.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
