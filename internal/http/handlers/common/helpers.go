package common

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/genesehub/internal/http/middleware"
	"github.com/ignatzorin/genesehub/internal/pkg/apperror"
)

// CurrentUserID extracts the resolved profile id placed in the context by middleware.RequireUser.
func CurrentUserID(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", apperror.ErrNotAuthenticated
	}

	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", apperror.ErrNotAuthenticated
	}

	return userID, nil
}

// Fail records err for middleware.ErrorHandler and stops the chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// RespondJSON sends a JSON response with the given status code and data
func RespondJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
