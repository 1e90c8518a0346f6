package handlers

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/codeby-aftab/trip-ai-backend/errors"
)

// bindJSONOrError binds the request body into obj, attaching a validation
// AppError to the context on failure. Returns false when binding failed.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return false
	}
	return true
}
