package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "estatedesk/internal/errors"
	"estatedesk/internal/logger"
	"estatedesk/internal/middleware"
	"estatedesk/internal/validator"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// bindJSON decodes the request body into dst. Field rules are checked by the
// services, so only decoding failures are reported here.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validator.DecodeError(err)
	}
	return nil
}

// bindQuery binds query parameters into dst using the Gin binding rules.
func bindQuery(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return apperrors.WithMessage(apperrors.ErrBadRequest, "Invalid query: "+err.Error())
	}
	return nil
}

// queryBool parses a boolean query flag; anything unparsable is false.
func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}

// respondWithError writes the standard error body. Internal causes are logged
// and never sent to the client.
func respondWithError(c *gin.Context, err error) {
	appErr := apperrors.Classify(err)
	if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(appErr.StatusCode, appErr.Response())
}

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse documents the error body for the API docs.
type ErrorResponse = apperrors.Response
