package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evangerty1/stocks-pipeline/internal/domain/dto"
	"github.com/evangerty1/stocks-pipeline/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized 500 JSON response, unless a handler already wrote one.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError logs err and aborts the request with a standardized JSON
// error body and the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Error().Err(err).Int("status", status).Msg(message)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
