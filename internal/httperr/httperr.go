package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HTTPError struct {
	Code         string `json:"error_code"`
	Message      string `json:"message"`
	ConflictType string `json:"conflict_type,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	Write(c, http.StatusTooManyRequests, code, message)
}

// StatusFor maps a business error kind to its HTTP status.
func StatusFor(k Kind) int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusConflict
	}
}

// Respond writes err. Business errors go out with their own code at debug
// log level; anything else is an infrastructure failure and is hidden
// behind a generic 500.
func Respond(c *gin.Context, err error) {
	logger := zerolog.Ctx(c.Request.Context())

	if be, ok := AsBusiness(err); ok {
		logger.Debug().
			Str("code", be.Code).
			Str("kind", be.Kind.String()).
			Msg("request rejected")

		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		c.JSON(StatusFor(be.Kind), HTTPError{
			Code:         be.Code,
			Message:      msg,
			ConflictType: be.ConflictType,
		})
		return
	}

	logger.Error().Err(err).Msg("request failed")
	Internal(c, "internal_error", "Internal error.")
}
