package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/pkg/apperrors"
	"github.com/bigbinarytech/institute/internal/pkg/logger"
	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

// Checked in order, so specific sentinels come before the generic ones they may wrap.
var errorMappings = []errorMapping{
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenNotFound, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found"},
	{apperrors.ErrTokenRevoked, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked"},
	{apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled"},
	{apperrors.ErrNotAdmin, http.StatusForbidden, dto.ErrorCodeForbidden, "Admin access required"},
	{apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied"},

	{apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found"},
	{apperrors.ErrSpecializationNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Specialization not found"},
	{apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found"},
	{apperrors.ErrTeamMemberNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Team member not found"},
	{apperrors.ErrFAQNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "FAQ not found"},
	{apperrors.ErrContentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Content section not found"},
	{apperrors.ErrMediaAssetNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Media asset not found"},
	{apperrors.ErrProfileNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Profile not found"},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},

	{apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists"},
	{apperrors.ErrSpecializationExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A specialization with this slug already exists"},
	{apperrors.ErrCourseExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "A course with this slug already exists"},
	{apperrors.ErrSpecializationInUse, http.StatusConflict, dto.ErrorCodeConflict, "Specialization still has courses"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeConflict, "Conflict"},

	{apperrors.ErrInvalidSpecialization, http.StatusBadRequest, dto.ErrorCodeResourceInvalid, "Selected specialization does not exist"},
	{apperrors.ErrInvalidTeamCategory, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Category must be team or leadership"},
	{apperrors.ErrUnknownAction, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Unknown action"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodePayloadTooLarge, "File is too large"},
	{apperrors.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType, dto.ErrorCodeUnsupportedMedia, "Only image files are allowed"},
}

// HandleAPIError writes the JSON error response for err. Known sentinels map to their
// status and code; a message carried by apperrors.CustomError replaces the default text.
// Anything else is logged and reported as a 500 with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			c.AbortWithStatusJSON(m.status, dto.NewErrorResponse(
				dto.NewErrorDetail(m.code, apperrors.Message(err, m.message)),
			))
			return
		}
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("Unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
		dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Something went wrong. Please try again."),
	))
}

// HandleBindingError reports a request that failed JSON binding or validation. A body
// cut off by LimitBody is reported as 413.
func HandleBindingError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		HandleAPIError(c, apperrors.NewCustomError(apperrors.ErrPayloadTooLarge,
			fmt.Sprintf("Request body must be at most %d bytes", tooLarge.Limit)))
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

// Recovery turns panics into the standard 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Something went wrong. Please try again."),
		))
	})
}
