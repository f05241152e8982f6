package controllers

import (
	"net/http"

	"github.com/bigbinarytech/institute/internal/app/models/dto"
	"github.com/bigbinarytech/institute/internal/app/services"
	"github.com/bigbinarytech/institute/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseIDParam reads a UUID path parameter, writing a 400 when it is malformed
func parseIDParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithField(name).
			WithDetails("must be a valid UUID")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}

// currentActor returns the authenticated caller, writing a 401 when there is none
func currentActor(ctx *gin.Context) (services.Actor, bool) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return services.Actor{}, false
	}
	return services.Actor{UserID: userID, Role: middleware.RoleFromContext(ctx)}, true
}

func respond(ctx *gin.Context, status int, data interface{}, message string) {
	ctx.JSON(status, dto.NewSuccessResponse(data, message))
}
