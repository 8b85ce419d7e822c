package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
)

// currentUserID reads the authenticated user's ID set by the auth middleware.
// Responds 401 and returns false when the request carries no identity.
func currentUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get("userID")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	userID, ok := value.(int64)
	if !ok || userID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid session")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return 0, false
	}

	return userID, true
}

// currentRole reads the authenticated user's role set by the auth middleware
func currentRole(ctx *gin.Context) (models.RoleType, bool) {
	value, exists := ctx.Get("roleType")
	if !exists {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	role, ok := value.(models.RoleType)
	if !ok || !role.Valid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid session")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return "", false
	}

	return role, true
}
