package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/services"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/middleware"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/pkg/helpers"
)

// DiscoveryController handles browsing other users
type DiscoveryController struct {
	discoveryService services.DiscoveryService
}

// NewDiscoveryController creates a new DiscoveryController
func NewDiscoveryController(discoveryService services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{discoveryService: discoveryService}
}

// Discover lists other users with completed profiles
// @Summary Discover users
// @Description Lists users with completed profiles, filtered by role and by skill or interest substring
// @Tags discovery
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter" Enums(MENTOR, MENTEE)
// @Param skills query string false "Skill name substring, case-insensitive"
// @Param interests query string false "Interest name substring, case-insensitive"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.DiscoveryResponse} "Users retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /discovery [get]
func (c *DiscoveryController) Discover(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	filter := dto.DiscoveryFilter{
		Role:      ctx.Query("role"),
		Skills:    ctx.Query("skills"),
		Interests: ctx.Query("interests"),
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(helpers.DefaultPage)))
	if err != nil || page < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Page must be a positive integer").WithField("page")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(helpers.DefaultPageSize)))
	if err != nil || size < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Size must be a positive integer").WithField("size")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.discoveryService.Discover(ctx, userID, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
