package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/services"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/middleware"
)

// MatchmakingController handles ranked match suggestions
type MatchmakingController struct {
	matchmakingService services.MatchmakingService
}

// NewMatchmakingController creates a new MatchmakingController
func NewMatchmakingController(matchmakingService services.MatchmakingService) *MatchmakingController {
	return &MatchmakingController{matchmakingService: matchmakingService}
}

// GetMatches returns the caller's top match suggestions
// @Summary Get match suggestions
// @Description Ranks users of the complementary role by shared skills and interests and returns the top suggestions
// @Tags matchmaking
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MatchResponse} "Suggestions retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /matches [get]
func (c *MatchmakingController) GetMatches(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	role, ok := currentRole(ctx)
	if !ok {
		return
	}

	matches, err := c.matchmakingService.GetMatches(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(matches) == 0 {
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "No matches yet. Add more skills and interests to your profile."},
			Timestamp: time.Now(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matches,
		Timestamp: time.Now(),
	})
}
