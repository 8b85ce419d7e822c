package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/models/dto"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/services"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/middleware"
)

// ConnectionController handles the connection request lifecycle
type ConnectionController struct {
	connectionService services.ConnectionService
}

// NewConnectionController creates a new ConnectionController
func NewConnectionController(connectionService services.ConnectionService) *ConnectionController {
	return &ConnectionController{connectionService: connectionService}
}

// SendRequest sends a connection request to another user
// @Summary Send a connection request
// @Description Opens a pending connection between the caller and a user of the complementary role; a previously declined pair is reopened instead
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendConnectionRequest true "Target user"
// @Success 200 {object} dto.APIResponse{data=dto.ConnectionResponse} "Declined request reopened"
// @Success 201 {object} dto.APIResponse{data=dto.ConnectionResponse} "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid target or incompatible roles"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Target user not found"
// @Failure 409 {object} dto.ErrorResponse "Connection already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/requests [post]
func (c *ConnectionController) SendRequest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.SendConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	conn, created, err := c.connectionService.SendRequest(ctx, userID, req.RequestedUserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.APIResponse{
		Data:      conn,
		Timestamp: time.Now(),
	})
}

// AcceptRequest accepts a pending connection request
// @Summary Accept a connection request
// @Description Accepts a pending request; only the receiving participant may accept
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RespondConnectionRequest true "Connection to accept"
// @Success 200 {object} dto.APIResponse{data=dto.ConnectionResponse} "Request accepted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller may not respond to this request"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Request is no longer pending"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/requests/accept [put]
func (c *ConnectionController) AcceptRequest(ctx *gin.Context) {
	c.respond(ctx, true)
}

// DeclineRequest declines a pending connection request
// @Summary Decline a connection request
// @Description Declines a pending request; only the receiving participant may decline
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RespondConnectionRequest true "Connection to decline"
// @Success 200 {object} dto.APIResponse{data=dto.ConnectionResponse} "Request declined"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller may not respond to this request"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Request is no longer pending"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/requests/decline [put]
func (c *ConnectionController) DeclineRequest(ctx *gin.Context) {
	c.respond(ctx, false)
}

func (c *ConnectionController) respond(ctx *gin.Context, accept bool) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.RespondConnectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	conn, err := c.connectionService.Respond(ctx, userID, req.ConnectionID, accept)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      conn,
		Timestamp: time.Now(),
	})
}

// ListConnections lists the caller's connections
// @Summary List my connections
// @Description Lists connections where the caller occupies either slot, optionally filtered by status
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(PENDING, ACCEPTED, DECLINED)
// @Success 200 {object} dto.APIResponse{data=[]dto.ConnectionResponse} "Connections retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections [get]
func (c *ConnectionController) ListConnections(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	status := models.ConnectionStatus(ctx.Query("status"))
	conns, err := c.connectionService.ListConnections(ctx, userID, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      conns,
		Timestamp: time.Now(),
	})
}

// ListPendingRequests lists requests waiting for the caller's answer
// @Summary List pending requests received
// @Description Lists pending connection requests initiated by other users
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConnectionResponse} "Pending requests retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/requests/pending [get]
func (c *ConnectionController) ListPendingRequests(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	conns, err := c.connectionService.ListPendingReceived(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      conns,
		Timestamp: time.Now(),
	})
}

// GetStatus reports the pair status between the caller and another user
// @Summary Get connection status with a user
// @Description Reports NONE, PENDING, CONNECTED or DECLINED for the caller and the given user
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Other user ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ConnectionStatusResponse} "Status retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid user ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/status/{userId} [get]
func (c *ConnectionController) GetStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	otherID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil || otherID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid user ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	status, err := c.connectionService.GetStatusWith(ctx, userID, otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

// DeleteConnection removes a connection the caller participates in
// @Summary Remove a connection
// @Description Deletes a connection; afterwards the pair status reads NONE again
// @Tags connections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Connection ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Connection removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid connection ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Caller is not a participant"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /connections/{id} [delete]
func (c *ConnectionController) DeleteConnection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	connectionID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || connectionID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid connection ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.connectionService.DeleteConnection(ctx, userID, connectionID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Connection removed"},
		Timestamp: time.Now(),
	})
}
