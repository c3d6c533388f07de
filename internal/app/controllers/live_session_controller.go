package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// LiveSessionController handles live session endpoints.
type LiveSessionController struct {
	catalogService services.CatalogService
}

// NewLiveSessionController creates a new LiveSessionController
func NewLiveSessionController(catalogService services.CatalogService) *LiveSessionController {
	return &LiveSessionController{catalogService: catalogService}
}

// CreateLiveSession schedules a live session
// @Summary Schedule a live session
// @Tags live-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LiveSessionRequest true "Session information"
// @Success 201 {object} dto.APIResponse{data=models.LiveSession}
// @Router /live-sessions [post]
func (c *LiveSessionController) CreateLiveSession(ctx *gin.Context) {
	var req dto.LiveSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	session, err := c.catalogService.CreateLiveSession(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: session})
}

// GetLiveSession retrieves a live session by ID
// @Summary Get a live session
// @Tags live-sessions
// @Produce json
// @Param id path int true "Live session ID"
// @Success 200 {object} dto.APIResponse{data=models.LiveSession}
// @Router /live-sessions/{id} [get]
func (c *LiveSessionController) GetLiveSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	session, err := c.catalogService.GetLiveSession(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// ListLiveSessions retrieves live sessions, optionally filtered by module
// @Summary List live sessions
// @Tags live-sessions
// @Produce json
// @Param moduleId query int false "Filter by module"
// @Success 200 {object} dto.APIResponse{data=[]models.LiveSession}
// @Router /live-sessions [get]
func (c *LiveSessionController) ListLiveSessions(ctx *gin.Context) {
	moduleID, ok := queryID(ctx, "moduleId")
	if !ok {
		return
	}

	sessions, err := c.catalogService.ListLiveSessions(ctx.Request.Context(), auth.ActorFromContext(ctx), moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: sessions})
}

// UpdateLiveSession updates an existing live session
// @Summary Update a live session
// @Tags live-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Live session ID"
// @Param request body dto.LiveSessionRequest true "Session information"
// @Success 200 {object} dto.APIResponse{data=models.LiveSession}
// @Router /live-sessions/{id} [put]
func (c *LiveSessionController) UpdateLiveSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.LiveSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	session, err := c.catalogService.UpdateLiveSession(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: session})
}

// DeleteLiveSession removes a live session
// @Summary Delete a live session
// @Tags live-sessions
// @Security BearerAuth
// @Param id path int true "Live session ID"
// @Success 204 "No Content"
// @Router /live-sessions/{id} [delete]
func (c *LiveSessionController) DeleteLiveSession(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteLiveSession(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
