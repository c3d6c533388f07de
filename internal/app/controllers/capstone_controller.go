package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// CapstoneController handles capstone project endpoints.
type CapstoneController struct {
	capstoneService services.CapstoneService
}

// NewCapstoneController creates a new CapstoneController
func NewCapstoneController(capstoneService services.CapstoneService) *CapstoneController {
	return &CapstoneController{capstoneService: capstoneService}
}

// CreateCapstone submits a capstone project with its file
// @Summary Submit a capstone project
// @Description Any studentId in the form is ignored; ownership is fixed to the caller. The grade always starts unset.
// @Tags capstones
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Project title"
// @Param description formData string false "Project description"
// @Param file formData file true "Submission file"
// @Success 201 {object} dto.APIResponse{data=models.CapstoneProject}
// @Router /capstone-projects [post]
func (c *CapstoneController) CreateCapstone(ctx *gin.Context) {
	var req dto.CapstoneRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Submission file is required").
				WithField("file"),
		})
		return
	}

	project, err := c.capstoneService.CreateCapstone(ctx.Request.Context(), auth.ActorFromContext(ctx), &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: project})
}

// GetCapstone retrieves a capstone project by ID
// @Summary Get a capstone project
// @Tags capstones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Capstone project ID"
// @Success 200 {object} dto.APIResponse{data=models.CapstoneProject}
// @Router /capstone-projects/{id} [get]
func (c *CapstoneController) GetCapstone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.capstoneService.GetCapstone(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: project})
}

// ListCapstones retrieves capstone projects visible to the caller
// @Summary List capstone projects
// @Tags capstones
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CapstoneProject}
// @Router /capstone-projects [get]
func (c *CapstoneController) ListCapstones(ctx *gin.Context) {
	projects, err := c.capstoneService.ListCapstones(ctx.Request.Context(), auth.ActorFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: projects})
}

// UpdateCapstone updates a capstone project. Grade changes are honored
// only for admin callers; student updates keep the stored grade.
// @Summary Update a capstone project
// @Tags capstones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Capstone project ID"
// @Param request body dto.CapstoneUpdateRequest true "Project information"
// @Success 200 {object} dto.APIResponse{data=models.CapstoneProject}
// @Router /capstone-projects/{id} [put]
func (c *CapstoneController) UpdateCapstone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CapstoneUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	project, err := c.capstoneService.UpdateCapstone(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: project})
}

// DeleteCapstone removes a capstone project
// @Summary Delete a capstone project
// @Tags capstones
// @Security BearerAuth
// @Param id path int true "Capstone project ID"
// @Success 204 "No Content"
// @Router /capstone-projects/{id} [delete]
func (c *CapstoneController) DeleteCapstone(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.capstoneService.DeleteCapstone(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
