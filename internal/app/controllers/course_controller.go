package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// CourseController handles course and module endpoints. Reads are
// public; writes go through the policy engine and require admin.
type CourseController struct {
	catalogService services.CatalogService
}

// NewCourseController creates a new CourseController
func NewCourseController(catalogService services.CatalogService) *CourseController {
	return &CourseController{catalogService: catalogService}
}

// CreateCourse handles course creation
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	course, err := c.catalogService.CreateCourse(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course})
}

// GetCourse retrieves a course by ID
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.catalogService.GetCourse(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// ListCourses retrieves a paginated course list
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var filter dto.ListFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindError(ctx, err)
		return
	}

	courses, pagination, err := c.catalogService.ListCourses(ctx.Request.Context(), auth.ActorFromContext(ctx), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{
		"courses":    courses,
		"pagination": pagination,
	}})
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	course, err := c.catalogService.UpdateCourse(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course})
}

// DeleteCourse removes a course
// @Summary Delete a course
// @Tags courses
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204 "No Content"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteCourse(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateModule handles module creation
// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ModuleRequest true "Module information"
// @Success 201 {object} dto.APIResponse{data=models.Module}
// @Router /modules [post]
func (c *CourseController) CreateModule(ctx *gin.Context) {
	var req dto.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	module, err := c.catalogService.CreateModule(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: module})
}

// GetModule retrieves a module by ID
// @Summary Get a module
// @Tags modules
// @Produce json
// @Param id path int true "Module ID"
// @Success 200 {object} dto.APIResponse{data=models.Module}
// @Router /modules/{id} [get]
func (c *CourseController) GetModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	module, err := c.catalogService.GetModule(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: module})
}

// ListModules retrieves modules, optionally filtered by course
// @Summary List modules
// @Tags modules
// @Produce json
// @Param courseId query int false "Filter by course"
// @Success 200 {object} dto.APIResponse{data=[]models.Module}
// @Router /modules [get]
func (c *CourseController) ListModules(ctx *gin.Context) {
	courseID, ok := queryID(ctx, "courseId")
	if !ok {
		return
	}

	modules, err := c.catalogService.ListModules(ctx.Request.Context(), auth.ActorFromContext(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: modules})
}

// UpdateModule updates an existing module
// @Summary Update a module
// @Tags modules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Param request body dto.ModuleRequest true "Module information"
// @Success 200 {object} dto.APIResponse{data=models.Module}
// @Router /modules/{id} [put]
func (c *CourseController) UpdateModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	module, err := c.catalogService.UpdateModule(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: module})
}

// DeleteModule removes a module
// @Summary Delete a module
// @Tags modules
// @Security BearerAuth
// @Param id path int true "Module ID"
// @Success 204 "No Content"
// @Router /modules/{id} [delete]
func (c *CourseController) DeleteModule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteModule(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
