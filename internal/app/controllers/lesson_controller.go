package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// LessonController handles lesson and content item endpoints.
type LessonController struct {
	catalogService services.CatalogService
}

// NewLessonController creates a new LessonController
func NewLessonController(catalogService services.CatalogService) *LessonController {
	return &LessonController{catalogService: catalogService}
}

// CreateLesson handles lesson creation
// @Summary Create a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LessonRequest true "Lesson information"
// @Success 201 {object} dto.APIResponse{data=models.Lesson}
// @Router /lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req dto.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	lesson, err := c.catalogService.CreateLesson(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: lesson})
}

// GetLesson retrieves a lesson by ID
// @Summary Get a lesson
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.APIResponse{data=models.Lesson}
// @Router /lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lesson, err := c.catalogService.GetLesson(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lesson})
}

// ListLessons retrieves lessons, optionally filtered by module
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Param moduleId query int false "Filter by module"
// @Success 200 {object} dto.APIResponse{data=[]models.Lesson}
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	moduleID, ok := queryID(ctx, "moduleId")
	if !ok {
		return
	}

	lessons, err := c.catalogService.ListLessons(ctx.Request.Context(), auth.ActorFromContext(ctx), moduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lessons})
}

// UpdateLesson updates an existing lesson
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Param request body dto.LessonRequest true "Lesson information"
// @Success 200 {object} dto.APIResponse{data=models.Lesson}
// @Router /lessons/{id} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	lesson, err := c.catalogService.UpdateLesson(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: lesson})
}

// DeleteLesson removes a lesson
// @Summary Delete a lesson
// @Tags lessons
// @Security BearerAuth
// @Param id path int true "Lesson ID"
// @Success 204 "No Content"
// @Router /lessons/{id} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteLesson(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateContentItem handles content item creation. The request arrives
// as multipart form data so video and pdf items can carry a file part.
// @Summary Create a content item
// @Tags content-items
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=models.ContentItem}
// @Router /content-items [post]
func (c *LessonController) CreateContentItem(ctx *gin.Context) {
	var req dto.ContentItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		bindError(ctx, err)
		return
	}

	// Optional file part; video and pdf items normally carry one.
	file, err := ctx.FormFile("file")
	if err != nil {
		file = nil
	}

	item, err := c.catalogService.CreateContentItem(ctx.Request.Context(), auth.ActorFromContext(ctx), &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: item})
}

// GetContentItem retrieves a content item by ID
// @Summary Get a content item
// @Tags content-items
// @Produce json
// @Param id path int true "Content item ID"
// @Success 200 {object} dto.APIResponse{data=models.ContentItem}
// @Router /content-items/{id} [get]
func (c *LessonController) GetContentItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.catalogService.GetContentItem(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: item})
}

// ListContentItems retrieves content items, optionally filtered by lesson
// @Summary List content items
// @Tags content-items
// @Produce json
// @Param lessonId query int false "Filter by lesson"
// @Success 200 {object} dto.APIResponse{data=[]models.ContentItem}
// @Router /content-items [get]
func (c *LessonController) ListContentItems(ctx *gin.Context) {
	lessonID, ok := queryID(ctx, "lessonId")
	if !ok {
		return
	}

	items, err := c.catalogService.ListContentItems(ctx.Request.Context(), auth.ActorFromContext(ctx), lessonID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: items})
}

// UpdateContentItem updates an existing content item
// @Summary Update a content item
// @Tags content-items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Content item ID"
// @Success 200 {object} dto.APIResponse{data=models.ContentItem}
// @Router /content-items/{id} [put]
func (c *LessonController) UpdateContentItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ContentItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	item, err := c.catalogService.UpdateContentItem(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: item})
}

// DeleteContentItem removes a content item
// @Summary Delete a content item
// @Tags content-items
// @Security BearerAuth
// @Param id path int true "Content item ID"
// @Success 204 "No Content"
// @Router /content-items/{id} [delete]
func (c *LessonController) DeleteContentItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.catalogService.DeleteContentItem(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
