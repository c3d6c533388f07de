package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// SubmissionController handles quiz submission and answer endpoints.
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// CreateSubmission records a quiz attempt for the acting student
// @Summary Create a quiz submission
// @Description Any studentId in the payload is ignored; ownership is fixed to the caller.
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmissionRequest true "Submission information"
// @Success 201 {object} dto.APIResponse{data=models.QuizSubmission}
// @Router /quiz-submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	submission, err := c.submissionService.CreateSubmission(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: submission})
}

// GetSubmission retrieves a submission by ID
// @Summary Get a quiz submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=models.QuizSubmission}
// @Router /quiz-submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	submission, err := c.submissionService.GetSubmission(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: submission})
}

// ListSubmissions retrieves submissions visible to the caller
// @Summary List quiz submissions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param quizId query int false "Filter by quiz"
// @Success 200 {object} dto.APIResponse{data=[]models.QuizSubmission}
// @Router /quiz-submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	quizID, ok := queryID(ctx, "quizId")
	if !ok {
		return
	}

	submissions, err := c.submissionService.ListSubmissions(ctx.Request.Context(), auth.ActorFromContext(ctx), quizID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: submissions})
}

// UpdateSubmission updates a submission's score
// @Summary Update a quiz submission
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Param request body dto.SubmissionRequest true "Submission information"
// @Success 200 {object} dto.APIResponse{data=models.QuizSubmission}
// @Router /quiz-submissions/{id} [put]
func (c *SubmissionController) UpdateSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	submission, err := c.submissionService.UpdateSubmission(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: submission})
}

// DeleteSubmission removes a submission
// @Summary Delete a quiz submission
// @Tags submissions
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 204 "No Content"
// @Router /quiz-submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.submissionService.DeleteSubmission(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateAnswer records an answer on a submission
// @Summary Create an answer
// @Description The target submission must belong to the caller unless the caller is an admin.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnswerRequest true "Answer information"
// @Success 201 {object} dto.APIResponse{data=models.Answer}
// @Router /answers [post]
func (c *SubmissionController) CreateAnswer(ctx *gin.Context) {
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	answer, err := c.submissionService.CreateAnswer(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: answer})
}

// GetAnswer retrieves an answer by ID
// @Summary Get an answer
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=models.AnswerDetails}
// @Router /answers/{id} [get]
func (c *SubmissionController) GetAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	answer, err := c.submissionService.GetAnswer(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: answer})
}

// ListAnswers retrieves answers visible to the caller
// @Summary List answers
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param submissionId query int false "Filter by submission"
// @Success 200 {object} dto.APIResponse{data=[]models.AnswerDetails}
// @Router /answers [get]
func (c *SubmissionController) ListAnswers(ctx *gin.Context) {
	submissionID, ok := queryID(ctx, "submissionId")
	if !ok {
		return
	}

	answers, err := c.submissionService.ListAnswers(ctx.Request.Context(), auth.ActorFromContext(ctx), submissionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: answers})
}

// UpdateAnswer updates an answer's text
// @Summary Update an answer
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Param request body dto.AnswerRequest true "Answer information"
// @Success 200 {object} dto.APIResponse{data=models.AnswerDetails}
// @Router /answers/{id} [put]
func (c *SubmissionController) UpdateAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	answer, err := c.submissionService.UpdateAnswer(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: answer})
}

// DeleteAnswer removes an answer
// @Summary Delete an answer
// @Tags answers
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 204 "No Content"
// @Router /answers/{id} [delete]
func (c *SubmissionController) DeleteAnswer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.submissionService.DeleteAnswer(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
