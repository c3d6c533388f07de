package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// QuizController handles quiz and question endpoints.
type QuizController struct {
	quizService services.QuizService
}

// NewQuizController creates a new QuizController
func NewQuizController(quizService services.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// CreateQuiz handles quiz creation
// @Summary Create a quiz
// @Description Creates a quiz attached to exactly one of a lesson, module or course.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuizRequest true "Quiz information"
// @Success 201 {object} dto.APIResponse{data=models.Quiz}
// @Failure 400 {object} dto.APIResponse "Parent exclusivity violated"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	quiz, err := c.quizService.CreateQuiz(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: quiz})
}

// GetQuiz retrieves a quiz by ID
// @Summary Get a quiz
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse{data=models.Quiz}
// @Router /quizzes/{id} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: quiz})
}

// ListQuizzes retrieves quizzes, optionally filtered by parent
// @Summary List quizzes
// @Tags quizzes
// @Produce json
// @Security BearerAuth
// @Param lessonId query int false "Filter by lesson"
// @Param moduleId query int false "Filter by module"
// @Param courseId query int false "Filter by course"
// @Success 200 {object} dto.APIResponse{data=[]models.Quiz}
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	lessonID, ok := queryID(ctx, "lessonId")
	if !ok {
		return
	}
	moduleID, ok := queryID(ctx, "moduleId")
	if !ok {
		return
	}
	courseID, ok := queryID(ctx, "courseId")
	if !ok {
		return
	}

	quizzes, err := c.quizService.ListQuizzes(ctx.Request.Context(), auth.ActorFromContext(ctx), lessonID, moduleID, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: quizzes})
}

// UpdateQuiz updates an existing quiz
// @Summary Update a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Param request body dto.QuizRequest true "Quiz information"
// @Success 200 {object} dto.APIResponse{data=models.Quiz}
// @Router /quizzes/{id} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	quiz, err := c.quizService.UpdateQuiz(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: quiz})
}

// DeleteQuiz removes a quiz
// @Summary Delete a quiz
// @Tags quizzes
// @Security BearerAuth
// @Param id path int true "Quiz ID"
// @Success 204 "No Content"
// @Router /quizzes/{id} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuiz(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateQuestion handles question creation
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.QuestionRequest true "Question information"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse}
// @Router /questions [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	question, err := c.quizService.CreateQuestion(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: question})
}

// GetQuestion retrieves a question by ID. The correct answer appears
// only in admin responses.
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse}
// @Router /questions/{id} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	question, err := c.quizService.GetQuestion(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: question})
}

// ListQuestions retrieves questions, optionally filtered by quiz
// @Summary List questions
// @Tags questions
// @Produce json
// @Param quizId query int false "Filter by quiz"
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse}
// @Router /questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	quizID, ok := queryID(ctx, "quizId")
	if !ok {
		return
	}

	questions, err := c.quizService.ListQuestions(ctx.Request.Context(), auth.ActorFromContext(ctx), quizID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: questions})
}

// UpdateQuestion updates an existing question
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body dto.QuestionRequest true "Question information"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse}
// @Router /questions/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	question, err := c.quizService.UpdateQuestion(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: question})
}

// DeleteQuestion removes a question
// @Summary Delete a question
// @Tags questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Router /questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.quizService.DeleteQuestion(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
