package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
)

// Controllers aggregates all HTTP controllers.
type Controllers struct {
	Auth        *AuthController
	User        *UserController
	Course      *CourseController
	Lesson      *LessonController
	LiveSession *LiveSessionController
	Quiz        *QuizController
	Submission  *SubmissionController
	Enrollment  *EnrollmentController
	Capstone    *CapstoneController
}

// NewControllers wires all controllers to their services.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:        NewAuthController(svcs.Auth),
		User:        NewUserController(svcs.User),
		Course:      NewCourseController(svcs.Catalog),
		Lesson:      NewLessonController(svcs.Catalog),
		LiveSession: NewLiveSessionController(svcs.Catalog),
		Quiz:        NewQuizController(svcs.Quiz),
		Submission:  NewSubmissionController(svcs.Submission),
		Enrollment:  NewEnrollmentController(svcs.Enrollment),
		Capstone:    NewCapstoneController(svcs.Capstone),
	}
}

// parseIDParam extracts and validates the numeric :id path parameter.
// On failure it writes the 400 response itself and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID").
				WithField(name).
				WithDetails("ID must be a positive number"),
		})
		return 0, false
	}
	return id, true
}

// queryID extracts an optional numeric query parameter, returning nil
// when absent. On a malformed value it writes the 400 response itself
// and returns ok=false.
func queryID(ctx *gin.Context, name string) (*int64, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameter").
				WithField(name).
				WithDetails("Value must be a positive number"),
		})
		return nil, false
	}
	return &id, true
}

// bindError writes the standard 400 response for a failed request bind.
func bindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.APIResponse{
		Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request data").
			WithDetails(err.Error()),
	})
}
