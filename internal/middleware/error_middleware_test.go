package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

func runErrorHandler(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, 401, dto.ErrorCodeUnauthorized},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, 401, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, 401, dto.ErrorCodeInvalidToken},
		{"account disabled", apperrors.ErrAccountDisabled, 403, dto.ErrorCodeForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"invariant violation", apperrors.ErrInvariantViolation, 400, dto.ErrorCodeInvariantViolation},
		{"validation failed", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.ErrBadRequest, 400, dto.ErrorCodeValidationFailed},
		{"payment already used", apperrors.ErrPaymentAlreadyUsed, 409, dto.ErrorCodeResourceAlreadyExists},
		{"email already exists", apperrors.ErrEmailAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"resource not found", apperrors.ErrResourceNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"unknown error", fmt.Errorf("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

// Every per-resource not-found sentinel must reach the single 404
// branch through error wrapping.
func TestHandleAPIError_WrappedNotFounds(t *testing.T) {
	sentinels := []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrModuleNotFound,
		apperrors.ErrLessonNotFound,
		apperrors.ErrContentItemNotFound,
		apperrors.ErrLiveSessionNotFound,
		apperrors.ErrQuizNotFound,
		apperrors.ErrQuestionNotFound,
		apperrors.ErrSubmissionNotFound,
		apperrors.ErrAnswerNotFound,
		apperrors.ErrPaymentNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrCapstoneNotFound,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			status, resp := runErrorHandler(t, sentinel)
			assert.Equal(t, 404, status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_CustomMessagePassedThrough(t *testing.T) {
	err := apperrors.NewInvariantError("a quiz must be associated with exactly one of: lesson, module, or course")

	status, resp := runErrorHandler(t, err)
	assert.Equal(t, 400, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvariantViolation, resp.Error.Code)
	assert.Equal(t, "a quiz must be associated with exactly one of: lesson, module, or course", resp.Error.Message)
}

// 401 and 403 must stay distinct outcomes for the same endpoint.
func TestHandleAPIError_UnauthorizedVsForbidden(t *testing.T) {
	status401, _ := runErrorHandler(t, apperrors.ErrUnauthenticated)
	status403, _ := runErrorHandler(t, apperrors.ErrPermissionDenied)
	assert.Equal(t, 401, status401)
	assert.Equal(t, 403, status403)
}
