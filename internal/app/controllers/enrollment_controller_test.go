package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/pkg/apperrors"
)

// stubEnrollmentService records the last payment update request and
// returns canned results.
type stubEnrollmentService struct {
	updatedID int64
	updateReq *dto.PaymentUpdateRequest
	updateErr error
	lastActor auth.Actor
}

func (s *stubEnrollmentService) CreatePayment(ctx context.Context, actor auth.Actor, req *dto.PaymentRequest) (*models.Payment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) GetPayment(ctx context.Context, actor auth.Actor, id int64) (*models.Payment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) ListPayments(ctx context.Context, actor auth.Actor) ([]*models.Payment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) UpdatePayment(ctx context.Context, actor auth.Actor, id int64, req *dto.PaymentUpdateRequest) (*models.Payment, error) {
	s.updatedID = id
	s.updateReq = req
	s.lastActor = actor
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Payment{
		ID:            id,
		UserID:        actor.UserID,
		Amount:        req.Amount,
		PaymentOption: req.PaymentOption,
		TransactionID: "txn-fixed",
		Status:        models.PaymentStatus(req.Status),
	}, nil
}

func (s *stubEnrollmentService) DeletePayment(ctx context.Context, actor auth.Actor, id int64) error {
	return nil
}

func (s *stubEnrollmentService) CreateEnrollment(ctx context.Context, actor auth.Actor, req *dto.EnrollmentRequest) (*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) GetEnrollment(ctx context.Context, actor auth.Actor, id int64) (*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) ListEnrollments(ctx context.Context, actor auth.Actor, courseID *int64) ([]*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) UpdateEnrollmentStatus(ctx context.Context, actor auth.Actor, id int64, status string) (*models.Enrollment, error) {
	return nil, nil
}

func (s *stubEnrollmentService) DeleteEnrollment(ctx context.Context, actor auth.Actor, id int64) error {
	return nil
}

func paymentUpdateRouter(svc *stubEnrollmentService, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewEnrollmentController(svc)

	router := gin.New()
	router.PUT("/payments/:id", func(c *gin.Context) {
		c.Set(auth.ContextUserID, userID)
		c.Set(auth.ContextRole, role)
	}, ctrl.UpdatePayment)
	return router
}

func TestUpdatePayment(t *testing.T) {
	t.Run("updates mutable fields", func(t *testing.T) {
		svc := &stubEnrollmentService{}
		router := paymentUpdateRouter(svc, 2, "student")

		body := `{"amount": 49.99, "paymentOption": "card", "status": "completed"}`
		req := httptest.NewRequest(http.MethodPut, "/payments/7", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(7), svc.updatedID)
		require.NotNil(t, svc.updateReq)
		assert.Equal(t, 49.99, svc.updateReq.Amount)
		assert.Equal(t, "completed", svc.updateReq.Status)
		assert.True(t, svc.lastActor.IsStudent())
		assert.Equal(t, int64(2), svc.lastActor.UserID)

		var resp dto.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data)
	})

	t.Run("service denial maps to forbidden", func(t *testing.T) {
		svc := &stubEnrollmentService{updateErr: apperrors.ErrPermissionDenied}
		router := paymentUpdateRouter(svc, 2, "student")

		body := `{"amount": 10, "paymentOption": "card", "status": "pending"}`
		req := httptest.NewRequest(http.MethodPut, "/payments/7", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		svc := &stubEnrollmentService{}
		router := paymentUpdateRouter(svc, 2, "student")

		req := httptest.NewRequest(http.MethodPut, "/payments/7", strings.NewReader(`{"amount": 10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.updateReq)
	})

	t.Run("malformed id rejected", func(t *testing.T) {
		svc := &stubEnrollmentService{}
		router := paymentUpdateRouter(svc, 2, "student")

		req := httptest.NewRequest(http.MethodPut, "/payments/abc", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, int64(0), svc.updatedID)
	})
}
