package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osmandemir/learnsphere/internal/app/auth"
	"github.com/osmandemir/learnsphere/internal/app/models/dto"
	"github.com/osmandemir/learnsphere/internal/app/services"
	"github.com/osmandemir/learnsphere/internal/middleware"
)

// EnrollmentController handles payment and enrollment endpoints.
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// enrollmentStatusRequest is the payload for an enrollment status change.
type enrollmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreatePayment records a payment for the acting user
// @Summary Create a payment
// @Description Any userId in the payload is ignored; ownership is fixed to the caller.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PaymentRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.Payment}
// @Router /payments [post]
func (c *EnrollmentController) CreatePayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	payment, err := c.enrollmentService.CreatePayment(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: payment})
}

// GetPayment retrieves a payment by ID
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Router /payments/{id} [get]
func (c *EnrollmentController) GetPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	payment, err := c.enrollmentService.GetPayment(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payment})
}

// ListPayments retrieves payments visible to the caller
// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Payment}
// @Router /payments [get]
func (c *EnrollmentController) ListPayments(ctx *gin.Context) {
	payments, err := c.enrollmentService.ListPayments(ctx.Request.Context(), auth.ActorFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payments})
}

// UpdatePayment changes a payment's mutable fields
// @Summary Update a payment
// @Description The paying user and transaction id are fixed at creation and cannot change.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body dto.PaymentUpdateRequest true "Payment information"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Router /payments/{id} [put]
func (c *EnrollmentController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.PaymentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	payment, err := c.enrollmentService.UpdatePayment(ctx.Request.Context(), auth.ActorFromContext(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payment})
}

// DeletePayment removes a payment
// @Summary Delete a payment
// @Description Enrollments backed by the payment survive with the link nulled.
// @Tags payments
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 204 "No Content"
// @Router /payments/{id} [delete]
func (c *EnrollmentController) DeletePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeletePayment(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// CreateEnrollment enrolls the acting user in a course
// @Summary Create an enrollment
// @Description Any userId in the payload is ignored. A referenced payment must not already back another enrollment.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollmentRequest true "Enrollment information"
// @Success 201 {object} dto.APIResponse{data=models.Enrollment}
// @Failure 409 {object} dto.APIResponse "Payment already used"
// @Router /enrollments [post]
func (c *EnrollmentController) CreateEnrollment(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.CreateEnrollment(ctx.Request.Context(), auth.ActorFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: enrollment})
}

// GetEnrollment retrieves an enrollment by ID
// @Summary Get an enrollment
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Router /enrollments/{id} [get]
func (c *EnrollmentController) GetEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	enrollment, err := c.enrollmentService.GetEnrollment(ctx.Request.Context(), auth.ActorFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enrollment})
}

// ListEnrollments retrieves enrollments visible to the caller
// @Summary List enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Filter by course"
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment}
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrollments(ctx *gin.Context) {
	courseID, ok := queryID(ctx, "courseId")
	if !ok {
		return
	}

	enrollments, err := c.enrollmentService.ListEnrollments(ctx.Request.Context(), auth.ActorFromContext(ctx), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enrollments})
}

// UpdateEnrollment changes an enrollment's status
// @Summary Update an enrollment
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment}
// @Router /enrollments/{id} [put]
func (c *EnrollmentController) UpdateEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req enrollmentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	enrollment, err := c.enrollmentService.UpdateEnrollmentStatus(ctx.Request.Context(), auth.ActorFromContext(ctx), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: enrollment})
}

// DeleteEnrollment removes an enrollment
// @Summary Delete an enrollment
// @Tags enrollments
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 204 "No Content"
// @Router /enrollments/{id} [delete]
func (c *EnrollmentController) DeleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.enrollmentService.DeleteEnrollment(ctx.Request.Context(), auth.ActorFromContext(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
