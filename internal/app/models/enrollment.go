package models

import (
	"time"
)

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

// Payment records a payment made by a user. UserID is fixed to the
// acting identity at creation.
type Payment struct {
	ID            int64         `json:"id" db:"id"`
	UserID        int64         `json:"userId" db:"user_id"`
	Amount        float64       `json:"amount" db:"amount"`
	PaymentOption string        `json:"paymentOption" db:"payment_option"`
	TransactionID string        `json:"transactionId" db:"transaction_id"`
	Status        PaymentStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// OwnerID returns the paying user. Used by instance-level policy checks.
func (p *Payment) OwnerID() int64 {
	return p.UserID
}

// SetOwnerID fixes the paying user at creation. Called only by the
// write-path guard.
func (p *Payment) SetOwnerID(id int64) {
	p.UserID = id
}

// EnrollmentStatus enumerates enrollment states.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentDropped   EnrollmentStatus = "dropped"
)

// Valid reports whether s is a known enrollment status.
func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentActive, EnrollmentCompleted, EnrollmentDropped:
		return true
	}
	return false
}

// Enrollment links a user to a course. PaymentID is optional; a payment
// backs at most one enrollment, and deleting the payment nulls the link
// rather than cascading.
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	UserID     int64            `json:"userId" db:"user_id"`
	CourseID   int64            `json:"courseId" db:"course_id"`
	PaymentID  *int64           `json:"paymentId,omitempty" db:"payment_id"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`
	Status     EnrollmentStatus `json:"status" db:"status"`
}

// OwnerID returns the enrolled user. Used by instance-level policy checks.
func (e *Enrollment) OwnerID() int64 {
	return e.UserID
}

// SetOwnerID fixes the enrolled user at creation. Called only by the
// write-path guard.
func (e *Enrollment) SetOwnerID(id int64) {
	e.UserID = id
}
