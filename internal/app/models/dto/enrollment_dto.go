package dto

// PaymentRequest is the payload for creating a payment. UserID is
// accepted in the payload but always discarded in favor of the acting
// identity.
type PaymentRequest struct {
	UserID        int64   `json:"userId"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentOption string  `json:"paymentOption" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Status        string  `json:"status" binding:"required"`
}

// PaymentUpdateRequest is the payload for updating a payment. The
// paying user and the transaction id are fixed at creation and cannot
// change.
type PaymentUpdateRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	PaymentOption string  `json:"paymentOption" binding:"required"`
	Status        string  `json:"status" binding:"required"`
}

// EnrollmentRequest is the payload for creating or updating an
// enrollment. UserID is accepted in the payload but always discarded in
// favor of the acting identity. PaymentID, when set, must reference a
// payment not already backing another enrollment.
type EnrollmentRequest struct {
	UserID    int64  `json:"userId"`
	CourseID  int64  `json:"courseId" binding:"required"`
	PaymentID *int64 `json:"paymentId"`
	Status    string `json:"status" binding:"required"`
}
