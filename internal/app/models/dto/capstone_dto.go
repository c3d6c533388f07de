package dto

// CapstoneRequest is the multipart payload for creating a capstone
// project. StudentID is accepted but always discarded in favor of the
// acting identity; the submission file arrives as a separate form part.
type CapstoneRequest struct {
	StudentID   int64  `form:"studentId"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

// CapstoneUpdateRequest is the payload for updating a capstone project.
// Grade is honored only on admin-initiated updates; student updates to
// their own project keep the stored grade.
type CapstoneUpdateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Grade       *string `json:"grade"`
}
