package dto

// ReviewRequest is a faculty decision on one portfolio item. Feedback is
// required when rejecting; this is enforced before any upstream call.
type ReviewRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Section   string `json:"section" binding:"required"`
	ItemID    string `json:"itemId" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=Approved Rejected"`
	Feedback  string `json:"feedback"`
}

// UploadResponse returns the stored path of an uploaded image.
type UploadResponse struct {
	Path string `json:"path"`
}
