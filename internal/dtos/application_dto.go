package dtos

type ApplicationRequest struct {
	JobPostingID      uint   `json:"job_posting_id" binding:"required"`
	YearsOfExperience int    `json:"years_of_experience" binding:"gte=0"`
	Skills            string `json:"skills" binding:"required"`

	// Optional fields
	University     string `json:"university"`
	AdditionalInfo string `json:"additional_info"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
