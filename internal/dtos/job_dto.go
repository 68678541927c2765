package dtos

type JobCreationRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	ExperienceRequired int    `json:"experience_required" binding:"gte=0"`
	SkillsRequired     string `json:"skills_required" binding:"required"`

	// Optional fields
	AdditionalRequirements string `json:"additional_requirements"`
	QuestionsToAsk         string `json:"questions_to_ask"`
	MoreInfo               string `json:"more_info"`
}

// JobSummary is the trimmed-down shape returned by the public job list.
type JobSummary struct {
	ID                 uint   `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	ExperienceRequired int    `json:"experience_required"`
}

type QuestionSuggestionResponse struct {
	JobPostingID uint     `json:"job_posting_id"`
	Questions    []string `json:"questions"`
}
