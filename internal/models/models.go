package models

import "time"

// CEO is the single privileged account. It is seeded at startup and is never
// created through any endpoint.
type CEO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Password string `gorm:"not null" json:"-"`
}

type HR struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	JobPostings []JobPosting `gorm:"foreignKey:HRID" json:"job_postings,omitempty"`
}

type Candidate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	Phone      string `json:"phone,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`

	Applications []CandidateApplication `gorm:"foreignKey:CandidateID" json:"applications,omitempty"`
}

// JobPosting is owned by exactly one HR and is immutable once created.
type JobPosting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HRID uint `gorm:"column:hr_id;not null" json:"hr_id"`

	Title                  string `gorm:"not null" json:"title"`
	Description            string `gorm:"type:text;not null" json:"description"`
	ExperienceRequired     int    `gorm:"not null" json:"experience_required"`
	SkillsRequired         string `gorm:"type:text;not null" json:"skills_required"`
	AdditionalRequirements string `gorm:"type:text" json:"additional_requirements,omitempty"`
	QuestionsToAsk         string `gorm:"type:text" json:"questions_to_ask,omitempty"`
	MoreInfo               string `gorm:"type:text" json:"more_info,omitempty"`

	Applications []CandidateApplication `gorm:"foreignKey:JobPostingID" json:"applications,omitempty"`
}

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// CandidateApplication links a candidate to a job posting. The composite
// unique index is the real enforcement of the one-application-per-job rule;
// the service-level existence check only exists to return a friendly error.
type CandidateApplication struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobPostingID uint `gorm:"not null;uniqueIndex:idx_job_candidate" json:"job_posting_id"`
	CandidateID  uint `gorm:"not null;uniqueIndex:idx_job_candidate" json:"candidate_id"`

	YearsOfExperience int               `gorm:"not null" json:"years_of_experience"`
	Skills            string            `gorm:"type:text;not null" json:"skills"`
	University        string            `json:"university,omitempty"`
	AdditionalInfo    string            `gorm:"type:text" json:"additional_info,omitempty"`
	Status            ApplicationStatus `gorm:"default:'pending'" json:"status"`
}
