package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// Analysis is one match-and-rewrite run of a resume against a job
// description. Suggestions and Rewrite each carry their own error column
// because a failed completion call does not fail the run: the match score
// stays valid and is still returned.
type Analysis struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeDocumentID uuid.UUID      `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobDescription   string         `gorm:"type:text;not null" json:"job_description"`
	Status           AnalysisStatus `gorm:"not null;default:'queued'" json:"status"`
	MatchScore       *float64       `gorm:"type:decimal(5,2)" json:"match_score,omitempty"`
	Suggestions      *string        `gorm:"type:text" json:"suggestions,omitempty"`
	SuggestionsError *string        `gorm:"type:text" json:"suggestions_error,omitempty"`
	Rewrite          *string        `gorm:"type:text" json:"rewrite,omitempty"`
	RewriteError     *string        `gorm:"type:text" json:"rewrite_error,omitempty"`
	ErrorMessage     *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}
