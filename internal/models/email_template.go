package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Known template keys.
const (
	TemplateClientCompletion = "client_completion"
	TemplateRepCompletion    = "rep_completion"
)

// EmailTemplate is an admin-editable subject/body pair. When a key has no
// row, the mail package falls back to its hardcoded default.
type EmailTemplate struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TemplateID string    `gorm:"size:50;not null;uniqueIndex" json:"template_id"`
	Subject    string    `gorm:"size:300;not null" json:"subject"`
	HTMLBody   string    `gorm:"type:text;not null" json:"html_body"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (t *EmailTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
