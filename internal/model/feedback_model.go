package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback ist eine gespeicherte Verfeinerungs-Runde: Originalanzeige,
// Nutzerfeedback und die daraus erzeugte überarbeitete Anzeige.
type Feedback struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(255);index" json:"user_id"`
	JobTitle      string    `gorm:"type:varchar(255)" json:"job_title"`
	OriginalAd    string    `gorm:"type:text" json:"original_ad"`
	RefinedAd     string    `gorm:"type:text" json:"refined_ad"`
	FeedbackType  string    `gorm:"type:varchar(50)" json:"feedback_type"`
	ButtonClicks  string    `gorm:"type:jsonb" json:"button_clicks"`
	TextFeedback  string    `gorm:"type:text" json:"text_feedback"`
	ManualChanges string    `gorm:"type:text" json:"manual_changes"`
	CreatedAt     time.Time `json:"created_at"`
}

func (f *Feedback) TableName() string {
	return "feedback"
}
