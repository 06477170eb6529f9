package model

import (
	"time"

	"github.com/google/uuid"
)

// JobAdScore ist der persistierte Bewertungsdatensatz einer
// Stellenanzeige. Beide Rubrik-Ergebnisse liegen als jsonb vor.
type JobAdScore struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         string    `gorm:"type:varchar(255);index" json:"user_id"`
	JobTitle       string    `gorm:"type:varchar(255)" json:"job_title"`
	JobAdText      string    `gorm:"type:text" json:"job_ad_text"`
	StepstoneScore string    `gorm:"type:jsonb" json:"stepstone_score"`
	ExpertScore    string    `gorm:"type:jsonb" json:"expert_score"`
	GesamtScore    float64   `gorm:"type:float" json:"gesamt_score"`
	GesamtLevel    string    `gorm:"type:varchar(50)" json:"gesamt_level"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *JobAdScore) TableName() string {
	return "job_ad_scores"
}
