package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ScoreRequest struct {
	UserID    string `json:"user_id"`
	JobTitle  string `json:"job_title"`
	JobAdText string `json:"job_ad_text"`
}

type ScoreRecordDTO struct {
	ID             uuid.UUID       `json:"id"`
	JobTitle       string          `json:"job_title"`
	StepstoneScore json.RawMessage `json:"stepstone_score"`
	ExpertScore    json.RawMessage `json:"expert_score"`
	GesamtScore    float64         `json:"gesamt_score"`
	GesamtLevel    string          `json:"gesamt_level"`
	CreatedAt      time.Time       `json:"created_at"`
}
