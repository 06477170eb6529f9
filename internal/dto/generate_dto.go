package dto

import "time"

type GenerateJobAdRequest struct {
	UserID            string `json:"user_id"`
	JobTitle          string `json:"job_title"`
	SeniorityLevel    string `json:"seniority_level,omitempty"`
	SeniorityYears    string `json:"seniority_years,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

type OccupationDTO struct {
	ESCOCode    string `json:"esco_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type JobAdResponse struct {
	JobAd               string        `json:"job_ad"`
	Occupation          OccupationDTO `json:"occupation"`
	GenerationTimestamp time.Time     `json:"generation_timestamp"`
	UserID              string        `json:"user_id"`
}

type OccupationSuggestion struct {
	Title        string `json:"title"`
	OriginalName string `json:"original_name"`
	ESCOCode     string `json:"esco_code"`
	Description  string `json:"description"`
}

type RefineRequest struct {
	UserID        string   `json:"user_id"`
	JobTitle      string   `json:"job_title,omitempty"`
	OriginalAd    string   `json:"original_ad"`
	FeedbackType  string   `json:"feedback_type"` // button_click, text_feedback, manual_edit
	ButtonClicks  []string `json:"button_clicks,omitempty"`
	TextFeedback  string   `json:"text_feedback,omitempty"`
	ManualChanges string   `json:"manual_changes,omitempty"`
}

type RefineResponse struct {
	RefinedAd string `json:"refined_ad"`
}
