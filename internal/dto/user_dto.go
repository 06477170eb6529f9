package dto

import (
	"time"

	"github.com/google/uuid"
)

type CompanyInfo struct {
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Mission     string   `json:"mission,omitempty"`
	Culture     []string `json:"culture,omitempty"`
	Values      []string `json:"values,omitempty"`
	Size        string   `json:"size,omitempty"`
	Location    string   `json:"location,omitempty"`
}

type TemplateCustomizations struct {
	IncludeBenefits       bool `json:"include_benefits"`
	EmphasizeGrowth       bool `json:"emphasize_growth"`
	IncludeCompanyCulture bool `json:"include_company_culture"`
	ShowSalaryRange       bool `json:"show_salary_range"`
}

// Preferences steuert Tonalität und Aufbau generierter Stellenanzeigen.
type Preferences struct {
	Tone                   string                 `json:"tone"`            // du, sie
	CasualTone             bool                   `json:"casual_tone"`
	FormalityLevel         string                 `json:"formality_level"` // casual, professional, formal
	CandidateFocus         string                 `json:"candidate_focus"`
	LanguageStyle          string                 `json:"language_style"`
	TemplateCustomizations TemplateCustomizations `json:"template_customizations"`
}

// DefaultPreferences are applied to new users without explicit choices.
func DefaultPreferences() Preferences {
	return Preferences{
		Tone:           "du",
		FormalityLevel: "professional",
		CandidateFocus: "medium",
		LanguageStyle:  "modern",
		TemplateCustomizations: TemplateCustomizations{
			IncludeBenefits:       true,
			EmphasizeGrowth:       true,
			IncludeCompanyCulture: true,
			ShowSalaryRange:       false,
		},
	}
}

type RegisterRequest struct {
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	CompanyInfo CompanyInfo  `json:"company_info"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	CompanyInfo CompanyInfo `json:"company_info"`
	Preferences Preferences `json:"preferences"`
	LastLoginAt *time.Time  `json:"last_login_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
