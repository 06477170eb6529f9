package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Occupation ist ein ESCO-Beruf mit Embedding für die Vektorsuche.
type Occupation struct {
	ID                uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ESCOCode          string          `gorm:"type:varchar(64);index" json:"esco_code"`
	Name              string          `gorm:"type:varchar(255)" json:"name"`
	Description       string          `gorm:"type:text" json:"description"`
	EssentialSkills   string          `gorm:"type:jsonb" json:"essential_skills"`
	OptionalSkills    string          `gorm:"type:jsonb" json:"optional_skills"`
	AlternativeLabels string          `gorm:"type:jsonb" json:"alternative_labels"`
	Embedding         pgvector.Vector `gorm:"type:vector(3072)" json:"embedding"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (o *Occupation) TableName() string {
	return "occupations"
}
