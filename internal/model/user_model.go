package model

import (
	"time"

	"github.com/google/uuid"
)

// User ist ein registrierter Jobtimizer-Nutzer. CompanyInfo und
// Preferences liegen als jsonb vor und werden im Usecase typisiert.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(100)" json:"-"`
	CompanyInfo  string     `gorm:"type:jsonb" json:"company_info"`
	Preferences  string     `gorm:"type:jsonb" json:"preferences"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}
