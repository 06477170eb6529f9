package repository

import (
	"github.com/jobtimizer/jobtimizer/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db}
}

func (r *FeedbackRepository) CreateFeedback(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepository) FindFeedbackByUser(userID string, limit int) ([]model.Feedback, error) {
	var feedback []model.Feedback
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&feedback).Error
	return feedback, err
}
