package repository

import (
	"github.com/jobtimizer/jobtimizer/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db}
}

func (r *ScoreRepository) CreateScore(score *model.JobAdScore) error {
	return r.db.Create(score).Error
}

func (r *ScoreRepository) FindScoreByID(id string) (*model.JobAdScore, error) {
	var score model.JobAdScore
	err := r.db.First(&score, "id = ?", id).Error
	return &score, err
}

func (r *ScoreRepository) FindScoresByUser(userID string, limit int) ([]model.JobAdScore, error) {
	var scores []model.JobAdScore
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&scores).Error
	return scores, err
}

func (r *ScoreRepository) CountScoresByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.JobAdScore{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
