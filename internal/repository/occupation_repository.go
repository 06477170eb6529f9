package repository

import (
	"github.com/jobtimizer/jobtimizer/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type OccupationRepository struct {
	db *gorm.DB
}

func NewOccupationRepository(db *gorm.DB) *OccupationRepository {
	return &OccupationRepository{db}
}

// SearchOccupations returns the topK occupations closest to the given
// embedding, nearest first.
func (r *OccupationRepository) SearchOccupations(embedding pgvector.Vector, topK int) ([]model.Occupation, error) {
	var occupations []model.Occupation

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM occupations
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&occupations).Error

	return occupations, err
}

func (r *OccupationRepository) CreateOccupation(occupation *model.Occupation) error {
	return r.db.Create(occupation).Error
}

func (r *OccupationRepository) UpdateOccupation(occupation *model.Occupation) error {
	return r.db.Save(occupation).Error
}

func (r *OccupationRepository) FindOccupationByESCOCode(code string) (*model.Occupation, error) {
	var occupation model.Occupation
	err := r.db.First(&occupation, "esco_code = ?", code).Error
	return &occupation, err
}

func (r *OccupationRepository) CountOccupations() (int64, error) {
	var count int64
	err := r.db.Model(&model.Occupation{}).Count(&count).Error
	return count, err
}
