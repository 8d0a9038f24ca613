package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sq23rd/roster-backend/internal/models"
)

var ErrQualificationNotFound = errors.New("qualification not found")

type QualificationRepository interface {
	Create(qual *models.Qualification) error
	FindByUserID(userID string) ([]models.Qualification, error)
	Delete(userID, qualificationID string) error
}

type QualificationRepositoryImpl struct {
	db *gorm.DB
}

func NewQualificationRepository(db *gorm.DB) QualificationRepository {
	return &QualificationRepositoryImpl{db: db}
}

func (r *QualificationRepositoryImpl) Create(qual *models.Qualification) error {
	return r.db.Create(qual).Error
}

func (r *QualificationRepositoryImpl) FindByUserID(userID string) ([]models.Qualification, error) {
	var quals []models.Qualification
	err := r.db.Where("user_id = ?", userID).Order("assigned_on ASC").Find(&quals).Error
	return quals, err
}

func (r *QualificationRepositoryImpl) Delete(userID, qualificationID string) error {
	result := r.db.Where("id = ? AND user_id = ?", qualificationID, userID).Delete(&models.Qualification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQualificationNotFound
	}
	return nil
}
