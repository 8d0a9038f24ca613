package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sq23rd/roster-backend/internal/models"
)

var ErrFCIFNotFound = errors.New("fcif not found")

type FCIFRepository interface {
	Create(fcif *models.FCIF) error
	FindAll() ([]models.FCIF, error)
	FindByID(id string) (*models.FCIF, error)

	// Acknowledge records that the user has read the FCIF. Acknowledging
	// twice is a no-op, not an error.
	Acknowledge(fcifID, userID string) error

	Delete(id string) error
}

type FCIFRepositoryImpl struct {
	db *gorm.DB
}

func NewFCIFRepository(db *gorm.DB) FCIFRepository {
	return &FCIFRepositoryImpl{db: db}
}

func (r *FCIFRepositoryImpl) Create(fcif *models.FCIF) error {
	return r.db.Create(fcif).Error
}

func (r *FCIFRepositoryImpl) FindAll() ([]models.FCIF, error) {
	var fcifs []models.FCIF
	err := r.db.Preload("Acknowledgements").Order("created_at DESC").Find(&fcifs).Error
	return fcifs, err
}

func (r *FCIFRepositoryImpl) FindByID(id string) (*models.FCIF, error) {
	var fcif models.FCIF
	err := r.db.Preload("Acknowledgements").First(&fcif, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFCIFNotFound
		}
		return nil, err
	}
	return &fcif, nil
}

func (r *FCIFRepositoryImpl) Acknowledge(fcifID, userID string) error {
	if _, err := r.FindByID(fcifID); err != nil {
		return err
	}

	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.FCIFAcknowledgement{
		FCIFID: fcifID,
		UserID: userID,
	}).Error
}

func (r *FCIFRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.FCIF{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFCIFNotFound
	}
	return nil
}
