package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sq23rd/roster-backend/internal/models"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	FindAll() ([]models.Schedule, error)
	FindByID(id string) (*models.Schedule, error)
	Update(id string, patch map[string]interface{}) error
	Delete(id string) error
}

type ScheduleRepositoryImpl struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &ScheduleRepositoryImpl{db: db}
}

func (r *ScheduleRepositoryImpl) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *ScheduleRepositoryImpl) FindAll() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Order("date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepositoryImpl) FindByID(id string) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *ScheduleRepositoryImpl) Update(id string, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}
	patch["updated_at"] = time.Now()

	result := r.db.Model(&models.Schedule{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Schedule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
