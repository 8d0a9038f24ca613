package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sq23rd/roster-backend/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrNoPendingReset = errors.New("no matching pending reset")
)

type UserRepository interface {
	// Create inserts the user and atomically races for the owner claim.
	// When the claim is won the user comes back with role=owner,
	// status=approved regardless of what was passed in.
	Create(user *models.User) (ownerClaimed bool, err error)

	FindByID(id string) (*models.User, error)
	FindByPersonalEmail(email string) (*models.User, error)
	FindByLoginEmail(email string) (*models.User, error)
	FindAll(limit, offset int) ([]models.User, error)
	CountAll() (int64, error)

	UpdateStatus(userID string, status models.UserStatus) error
	UpdateRole(userID string, role models.UserRole) error
	Delete(userID string) error

	// SetResetToken stores the hash and expiry of a pending password reset,
	// replacing any prior pending reset for the account.
	SetResetToken(userID, tokenHash string, expiry time.Time) error

	// ConsumeResetToken swaps in the new password hash and clears the reset
	// fields in one conditional update. It succeeds for at most one caller
	// per issued token; everyone else gets ErrNoPendingReset.
	ConsumeResetToken(tokenHash, newPasswordHash string, now time.Time) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) (bool, error) {
	ownerClaimed := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserExists
			}
			return err
		}

		// ON CONFLICT DO NOTHING: exactly one insert ever lands, so the
		// first registration wins the owner claim even under concurrent
		// registrations. count() would race here.
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.OwnerClaim{
			ID:        models.OwnerClaimID,
			UserID:    user.ID,
			ClaimedAt: time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 1 {
			ownerClaimed = true
			err := tx.Model(user).Updates(map[string]interface{}{
				"role":   models.UserRoleOwner,
				"status": models.UserStatusApproved,
			}).Error
			if err != nil {
				return err
			}
			user.Role = models.UserRoleOwner
			user.Status = models.UserStatusApproved
		}
		return nil
	})

	return ownerClaimed, err
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Qualifications").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByPersonalEmail matches case-insensitively: reset requests should find
// the account however the user typed their address.
func (r *UserRepositoryImpl) FindByPersonalEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(personal_email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByLoginEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("login_email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at ASC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) UpdateStatus(userID string, status models.UserStatus) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateRole(userID string, role models.UserRole) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	result := r.db.Where("id = ?", userID).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetResetToken(userID, tokenHash string, expiry time.Time) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"reset_token":     tokenHash,
		"reset_token_exp": expiry,
		"updated_at":      time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ConsumeResetToken(tokenHash, newPasswordHash string, now time.Time) error {
	// Password swap and token clear happen in a single conditional UPDATE:
	// no window where a stale token sits next to the new password, and a
	// second concurrent completion matches zero rows.
	result := r.db.Model(&models.User{}).
		Where("reset_token = ? AND reset_token_exp IS NOT NULL AND reset_token_exp > ?", tokenHash, now).
		Updates(map[string]interface{}{
			"password_hash":   newPasswordHash,
			"reset_token":     "",
			"reset_token_exp": nil,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoPendingReset
	}
	return nil
}
