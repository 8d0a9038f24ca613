package services

import (
	"fmt"
	"strings"

	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
	"github.com/sq23rd/roster-backend/internal/services/dto"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

type UserService interface {
	ListUsers() ([]*dto.UserView, error)
	ListUsersPage(page, limit int) (*dto.UserPage, error)
	GetUser(id string) (*dto.UserView, error)
	ApproveUser(personalEmail string) (*dto.UserView, error)
	DenyUser(personalEmail string) (*dto.UserView, error)
	AssignAdmin(loginEmail string) (*dto.UserView, error)
	DeleteUser(id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListUsers() ([]*dto.UserView, error) {
	users, err := s.userRepo.FindAll(-1, 0)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserViews(users), nil
}

func (s *UserServiceImpl) ListUsersPage(page, limit int) (*dto.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users, err := s.userRepo.FindAll(limit, (page-1)*limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserPage{
		Users: dto.NewUserViews(users),
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *UserServiceImpl) GetUser(id string) (*dto.UserView, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserView(user), nil
}

func (s *UserServiceImpl) ApproveUser(personalEmail string) (*dto.UserView, error) {
	return s.setStatus(personalEmail, models.UserStatusApproved)
}

func (s *UserServiceImpl) DenyUser(personalEmail string) (*dto.UserView, error) {
	return s.setStatus(personalEmail, models.UserStatusDenied)
}

func (s *UserServiceImpl) setStatus(personalEmail string, status models.UserStatus) (*dto.UserView, error) {
	user, err := s.userRepo.FindByPersonalEmail(strings.TrimSpace(personalEmail))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Status == status {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("User is already %s.", status))
	}

	if err := s.userRepo.UpdateStatus(user.ID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Status = status
	return dto.NewUserView(user), nil
}

func (s *UserServiceImpl) AssignAdmin(loginEmail string) (*dto.UserView, error) {
	user, err := s.userRepo.FindByLoginEmail(strings.TrimSpace(loginEmail))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleAdmin {
		return nil, apperrors.NewBadRequestError("User is already an admin.")
	}
	if user.Role == models.UserRoleOwner {
		return nil, apperrors.NewBadRequestError("The owner role cannot be reassigned.")
	}

	if err := s.userRepo.UpdateRole(user.ID, models.UserRoleAdmin); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.Role = models.UserRoleAdmin
	return dto.NewUserView(user), nil
}

func (s *UserServiceImpl) DeleteUser(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
