package services

import (
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
	"github.com/sq23rd/roster-backend/internal/services/dto"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

type QualificationService interface {
	AddQualification(userID string, req *dto.AddQualificationRequest, assignedBy string) (*dto.QualificationView, error)
	ListQualifications(userID string) ([]*dto.QualificationView, error)
	RemoveQualification(userID, qualificationID string) error
}

type QualificationServiceImpl struct {
	qualificationRepo repositories.QualificationRepository
	userRepo          repositories.UserRepository
}

func NewQualificationService(
	qualificationRepo repositories.QualificationRepository,
	userRepo repositories.UserRepository,
) QualificationService {
	return &QualificationServiceImpl{
		qualificationRepo: qualificationRepo,
		userRepo:          userRepo,
	}
}

func (s *QualificationServiceImpl) AddQualification(userID string, req *dto.AddQualificationRequest, assignedBy string) (*dto.QualificationView, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	qualification := &models.Qualification{
		UserID:     userID,
		Type:       req.Type,
		SubType:    req.SubType,
		AssignedBy: assignedBy,
	}

	if err := s.qualificationRepo.Create(qualification); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQualificationView(qualification), nil
}

func (s *QualificationServiceImpl) ListQualifications(userID string) ([]*dto.QualificationView, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	quals, err := s.qualificationRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQualificationViews(quals), nil
}

func (s *QualificationServiceImpl) RemoveQualification(userID, qualificationID string) error {
	if err := s.qualificationRepo.Delete(userID, qualificationID); err != nil {
		if apperrors.Is(err, repositories.ErrQualificationNotFound) {
			return apperrors.ErrQualificationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
