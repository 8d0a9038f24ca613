package services

import (
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
	"github.com/sq23rd/roster-backend/internal/services/dto"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

type FCIFService interface {
	CreateFCIF(req *dto.CreateFCIFRequest) (*dto.FCIFView, error)
	ListFCIFs() ([]*dto.FCIFView, error)
	AcknowledgeFCIF(fcifID, userID string) error
	DeleteFCIF(id string) error
}

type FCIFServiceImpl struct {
	fcifRepo repositories.FCIFRepository
}

func NewFCIFService(fcifRepo repositories.FCIFRepository) FCIFService {
	return &FCIFServiceImpl{fcifRepo: fcifRepo}
}

func (s *FCIFServiceImpl) CreateFCIF(req *dto.CreateFCIFRequest) (*dto.FCIFView, error) {
	fcif := &models.FCIF{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.fcifRepo.Create(fcif); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFCIFView(fcif), nil
}

func (s *FCIFServiceImpl) ListFCIFs() ([]*dto.FCIFView, error) {
	fcifs, err := s.fcifRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFCIFViews(fcifs), nil
}

// AcknowledgeFCIF records that the user has read the bulletin. Repeated
// acknowledgements are accepted and keep the original timestamp.
func (s *FCIFServiceImpl) AcknowledgeFCIF(fcifID, userID string) error {
	if err := s.fcifRepo.Acknowledge(fcifID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrFCIFNotFound) {
			return apperrors.ErrFCIFNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FCIFServiceImpl) DeleteFCIF(id string) error {
	if err := s.fcifRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrFCIFNotFound) {
			return apperrors.ErrFCIFNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
