package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/repositories"
	"github.com/sq23rd/roster-backend/internal/services/dto"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

type ScheduleService interface {
	CreateSchedule(req *dto.CreateScheduleRequest, createdBy string) (*dto.ScheduleView, error)
	ListSchedules() ([]*dto.ScheduleView, error)
	GetSchedule(id string) (*dto.ScheduleView, error)
	UpdateSchedule(id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleView, error)
	DeleteSchedule(id string) error
}

type ScheduleServiceImpl struct {
	scheduleRepo repositories.ScheduleRepository
}

func NewScheduleService(scheduleRepo repositories.ScheduleRepository) ScheduleService {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

func crewJSON(members []string) (datatypes.JSON, error) {
	if members == nil {
		members = []string{}
	}
	raw, err := json.Marshal(members)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *ScheduleServiceImpl) CreateSchedule(req *dto.CreateScheduleRequest, createdBy string) (*dto.ScheduleView, error) {
	missionType, err := resolveMissionType(req.MissionType)
	if err != nil {
		return nil, err
	}

	crew, err := crewJSON(req.CrewMembers)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	schedule := &models.Schedule{
		FlightNumber: req.FlightNumber,
		AircraftTail: req.AircraftTail,
		MissionType:  missionType,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		CrewMembers:  crew,
		Notes:        req.Notes,
		CreatedBy:    createdBy,
	}

	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewScheduleView(schedule), nil
}

func resolveMissionType(raw string) (models.MissionType, error) {
	if raw == "" {
		return models.MissionTypeTraining, nil
	}
	mt := models.MissionType(raw)
	switch mt {
	case models.MissionTypeTraining, models.MissionTypeOperational, models.MissionTypeCheckRide:
		return mt, nil
	}
	return "", apperrors.NewBadRequestError("Invalid mission type.")
}

func (s *ScheduleServiceImpl) ListSchedules() ([]*dto.ScheduleView, error) {
	schedules, err := s.scheduleRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewScheduleViews(schedules), nil
}

func (s *ScheduleServiceImpl) GetSchedule(id string) (*dto.ScheduleView, error) {
	schedule, err := s.scheduleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewScheduleView(schedule), nil
}

func (s *ScheduleServiceImpl) UpdateSchedule(id string, req *dto.UpdateScheduleRequest) (*dto.ScheduleView, error) {
	patch := map[string]interface{}{}
	if req.FlightNumber != nil {
		patch["flight_number"] = *req.FlightNumber
	}
	if req.AircraftTail != nil {
		patch["aircraft_tail"] = *req.AircraftTail
	}
	if req.MissionType != nil {
		mt, err := resolveMissionType(*req.MissionType)
		if err != nil {
			return nil, err
		}
		patch["mission_type"] = mt
	}
	if req.Date != nil {
		patch["date"] = *req.Date
	}
	if req.StartTime != nil {
		patch["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		patch["end_time"] = *req.EndTime
	}
	if req.CrewMembers != nil {
		crew, err := crewJSON(*req.CrewMembers)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		patch["crew_members"] = crew
	}
	if req.Notes != nil {
		patch["notes"] = *req.Notes
	}

	if len(patch) == 0 {
		return nil, apperrors.NewBadRequestError("No fields to update.")
	}

	if err := s.scheduleRepo.Update(id, patch); err != nil {
		if apperrors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetSchedule(id)
}

func (s *ScheduleServiceImpl) DeleteSchedule(id string) error {
	if err := s.scheduleRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
