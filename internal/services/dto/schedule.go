package dto

import (
	"encoding/json"
	"time"

	"github.com/sq23rd/roster-backend/internal/models"
)

type CreateScheduleRequest struct {
	FlightNumber string   `json:"flightNumber" binding:"required" validate:"required"`
	AircraftTail string   `json:"aircraftTail"`
	MissionType  string   `json:"missionType"`
	Date         string   `json:"date" binding:"required" validate:"required"`
	StartTime    string   `json:"startTime" binding:"required" validate:"required"`
	EndTime      string   `json:"endTime" binding:"required" validate:"required"`
	CrewMembers  []string `json:"crewMembers"`
	Notes        string   `json:"notes"`
}

// UpdateScheduleRequest patches only the fields that are present.
type UpdateScheduleRequest struct {
	FlightNumber *string   `json:"flightNumber"`
	AircraftTail *string   `json:"aircraftTail"`
	MissionType  *string   `json:"missionType"`
	Date         *string   `json:"date"`
	StartTime    *string   `json:"startTime"`
	EndTime      *string   `json:"endTime"`
	CrewMembers  *[]string `json:"crewMembers"`
	Notes        *string   `json:"notes"`
}

// ScheduleView is the outward shape of a schedule entry.
type ScheduleView struct {
	ID           string   `json:"id"`
	FlightNumber string   `json:"flightNumber"`
	AircraftTail string   `json:"aircraftTail"`
	MissionType  string   `json:"missionType"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	CrewMembers  []string `json:"crewMembers"`
	Notes        string   `json:"notes"`
	CreatedBy    string   `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewScheduleView(s *models.Schedule) *ScheduleView {
	var crew []string
	if len(s.CrewMembers) > 0 {
		_ = json.Unmarshal(s.CrewMembers, &crew)
	}
	return &ScheduleView{
		ID:           s.ID,
		FlightNumber: s.FlightNumber,
		AircraftTail: s.AircraftTail,
		MissionType:  string(s.MissionType),
		Date:         s.Date,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		CrewMembers:  crew,
		Notes:        s.Notes,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

func NewScheduleViews(schedules []models.Schedule) []*ScheduleView {
	views := make([]*ScheduleView, 0, len(schedules))
	for i := range schedules {
		views = append(views, NewScheduleView(&schedules[i]))
	}
	return views
}
