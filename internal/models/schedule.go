package models

import "gorm.io/datatypes"

type Schedule struct {
	BaseModel
	FlightNumber string      `gorm:"not null;index"`
	AircraftTail string
	MissionType  MissionType `gorm:"type:varchar(20);default:'Training'"`
	Date         string      `gorm:"not null;index"` // "2025-12-25"
	StartTime    string      `gorm:"not null"`       // "09:00"
	EndTime      string      `gorm:"not null"`       // "12:00"
	CrewMembers  datatypes.JSON
	Notes        string
	CreatedBy    string `gorm:"type:uuid"`
}
