package models

import "time"

// Qualification is a crew rating held by a user, e.g. type "Pilot" with
// subtype "InstructorPilot".
type Qualification struct {
	BaseModel
	UserID     string    `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"not null"`
	SubType    string
	AssignedOn time.Time `gorm:"autoCreateTime"`
	AssignedBy string    `gorm:"type:uuid"`
}
