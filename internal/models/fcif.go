package models

import "time"

// FCIF is a Flight Crew Information File: a bulletin every crew member is
// expected to read and acknowledge.
type FCIF struct {
	BaseModel
	Title   string `gorm:"not null"`
	Content string `gorm:"not null"`

	Acknowledgements []FCIFAcknowledgement `gorm:"foreignKey:FCIFID;constraint:OnDelete:CASCADE"`
}

type FCIFAcknowledgement struct {
	ID             uint      `gorm:"primaryKey"`
	FCIFID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_fcif_user"`
	UserID         string    `gorm:"type:uuid;not null;uniqueIndex:idx_fcif_user"`
	AcknowledgedAt time.Time `gorm:"autoCreateTime"`
}
