package models

import "time"

type User struct {
	BaseModel
	PersonalEmail string     `gorm:"uniqueIndex;not null"`
	LoginEmail    string     `gorm:"uniqueIndex;not null"`
	PasswordHash  string     `gorm:"not null"`
	Name          string     `gorm:"default:'New User'"`
	Role          UserRole   `gorm:"type:varchar(20);not null"`
	Status        UserStatus `gorm:"type:varchar(20);default:'pending'"`

	// Present only while a password reset is outstanding. ResetToken holds
	// a one-way hash of the emailed token, never the token itself.
	ResetToken    string
	ResetTokenExp *time.Time

	Qualifications []Qualification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// OwnerClaim is a reserved singleton row. Whoever inserts it first, inside the
// same transaction that inserts their user row, becomes the owner. Two racing
// first registrations therefore resolve to exactly one winner at the store
// level instead of a count-then-branch check.
type OwnerClaim struct {
	ID        int    `gorm:"primaryKey"`
	UserID    string `gorm:"not null"`
	ClaimedAt time.Time
}

const OwnerClaimID = 1
