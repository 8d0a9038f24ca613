package models

type UserStatus string
type UserRole string
type MissionType string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusApproved UserStatus = "approved"
	UserStatusDenied   UserStatus = "denied"

	UserRoleOwner      UserRole = "owner"
	UserRoleAdmin      UserRole = "admin"
	UserRoleManager    UserRole = "manager"
	UserRoleUser       UserRole = "user"
	UserRolePilot      UserRole = "pilot"
	UserRoleLoadmaster UserRole = "loadmaster"

	MissionTypeTraining    MissionType = "Training"
	MissionTypeOperational MissionType = "Operational"
	MissionTypeCheckRide   MissionType = "CheckRide"
)

// AllRoles is the closed set of roles a caller may request or be assigned.
var AllRoles = []UserRole{
	UserRoleOwner,
	UserRoleAdmin,
	UserRoleManager,
	UserRoleUser,
	UserRolePilot,
	UserRoleLoadmaster,
}

// ValidRole reports whether role belongs to the known role set.
func ValidRole(role UserRole) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
