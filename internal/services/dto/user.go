package dto

import (
	"time"

	"github.com/sq23rd/roster-backend/internal/models"
)

// UserView is the outward shape of a user record. The password hash and the
// reset-token fields never leave the service layer.
type UserView struct {
	ID            string            `json:"id"`
	PersonalEmail string            `json:"personalEmail"`
	LoginEmail    string            `json:"email"`
	Name          string            `json:"name"`
	Role          models.UserRole   `json:"role"`
	Status        models.UserStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

func NewUserView(u *models.User) *UserView {
	return &UserView{
		ID:            u.ID,
		PersonalEmail: u.PersonalEmail,
		LoginEmail:    u.LoginEmail,
		Name:          u.Name,
		Role:          u.Role,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
	}
}

func NewUserViews(users []models.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for i := range users {
		views = append(views, NewUserView(&users[i]))
	}
	return views
}

// UserPage is one page of the paginated user listing.
type UserPage struct {
	Users []*UserView `json:"users"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total int64       `json:"total"`
}
