package dto

import (
	"time"

	"github.com/yigit/examdesk/internal/app/models"
)

// UserResponse is the public view of a user; it never carries the password hash
type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role" example:"student"`
	StreamID  *int64    `json:"stream_id"`
	CodeApoge *string   `json:"code_apoge"`
	CNE       *string   `json:"cne"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user to its public view
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role.String(),
		StreamID:  u.StreamID,
		CodeApoge: u.CodeApoge,
		CNE:       u.CNE,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserResponses maps a list of users
func NewUserResponses(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
