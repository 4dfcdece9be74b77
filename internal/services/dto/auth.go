package dto

import (
	"time"

	"gastropass_backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Estado   string `json:"estado,omitempty"`
	Location string `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the access token plus the session user.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the user record without the password hash.
type UserDTO struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	IsAdmin        bool                   `json:"isAdmin"`
	CreatedAt      time.Time              `json:"createdAt"`
	Estado         string                 `json:"estado,omitempty"`
	Location       string                 `json:"location,omitempty"`
	Subscription   *models.Subscription   `json:"subscription,omitempty"`
	PaymentPending *models.PaymentPending `json:"paymentPending,omitempty"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		IsAdmin:        user.IsAdmin,
		CreatedAt:      user.CreatedAt,
		Estado:         user.Estado,
		Location:       user.Location,
		Subscription:   user.Subscription,
		PaymentPending: user.PaymentPending,
	}
}
