package dto

import "ats_backend/internal/models"

type RegisterRequest struct {
	Username    string      `json:"username" validate:"required,min=3,max=150"`
	Password    string      `json:"password" validate:"required,min=8"`
	Password2   string      `json:"password2" validate:"required,eqfield=Password"`
	Email       string      `json:"email" validate:"required,email"`
	FirstName   string      `json:"first_name" validate:"required"`
	LastName    string      `json:"last_name" validate:"required"`
	Role        models.Role `json:"role" validate:"required,oneof=employer candidate admin"`
	CompanyName string      `json:"company_name"`
	PhoneNumber string      `json:"phone_number"`
	Address     string      `json:"address"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the token pair plus identity summary returned on
// login. Role is null when the user has no profile row.
type LoginResponse struct {
	Refresh  string       `json:"refresh"`
	Access   string       `json:"access"`
	UserID   string       `json:"user_id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Role     *models.Role `json:"role"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type RefreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RegisterResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewRegisterResponse(user *models.User) *RegisterResponse {
	return &RegisterResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
