package models

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// LoginRequest учетные данные для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse токен сессии и публичные данные пользователя
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ProfileRequest изменение собственного профиля
type ProfileRequest struct {
	Name   string  `json:"name" validate:"required,notblank,max=120"`
	Email  string  `json:"email" validate:"required,email"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// UserResponse пользователь без секрета
type UserResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	RegistrationNumber *string `json:"registrationNumber,omitempty"`
	OrganizationName   *string `json:"organizationName,omitempty"`
	Avatar             *string `json:"avatar,omitempty"`
}

// FromDomainUser конвертирует пользователя, хеш пароля не попадает в ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               string(u.Role),
		RegistrationNumber: u.RegistrationNumber,
		OrganizationName:   u.OrganizationName,
		Avatar:             u.Avatar,
	}
}
