package models

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest изменения профиля; nil поля не меняются
type UpdateProfileRequest struct {
	Email    *string
	FullName *string
	Role     *string
}

// CheckEmailResponse результат проверки email
type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
