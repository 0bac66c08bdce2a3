package update_profile

import "github.com/m04kA/SMC-FleetService/internal/service/profiles/models"

// UpdateProfileRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateProfileRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest() *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		Email:    r.Email,
		FullName: r.FullName,
		Role:     r.Role,
	}
}
