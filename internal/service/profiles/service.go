package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	profileRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-FleetService/internal/service/profiles/models"
)

// Service чтение и редактирование профилей пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{profileRepo: profileRepo, logger: logger}
}

// List возвращает все профили, отсортированные по имени
func (s *Service) List(ctx context.Context) ([]*models.ProfileResponse, error) {
	list, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ProfileResponse, 0, len(list))
	for _, p := range list {
		result = append(result, models.FromDomainProfile(p))
	}

	s.logger.Info("List: fetched %d profiles", len(result))
	return result, nil
}

// Get возвращает профиль по ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.ProfileResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("Get: profile id=%s not found", id)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("Get: repository error for profile id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(p), nil
}

// Update меняет email, имя и роль. Пустое имя очищает поле.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: profile id=%s", id)

	upd, err := toUpdate(req)
	if err != nil {
		s.logger.Warn("Update: rejected for profile id=%s: %v", id, err)
		return nil, err
	}
	if upd.IsEmpty() {
		return s.Get(ctx, id)
	}

	p, err := s.profileRepo.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, profileRepo.ErrProfileNotFound):
			s.logger.Warn("Update: profile id=%s not found", id)
			return nil, ErrProfileNotFound
		case errors.Is(err, profileRepo.ErrEmailTaken):
			s.logger.Warn("Update: email already used, profile id=%s", id)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Update: repository error for profile id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: profile id=%s updated", id)
	return models.FromDomainProfile(p), nil
}

// CheckEmail сообщает, есть ли профиль с таким email
func (s *Service) CheckEmail(ctx context.Context, email string) (*models.CheckEmailResponse, error) {
	normalized, ok := domain.NormalizeEmail(email)
	if !ok {
		return nil, fmt.Errorf("%w: CheckEmail - malformed email", ErrInvalidInput)
	}

	exists, err := s.profileRepo.EmailExists(ctx, normalized)
	if err != nil {
		s.logger.Error("CheckEmail: repository error: %v", err)
		return nil, fmt.Errorf("%w: CheckEmail - repository error: %v", ErrInternal, err)
	}

	return &models.CheckEmailResponse{Exists: exists}, nil
}

func toUpdate(req *models.UpdateProfileRequest) (domain.ProfileUpdate, error) {
	var upd domain.ProfileUpdate

	if req.Email != nil {
		email, ok := domain.NormalizeEmail(*req.Email)
		if !ok {
			return upd, fmt.Errorf("%w: malformed email", ErrInvalidInput)
		}
		upd.Email = &email
	}
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		upd.FullName = &name
	}
	if req.Role != nil {
		role := domain.UserRole(strings.TrimSpace(*req.Role))
		if !role.IsValid() {
			return upd, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
		upd.Role = &role
	}

	return upd, nil
}
