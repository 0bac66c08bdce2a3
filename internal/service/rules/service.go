package rules

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/service/rules/models"
)

// Service справочник правил обслуживания
type Service struct {
	ruleRepo RuleRepository
	logger   Logger
}

func NewService(ruleRepo RuleRepository, logger Logger) *Service {
	return &Service{ruleRepo: ruleRepo, logger: logger}
}

// ListActive возвращает активные правила по имени
func (s *Service) ListActive(ctx context.Context) ([]*models.RuleResponse, error) {
	list, err := s.ruleRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.RuleResponse, 0, len(list))
	for _, r := range list {
		result = append(result, models.FromDomainRule(r))
	}

	s.logger.Info("ListActive: fetched %d rules", len(result))
	return result, nil
}
