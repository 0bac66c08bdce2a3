package alerts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Engine вычисляет алерты по текущему состоянию автомобилей.
// Не хранит состояния: одинаковые входные данные дают одинаковый результат.
type Engine struct{}

// NewEngine создает новый экземпляр движка алертов
func NewEngine() *Engine {
	return &Engine{}
}

// Compute возвращает объединение алертов по пробегу/времени и по документам.
// history содержит выполненные работы. Работа без rule_id относится к правилу,
// если это плановое обслуживание или осмотр и описание содержит имя правила.
func (e *Engine) Compute(now time.Time, vehicles []*domain.Vehicle, rules []*domain.MaintenanceRule, history []*domain.MaintenanceJob) []domain.Alert {
	byVehicle := make(map[uuid.UUID][]*domain.MaintenanceJob)
	for _, job := range history {
		if job.IsCompleted() {
			byVehicle[job.VehicleID] = append(byVehicle[job.VehicleID], job)
		}
	}

	alerts := make([]domain.Alert, 0)
	for _, v := range vehicles {
		for _, rule := range rules {
			if !rule.IsActive || !rule.AppliesTo(v.FuelType) {
				continue
			}
			if alert, ok := usageAlert(now, v, rule, byVehicle[v.ID]); ok {
				alerts = append(alerts, alert)
			}
		}
		alerts = append(alerts, documentAlerts(now, v)...)
	}

	return alerts
}

func usageAlert(now time.Time, v *domain.Vehicle, rule *domain.MaintenanceRule, history []*domain.MaintenanceJob) (domain.Alert, bool) {
	detail := &domain.UsageDetail{
		RuleID: rule.ID,
		Unit:   rule.IntervalUnit,
	}

	var current int
	switch rule.IntervalUnit {
	case domain.IntervalKm:
		current = v.Mileage
		if last := lastWithMileage(history, rule); last != nil {
			current = v.Mileage - *last.MileageAtService
			completed := last.CompletedAt()
			detail.LastServiceMileage = last.MileageAtService
			detail.LastServiceDate = &completed
		}
	case domain.IntervalDays:
		anchor := v.CreatedAt
		if last := lastCompleted(history, rule); last != nil {
			anchor = last.CompletedAt()
			detail.LastServiceDate = &anchor
			detail.LastServiceMileage = last.MileageAtService
		}
		current = int(now.Sub(anchor) / domain.Day)
	default:
		return domain.Alert{}, false
	}
	if current < 0 {
		current = 0
	}

	remaining := rule.IntervalValue - current
	priority, ok := usagePriority(remaining, rule.Warning())
	if !ok {
		return domain.Alert{}, false
	}

	description := rule.Description
	if description == "" {
		description = rule.Name
	}

	return domain.Alert{
		Kind:           domain.AlertUsage,
		VehicleID:      v.ID,
		Brand:          v.Brand,
		Model:          v.Model,
		LicensePlate:   v.LicensePlate,
		FuelType:       v.FuelType,
		RuleName:       rule.Name,
		Description:    description,
		Priority:       priority,
		CurrentValue:   current,
		ThresholdValue: rule.IntervalValue,
		Remaining:      remaining,
		Progress:       progress(current, rule.IntervalValue),
		Usage:          detail,
	}, true
}

// usagePriority раскладывает остаток до обслуживания по полосам шириной warning:
// <=0 urgent, <=W high, <=2W normal, <=3W low, дальше алерта нет
func usagePriority(remaining, warning int) (domain.Priority, bool) {
	switch {
	case remaining <= 0:
		return domain.PriorityUrgent, true
	case remaining <= warning:
		return domain.PriorityHigh, true
	case remaining <= 2*warning:
		return domain.PriorityNormal, true
	case remaining <= 3*warning:
		return domain.PriorityLow, true
	}
	return "", false
}

// calendarPriority: <0 urgent, <=30 high, <=90 normal, дальше алерта нет
func calendarPriority(daysUntil int) (domain.Priority, bool) {
	switch {
	case daysUntil < 0:
		return domain.PriorityUrgent, true
	case daysUntil <= domain.CalendarHighDays:
		return domain.PriorityHigh, true
	case daysUntil <= domain.CalendarWindowDays:
		return domain.PriorityNormal, true
	}
	return "", false
}

func documentAlerts(now time.Time, v *domain.Vehicle) []domain.Alert {
	var alerts []domain.Alert

	if v.InsuranceExpiryDate != nil {
		provider := "N/A"
		if v.InsuranceProvider != nil && *v.InsuranceProvider != "" {
			provider = *v.InsuranceProvider
		}
		due := *v.InsuranceExpiryDate
		days := daysUntil(now, due)

		var description string
		if days < 0 {
			description = fmt.Sprintf("Assurance expirée depuis %d jours (%s)", -days, provider)
		} else {
			description = fmt.Sprintf("Assurance expire dans %d jours (%s)", days, provider)
		}

		if alert, ok := calendarAlert(v, domain.DocumentInsurance, domain.InsuranceRuleName, description, due, days); ok {
			alerts = append(alerts, alert)
		}
	}

	if v.LastTechnicalInspection != nil {
		due := v.LastTechnicalInspection.AddDate(domain.InspectionValidityYears, 0, 0)
		days := daysUntil(now, due)

		var description string
		if days < 0 {
			description = fmt.Sprintf("Contrôle technique expiré depuis %d jours", -days)
		} else {
			description = fmt.Sprintf("Contrôle technique expire dans %d jours", days)
		}

		if alert, ok := calendarAlert(v, domain.DocumentInspection, domain.InspectionRuleName, description, due, days); ok {
			alerts = append(alerts, alert)
		}
	}

	return alerts
}

func calendarAlert(v *domain.Vehicle, doc domain.DocumentKind, name, description string, due time.Time, days int) (domain.Alert, bool) {
	priority, ok := calendarPriority(days)
	if !ok {
		return domain.Alert{}, false
	}

	current := domain.CalendarWindowDays - days
	if current < 0 {
		current = 0
	}

	return domain.Alert{
		Kind:           domain.AlertCalendar,
		VehicleID:      v.ID,
		Brand:          v.Brand,
		Model:          v.Model,
		LicensePlate:   v.LicensePlate,
		FuelType:       v.FuelType,
		RuleName:       name,
		Description:    description,
		Priority:       priority,
		CurrentValue:   current,
		ThresholdValue: domain.CalendarWindowDays,
		Remaining:      days,
		Progress:       progress(current, domain.CalendarWindowDays),
		Calendar: &domain.CalendarDetail{
			Document:     doc,
			DueDate:      due,
			DaysUntilDue: days,
		},
	}, true
}

// daysUntil округляет вверх до целых суток, как ceil((due - now) / 24h)
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(float64(due.Sub(now)) / float64(domain.Day)))
}

func progress(current, threshold int) float64 {
	if threshold <= 0 {
		return 1
	}
	p := float64(current) / float64(threshold)
	return math.Max(0, math.Min(1, p))
}

// servesRule сопоставляет выполненную работу с правилом
func servesRule(job *domain.MaintenanceJob, rule *domain.MaintenanceRule) bool {
	if job.RuleID != nil {
		return *job.RuleID == rule.ID
	}
	if job.Type != domain.MaintenanceRoutine && job.Type != domain.MaintenanceInspection {
		return false
	}
	return rule.Name != "" && strings.Contains(strings.ToLower(job.Description), strings.ToLower(rule.Name))
}

func lastCompleted(history []*domain.MaintenanceJob, rule *domain.MaintenanceRule) *domain.MaintenanceJob {
	var last *domain.MaintenanceJob
	for _, job := range history {
		if !servesRule(job, rule) {
			continue
		}
		if last == nil || job.CompletedAt().After(last.CompletedAt()) {
			last = job
		}
	}
	return last
}

func lastWithMileage(history []*domain.MaintenanceJob, rule *domain.MaintenanceRule) *domain.MaintenanceJob {
	var last *domain.MaintenanceJob
	for _, job := range history {
		if !servesRule(job, rule) || job.MileageAtService == nil {
			continue
		}
		if last == nil || job.CompletedAt().After(last.CompletedAt()) {
			last = job
		}
	}
	return last
}
