package out

import (
	"context"
	"errors"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
)

var ErrRuleNotFound = errors.New("rule not found")

type StorePort interface {
	// Методы для работы с правилами доступности
	GetRules(ctx context.Context, engineerID string) ([]domain.AvailabilityRule, error)
	GetAllRules(ctx context.Context) (map[string][]domain.AvailabilityRule, error)
	CreateRules(ctx context.Context, rules []domain.AvailabilityRule) error
	// DeleteRule возвращает инженера удаленного правила
	DeleteRule(ctx context.Context, ruleID string) (string, error)

	// Методы для работы с сессиями
	GetSessions(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.Session, error)
}
