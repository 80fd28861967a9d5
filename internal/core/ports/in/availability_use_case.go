package in

import (
	"context"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

type AvailabilityUseCase interface {
	// Разрешение доступности одного инженера за диапазон дат, включительно
	GetAvailability(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.DayAvailability, error)

	// Разрешение доступности нескольких инженеров
	// Пустой список инженеров - все инженеры из хранилища
	GetBatchAvailability(ctx context.Context, engineerIDs []string, startDate, endDate time.Time) (map[string][]domain.DayAvailability, error)

	// Сводный статус по каждому инженеру за окно времени одного дня
	GetSummary(ctx context.Context, engineerIDs []string, date time.Time, startTime, endTime json_types.Time) (domain.AvailabilitySummary, error)

	// Запись правил, одиночная или пакетная
	CreateRules(ctx context.Context, rules []domain.AvailabilityRule) ([]domain.AvailabilityRule, error)
	DeleteRule(ctx context.Context, ruleID string) error

	// Инвалидация кэша при изменениях в хранилище
	InvalidateEngineerCache(ctx context.Context, engineerID string)
	InvalidateAllCache(ctx context.Context)
}
