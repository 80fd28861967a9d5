package out

import (
	"context"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
)

type CachePort interface {
	// Кэширование разрешенных дней доступности
	GetDays(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.DayAvailability, bool)
	StoreDays(ctx context.Context, engineerID string, startDate, endDate time.Time, days []domain.DayAvailability)
	InvalidateEngineer(ctx context.Context, engineerID string)
	InvalidateAll(ctx context.Context)
}
