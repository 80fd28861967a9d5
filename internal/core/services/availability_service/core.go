package availability_service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
	"github.com/suchimauz/engineer-availability-resolver/internal/utils"
)

type AvailabilityService struct {
	storePort out.StorePort
	cachePort out.CachePort
	logger    out.LoggerPort
	cfg       *config.Config
}

func NewAvailabilityService(
	storePort out.StorePort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *AvailabilityService {
	return &AvailabilityService{
		storePort: storePort,
		cachePort: cachePort,
		logger:    logger.WithModule("AvailabilityService"),
		cfg:       cfg,
	}
}

func (s *AvailabilityService) GetAvailability(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.DayAvailability, error) {
	s.logger.Info("availability.resolve.started", out.LogFields{
		"engineerId": engineerID,
		"startDate":  startDate,
		"endDate":    endDate,
	})

	// Границы приводятся к началу дня до любой работы с кэшем,
	// иначе запрос со временем в дате промахивается мимо своей же записи
	startDay := utils.StartCurrentDay(startDate)
	endDay := utils.StartCurrentDay(endDate)

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if days, exists := s.cachePort.GetDays(ctx, engineerID, startDay, endDay); exists {
			s.logger.Debug("availability.resolve.cache.hit", out.LogFields{
				"engineerId": engineerID,
				"daysCount":  len(days),
			})
			return days, nil
		}

		s.logger.Debug("availability.resolve.cache.miss", out.LogFields{
			"engineerId": engineerID,
		})
	}

	rules, err := s.storePort.GetRules(ctx, engineerID)
	if err != nil {
		s.logger.Error("availability.resolve.rules.fetch_failed", out.LogFields{
			"engineerId": engineerID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("availability.resolve.rules.fetch_failed: %w", err)
	}

	// Сессии запрашиваем за весь диапазон, конец диапазона не включается
	sessions, err := s.storePort.GetSessions(ctx, engineerID, startDay, utils.StartNextDay(endDay))
	if err != nil {
		s.logger.Error("availability.resolve.sessions.fetch_failed", out.LogFields{
			"engineerId": engineerID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("availability.resolve.sessions.fetch_failed: %w", err)
	}

	days := ResolveAvailability(rules, sessions, startDay, endDay)

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreDays(ctx, engineerID, startDay, endDay, days)
	}

	return days, nil
}

func (s *AvailabilityService) GetBatchAvailability(ctx context.Context, engineerIDs []string, startDate, endDate time.Time) (map[string][]domain.DayAvailability, error) {
	// Пустой фильтр - берем всех инженеров, у которых есть правила
	if len(engineerIDs) == 0 {
		allRules, err := s.storePort.GetAllRules(ctx)
		if err != nil {
			return nil, fmt.Errorf("availability.resolve.all_rules.fetch_failed: %w", err)
		}
		for engineerID := range allRules {
			engineerIDs = append(engineerIDs, engineerID)
		}
	}

	result := make(map[string][]domain.DayAvailability)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(engineerIDs))

	for _, id := range engineerIDs {
		wg.Add(1)
		go func(engineerID string) {
			defer wg.Done()

			days, err := s.GetAvailability(ctx, engineerID, startDate, endDate)
			if err != nil {
				errCh <- err
				return
			}

			mu.Lock()
			result[engineerID] = days
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	close(errCh)

	// Проверяем ошибки
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *AvailabilityService) GetSummary(ctx context.Context, engineerIDs []string, date time.Time, startTime, endTime json_types.Time) (domain.AvailabilitySummary, error) {
	perEngineerDays, err := s.GetBatchAvailability(ctx, engineerIDs, date, date)
	if err != nil {
		return domain.AvailabilitySummary{}, err
	}

	return Summarize(perEngineerDays, date, startTime, endTime), nil
}

func (s *AvailabilityService) CreateRules(ctx context.Context, rules []domain.AvailabilityRule) ([]domain.AvailabilityRule, error) {
	now := time.Now().In(s.cfg.App.Location)

	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.NewString()
		}
		rules[i].UpdatedAt = json_types.NewDateTime(now)
	}

	if err := s.storePort.CreateRules(ctx, rules); err != nil {
		s.logger.Error("rules.create.failed", out.LogFields{
			"rulesCount": len(rules),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("rules.create.failed: %w", err)
	}

	s.logger.Info("rules.create.succeeded", out.LogFields{
		"rulesCount": len(rules),
	})

	for _, rule := range rules {
		s.InvalidateEngineerCache(ctx, rule.EngineerID)
	}

	return rules, nil
}

func (s *AvailabilityService) DeleteRule(ctx context.Context, ruleID string) error {
	engineerID, err := s.storePort.DeleteRule(ctx, ruleID)
	if err != nil {
		s.logger.Error("rules.delete.failed", out.LogFields{
			"ruleId": ruleID,
			"error":  err.Error(),
		})
		return fmt.Errorf("rules.delete.failed: %w", err)
	}

	// Хранилище сообщает инженера удаленного правила,
	// сбрасываем только его кэш
	s.InvalidateEngineerCache(ctx, engineerID)

	return nil
}

func (s *AvailabilityService) InvalidateEngineerCache(ctx context.Context, engineerID string) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}

	s.cachePort.InvalidateEngineer(ctx, engineerID)
}

func (s *AvailabilityService) InvalidateAllCache(ctx context.Context) {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return
	}

	s.cachePort.InvalidateAll(ctx)
}
