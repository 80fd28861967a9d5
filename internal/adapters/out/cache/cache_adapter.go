package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
)

type daysCacheEntry struct {
	Days      []domain.DayAvailability
	StartDate time.Time
	EndDate   time.Time
}

type CacheAdapter struct {
	daysCache *lru.Cache[string, *daysCacheEntry]
	mu        sync.RWMutex
	logger    out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	lruDaysCache, err := lru.New[string, *daysCacheEntry](cfg.Cache.DaysSize)
	if err != nil {
		logger.Error("cache.days.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.DaysSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		daysCache: lruDaysCache,
		logger:    logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetDays(ctx context.Context, engineerID string, startDate, endDate time.Time) ([]domain.DayAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.daysCache.Get(engineerID)
	if !exists {
		c.logger.Debug("cache.days.get.miss", out.LogFields{
			"engineerId": engineerID,
		})
		return nil, false
	}

	// Кэш полезен только если покрывает весь запрошенный диапазон
	if startDate.Before(entry.StartDate) || endDate.After(entry.EndDate) {
		c.logger.Debug("cache.days.get.date_range_mismatch", out.LogFields{
			"engineerId":     engineerID,
			"requestedStart": startDate,
			"requestedEnd":   endDate,
			"cachedStart":    entry.StartDate,
			"cachedEnd":      entry.EndDate,
		})
		return nil, false
	}

	// Отдаем только запрошенные дни
	days := make([]domain.DayAvailability, 0)
	for _, day := range entry.Days {
		if day.Date.Date.Before(startDate) || day.Date.Date.After(endDate) {
			continue
		}
		days = append(days, day)
	}

	c.logger.Debug("cache.days.get.hit", out.LogFields{
		"engineerId": engineerID,
		"daysCount":  len(days),
	})
	return days, true
}

func (c *CacheAdapter) StoreDays(ctx context.Context, engineerID string, startDate, endDate time.Time, days []domain.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.days.store", out.LogFields{
		"engineerId": engineerID,
		"daysCount":  len(days),
	})

	if len(days) == 0 {
		return
	}

	newEntry := &daysCacheEntry{
		Days:      days,
		StartDate: startDate,
		EndDate:   endDate,
	}

	c.daysCache.Add(engineerID, newEntry)
}

func (c *CacheAdapter) InvalidateEngineer(ctx context.Context, engineerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.daysCache.Remove(engineerID)
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.daysCache.Purge()
}
