package http

import (
	"fmt"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
	"github.com/suchimauz/engineer-availability-resolver/internal/utils"
)

// Запрос от чат-бота. Тип правила не указывается явно:
// наличие списка дней недели означает повторяющееся правило.
type ChatbotRuleRequest struct {
	EngineerID     string   `json:"engineer_id" binding:"required"`
	Status         string   `json:"status" binding:"required"`
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time" binding:"required"`
	EndTime        string   `json:"end_time" binding:"required"`
	DaysOfWeek     []string `json:"days_of_week"`
	EffectiveFrom  string   `json:"effective_from"`
	EffectiveUntil string   `json:"effective_until"`
}

func buildChatbotRule(req ChatbotRuleRequest, location *time.Location) (domain.AvailabilityRule, error) {
	rule := domain.AvailabilityRule{
		EngineerID: req.EngineerID,
		Status:     domain.AvailabilityStatus(req.Status),
		Source:     domain.RuleSourceChatbot,
	}

	if len(req.DaysOfWeek) > 0 {
		recurring, err := buildChatbotRecurring(req, location)
		if err != nil {
			return domain.AvailabilityRule{}, err
		}
		rule.Type = domain.RuleTypeRecurring
		rule.Recurring = recurring
	} else {
		oneTime, err := buildChatbotOneTime(req, location)
		if err != nil {
			return domain.AvailabilityRule{}, err
		}
		rule.Type = domain.RuleTypeOneTime
		rule.OneTime = oneTime
	}

	return rule, validateRule(rule)
}

func buildChatbotRecurring(req ChatbotRuleRequest, location *time.Location) (*domain.RecurringRule, error) {
	startTime, err := json_types.ParseTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	endTime, err := json_types.ParseTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	days := make([]domain.RuleWeekday, 0, len(req.DaysOfWeek))
	for _, day := range req.DaysOfWeek {
		days = append(days, domain.RuleWeekday(day))
	}

	recurring := &domain.RecurringRule{
		StartTime:      startTime,
		EndTime:        endTime,
		RecurrenceDays: days,
	}

	if req.EffectiveFrom != "" {
		effectiveFrom, err := utils.ParseDate(req.EffectiveFrom, location)
		if err != nil {
			return nil, fmt.Errorf("effective_from: %w", err)
		}
		recurring.EffectiveFrom = &json_types.Date{Date: effectiveFrom}
	}
	if req.EffectiveUntil != "" {
		effectiveUntil, err := utils.ParseDate(req.EffectiveUntil, location)
		if err != nil {
			return nil, fmt.Errorf("effective_until: %w", err)
		}
		recurring.EffectiveUntil = &json_types.Date{Date: effectiveUntil}
	}

	return recurring, nil
}

func buildChatbotOneTime(req ChatbotRuleRequest, location *time.Location) (*domain.OneTimeRule, error) {
	if req.Date == "" {
		return nil, fmt.Errorf("date is required for one-time rule")
	}

	date, err := utils.ParseDate(req.Date, location)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := json_types.ParseTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	endTime, err := json_types.ParseTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(),
		startTime.Time.Hour(), startTime.Time.Minute(), 0, 0, location)
	end := time.Date(date.Year(), date.Month(), date.Day(),
		endTime.Time.Hour(), endTime.Time.Minute(), 0, 0, location)

	// Ночной интервал: конец раньше начала - значит, конец на следующий день
	if req.EndTime < req.StartTime {
		end = end.AddDate(0, 0, 1)
	}

	return &domain.OneTimeRule{
		StartDateTime: json_types.NewDateTime(start),
		EndDateTime:   json_types.NewDateTime(end),
	}, nil
}
