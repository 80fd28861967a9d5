package sheets

import (
	"fmt"
	"strings"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
	"github.com/suchimauz/engineer-availability-resolver/internal/utils"
)

// Колонки листа правил:
// id | engineer_id | status | rule_type | start_datetime | end_datetime |
// start_time | end_time | recurrence_days | effective_from | effective_until |
// source | updated_at
const (
	ruleColID = iota
	ruleColEngineerID
	ruleColStatus
	ruleColType
	ruleColStartDateTime
	ruleColEndDateTime
	ruleColStartTime
	ruleColEndTime
	ruleColRecurrenceDays
	ruleColEffectiveFrom
	ruleColEffectiveUntil
	ruleColSource
	ruleColUpdatedAt
)

// Колонки листа сессий: id | engineer_id | start | end | title
const (
	sessionColID = iota
	sessionColEngineerID
	sessionColStart
	sessionColEnd
	sessionColTitle
)

func cellString(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}

	value, ok := row[index].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func (a *SheetsAdapter) parseRuleRow(row []interface{}) (domain.AvailabilityRule, error) {
	rule := domain.AvailabilityRule{
		ID:         cellString(row, ruleColID),
		EngineerID: cellString(row, ruleColEngineerID),
		Status:     domain.AvailabilityStatus(cellString(row, ruleColStatus)),
		Type:       domain.RuleType(cellString(row, ruleColType)),
		Source:     domain.RuleSource(cellString(row, ruleColSource)),
	}

	if rule.ID == "" || rule.EngineerID == "" {
		return domain.AvailabilityRule{}, fmt.Errorf("empty id or engineer_id")
	}
	if !rule.Status.Valid() {
		return domain.AvailabilityRule{}, fmt.Errorf("unknown status: %q", rule.Status)
	}

	updatedAt, err := utils.ParseDate(cellString(row, ruleColUpdatedAt), a.location)
	if err != nil {
		return domain.AvailabilityRule{}, fmt.Errorf("updated_at: %w", err)
	}
	rule.UpdatedAt = json_types.NewDateTime(updatedAt)

	switch rule.Type {
	case domain.RuleTypeOneTime:
		startDateTime, err := utils.ParseDate(cellString(row, ruleColStartDateTime), a.location)
		if err != nil {
			return domain.AvailabilityRule{}, fmt.Errorf("start_datetime: %w", err)
		}
		endDateTime, err := utils.ParseDate(cellString(row, ruleColEndDateTime), a.location)
		if err != nil {
			return domain.AvailabilityRule{}, fmt.Errorf("end_datetime: %w", err)
		}
		rule.OneTime = &domain.OneTimeRule{
			StartDateTime: json_types.NewDateTime(startDateTime),
			EndDateTime:   json_types.NewDateTime(endDateTime),
		}
	case domain.RuleTypeRecurring:
		startTime, err := json_types.ParseTime(cellString(row, ruleColStartTime))
		if err != nil {
			return domain.AvailabilityRule{}, fmt.Errorf("start_time: %w", err)
		}
		endTime, err := json_types.ParseTime(cellString(row, ruleColEndTime))
		if err != nil {
			return domain.AvailabilityRule{}, fmt.Errorf("end_time: %w", err)
		}

		recurrenceDays, err := parseRecurrenceDays(cellString(row, ruleColRecurrenceDays))
		if err != nil {
			return domain.AvailabilityRule{}, fmt.Errorf("recurrence_days: %w", err)
		}
		if len(recurrenceDays) == 0 {
			return domain.AvailabilityRule{}, fmt.Errorf("empty recurrence_days")
		}

		recurring := &domain.RecurringRule{
			StartTime:      startTime,
			EndTime:        endTime,
			RecurrenceDays: recurrenceDays,
		}

		if value := cellString(row, ruleColEffectiveFrom); value != "" {
			effectiveFrom, err := utils.ParseDate(value, a.location)
			if err != nil {
				return domain.AvailabilityRule{}, fmt.Errorf("effective_from: %w", err)
			}
			recurring.EffectiveFrom = &json_types.Date{Date: effectiveFrom}
		}
		if value := cellString(row, ruleColEffectiveUntil); value != "" {
			effectiveUntil, err := utils.ParseDate(value, a.location)
			if err != nil {
				return domain.AvailabilityRule{}, fmt.Errorf("effective_until: %w", err)
			}
			recurring.EffectiveUntil = &json_types.Date{Date: effectiveUntil}
		}

		rule.Recurring = recurring
	default:
		return domain.AvailabilityRule{}, fmt.Errorf("unknown rule_type: %q", rule.Type)
	}

	return rule, nil
}

func (a *SheetsAdapter) ruleToRow(rule domain.AvailabilityRule) []interface{} {
	row := make([]interface{}, ruleColUpdatedAt+1)
	for i := range row {
		row[i] = ""
	}

	row[ruleColID] = rule.ID
	row[ruleColEngineerID] = rule.EngineerID
	row[ruleColStatus] = string(rule.Status)
	row[ruleColType] = string(rule.Type)
	row[ruleColSource] = string(rule.Source)
	row[ruleColUpdatedAt] = rule.UpdatedAt.Date.Format(time.RFC3339)

	if rule.OneTime != nil {
		row[ruleColStartDateTime] = rule.OneTime.StartDateTime.Date.Format(time.RFC3339)
		row[ruleColEndDateTime] = rule.OneTime.EndDateTime.Date.Format(time.RFC3339)
	}

	if rule.Recurring != nil {
		row[ruleColStartTime] = rule.Recurring.StartTime.String()
		row[ruleColEndTime] = rule.Recurring.EndTime.String()
		row[ruleColRecurrenceDays] = formatRecurrenceDays(rule.Recurring.RecurrenceDays)
		if rule.Recurring.EffectiveFrom != nil {
			row[ruleColEffectiveFrom] = rule.Recurring.EffectiveFrom.Date.Format("2006-01-02")
		}
		if rule.Recurring.EffectiveUntil != nil {
			row[ruleColEffectiveUntil] = rule.Recurring.EffectiveUntil.Date.Format("2006-01-02")
		}
	}

	return row
}

func (a *SheetsAdapter) parseSessionRow(row []interface{}) (domain.Session, error) {
	session := domain.Session{
		ID:         cellString(row, sessionColID),
		EngineerID: cellString(row, sessionColEngineerID),
		Title:      cellString(row, sessionColTitle),
	}

	if session.ID == "" || session.EngineerID == "" {
		return domain.Session{}, fmt.Errorf("empty id or engineer_id")
	}

	start, err := utils.ParseDate(cellString(row, sessionColStart), a.location)
	if err != nil {
		return domain.Session{}, fmt.Errorf("start: %w", err)
	}
	end, err := utils.ParseDate(cellString(row, sessionColEnd), a.location)
	if err != nil {
		return domain.Session{}, fmt.Errorf("end: %w", err)
	}

	session.Start = json_types.NewDateTime(start)
	session.End = json_types.NewDateTime(end)

	return session, nil
}

func parseRecurrenceDays(value string) ([]domain.RuleWeekday, error) {
	if value == "" {
		return nil, nil
	}

	days := make([]domain.RuleWeekday, 0)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		day := domain.RuleWeekday(part)
		if !day.Valid() {
			return nil, fmt.Errorf("unknown weekday: %q", part)
		}
		days = append(days, day)
	}
	return days, nil
}

func formatRecurrenceDays(days []domain.RuleWeekday) string {
	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, string(day))
	}
	return strings.Join(parts, ",")
}
