package domain

import (
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

type AvailabilityStatus string

const (
	AvailabilityStatusAvailable   AvailabilityStatus = "available"
	AvailabilityStatusMaybe       AvailabilityStatus = "maybe"
	AvailabilityStatusUnavailable AvailabilityStatus = "unavailable"
)

// Valid сообщает, входит ли значение в словарь заявляемых статусов
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case AvailabilityStatusAvailable, AvailabilityStatusMaybe, AvailabilityStatusUnavailable:
		return true
	}
	return false
}

type RuleType string

const (
	RuleTypeOneTime   RuleType = "one_time"
	RuleTypeRecurring RuleType = "recurring"
)

type RuleSource string

const (
	RuleSourceWebApp  RuleSource = "web_app"
	RuleSourceChatbot RuleSource = "chatbot"
	RuleSourceBooking RuleSource = "booking"
)

type RuleWeekday string

const (
	RuleWeekdayMon RuleWeekday = "mon"
	RuleWeekdayTue RuleWeekday = "tue"
	RuleWeekdayWed RuleWeekday = "wed"
	RuleWeekdayThu RuleWeekday = "thu"
	RuleWeekdayFri RuleWeekday = "fri"
	RuleWeekdaySat RuleWeekday = "sat"
	RuleWeekdaySun RuleWeekday = "sun"
)

// Valid сообщает, является ли значение кодом дня недели mon..sun
func (d RuleWeekday) Valid() bool {
	switch d {
	case RuleWeekdayMon, RuleWeekdayTue, RuleWeekdayWed, RuleWeekdayThu,
		RuleWeekdayFri, RuleWeekdaySat, RuleWeekdaySun:
		return true
	}
	return false
}

var RuleWeekdayMap = map[time.Weekday]RuleWeekday{
	time.Monday:    RuleWeekdayMon,
	time.Tuesday:   RuleWeekdayTue,
	time.Wednesday: RuleWeekdayWed,
	time.Thursday:  RuleWeekdayThu,
	time.Friday:    RuleWeekdayFri,
	time.Saturday:  RuleWeekdaySat,
	time.Sunday:    RuleWeekdaySun,
}

// Поля разового правила, интервал [start, end)
type OneTimeRule struct {
	StartDateTime json_types.DateTime `json:"startDateTime"`
	EndDateTime   json_types.DateTime `json:"endDateTime"`
}

// Поля повторяющегося правила
// Если EndTime <= StartTime, интервал переходит через полночь
type RecurringRule struct {
	StartTime      json_types.Time  `json:"startTime"`
	EndTime        json_types.Time  `json:"endTime"`
	RecurrenceDays []RuleWeekday    `json:"recurrenceDays"`
	EffectiveFrom  *json_types.Date `json:"effectiveFrom,omitempty"`
	EffectiveUntil *json_types.Date `json:"effectiveUntil,omitempty"`
}

type AvailabilityRule struct {
	ID         string              `json:"id"`
	EngineerID string              `json:"engineerId"`
	Status     AvailabilityStatus  `json:"status"`
	Type       RuleType            `json:"ruleType"`
	OneTime    *OneTimeRule        `json:"oneTime,omitempty"`
	Recurring  *RecurringRule      `json:"recurring,omitempty"`
	Source     RuleSource          `json:"source"`
	UpdatedAt  json_types.DateTime `json:"updatedAt"`
}
