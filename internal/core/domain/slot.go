package domain

import (
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

type SlotStatus string

const (
	// Пустой статус - слот не затронут ни одним правилом
	SlotStatusBlank       SlotStatus = ""
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusMaybe       SlotStatus = "maybe"
	SlotStatusUnavailable SlotStatus = "unavailable"
	SlotStatusBooked      SlotStatus = "booked"
)

// SlotStatus переводит заявленный статус правила в статус слота
func (s AvailabilityStatus) SlotStatus() SlotStatus {
	return SlotStatus(s)
}

type TimeSlot struct {
	Time      string     `json:"time"`
	DateTime  time.Time  `json:"datetime"`
	Status    SlotStatus `json:"status,omitempty"`
	RuleID    string     `json:"ruleId,omitempty"`
	SessionID string     `json:"sessionId,omitempty"`
}

type DayAvailability struct {
	Date    json_types.Date `json:"date"`
	Weekday RuleWeekday     `json:"weekday"`
	Slots   []TimeSlot      `json:"slots"`
}
