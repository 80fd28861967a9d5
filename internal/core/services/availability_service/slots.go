package availability_service

import (
	"fmt"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
)

// generateDaySlots создает ровно 48 пустых получасовых слотов на календарный день.
// dayStart - начало дня (00:00) в фиксированной таймзоне развертывания.
// Слоты привязаны к настенным часам, поэтому инвариант 48 слотов держится
// и в дни перевода часов.
func generateDaySlots(dayStart time.Time) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, config.SlotsPerDay)

	for i := 0; i < config.SlotsPerDay; i++ {
		minutes := i * config.SlotDurationMinutes
		hour := minutes / 60
		minute := minutes % 60

		slots = append(slots, domain.TimeSlot{
			Time: fmt.Sprintf("%02d:%02d", hour, minute),
			DateTime: time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(),
				hour, minute, 0, 0, dayStart.Location()),
			Status: domain.SlotStatusBlank,
		})
	}

	return slots
}

func slotMinuteOfDay(slot domain.TimeSlot) int {
	return slot.DateTime.Hour()*60 + slot.DateTime.Minute()
}

func slotEndTime(slot domain.TimeSlot) time.Time {
	return slot.DateTime.Add(time.Duration(config.SlotDurationMinutes) * time.Minute)
}
