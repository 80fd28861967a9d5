package availability_service

import (
	"sort"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

// Summarize сводит разрешенные слоты каждого инженера за окно
// [startTime, endTime) одного дня в один статус. Окно не переходит
// через полночь - это контракт вызывающей стороны.
func Summarize(perEngineerDays map[string][]domain.DayAvailability, targetDate time.Time, startTime, endTime json_types.Time) domain.AvailabilitySummary {
	summary := domain.NewAvailabilitySummary()

	// Сортируем имена для детерминированного порядка в списках
	engineers := make([]string, 0, len(perEngineerDays))
	for engineer := range perEngineerDays {
		engineers = append(engineers, engineer)
	}
	sort.Strings(engineers)

	for _, engineer := range engineers {
		summary.Add(engineer, summarizeEngineer(perEngineerDays[engineer], targetDate, startTime, endTime))
	}

	return summary
}

func summarizeEngineer(days []domain.DayAvailability, targetDate time.Time, startTime, endTime json_types.Time) domain.SummaryStatus {
	var day *domain.DayAvailability
	for i := range days {
		if days[i].Date.SameDay(targetDate) {
			day = &days[i]
			break
		}
	}
	if day == nil {
		return domain.SummaryStatusNotSet
	}

	startMinutes := startTime.MinuteOfDay()
	endMinutes := endTime.MinuteOfDay()

	var hasBooked, hasUnavailable, hasBlank, hasMaybe, hasAvailable bool
	windowSlots := 0

	for _, slot := range day.Slots {
		minutes := slotMinuteOfDay(slot)
		if minutes < startMinutes || minutes >= endMinutes {
			continue
		}
		windowSlots++

		switch slot.Status {
		case domain.SlotStatusBooked:
			hasBooked = true
		case domain.SlotStatusUnavailable:
			hasUnavailable = true
		case domain.SlotStatusBlank:
			hasBlank = true
		case domain.SlotStatusMaybe:
			hasMaybe = true
		case domain.SlotStatusAvailable:
			hasAvailable = true
		}
	}

	if windowSlots == 0 {
		return domain.SummaryStatusNotSet
	}

	// Порядок ветвей намеренно несимметричен: один booked или unavailable
	// слот окрашивает все окно, а смесь blank с maybe/available допустима
	if hasBooked {
		return domain.SummaryStatusBooked
	}
	if hasUnavailable {
		return domain.SummaryStatusUnavailable
	}
	if hasBlank {
		if !hasMaybe && !hasAvailable {
			return domain.SummaryStatusNotSet
		}
		if hasMaybe {
			return domain.SummaryStatusMaybe
		}
		return domain.SummaryStatusAvailable
	}
	if hasMaybe {
		return domain.SummaryStatusMaybe
	}
	if hasAvailable {
		return domain.SummaryStatusAvailable
	}

	return domain.SummaryStatusNotSet
}
