package availability_service

import (
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
	"github.com/suchimauz/engineer-availability-resolver/internal/utils"
)

// ResolveAvailability разрешает статус каждого получасового слота за диапазон
// дат, включая обе границы. Чистая функция: не выполняет I/O, не мутирует
// аргументы, при одинаковых входах дает одинаковый результат.
//
// Корректность разрешения конфликтов целиком зависит от того, что хранилище
// назначает updatedAt монотонно относительно реального порядка записи.
func ResolveAvailability(rules []domain.AvailabilityRule, sessions []domain.Session, startDate, endDate time.Time) []domain.DayAvailability {
	// Два этапа: сортировка по давности, затем свертка "последний победил"
	sorted := sortRulesByRecency(rules)

	days := make([]domain.DayAvailability, 0)
	lastDay := utils.StartCurrentDay(endDate)

	for day := utils.StartCurrentDay(startDate); !day.After(lastDay); day = utils.StartNextDay(day) {
		days = append(days, resolveDay(sorted, sessions, day))
	}

	return days
}

func resolveDay(sortedRules []domain.AvailabilityRule, sessions []domain.Session, day time.Time) domain.DayAvailability {
	weekday := domain.RuleWeekdayMap[day.Weekday()]
	slots := generateDaySlots(day)

	for i := range slots {
		slot := &slots[i]

		// Каждое совпавшее правило безусловно перезаписывает статус.
		// Раннего выхода нет: более позднее правило в отсортированном
		// порядке должно победить независимо от типа.
		for _, rule := range sortedRules {
			if ruleMatchesSlot(rule, day, weekday, *slot) {
				slot.Status = rule.Status.SlotStatus()
				slot.RuleID = rule.ID
			}
		}
	}

	// Сессии накладываются после всех правил и не могут быть перекрыты ими
	applySessionsToSlots(slots, sessions)

	return domain.DayAvailability{
		Date:    json_types.NewDate(day),
		Weekday: weekday,
		Slots:   slots,
	}
}
