package availability_service

import (
	"slices"
	"sort"
	"time"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
)

// sortRulesByRecency сортирует правила по возрастанию updatedAt.
// Сортировка стабильная: при равных updatedAt сохраняется исходный порядок.
// Применение правил в этом порядке с безусловной перезаписью и дает
// семантику "последнее обновление побеждает".
func sortRulesByRecency(rules []domain.AvailabilityRule) []domain.AvailabilityRule {
	sorted := make([]domain.AvailabilityRule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UpdatedAt.Date.Before(sorted[j].UpdatedAt.Date)
	})

	return sorted
}

// Функция для проверки применимости правила к слоту
func ruleMatchesSlot(rule domain.AvailabilityRule, day time.Time, weekday domain.RuleWeekday, slot domain.TimeSlot) bool {
	switch rule.Type {
	case domain.RuleTypeOneTime:
		if rule.OneTime == nil {
			return false
		}
		return intervalsOverlap(slot.DateTime, slotEndTime(slot), rule.OneTime.StartDateTime.Date, rule.OneTime.EndDateTime.Date)
	case domain.RuleTypeRecurring:
		if rule.Recurring == nil {
			return false
		}
		return recurringMatchesDay(rule.Recurring, day, weekday) && recurringMatchesMinute(rule.Recurring, slotMinuteOfDay(slot))
	}

	return false
}

// Строгая проверка пересечения полуоткрытых интервалов
// Частичное пересечение тоже считается совпадением
func intervalsOverlap(slotStart, slotEnd, ruleStart, ruleEnd time.Time) bool {
	return slotStart.Before(ruleEnd) && slotEnd.After(ruleStart)
}

// Функция для проверки применимости повторяющегося правила к календарному дню
func recurringMatchesDay(rec *domain.RecurringRule, day time.Time, weekday domain.RuleWeekday) bool {
	if !slices.Contains(rec.RecurrenceDays, weekday) {
		return false
	}

	// Границы действия правила включительны и сравниваются по календарной дате
	if rec.EffectiveFrom != nil && calendarDateBefore(day, rec.EffectiveFrom.Date) {
		return false
	}
	if rec.EffectiveUntil != nil && calendarDateBefore(rec.EffectiveUntil.Date, day) {
		return false
	}

	return true
}

// Функция для проверки попадания минуты суток в интервал правила
// Если endMinutes <= startMinutes, интервал переходит через полночь
func recurringMatchesMinute(rec *domain.RecurringRule, slotMinutes int) bool {
	startMinutes := rec.StartTime.MinuteOfDay()
	endMinutes := rec.EndTime.MinuteOfDay()

	if endMinutes <= startMinutes {
		return slotMinutes >= startMinutes || slotMinutes < endMinutes
	}

	return slotMinutes >= startMinutes && slotMinutes < endMinutes
}

// Сравнение только календарных дат, безопасно для разных таймзон
func calendarDateBefore(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}
