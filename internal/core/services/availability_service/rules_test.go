package availability_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

func mustTime(t *testing.T, value string) json_types.Time {
	t.Helper()
	parsed, err := json_types.ParseTime(value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func TestIntervalsOverlap(t *testing.T) {
	slotStart := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
	slotEnd := slotStart.Add(30 * time.Minute)

	tests := []struct {
		name      string
		ruleStart time.Time
		ruleEnd   time.Time
		want      bool
	}{
		{"full cover", slotStart.Add(-time.Hour), slotEnd.Add(time.Hour), true},
		{"exact match", slotStart, slotEnd, true},
		{"partial head", slotStart.Add(-time.Hour), slotStart.Add(10 * time.Minute), true},
		{"partial tail", slotStart.Add(20 * time.Minute), slotEnd.Add(time.Hour), true},
		{"touching before", slotStart.Add(-time.Hour), slotStart, false},
		{"touching after", slotEnd, slotEnd.Add(time.Hour), false},
		{"disjoint before", slotStart.Add(-2 * time.Hour), slotStart.Add(-time.Hour), false},
		{"disjoint after", slotEnd.Add(time.Hour), slotEnd.Add(2 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intervalsOverlap(slotStart, slotEnd, tt.ruleStart, tt.ruleEnd))
		})
	}
}

func TestRecurringMatchesMinute(t *testing.T) {
	tests := []struct {
		name        string
		start, end  string
		slotMinutes int
		want        bool
	}{
		{"inside plain interval", "09:00", "17:00", 10 * 60, true},
		{"start inclusive", "09:00", "17:00", 9 * 60, true},
		{"end exclusive", "09:00", "17:00", 17 * 60, false},
		{"before plain interval", "09:00", "17:00", 8 * 60, false},
		{"wrap evening side", "22:00", "04:00", 22 * 60, true},
		{"wrap late evening", "22:00", "04:00", 23*60 + 30, true},
		{"wrap morning side", "22:00", "04:00", 0, true},
		{"wrap morning last slot", "22:00", "04:00", 3*60 + 30, true},
		{"wrap morning end exclusive", "22:00", "04:00", 4 * 60, false},
		{"wrap gap afternoon", "22:00", "04:00", 12 * 60, false},
		{"equal start end wraps full day", "10:00", "10:00", 9 * 60, true},
		{"equal start end at boundary", "10:00", "10:00", 10 * 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &domain.RecurringRule{
				StartTime: mustTime(t, tt.start),
				EndTime:   mustTime(t, tt.end),
			}
			assert.Equal(t, tt.want, recurringMatchesMinute(rec, tt.slotMinutes))
		})
	}
}

func TestRecurringMatchesDay(t *testing.T) {
	// 2025-03-10 - понедельник
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	rec := &domain.RecurringRule{
		StartTime:      mustTime(t, "09:00"),
		EndTime:        mustTime(t, "17:00"),
		RecurrenceDays: []domain.RuleWeekday{domain.RuleWeekdayMon, domain.RuleWeekdayWed},
	}

	assert.True(t, recurringMatchesDay(rec, monday, domain.RuleWeekdayMon))
	assert.False(t, recurringMatchesDay(rec, tuesday, domain.RuleWeekdayTue))
}

func TestRecurringMatchesDayEffectiveBounds(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)
	prevMonday := monday.AddDate(0, 0, -7)

	from := json_types.Date{Date: monday}
	until := json_types.Date{Date: monday}

	rec := &domain.RecurringRule{
		StartTime:      mustTime(t, "09:00"),
		EndTime:        mustTime(t, "17:00"),
		RecurrenceDays: []domain.RuleWeekday{domain.RuleWeekdayMon},
		EffectiveFrom:  &from,
		EffectiveUntil: &until,
	}

	// Границы включительны
	assert.True(t, recurringMatchesDay(rec, monday, domain.RuleWeekdayMon))
	assert.False(t, recurringMatchesDay(rec, prevMonday, domain.RuleWeekdayMon))
	assert.False(t, recurringMatchesDay(rec, nextMonday, domain.RuleWeekdayMon))

	// Отсутствие границы означает неограниченность с этой стороны
	rec.EffectiveFrom = nil
	assert.True(t, recurringMatchesDay(rec, prevMonday, domain.RuleWeekdayMon))

	rec.EffectiveUntil = nil
	assert.True(t, recurringMatchesDay(rec, nextMonday, domain.RuleWeekdayMon))
}

func TestSortRulesByRecencyStable(t *testing.T) {
	t1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	rules := []domain.AvailabilityRule{
		{ID: "c", UpdatedAt: json_types.NewDateTime(t2)},
		{ID: "a", UpdatedAt: json_types.NewDateTime(t1)},
		{ID: "b", UpdatedAt: json_types.NewDateTime(t1)},
	}

	sorted := sortRulesByRecency(rules)

	// По возрастанию updatedAt, при равенстве исходный порядок
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
	assert.Equal(t, "c", sorted[2].ID)

	// Исходный слайс не мутируется
	assert.Equal(t, "c", rules[0].ID)
}
