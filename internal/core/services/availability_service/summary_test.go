package availability_service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

// dayWithStatuses строит день, где слоты окна 09:00-12:00 циклически
// получают переданные статусы, остальные остаются пустыми
func dayWithStatuses(date time.Time, statuses ...domain.SlotStatus) domain.DayAvailability {
	slots := generateDaySlots(date)
	i := 0
	for idx := range slots {
		minutes := slotMinuteOfDay(slots[idx])
		if minutes < 9*60 || minutes >= 12*60 {
			continue
		}
		slots[idx].Status = statuses[i%len(statuses)]
		i++
	}
	return domain.DayAvailability{
		Date:    json_types.NewDate(date),
		Weekday: domain.RuleWeekdayMap[date.Weekday()],
		Slots:   slots,
	}
}

func summarizeWindow(t *testing.T, day domain.DayAvailability, start, end string) domain.SummaryStatus {
	t.Helper()
	return summarizeEngineer([]domain.DayAvailability{day}, day.Date.Date, mustTime(t, start), mustTime(t, end))
}

// Перебор всех непустых комбинаций статусов внутри окна: приоритет
// зафиксирован и несимметричен - см. ожидания ниже
func TestSummarizeEngineerAllCombinations(t *testing.T) {
	statuses := []domain.SlotStatus{
		domain.SlotStatusBooked,
		domain.SlotStatusUnavailable,
		domain.SlotStatusBlank,
		domain.SlotStatusMaybe,
		domain.SlotStatusAvailable,
	}

	expect := func(has map[domain.SlotStatus]bool) domain.SummaryStatus {
		switch {
		case has[domain.SlotStatusBooked]:
			return domain.SummaryStatusBooked
		case has[domain.SlotStatusUnavailable]:
			return domain.SummaryStatusUnavailable
		case has[domain.SlotStatusBlank] && !has[domain.SlotStatusMaybe] && !has[domain.SlotStatusAvailable]:
			return domain.SummaryStatusNotSet
		case has[domain.SlotStatusMaybe]:
			return domain.SummaryStatusMaybe
		case has[domain.SlotStatusAvailable]:
			return domain.SummaryStatusAvailable
		default:
			return domain.SummaryStatusNotSet
		}
	}

	for mask := 1; mask < 1<<len(statuses); mask++ {
		var subset []domain.SlotStatus
		has := make(map[domain.SlotStatus]bool)
		for bit, status := range statuses {
			if mask&(1<<bit) != 0 {
				subset = append(subset, status)
				has[status] = true
			}
		}

		t.Run(fmt.Sprintf("mask_%05b", mask), func(t *testing.T) {
			day := dayWithStatuses(friday, subset...)
			got := summarizeWindow(t, day, "09:00", "12:00")
			assert.Equal(t, expect(has), got, "subset %v", subset)
		})
	}
}

// Смесь available с одним пустым слотом без maybe дает available, а не maybe
func TestSummarizeEngineerBlankWithAvailable(t *testing.T) {
	day := dayWithStatuses(friday,
		domain.SlotStatusAvailable,
		domain.SlotStatusAvailable,
		domain.SlotStatusAvailable,
		domain.SlotStatusAvailable,
		domain.SlotStatusAvailable,
		domain.SlotStatusBlank,
	)

	assert.Equal(t, domain.SummaryStatusAvailable, summarizeWindow(t, day, "09:00", "12:00"))
}

func TestSummarizeEngineerNoDay(t *testing.T) {
	day := dayWithStatuses(friday, domain.SlotStatusAvailable)
	otherDate := friday.AddDate(0, 0, 1)

	got := summarizeEngineer([]domain.DayAvailability{day}, otherDate, mustTime(t, "09:00"), mustTime(t, "12:00"))
	assert.Equal(t, domain.SummaryStatusNotSet, got)
}

func TestSummarizeEngineerEmptyWindow(t *testing.T) {
	day := dayWithStatuses(friday, domain.SlotStatusAvailable)

	// Окно нулевой длины не захватывает ни одного слота
	assert.Equal(t, domain.SummaryStatusNotSet, summarizeWindow(t, day, "10:00", "10:00"))
}

// Слоты за пределами окна не влияют на итог
func TestSummarizeEngineerWindowBounds(t *testing.T) {
	slots := generateDaySlots(friday)
	for idx := range slots {
		minutes := slotMinuteOfDay(slots[idx])
		switch {
		case minutes == 8*60+30:
			slots[idx].Status = domain.SlotStatusBooked
		case minutes == 12*60:
			slots[idx].Status = domain.SlotStatusUnavailable
		case minutes >= 9*60 && minutes < 12*60:
			slots[idx].Status = domain.SlotStatusAvailable
		}
	}
	day := domain.DayAvailability{
		Date:    json_types.NewDate(friday),
		Weekday: domain.RuleWeekdayFri,
		Slots:   slots,
	}

	// booked в 08:30 и unavailable в 12:00 лежат вне [09:00, 12:00)
	assert.Equal(t, domain.SummaryStatusAvailable, summarizeWindow(t, day, "09:00", "12:00"))
}

func TestSummarizePartitionsEngineers(t *testing.T) {
	perEngineer := map[string][]domain.DayAvailability{
		"bob":   {dayWithStatuses(friday, domain.SlotStatusAvailable)},
		"alice": {dayWithStatuses(friday, domain.SlotStatusBooked)},
		"carol": {dayWithStatuses(friday, domain.SlotStatusBlank)},
		"dave":  {},
	}

	summary := Summarize(perEngineer, friday, mustTime(t, "09:00"), mustTime(t, "12:00"))

	assert.Equal(t, []string{"bob"}, summary.Available)
	assert.Equal(t, []string{"alice"}, summary.Booked)
	require.Len(t, summary.NotSet, 2)
	assert.Equal(t, []string{"carol", "dave"}, summary.NotSet)
	assert.Empty(t, summary.Maybe)
	assert.Empty(t, summary.Unavailable)
}
