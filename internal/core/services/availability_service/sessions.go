package availability_service

import (
	"github.com/suchimauz/engineer-availability-resolver/internal/core/domain"
)

// applySessionsToSlots помечает забронированные слоты.
// Сессия перекрывает любой статус, выставленный правилами.
func applySessionsToSlots(slots []domain.TimeSlot, sessions []domain.Session) {
	for i := range slots {
		slot := &slots[i]
		slotEnd := slotEndTime(*slot)

		for _, session := range sessions {
			startOverlapping := session.End.Date.After(slot.DateTime)
			endOverlapping := session.Start.Date.Before(slotEnd)

			if startOverlapping && endOverlapping {
				slot.Status = domain.SlotStatusBooked
				slot.SessionID = session.ID
				// Сессии одного инженера не пересекаются, первая совпавшая достаточна
				break
			}
		}
	}
}
