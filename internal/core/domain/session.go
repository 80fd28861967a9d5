package domain

import (
	"github.com/suchimauz/engineer-availability-resolver/internal/core/json_types"
)

// Забронированная сессия, интервал [start, end)
// Сессии всегда перекрывают любые правила доступности
type Session struct {
	ID         string              `json:"id"`
	EngineerID string              `json:"engineerId"`
	Start      json_types.DateTime `json:"start"`
	End        json_types.DateTime `json:"end"`
	Title      string              `json:"title"`
}
