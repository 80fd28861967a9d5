package utils

import (
	"fmt"
	"time"
)

// StartCurrentDay возвращает дату с временем 00:00, таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00, а таймзона остается прежней
func StartNextDay(t time.Time) time.Time {
	// Увеличиваем день на 1
	newDate := t.AddDate(0, 0, 1)
	// Устанавливаем время на 00:00
	return time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует
// парсить дату со временем, но без таймзоны, затем как дату без времени
func ParseDate(str string, location *time.Location) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}
