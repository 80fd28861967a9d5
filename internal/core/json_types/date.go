package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// stringToken снимает кавычки с JSON-токена.
// Нестроковый токен - ошибка парсинга, а не паника на срезе
func stringToken(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("expected JSON string, got: %s", data)
	}
	return string(data[1 : len(data)-1]), nil
}

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось, пробуем дату со временем, но без таймзоны
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, time.UTC)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, time.UTC)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type DateTime struct {
	Date time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Date: t}
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	str, err := stringToken(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(time.RFC3339))
}

type Date struct {
	Date time.Time
}

func NewDate(t time.Time) Date {
	return Date{Date: t}
}

func (t *Date) UnmarshalJSON(data []byte) error {
	str, err := stringToken(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

// SameDay сравнивает только календарные даты, без времени
func (t Date) SameDay(other time.Time) bool {
	y1, m1, d1 := t.Date.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type DateTimeOrEmpty struct {
	Date time.Time
}

func (t *DateTimeOrEmpty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		return nil
	}

	dt := DateTime{}
	err := dt.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	*t = DateTimeOrEmpty{Date: dt.Date}
	return nil
}

func (t DateTimeOrEmpty) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return json.Marshal(t.Date.Format(time.RFC3339))
}
