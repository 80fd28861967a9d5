package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Time - время суток в формате "HH:mm"
type Time struct {
	Time time.Time
}

func ParseTime(str string) (Time, error) {
	parsedTime, err := time.Parse("15:04", str)
	// Если не удалось, пробуем формат с секундами
	if err != nil {
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return Time{}, fmt.Errorf("failed to parse time: %v", err)
		}
	}

	return Time{Time: parsedTime}, nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	str, err := stringToken(data)
	if err != nil {
		return err
	}

	parsedTime, err := ParseTime(str)
	if err != nil {
		return err
	}

	*t = parsedTime
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

func (t Time) String() string {
	return t.Time.Format("15:04")
}

// MinuteOfDay возвращает минуту суток, от 0 до 1439
func (t Time) MinuteOfDay() int {
	return t.Time.Hour()*60 + t.Time.Minute()
}
