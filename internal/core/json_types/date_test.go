package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshalFormats(t *testing.T) {
	tests := []struct {
		name string
		json string
		want time.Time
	}{
		{"rfc3339", `"2025-03-14T09:30:00Z"`, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2025-03-14T09:30:00+03:00"`, time.Date(2025, 3, 14, 9, 30, 0, 0, time.FixedZone("", 3*3600))},
		{"datetime without tz", `"2025-03-14T09:30:00"`, time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)},
		{"date only", `"2025-03-14"`, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.json), &dt))
			assert.True(t, dt.Date.Equal(tt.want), "got %v, want %v", dt.Date, tt.want)
		})
	}
}

func TestDateTimeUnmarshalInvalid(t *testing.T) {
	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &dt))
}

// Нестроковые токены дают ошибку парсинга, а не панику на срезе
func TestDateTimeUnmarshalNonStringToken(t *testing.T) {
	for _, token := range []string{`5`, `42`, `true`, `{}`, `[]`, `""`} {
		t.Run(token, func(t *testing.T) {
			var dt DateTime
			assert.Error(t, json.Unmarshal([]byte(token), &dt))

			var d Date
			assert.Error(t, json.Unmarshal([]byte(token), &d))
		})
	}
}

func TestDateTimeMarshal(t *testing.T) {
	dt := NewDateTime(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(dt)

	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14T09:30:00Z"`, string(data))
}

func TestDateMarshalDropsTime(t *testing.T) {
	d := NewDate(time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC))

	data, err := json.Marshal(d)

	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(data))
}

func TestDateSameDay(t *testing.T) {
	d := NewDate(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	assert.True(t, d.SameDay(time.Date(2025, 3, 14, 23, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameDay(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameDay(time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)))
}

func TestDateTimeOrEmpty(t *testing.T) {
	var dt DateTimeOrEmpty
	require.NoError(t, json.Unmarshal([]byte(`null`), &dt))
	assert.True(t, dt.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &dt))
	assert.True(t, dt.Date.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`"2025-03-14T09:30:00Z"`), &dt))
	assert.False(t, dt.Date.IsZero())

	data, err := json.Marshal(DateTimeOrEmpty{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
