package json_types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, tm.MinuteOfDay())

	tm, err = ParseTime("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, tm.MinuteOfDay())

	_, err = ParseTime("25:00")
	assert.Error(t, err)

	_, err = ParseTime("garbage")
	assert.Error(t, err)
}

func TestTimeJSONRoundTrip(t *testing.T) {
	var tm Time
	require.NoError(t, json.Unmarshal([]byte(`"14:30"`), &tm))
	assert.Equal(t, "14:30", tm.String())

	data, err := json.Marshal(tm)
	require.NoError(t, err)
	assert.Equal(t, `"14:30"`, string(data))
}

func TestTimeUnmarshalNonStringToken(t *testing.T) {
	for _, token := range []string{`5`, `1430`, `null`, `{}`} {
		t.Run(token, func(t *testing.T) {
			var tm Time
			assert.Error(t, json.Unmarshal([]byte(token), &tm))
		})
	}
}

func TestTimeMinuteOfDayBounds(t *testing.T) {
	midnight, err := ParseTime("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, midnight.MinuteOfDay())

	lastMinute, err := ParseTime("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, lastMinute.MinuteOfDay())
}
