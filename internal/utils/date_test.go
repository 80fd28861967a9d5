package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartCurrentDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	moment := time.Date(2025, 3, 14, 17, 45, 12, 999, loc)

	got := StartCurrentDay(moment)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestStartNextDay(t *testing.T) {
	moment := time.Date(2025, 3, 31, 23, 30, 0, 0, time.UTC)

	got := StartNextDay(moment)

	// Переход через границу месяца
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)

	got, err := ParseDate("2025-03-14T09:30:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)))

	// Без таймзоны дата трактуется в переданной локации
	got, err = ParseDate("2025-03-14T09:30:00", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 14, 9, 30, 0, 0, loc)))

	got, err = ParseDate("2025-03-14", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, loc)))

	_, err = ParseDate("14.03.2025", loc)
	assert.Error(t, err)

	_, err = ParseDate("", loc)
	assert.Error(t, err)
}
