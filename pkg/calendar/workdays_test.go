package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/models"
)

func TestDefaultWorkdays(t *testing.T) {
	w, err := NewWorkdays("", nil)
	require.NoError(t, err)

	// week of 2026-10-12 (Mon) .. 2026-10-18 (Sun)
	for day := 12; day <= 16; day++ {
		assert.True(t, w.IsWorkday(models.Date{Year: 2026, Month: time.October, Day: day}), "day %d", day)
	}
	assert.False(t, w.IsWorkday(models.Date{Year: 2026, Month: time.October, Day: 17}))
	assert.False(t, w.IsWorkday(models.Date{Year: 2026, Month: time.October, Day: 18}))
}

func TestWorkdaysExcludeHolidays(t *testing.T) {
	holidays, err := ParseHolidays("2026-12-25, 2027-01-01")
	require.NoError(t, err)
	require.Len(t, holidays, 2)

	w, err := NewWorkdays(DefaultWorkdayRule, holidays)
	require.NoError(t, err)

	assert.False(t, w.IsWorkday(models.Date{Year: 2026, Month: time.December, Day: 25}))
	assert.True(t, w.IsWorkday(models.Date{Year: 2026, Month: time.December, Day: 24}))
}

func TestCustomWorkdayRule(t *testing.T) {
	w, err := NewWorkdays("FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA", nil)
	require.NoError(t, err)
	assert.True(t, w.IsWorkday(models.Date{Year: 2026, Month: time.October, Day: 17}))
	assert.False(t, w.IsWorkday(models.Date{Year: 2026, Month: time.October, Day: 18}))

	_, err = NewWorkdays("FREQ=SOMETIMES", nil)
	assert.Error(t, err)
}

func TestParseHolidaysInvalid(t *testing.T) {
	_, err := ParseHolidays("2026-12-25,christmas")
	assert.Error(t, err)

	none, err := ParseHolidays("")
	require.NoError(t, err)
	assert.Empty(t, none)
}
