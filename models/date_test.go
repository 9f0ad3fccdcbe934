package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.February, Day: 28}, d)
	assert.Equal(t, "2026-02-28", d.String())

	_, err = ParseDate("2026-02-30")
	assert.Error(t, err)

	_, err = ParseDate("28/02/2026")
	assert.Error(t, err)
}

func TestDateOfUsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on the 17th is already the 18th in Jakarta.
	instant := time.Date(2026, time.October, 17, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, Date{2026, time.October, 17}, DateOf(instant))
	assert.Equal(t, Date{2026, time.October, 18}, DateOf(instant.In(jakarta)))
}

func TestDateCompare(t *testing.T) {
	a := Date{2026, time.September, 30}
	b := Date{2026, time.October, 1}

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, b, a.AddDays(1))
	assert.Equal(t, Date{2027, time.January, 1}, Date{2026, time.December, 31}.AddDays(1))
}

func TestMonthRange(t *testing.T) {
	r := MonthRange(2028, time.February)
	assert.Equal(t, Date{2028, time.February, 1}, r.From)
	assert.Equal(t, Date{2028, time.February, 29}, r.To)

	assert.True(t, r.Contains(Date{2028, time.February, 1}))
	assert.True(t, r.Contains(Date{2028, time.February, 29}))
	assert.False(t, r.Contains(Date{2028, time.March, 1}))
	assert.False(t, r.Contains(Date{2028, time.January, 31}))
}

func TestParseMonth(t *testing.T) {
	r, err := ParseMonth("2026-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01..2026-12-31", r.String())

	_, err = ParseMonth("2026-13")
	assert.Error(t, err)
}

func TestWeekOf(t *testing.T) {
	// 2026-10-18 is a Sunday.
	r := WeekOf(Date{2026, time.October, 18})
	assert.Equal(t, Date{2026, time.October, 12}, r.From)
	assert.Equal(t, Date{2026, time.October, 18}, r.To)

	r = WeekOf(Date{2026, time.October, 12})
	assert.Equal(t, Date{2026, time.October, 12}, r.From)
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	b, err := json.Marshal(wrapper{Date: Date{2026, time.October, 5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2026-10-05"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2026-01-31"}`), &w))
	assert.Equal(t, Date{2026, time.January, 31}, w.Date)

	assert.Error(t, json.Unmarshal([]byte(`{"date":"yesterday"}`), &w))
}

func TestDateBSON(t *testing.T) {
	type doc struct {
		Date Date `bson:"date"`
	}

	raw, err := bson.Marshal(doc{Date: Date{2026, time.October, 5}})
	require.NoError(t, err)

	stored := bson.Raw(raw).Lookup("date")
	assert.Equal(t, time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC), stored.Time().UTC())

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, Date{2026, time.October, 5}, out.Date)

	legacy, err := bson.Marshal(bson.M{"date": "2025-12-24"})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(legacy, &out))
	assert.Equal(t, Date{2025, time.December, 24}, out.Date)
}
