package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Date is a calendar day with no time-of-day or zone. In MongoDB it is stored
// as a UTC-midnight datetime so range queries compare chronologically.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("tanggal %q tidak valid, gunakan format YYYY-MM-DD: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// UTC returns midnight of d in UTC.
func (d Date) UTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.UTC().AddDate(0, 0, n))
}

func (d Date) Compare(other Date) int {
	return d.UTC().Compare(other.UTC())
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) String() string {
	return d.UTC().Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.UTC())
}

// UnmarshalBSONValue also accepts "YYYY-MM-DD" strings written by older
// versions of the collection.
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = DateOf(raw.Time().UTC())
		return nil
	case bsontype.String:
		parsed, err := ParseDate(raw.StringValue())
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case bsontype.Null:
		*d = Date{}
		return nil
	}
	return fmt.Errorf("tipe bson %s tidak dapat dibaca sebagai tanggal", t)
}

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

func (r DateRange) String() string {
	return r.From.String() + ".." + r.To.String()
}

// MonthRange covers every day of the given month.
func MonthRange(year int, month time.Month) DateRange {
	first := Date{Year: year, Month: month, Day: 1}
	last := DateOf(first.UTC().AddDate(0, 1, -1))
	return DateRange{From: first, To: last}
}

func MonthOf(d Date) DateRange {
	return MonthRange(d.Year, d.Month)
}

// WeekOf returns the Monday-to-Sunday week containing d.
func WeekOf(d Date) DateRange {
	offset := (int(d.UTC().Weekday()) + 6) % 7
	monday := d.AddDays(-offset)
	return DateRange{From: monday, To: monday.AddDays(6)}
}

// ParseMonth parses "YYYY-MM" into the range covering that month.
func ParseMonth(s string) (DateRange, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return DateRange{}, fmt.Errorf("bulan %q tidak valid, gunakan format YYYY-MM: %w", s, err)
	}
	return MonthRange(t.Year(), t.Month()), nil
}
