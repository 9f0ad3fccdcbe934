// Package calendar decides which calendar days are working days, from an
// RFC 5545 recurrence rule plus a list of holidays.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"attendance-tracker/models"
)

const DefaultWorkdayRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

// anchor is a Monday; occurrences are generated at UTC midnight from it.
var anchor = time.Date(2000, time.January, 3, 0, 0, 0, 0, time.UTC)

type Workdays struct {
	set  *rrule.Set
	rule string
}

// NewWorkdays builds a calendar from rule (DefaultWorkdayRule when empty).
// Holidays are excluded even when the rule matches them.
func NewWorkdays(rule string, holidays []models.Date) (*Workdays, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		rule = DefaultWorkdayRule
	}

	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("aturan hari kerja %q tidak valid: %w", rule, err)
	}
	opt.Dtstart = anchor

	rr, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat aturan hari kerja: %w", err)
	}

	set := &rrule.Set{}
	set.RRule(rr)
	for _, h := range holidays {
		set.ExDate(h.UTC())
	}

	return &Workdays{set: set, rule: rule}, nil
}

func (w *Workdays) IsWorkday(d models.Date) bool {
	start := d.UTC()
	if start.Before(anchor) {
		return false
	}
	end := start.Add(24*time.Hour - time.Nanosecond)
	return len(w.set.Between(start, end, true)) > 0
}

func (w *Workdays) String() string {
	return w.rule
}

// ParseHolidays parses a comma separated list of YYYY-MM-DD dates.
func ParseHolidays(s string) ([]models.Date, error) {
	var out []models.Date
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := models.ParseDate(part)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
