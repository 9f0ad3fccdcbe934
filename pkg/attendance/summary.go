package attendance

import "attendance-tracker/models"

// Summarize counts records per status and sums their hours. The hour total is
// rounded once, after summing. Order does not matter and an empty input gives
// the zero Summary.
func Summarize(records []models.AttendanceRecord) models.Summary {
	var (
		sum   models.Summary
		hours float64
	)
	for _, r := range records {
		switch r.Status {
		case models.StatusPresent:
			sum.PresentDays++
		case models.StatusLate:
			sum.LateDays++
		case models.StatusAbsent:
			sum.AbsentDays++
		case models.StatusHalfDay:
			sum.HalfDays++
		}
		hours += r.TotalHours
	}
	sum.TotalHours = RoundHours(hours)
	sum.TotalDays = len(records)
	return sum
}

// TeamSummarize rolls up one day of records against the headcount. Anyone who
// showed up counts as present, late or not. Absence is headcount minus
// present: most absentees have no record at all.
func TeamSummarize(recordsForDay []models.AttendanceRecord, headcount int) models.TeamSummary {
	team := models.TeamSummary{TotalEmployees: headcount}
	for _, r := range recordsForDay {
		switch r.Status {
		case models.StatusPresent:
			team.PresentToday++
		case models.StatusLate:
			team.PresentToday++
			team.LateToday++
		}
	}
	team.AbsentToday = headcount - team.PresentToday
	return team
}

// FilterRange keeps the records whose date falls inside r.
func FilterRange(records []models.AttendanceRecord, r models.DateRange) []models.AttendanceRecord {
	out := make([]models.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			out = append(out, rec)
		}
	}
	return out
}
