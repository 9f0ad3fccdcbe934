package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"attendance-tracker/models"
)

// AbsenceMarker is the part of the attendance service the sweep drives.
type AbsenceMarker interface {
	Location() *time.Location
	Today(now time.Time) models.Date
	MarkAbsentees(ctx context.Context, day models.Date, now time.Time) (int, error)
}

// RunAbsentSweep marks absentees for the last day that has fully ended at
// now, which is the local day before now.
func RunAbsentSweep(ctx context.Context, svc AbsenceMarker, now time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	day := svc.Today(now).AddDays(-1)
	n, err := svc.MarkAbsentees(ctx, day, now)
	if err != nil {
		return n, fmt.Errorf("gagal menandai karyawan absen untuk %s: %w", day, err)
	}
	return n, nil
}

// StartAbsentSweepCron schedules RunAbsentSweep on spec, evaluated in the
// service location. Each run closes the previous day, so a schedule shortly
// after midnight such as "5 0 * * *" closes days promptly. The caller stops
// the returned scheduler on shutdown.
func StartAbsentSweepCron(svc AbsenceMarker, spec string, log *slog.Logger) (*cron.Cron, error) {
	c := cron.New(
		cron.WithLocation(svc.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	_, err := c.AddFunc(spec, func() {
		n, err := RunAbsentSweep(context.Background(), svc, time.Now())
		if err != nil {
			log.Error("[ABSENT-SWEEP] gagal", "error", err)
			return
		}
		log.Info("[ABSENT-SWEEP] selesai", "marked_absent", n)
	})
	if err != nil {
		return nil, fmt.Errorf("jadwal ABSENT_SWEEP_CRON %q tidak valid: %w", spec, err)
	}

	log.Info("[ABSENT-SWEEP] started", "schedule", spec, "location", svc.Location().String())
	c.Start()
	return c, nil
}
