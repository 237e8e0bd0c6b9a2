package jobs

import (
	"context"
	"time"
	"washboard/internal/events"
	"washboard/internal/services"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

// DailySnapshotJob precomputes and caches the previous day's earnings report
// so the first dashboard load of the morning does not pay the query cost.
type DailySnapshotJob struct {
	report   *services.ReportService
	eventBus *events.EventBus
	log      logger.Logger
	schedule services.Schedule
}

func NewDailySnapshotJob(
	report *services.ReportService,
	eventBus *events.EventBus,
	schedule services.Schedule,
) *DailySnapshotJob {
	log := logger.New("dailySnapshotJob")

	return &DailySnapshotJob{
		report:   report,
		eventBus: eventBus,
		log:      log,
		schedule: schedule,
	}
}

func (j *DailySnapshotJob) Name() string {
	return "DailyEarningsSnapshot"
}

func (j *DailySnapshotJob) Schedule() services.Schedule {
	return j.schedule
}

func (j *DailySnapshotJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	yesterday := utils.Day(time.Now().UTC().AddDate(0, 0, -1))
	dayKey := utils.DayKey(yesterday)

	log.Info("Computing daily earnings snapshot", "day", dayKey)

	report, err := j.report.GetDailySnapshot(ctx, yesterday)
	if err != nil {
		return log.Err("failed to compute daily snapshot", err, "day", dayKey)
	}

	if err := j.eventBus.PublishSnapshotReady(dayKey); err != nil {
		log.Er("failed to publish snapshot ready event", err, "day", dayKey)
	}

	log.Info(
		"Daily earnings snapshot ready",
		"day", dayKey,
		"rows", len(report.Rows),
	)
	return nil
}
