package jobs

import (
	"washboard/config"
	"washboard/internal/events"
	"washboard/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// Import schedule constants
const (
	Daily  = services.Daily
	Hourly = services.Hourly
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	services services.Service,
	eventBus *events.EventBus,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")
	log.Info("Registering jobs")

	dailySnapshotJob := NewDailySnapshotJob(
		services.Report,
		eventBus,
		Daily,
	)
	if err := schedulerService.AddJob(dailySnapshotJob); err != nil {
		return log.Err("failed to register daily snapshot job", err)
	}
	log.Info("Registered daily snapshot job", "schedule", "daily")

	return nil
}
