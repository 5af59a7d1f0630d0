package jobs

import (
	"context"
	"time"

	"genrebox/internal/repositories"
	"genrebox/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// StoreStatsJob periodically logs the size of the in-memory collection and
// process uptime. The store is volatile, so this heartbeat is the only
// record of how the collection evolved during a run.
type StoreStatsJob struct {
	genreRepo repositories.GenreRepository
	startedAt time.Time
	log       logger.Logger
	schedule  services.Schedule
}

func NewStoreStatsJob(
	genreRepo repositories.GenreRepository,
	startedAt time.Time,
	schedule services.Schedule,
) *StoreStatsJob {
	log := logger.New("storeStatsJob")
	log.Info("Creating new store stats job", "schedule", schedule)

	return &StoreStatsJob{
		genreRepo: genreRepo,
		startedAt: startedAt,
		log:       log,
		schedule:  schedule,
	}
}

func (j *StoreStatsJob) Name() string {
	return "StoreStatsHeartbeat"
}

func (j *StoreStatsJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	count, err := j.genreRepo.Count(ctx)
	if err != nil {
		return log.Err("failed to count genres", err)
	}

	log.Info("Store stats heartbeat",
		"genreCount", count,
		"uptime", time.Since(j.startedAt).Round(time.Second).String(),
	)
	return nil
}

func (j *StoreStatsJob) Schedule() services.Schedule {
	return j.schedule
}
