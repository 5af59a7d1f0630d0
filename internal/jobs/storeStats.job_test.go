package jobs

import (
	"context"
	"testing"
	"time"

	"genrebox/internal/repositories"
	"genrebox/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreStatsJob(t *testing.T) {
	repo := repositories.NewGenreRepository()
	job := NewStoreStatsJob(repo, time.Now().UTC(), services.Hourly)

	assert.Equal(t, "StoreStatsHeartbeat", job.Name())
	assert.Equal(t, services.Hourly, job.Schedule())
	require.NoError(t, job.Execute(context.Background()))
}

func TestStoreStatsJobRegistersWithScheduler(t *testing.T) {
	scheduler := services.NewSchedulerService()
	job := NewStoreStatsJob(repositories.NewGenreRepository(), time.Now().UTC(), services.Hourly)

	require.NoError(t, scheduler.AddJob(job))
	assert.Equal(t, 1, scheduler.GetJobCount())

	require.NoError(t, scheduler.Start(context.Background()))
	assert.True(t, scheduler.IsRunning())

	require.NoError(t, scheduler.Stop(context.Background()))
	assert.False(t, scheduler.IsRunning())
}
