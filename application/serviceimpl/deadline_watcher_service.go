package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"taskflow/domain/repositories"
	"taskflow/pkg/logger"
	"taskflow/pkg/scheduler"
)

// DeadlineWatcherConfig controls how often overdue tasks are scanned.
type DeadlineWatcherConfig struct {
	Interval time.Duration
}

// DeadlineWatcherService periodically counts tasks whose deadline has passed
// without being done and logs a summary. Observability only; it never
// mutates tasks.
type DeadlineWatcherService struct {
	config    DeadlineWatcherConfig
	taskRepo  repositories.TaskRepository
	scheduler scheduler.EventScheduler
}

func NewDeadlineWatcherService(
	config DeadlineWatcherConfig,
	taskRepo repositories.TaskRepository,
	eventScheduler scheduler.EventScheduler,
) *DeadlineWatcherService {
	service := &DeadlineWatcherService{
		config:    config,
		taskRepo:  taskRepo,
		scheduler: eventScheduler,
	}

	if service.config.Interval == 0 {
		service.config.Interval = time.Hour
	}

	return service
}

// RegisterWatcherJob schedules the periodic scan.
func (s *DeadlineWatcherService) RegisterWatcherJob() error {
	schedule := fmt.Sprintf("@every %s", s.config.Interval)
	return s.scheduler.AddJob("deadline_watcher", schedule, func() {
		s.RunScan(context.Background())
	})
}

// RunScan counts overdue tasks and logs the result when any exist.
func (s *DeadlineWatcherService) RunScan(ctx context.Context) {
	overdue, err := s.taskRepo.CountOverdue(ctx, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "Overdue scan failed", "error", err)
		return
	}

	if overdue > 0 {
		logger.InfoContext(ctx, "Overdue scan completed", "overdue_tasks", overdue)
	}
}
