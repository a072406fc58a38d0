package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/models"
)

// TaskListFilter narrows ListByOwner. Empty fields match everything.
type TaskListFilter struct {
	Status   string
	Priority string
}

// TaskStats holds per-status counts for one owner.
type TaskStats struct {
	Total      int64
	Todo       int64
	InProgress int64
	Done       int64
}

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// ListByOwner returns the owner's tasks newest-first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter TaskListFilter) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	StatsByOwner(ctx context.Context, ownerID uuid.UUID) (*TaskStats, error)
	// CountOverdue counts tasks across all owners whose deadline has passed
	// and whose status is not done.
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}
