package services

import (
	"context"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/repositories"
)

// TaskService mediates every task operation through an ownership check:
// methods take the caller's resolved user id and refuse access to tasks the
// caller does not own.
type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskListFilter) ([]*models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	GetStats(ctx context.Context, userID uuid.UUID) (*repositories.TaskStats, error)
}
