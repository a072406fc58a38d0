package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/pkg/apperr"
	"taskflow/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{taskRepo: taskRepo}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validation("Title is required")
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		UserID:      userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if task.Status == "" {
		task.Status = models.TaskStatusTodo
	}
	if task.Priority == "" {
		task.Priority = models.TaskPriorityMedium
	}
	// The client submits deadline "" for tasks without one; a zero Date
	// stays a null deadline.
	if req.Deadline != nil && !req.Deadline.IsZero() {
		deadline := req.Deadline.Time
		task.Deadline = &deadline
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*models.Task, error) {
	return s.loadOwned(ctx, userID, taskID, "Unauthorized access to this task")
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, userID uuid.UUID, filter repositories.TaskListFilter) ([]*models.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, userID, filter)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", userID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.loadOwned(ctx, userID, taskID, "Unauthorized to update this task")
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, apperr.Validation("Title cannot be empty")
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Deadline != nil {
		if req.Deadline.IsZero() {
			// An explicit empty deadline clears it; omitted/null leaves it.
			task.Deadline = nil
		} else {
			deadline := req.Deadline.Time
			task.Deadline = &deadline
		}
	}

	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", userID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, userID, taskID, "Unauthorized to delete this task"); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*repositories.TaskStats, error) {
	stats, err := s.taskRepo.StatsByOwner(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load task stats", "user_id", userID, "error", err)
		return nil, err
	}
	return stats, nil
}

// loadOwned fetches a task and enforces the ownership invariant: a missing
// task is 404, someone else's task is 403 and its contents are not returned.
func (s *TaskServiceImpl) loadOwned(ctx context.Context, userID, taskID uuid.UUID, forbiddenMsg string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, apperr.NotFound("Task not found")
	}

	if task.UserID != userID {
		logger.WarnContext(ctx, "Ownership check failed", "task_id", taskID, "user_id", userID, "owner_id", task.UserID)
		return nil, apperr.Forbidden(forbiddenMsg)
	}

	return task, nil
}
