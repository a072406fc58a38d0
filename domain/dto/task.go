package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Status      string `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *Date  `json:"deadline"`
}

// UpdateTaskRequest is a partial patch. Pointer fields distinguish "omitted,
// leave unchanged" from an explicit value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Deadline    *Date   `json:"deadline"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Deadline    *time.Time `json:"deadline"`
	UserID      uuid.UUID  `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskFilter narrows a task listing. Zero values mean no filtering.
type TaskFilter struct {
	Status   string `query:"status" validate:"omitempty,oneof=todo in-progress done"`
	Priority string `query:"priority" validate:"omitempty,oneof=low medium high"`
}

// TaskStatsResponse mirrors the dashboard counters in the client.
type TaskStatsResponse struct {
	Total      int64 `json:"total"`
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"inProgress"`
	Done       int64 `json:"done"`
}
