package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskflow/domain/dto"
	"taskflow/domain/repositories"
	"taskflow/domain/services"
	"taskflow/pkg/logger"
	"taskflow/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// requireUser returns the identity the auth middleware resolved. Task routes
// answer 401 when a request arrives without one.
func (h *TaskHandler) requireUser(c *fiber.Ctx) (*utils.UserContext, bool) {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		logger.WarnContext(c.UserContext(), "Task request without identity", "path", c.Path())
		return nil, false
	}
	return user, true
}

// parseTaskID reads the :id param. Ids that don't parse can't name a stored
// task, so callers answer the same way a missing task does. The all-zero
// uuid parses fine and is looked up like any other id.
func (h *TaskHandler) parseTaskID(c *fiber.Ctx) (uuid.UUID, bool) {
	taskID, err := uuid.Parse(c.Params("id"))
	return taskID, err == nil
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", user.ID)

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	taskID, ok := h.parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	task, err := h.taskService.GetTask(c.UserContext(), user.ID, taskID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	var filter dto.TaskFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.BadRequestResponse(c, "invalid query parameters")
	}

	if err := utils.ValidateStruct(&filter); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}

	tasks, err := h.taskService.ListTasks(c.UserContext(), user.ID, repositories.TaskListFilter{
		Status:   filter.Status,
		Priority: filter.Priority,
	})
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	taskID, ok := h.parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.BadRequestResponse(c, utils.ValidationMessage(err))
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", task.ID, "user_id", user.ID)

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	taskID, ok := h.parseTaskID(c)
	if !ok {
		return utils.NotFoundResponse(c, "Task not found")
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", user.ID)

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) GetStats(c *fiber.Ctx) error {
	user, ok := h.requireUser(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "User not found")
	}

	stats, err := h.taskService.GetStats(c.UserContext(), user.ID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskStatsResponse{
		Total:      stats.Total,
		Todo:       stats.Todo,
		InProgress: stats.InProgress,
		Done:       stats.Done,
	})
}
