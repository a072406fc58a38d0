package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/domain/repositories"
	"taskflow/infrastructure/postgres"
	"taskflow/pkg/apperr"
)

func newTestTaskService(t *testing.T) (*TaskServiceImpl, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewTaskService(postgres.NewTaskRepository(db)).(*TaskServiceImpl)

	return svc, db
}

func strPtr(s string) *string {
	return &s
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	svc, _ := newTestTaskService(t)
	userID := uuid.New()

	task, err := svc.CreateTask(context.Background(), userID, &dto.CreateTaskRequest{Title: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
	assert.Equal(t, models.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.Deadline)
	assert.Equal(t, userID, task.UserID)
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	svc, _ := newTestTaskService(t)

	for _, title := range []string{"", "   ", "\t"} {
		_, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{Title: title})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		assert.Equal(t, "Title is required", err.Error())
	}
}

func TestCreateTaskStoresDeadline(t *testing.T) {
	svc, _ := newTestTaskService(t)

	deadline := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	task, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{
		Title:    "file taxes",
		Deadline: &dto.Date{Time: deadline},
	})
	require.NoError(t, err)
	require.NotNil(t, task.Deadline)
	assert.True(t, task.Deadline.Equal(deadline))
}

func TestCreateTaskEmptyDeadlineStaysNull(t *testing.T) {
	svc, _ := newTestTaskService(t)

	// The client sends deadline "" for tasks created without one, which
	// decodes to a zero Date.
	task, err := svc.CreateTask(context.Background(), uuid.New(), &dto.CreateTaskRequest{
		Title:    "no deadline",
		Deadline: &dto.Date{},
	})
	require.NoError(t, err)
	assert.Nil(t, task.Deadline)
}

func TestUpdateTaskEmptyDeadlineClears(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	deadline := dto.Date{Time: time.Now().Add(24 * time.Hour)}
	task, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "dated", Deadline: &deadline})
	require.NoError(t, err)
	require.NotNil(t, task.Deadline)

	updated, err := svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{Deadline: &dto.Date{}})
	require.NoError(t, err)
	assert.Nil(t, updated.Deadline)

	got, err := svc.GetTask(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Deadline)
}

func TestGetTaskMissing(t *testing.T) {
	svc, _ := newTestTaskService(t)

	_, err := svc.GetTask(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.Equal(t, "Task not found", err.Error())
}

func TestOwnershipEnforcedPerOperation(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	owner := uuid.New()
	intruder := uuid.New()

	task, err := svc.CreateTask(ctx, owner, &dto.CreateTaskRequest{Title: "private"})
	require.NoError(t, err)

	_, err = svc.GetTask(ctx, intruder, task.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
	assert.Equal(t, "Unauthorized access to this task", err.Error())

	_, err = svc.UpdateTask(ctx, intruder, task.ID, &dto.UpdateTaskRequest{Title: strPtr("hijacked")})
	require.Error(t, err)
	assert.Equal(t, "Unauthorized to update this task", err.Error())

	err = svc.DeleteTask(ctx, intruder, task.ID)
	require.Error(t, err)
	assert.Equal(t, "Unauthorized to delete this task", err.Error())

	// The owner still sees the task untouched.
	got, err := svc.GetTask(ctx, owner, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}

func TestUpdateTaskPartialPatch(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly numbers",
		Priority:    models.TaskPriorityHigh,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{
		Status: strPtr(models.TaskStatusDone),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, updated.Status)
	assert.Equal(t, "write report", updated.Title)
	assert.Equal(t, "quarterly numbers", updated.Description)
	assert.Equal(t, models.TaskPriorityHigh, updated.Priority)
}

func TestUpdateTaskCanEmptyDescription(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{
		Title:       "write report",
		Description: "quarterly numbers",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{
		Description: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Description)

	got, err := svc.GetTask(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
}

func TestUpdateTaskRejectsBlankTitle(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "keep me"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, userID, task.ID, &dto.UpdateTaskRequest{Title: strPtr("   ")})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "Title cannot be empty", err.Error())

	got, err := svc.GetTask(ctx, userID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep me", got.Title)
}

func TestDeleteTaskThenGetReturnsNotFound(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	task, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "one shot"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTask(ctx, userID, task.ID))

	_, err = svc.GetTask(ctx, userID, task.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	err = svc.DeleteTask(ctx, userID, task.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListTasksNewestFirstAndFiltered(t *testing.T) {
	svc, db := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "oldest"})
	require.NoError(t, err)
	second, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "middle", Status: models.TaskStatusDone})
	require.NoError(t, err)
	third, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "newest", Priority: models.TaskPriorityHigh})
	require.NoError(t, err)

	// Spread creation times so the ordering is deterministic.
	base := time.Now().Add(-time.Hour)
	for i, id := range []uuid.UUID{first.ID, second.ID, third.ID} {
		require.NoError(t, db.Model(&models.Task{}).Where("id = ?", id).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	tasks, err := svc.ListTasks(ctx, userID, repositories.TaskListFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "newest", tasks[0].Title)
	assert.Equal(t, "middle", tasks[1].Title)
	assert.Equal(t, "oldest", tasks[2].Title)

	done, err := svc.ListTasks(ctx, userID, repositories.TaskListFilter{Status: models.TaskStatusDone})
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, "middle", done[0].Title)

	high, err := svc.ListTasks(ctx, userID, repositories.TaskListFilter{Priority: models.TaskPriorityHigh})
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, "newest", high[0].Title)
}

func TestListTasksScopedToOwner(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.CreateTask(ctx, alice, &dto.CreateTaskRequest{Title: "alice's"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, bob, &dto.CreateTaskRequest{Title: "bob's"})
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, alice, repositories.TaskListFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "alice's", tasks[0].Title)
}

func TestGetStatsCountsPerStatus(t *testing.T) {
	svc, _ := newTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, status := range []string{
		models.TaskStatusTodo,
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusDone,
	} {
		_, err := svc.CreateTask(ctx, userID, &dto.CreateTaskRequest{Title: "t", Status: status})
		require.NoError(t, err)
	}
	// Another user's tasks stay out of the stats.
	_, err := svc.CreateTask(ctx, uuid.New(), &dto.CreateTaskRequest{Title: "other"})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.Todo)
	assert.Equal(t, int64(1), stats.InProgress)
	assert.Equal(t, int64(1), stats.Done)
}
