package repository_test

import (
	"context"
	"testing"
	"time"

	"smarttask/internal/model"
	"smarttask/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func taskColumns() []string {
	return []string{"id", "title", "description", "due_date", "priority", "created_at"}
}

func TestTaskRepository_List(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	newer := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Expect a SELECT ordered by creation time, newest first
	mock.ExpectQuery(`SELECT .* FROM "tasks" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(2, "Second", "", nil, "Low", newer).
			AddRow(1, "First", "urgent", nil, "High", older))

	// Act
	tasks, err := taskRepo.List(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, uint(2), tasks[0].ID)
	assert.Equal(t, uint(1), tasks[1].ID)
	assert.Equal(t, model.PriorityHigh, tasks[1].Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_List_Empty(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	// Act
	tasks, err := taskRepo.List(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	task := &model.Task{
		Title:       "Write report",
		Description: "urgent, due tomorrow",
		Priority:    model.PriorityMedium,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks"`).
		WithArgs(task.Title, task.Description, nil, string(task.Priority), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Create(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uint(1), task.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_PartialFields(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	updates := map[string]interface{}{
		"description": "",
		"priority":    model.PriorityLow,
	}

	// Only the supplied columns appear in the SET clause
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET "description"=.*,"priority"=.* WHERE id = .*`).
		WithArgs("", string(model.PriorityLow), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(1, "Write report", "", nil, "Low", time.Now()))

	// Act
	task, err := taskRepo.Update(context.Background(), 1, updates)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, model.PriorityLow, task.Priority)
	assert.Equal(t, "", task.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_EmptyFieldsIsARead(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	// No UPDATE is issued when nothing is supplied
	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .*`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(1, "Write report", "urgent", nil, "High", time.Now()))

	// Act
	task, err := taskRepo.Update(context.Background(), 1, map[string]interface{}{})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uint(1), task.ID)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "tasks" SET "title"=.* WHERE id = .*`).
		WithArgs("New title", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	task, err := taskRepo.Update(context.Background(), 42, map[string]interface{}{"title": "New title"})

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	id, err := taskRepo.Delete(context.Background(), 1)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, uint(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	_, err := taskRepo.Delete(context.Background(), 42)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
