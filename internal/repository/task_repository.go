package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"smarttask/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List retrieves all tasks, most recently created first
func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// Update applies only the fields present in updates and returns the
// updated task. An empty map degenerates to a plain read of the record.
// Keys must use column names (title, description, due_date, priority).
func (r *TaskRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Task, error) {
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	result := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrTaskNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a task by its ID and returns the removed ID
func (r *TaskRepository) Delete(ctx context.Context, id uint) (uint, error) {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrTaskNotFound
	}
	return id, nil
}
