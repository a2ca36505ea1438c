package service

import (
	"context"
	"errors"
	"time"

	"smarttask/internal/classifier"
	"smarttask/internal/model"
)

var (
	// ErrTitleRequired is returned when a create request carries no title
	ErrTitleRequired = errors.New("title is required")
)

// TaskStore is the persistence surface the service depends on.
type TaskStore interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*model.Task, error)
	Delete(ctx context.Context, id uint) (uint, error)
}

// PriorityClassifier suggests a priority for a task description.
// Implementations never fail; they fall back to a fixed default.
type PriorityClassifier interface {
	Classify(ctx context.Context, description string) classifier.Result
}

type TaskService struct {
	store      TaskStore
	classifier PriorityClassifier
}

func NewTaskService(store TaskStore, classifier PriorityClassifier) *TaskService {
	return &TaskService{store: store, classifier: classifier}
}

// CreateTaskInput carries the client-supplied fields of a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. Nil pointers mean the field
// was absent from the request. DueDatePresent distinguishes "clear the
// date" (present, nil DueDate) from "leave it alone" (absent).
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DueDate        *time.Time
	DueDatePresent bool
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.List(ctx)
}

// CreateTask validates the title, asks the classifier for a priority and
// persists the task. The classifier is consulted unconditionally, even
// for an empty description.
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	suggestion := s.classifier.Classify(ctx, in.Description)

	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    suggestion.Priority,
	}
	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies the present fields to the stored task. The priority
// is recomputed whenever the request carries a description, including an
// empty one; a request without a description leaves it untouched.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, in UpdateTaskInput) (*model.Task, error) {
	updates := map[string]interface{}{}

	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		suggestion := s.classifier.Classify(ctx, *in.Description)
		updates["description"] = *in.Description
		updates["priority"] = suggestion.Priority
	}
	if in.DueDatePresent {
		updates["due_date"] = in.DueDate
	}

	return s.store.Update(ctx, id, updates)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) (uint, error) {
	return s.store.Delete(ctx, id)
}
