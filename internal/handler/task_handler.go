package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smarttask/internal/model"
	"smarttask/internal/repository"
	"smarttask/internal/service"
)

const dueDateLayout = "2006-01-02"

// TaskService is the application surface the handler depends on.
type TaskService interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, in service.CreateTaskInput) (*model.Task, error)
	UpdateTask(ctx context.Context, id uint, in service.UpdateTaskInput) (*model.Task, error)
	DeleteTask(ctx context.Context, id uint) (uint, error)
}

type TaskHandler struct {
	service TaskService
}

func NewTaskHandler(service TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// CreateTaskRequest defines the expected request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest defines the expected request body for updating a task.
// Every field is optional; omitted fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

// TaskResponse represents a task as serialized to clients
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"due_date"`
	Priority    string    `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		CreatedAt:   task.CreatedAt,
	}
	if task.DueDate != nil {
		formatted := task.DueDate.Format(dueDateLayout)
		resp.DueDate = &formatted
	}
	return resp
}

// GetTasks returns all tasks, most recently created first
func (h *TaskHandler) GetTasks(c *gin.Context) {
	tasks, err := h.service.ListTasks(c.Request.Context())
	if err != nil {
		log.Printf("❌ Failed to fetch tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		response = append(response, toTaskResponse(&tasks[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Create creates a new task with a classifier-suggested priority
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	dueDate, ok := parseDueDate(c, req.DueDate)
	if !ok {
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		log.Printf("❌ Failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Update applies a partial update to a task
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	input := service.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil {
		dueDate, ok := parseDueDate(c, req.DueDate)
		if !ok {
			return
		}
		input.DueDate = dueDate
		input.DueDatePresent = true
	}

	task, err := h.service.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("❌ Failed to update task %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete removes a task
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deletedID, err := h.service.DeleteTask(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("❌ Failed to delete task %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted", "id": deletedID})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return 0, false
	}
	return uint(id), true
}

// parseDueDate turns a YYYY-MM-DD string into a date. An empty string
// yields nil, which clears the stored date.
func parseDueDate(c *gin.Context, raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(dueDateLayout, *raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due_date format, expected YYYY-MM-DD"})
		return nil, false
	}
	return &parsed, true
}
