package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"taskhive-backend/internal/task/domain"
	"taskhive-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// taskUpdateFields is the allow-list for PATCH /tasks/:id. A request body
// containing any other key is rejected whole, before anything is applied.
var taskUpdateFields = map[string]bool{
	"description": true,
	"completed":   true,
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Description string `json:"description" binding:"required"`
	Completed   bool   `json:"completed"`
}

// CreateTask creates a new task owned by the authenticated user
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Description, req.Completed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks lists the authenticated user's tasks
// GET /tasks?completed=true&sortBy=createdAt_desc&limit=10&skip=20
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	// Non-numeric limit/skip behave like absent ones.
	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))

	tasks, err := h.taskUsecase.ListTasks(userID, usecase.ListQuery{
		Completed: c.Query("completed"),
		SortBy:    c.Query("sortBy"),
		Limit:     limit,
		Skip:      skip,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns one task scoped to the authenticated owner
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTask(userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies an allow-listed partial update to a task
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var raw map[string]json.RawMessage
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	for key := range raw {
		if !taskUpdateFields[key] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unallowed updates!"})
			return
		}
	}

	var upd usecase.UpdateRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task and returns the deleted snapshot
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.DeleteTask(userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}
