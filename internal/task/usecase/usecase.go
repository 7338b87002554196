package usecase

import "taskhive-backend/internal/task/domain"

// ListQuery carries the raw query parameters of GET /tasks. Parsing the
// sortBy shape and the completed flag happens in the usecase.
type ListQuery struct {
	// Completed is the raw ?completed value; empty means no filter
	Completed string

	// SortBy is the raw ?sortBy value of the form <field>_<asc|desc>
	SortBy string

	// Limit caps the result count when positive; otherwise unbounded
	Limit int

	// Skip offsets into the result set when positive
	Skip int
}

// UpdateRequest enumerates the mutable task fields. Each field is optional;
// only non-nil fields are applied. Keys outside this set are rejected at the
// delivery layer before binding.
type UpdateRequest struct {
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskUsecase defines the owner-scoped task operations
type TaskUsecase interface {
	// CreateTask creates a task owned by the given user
	CreateTask(userID, description string, completed bool) (*domain.Task, error)

	// ListTasks returns the user's tasks, filtered, sorted and paginated
	ListTasks(userID string, q ListQuery) ([]*domain.Task, error)

	// GetTask returns one task scoped to (id, owner)
	GetTask(userID, taskID string) (*domain.Task, error)

	// UpdateTask applies the non-nil fields of the update to the task
	UpdateTask(userID, taskID string, upd UpdateRequest) (*domain.Task, error)

	// DeleteTask removes one task scoped to (id, owner) and returns its snapshot
	DeleteTask(userID, taskID string) (*domain.Task, error)

	// DeleteAllForUser removes every task owned by the user (account cascade)
	DeleteAllForUser(userID string) error
}
