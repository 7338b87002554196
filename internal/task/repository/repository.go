package repository

import "taskhive-backend/internal/task/domain"

// ListOptions narrows and orders an owner-scoped task listing. Zero values
// mean "no filter", "no ordering", "no bound".
type ListOptions struct {
	// Completed filters on the completed flag when non-nil
	Completed *bool

	// SortColumn is a vetted column name; empty applies no ordering
	SortColumn string

	// SortDesc orders descending when SortColumn is set
	SortDesc bool

	// Limit caps the result count when positive
	Limit int

	// Skip offsets into the result set when positive
	Skip int
}

// TaskRepository defines the interface for task data access. Every lookup is
// owner-scoped: a task is only reachable through its owning user's id.
type TaskRepository interface {
	// Create persists a new task
	Create(task *domain.Task) error

	// FindByOwner lists the user's tasks per the given options
	FindByOwner(userID string, opts ListOptions) ([]*domain.Task, error)

	// FindByIDAndOwner finds one task scoped to (id, owner);
	// returns (nil, nil) when absent
	FindByIDAndOwner(id, userID string) (*domain.Task, error)

	// Update persists changes to an existing task
	Update(task *domain.Task) error

	// DeleteByIDAndOwner removes one task scoped to (id, owner) and returns
	// the deleted snapshot; returns (nil, nil) when absent
	DeleteByIDAndOwner(id, userID string) (*domain.Task, error)

	// DeleteByOwner removes all tasks owned by the user
	DeleteByOwner(userID string) error
}
