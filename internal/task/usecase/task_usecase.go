package usecase

import (
	"strings"

	"taskhive-backend/internal/task/domain"
	"taskhive-backend/internal/task/repository"
)

// sortableColumns maps API sort fields to vetted column names. Unknown
// fields degrade to no ordering, never into the query string.
var sortableColumns = map[string]string{
	"description": "description",
	"completed":   "completed",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) CreateTask(userID, description string, completed bool) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      userID,
		Description: description,
		Completed:   completed,
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) ListTasks(userID string, q ListQuery) ([]*domain.Task, error) {
	opts := repository.ListOptions{
		Limit: q.Limit,
		Skip:  q.Skip,
	}

	if q.Completed != "" {
		completed := q.Completed == "true"
		opts.Completed = &completed
	}

	opts.SortColumn, opts.SortDesc = parseSortBy(q.SortBy)

	tasks, err := u.taskRepo.FindByOwner(userID, opts)
	if err != nil {
		return nil, err
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

func (u *taskUsecase) GetTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByIDAndOwner(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(userID, taskID string, upd UpdateRequest) (*domain.Task, error) {
	task, err := u.GetTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.DeleteByIDAndOwner(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (u *taskUsecase) DeleteAllForUser(userID string) error {
	return u.taskRepo.DeleteByOwner(userID)
}

// parseSortBy interprets the <field>_<asc|desc> shape. It only takes effect
// when the value splits into exactly two non-empty parts, the suffix is a
// literal direction and the field is sortable; anything else means no
// ordering.
func parseSortBy(sortBy string) (column string, desc bool) {
	parts := strings.Split(sortBy, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}

	column, ok := sortableColumns[parts[0]]
	if !ok {
		return "", false
	}

	switch parts[1] {
	case "asc":
		return column, false
	case "desc":
		return column, true
	default:
		return "", false
	}
}
