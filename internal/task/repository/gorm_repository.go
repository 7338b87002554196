package repository

import (
	"errors"
	"time"

	"taskhive-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByOwner(userID string, opts ListOptions) ([]*domain.Task, error) {
	var tasks []*domain.Task

	query := r.db.Where("user_id = ?", userID)

	if opts.Completed != nil {
		query = query.Where("completed = ?", *opts.Completed)
	}

	if opts.SortColumn != "" {
		direction := "ASC"
		if opts.SortDesc {
			direction = "DESC"
		}
		query = query.Order(opts.SortColumn + " " + direction)
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Skip > 0 {
		query = query.Offset(opts.Skip)
	}

	err := query.Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByIDAndOwner(id, userID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

// DeleteByIDAndOwner is a single DELETE ... RETURNING statement so the lookup
// and the removal cannot race.
func (r *gormTaskRepository) DeleteByIDAndOwner(id, userID string) (*domain.Task, error) {
	var task domain.Task
	tx := r.db.Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&task)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &task, nil
}

func (r *gormTaskRepository) DeleteByOwner(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Task{}).Error
}
