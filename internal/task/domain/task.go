package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a missing task and a task owned by another user;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("task not found")

// Task is a single to-do item belonging to exactly one user. Only
// Description and Completed are mutable after creation.
type Task struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Description string    `json:"description" gorm:"not null"`
	Completed   bool      `json:"completed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
