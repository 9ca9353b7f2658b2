package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type TaskStatus string

// Wire values are camelCase; the database enum uses snake_case,
// the repository owns that mapping.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "inProgress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt"`
}

// Pointer fields distinguish an omitted field from an explicit value.
type CreateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	Status      *TaskStatus   `json:"status"`
}

func (r *CreateTaskRequest) Validate() error {
	if r.Title == nil || *r.Title == "" {
		return ErrInvalidTaskData
	}
	if r.Description == nil {
		return ErrInvalidTaskData
	}
	if r.Priority == nil || !r.Priority.Valid() {
		return ErrInvalidTaskData
	}
	if r.Status != nil && !r.Status.Valid() {
		return ErrInvalidTaskData
	}
	return nil
}

type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	Status      *TaskStatus   `json:"status"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return ErrInvalidTaskData
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return ErrInvalidTaskData
	}
	if r.Status != nil && !r.Status.Valid() {
		return ErrInvalidTaskData
	}
	return nil
}
