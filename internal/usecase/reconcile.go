package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/task-service/internal/entity"
)

// NewTask builds the record to persist from a validated create request.
// Status defaults to pending; completedAt is stamped only when the task is
// born completed. CreatedAt is left zero, the database assigns it.
func NewTask(req *entity.CreateTaskRequest, now time.Time) entity.Task {
	status := entity.StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	var completedAt *time.Time
	if status == entity.StatusCompleted {
		completedAt = &now
	}

	return entity.Task{
		ID:          uuid.New(),
		Title:       *req.Title,
		Description: *req.Description,
		Priority:    *req.Priority,
		Status:      status,
		CompletedAt: completedAt,
	}
}

// MergeUpdate computes the next persisted state of a task from a validated
// partial update. Omitted fields keep their stored values.
//
// completedAt follows the status transition, not the status value:
//   - moving into completed stamps it with now
//   - re-affirming completed keeps the original timestamp
//   - explicitly moving away from completed clears it
//   - an update that omits status leaves it untouched
func MergeUpdate(existing entity.Task, req *entity.UpdateTaskRequest, now time.Time) entity.Task {
	merged := existing

	statusProvided := req.Status != nil
	if statusProvided {
		merged.Status = *req.Status
	}

	switch {
	case merged.Status == entity.StatusCompleted:
		if existing.Status != entity.StatusCompleted || existing.CompletedAt == nil {
			merged.CompletedAt = &now
		}
	case statusProvided:
		merged.CompletedAt = nil
	}

	if req.Title != nil {
		merged.Title = *req.Title
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Priority != nil {
		merged.Priority = *req.Priority
	}

	return merged
}
