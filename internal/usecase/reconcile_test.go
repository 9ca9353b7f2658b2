package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/task-service/internal/entity"
)

func strPtr(s string) *string { return &s }

func priorityPtr(p entity.TaskPriority) *entity.TaskPriority { return &p }

func statusPtr(s entity.TaskStatus) *entity.TaskStatus { return &s }

func existingTask(status entity.TaskStatus, completedAt *time.Time) entity.Task {
	return entity.Task{
		ID:          uuid.New(),
		Title:       "Old Title",
		Description: "Old Description",
		Priority:    entity.PriorityMedium,
		Status:      status,
		CreatedAt:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		CompletedAt: completedAt,
	}
}

func TestNewTaskDefaultsToPending(t *testing.T) {
	now := time.Now().UTC()
	req := &entity.CreateTaskRequest{
		Title:       strPtr("A"),
		Description: strPtr(""),
		Priority:    priorityPtr(entity.PriorityHigh),
	}

	task := NewTask(req, now)

	if task.Status != entity.StatusPending {
		t.Errorf("Expected status %s, got %s", entity.StatusPending, task.Status)
	}
	if task.CompletedAt != nil {
		t.Errorf("Expected nil completedAt, got %v", task.CompletedAt)
	}
	if task.ID == uuid.Nil {
		t.Error("Expected generated id")
	}
	if task.Title != "A" || task.Description != "" || task.Priority != entity.PriorityHigh {
		t.Errorf("Unexpected merged fields: %+v", task)
	}
}

func TestNewTaskCompletedStampsTimestamp(t *testing.T) {
	now := time.Now().UTC()
	req := &entity.CreateTaskRequest{
		Title:       strPtr("Done already"),
		Description: strPtr("imported"),
		Priority:    priorityPtr(entity.PriorityLow),
		Status:      statusPtr(entity.StatusCompleted),
	}

	task := NewTask(req, now)

	if task.Status != entity.StatusCompleted {
		t.Errorf("Expected status %s, got %s", entity.StatusCompleted, task.Status)
	}
	if task.CompletedAt == nil {
		t.Fatal("Expected completedAt to be set")
	}
	if !task.CompletedAt.Equal(now) {
		t.Errorf("Expected completedAt %v, got %v", now, *task.CompletedAt)
	}
}

func TestNewTaskExplicitPendingHasNoCompletedAt(t *testing.T) {
	now := time.Now().UTC()
	req := &entity.CreateTaskRequest{
		Title:       strPtr("A"),
		Description: strPtr("B"),
		Priority:    priorityPtr(entity.PriorityMedium),
		Status:      statusPtr(entity.StatusInProgress),
	}

	task := NewTask(req, now)

	if task.CompletedAt != nil {
		t.Errorf("Expected nil completedAt, got %v", task.CompletedAt)
	}
}

func TestMergeUpdateTitleOnlyPreservesCompletedAt(t *testing.T) {
	completedAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	existing := existingTask(entity.StatusCompleted, &completedAt)
	now := time.Now().UTC()

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Title: strPtr("B")}, now)

	if merged.Title != "B" {
		t.Errorf("Expected title B, got %s", merged.Title)
	}
	if merged.Status != entity.StatusCompleted {
		t.Errorf("Expected status unchanged, got %s", merged.Status)
	}
	if merged.CompletedAt == nil || !merged.CompletedAt.Equal(completedAt) {
		t.Errorf("Expected completedAt %v unchanged, got %v", completedAt, merged.CompletedAt)
	}
}

func TestMergeUpdateTransitionToCompletedStamps(t *testing.T) {
	existing := existingTask(entity.StatusInProgress, nil)
	now := time.Now().UTC()

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Status: statusPtr(entity.StatusCompleted)}, now)

	if merged.CompletedAt == nil {
		t.Fatal("Expected completedAt to be set")
	}
	if !merged.CompletedAt.Equal(now) {
		t.Errorf("Expected completedAt %v, got %v", now, *merged.CompletedAt)
	}
	if merged.CompletedAt.Before(existing.CreatedAt) {
		t.Errorf("completedAt %v before createdAt %v", *merged.CompletedAt, existing.CreatedAt)
	}
}

func TestMergeUpdateReaffirmCompletedKeepsTimestamp(t *testing.T) {
	completedAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	existing := existingTask(entity.StatusCompleted, &completedAt)
	now := time.Now().UTC()

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Status: statusPtr(entity.StatusCompleted)}, now)

	if merged.CompletedAt == nil || !merged.CompletedAt.Equal(completedAt) {
		t.Errorf("Expected completedAt %v unchanged, got %v", completedAt, merged.CompletedAt)
	}
}

func TestMergeUpdateCompletedWithMissingTimestampRestamps(t *testing.T) {
	// completed row with no completed_at, e.g. written before the invariant existed
	existing := existingTask(entity.StatusCompleted, nil)
	now := time.Now().UTC()

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Status: statusPtr(entity.StatusCompleted)}, now)

	if merged.CompletedAt == nil || !merged.CompletedAt.Equal(now) {
		t.Errorf("Expected completedAt restamped to %v, got %v", now, merged.CompletedAt)
	}
}

func TestMergeUpdateAwayFromCompletedClears(t *testing.T) {
	completedAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	for _, status := range []entity.TaskStatus{entity.StatusPending, entity.StatusInProgress} {
		existing := existingTask(entity.StatusCompleted, &completedAt)

		merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Status: statusPtr(status)}, time.Now().UTC())

		if merged.Status != status {
			t.Errorf("Expected status %s, got %s", status, merged.Status)
		}
		if merged.CompletedAt != nil {
			t.Errorf("Expected completedAt cleared for %s, got %v", status, merged.CompletedAt)
		}
	}
}

func TestMergeUpdateExplicitNonCompletedStaysClear(t *testing.T) {
	existing := existingTask(entity.StatusPending, nil)

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Status: statusPtr(entity.StatusInProgress)}, time.Now().UTC())

	if merged.Status != entity.StatusInProgress {
		t.Errorf("Expected status %s, got %s", entity.StatusInProgress, merged.Status)
	}
	if merged.CompletedAt != nil {
		t.Errorf("Expected nil completedAt, got %v", merged.CompletedAt)
	}
}

func TestMergeUpdateOmittedFieldsKeepStoredValues(t *testing.T) {
	existing := existingTask(entity.StatusInProgress, nil)

	merged := MergeUpdate(existing, &entity.UpdateTaskRequest{Priority: priorityPtr(entity.PriorityHigh)}, time.Now().UTC())

	if merged.Priority != entity.PriorityHigh {
		t.Errorf("Expected priority high, got %s", merged.Priority)
	}
	if merged.Title != existing.Title || merged.Description != existing.Description {
		t.Errorf("Expected untouched fields preserved: %+v", merged)
	}
	if merged.Status != existing.Status {
		t.Errorf("Expected status unchanged, got %s", merged.Status)
	}
	if merged.ID != existing.ID || !merged.CreatedAt.Equal(existing.CreatedAt) {
		t.Error("Expected id and createdAt immutable")
	}
}
