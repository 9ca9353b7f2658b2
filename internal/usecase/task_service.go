package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/taskhub/task-service/internal/entity"
	"github.com/taskhub/task-service/internal/repository"
)

type TaskService struct {
	taskRepo repository.ITaskRepository
}

func NewTaskService(taskRepo repository.ITaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task := NewTask(req, time.Now().UTC())

	return s.taskRepo.Insert(ctx, &task)
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	task, err := s.taskRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	return task, nil
}

// UpdateTask reads, merges and writes without row locking: two interleaved
// updates to the same task are last-write-wins.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, req *entity.UpdateTaskRequest) (*entity.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, entity.ErrTaskNotFound
	}

	merged := MergeUpdate(*existing, req, time.Now().UTC())

	updated, err := s.taskRepo.UpdateById(ctx, id, &merged)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// deleted between the read and the write
		return nil, entity.ErrTaskNotFound
	}

	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.taskRepo.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return entity.ErrTaskNotFound
	}

	return nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]entity.Task, error) {
	return s.taskRepo.ListAll(ctx)
}
