package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskhub/task-service/internal/entity"
)

// ITaskRepository abstracts task persistence. Absence of a row is reported
// as a nil task with a nil error, not as an error value.
type ITaskRepository interface {
	Insert(ctx context.Context, task *entity.Task) (*entity.Task, error)
	GetById(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	UpdateById(ctx context.Context, id uuid.UUID, task *entity.Task) (*entity.Task, error)
	DeleteById(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]entity.Task, error)
}
