package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhub/task-service/internal/entity"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// The task_status enum stores in_progress while the API speaks inProgress.
func statusToDB(s entity.TaskStatus) string {
	if s == entity.StatusInProgress {
		return "in_progress"
	}
	return string(s)
}

func statusFromDB(s string) entity.TaskStatus {
	if s == "in_progress" {
		return entity.StatusInProgress
	}
	return entity.TaskStatus(s)
}

func scanTask(row pgx.Row) (*entity.Task, error) {
	var task entity.Task
	var priority, status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&priority,
		&status,
		&task.CreatedAt,
		&task.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = entity.TaskPriority(priority)
	task.Status = statusFromDB(status)
	return &task, nil
}

func (r *TaskRepository) Insert(ctx context.Context, task *entity.Task) (*entity.Task, error) {

	query := `
	INSERT INTO tasks (id, title, description, priority, status, completed_at)
	VALUES ($1, $2, $3, $4::task_priority, $5::task_status, $6)
	RETURNING id, title, description, priority::text, status::text, created_at, completed_at
	`

	row := r.db.QueryRow(ctx, query,
		task.ID,
		task.Title,
		task.Description,
		string(task.Priority),
		statusToDB(task.Status),
		task.CompletedAt,
	)

	return scanTask(row)
}

func (r *TaskRepository) GetById(ctx context.Context, id uuid.UUID) (*entity.Task, error) {

	query := `
	SELECT id, title, description, priority::text, status::text, created_at, completed_at
	FROM tasks
	WHERE id = $1
	`

	task, err := scanTask(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return task, nil
}

// UpdateById replaces every mutable column; the caller supplies the full
// post-merge record. Zero rows returned means the task vanished.
func (r *TaskRepository) UpdateById(ctx context.Context, id uuid.UUID, task *entity.Task) (*entity.Task, error) {

	query := `
	UPDATE tasks
	SET title = $1, description = $2, priority = $3::task_priority, status = $4::task_status, completed_at = $5
	WHERE id = $6
	RETURNING id, title, description, priority::text, status::text, created_at, completed_at
	`

	updated, err := scanTask(r.db.QueryRow(ctx, query,
		task.Title,
		task.Description,
		string(task.Priority),
		statusToDB(task.Status),
		task.CompletedAt,
		id,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return updated, nil
}

func (r *TaskRepository) DeleteById(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM tasks WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TaskRepository) ListAll(ctx context.Context) ([]entity.Task, error) {

	query := `
	SELECT id, title, description, priority::text, status::text, created_at, completed_at
	FROM tasks
	ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
