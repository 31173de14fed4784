package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/internal/codec"
	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/store"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// TaskRepository stores task rows.
type TaskRepository interface {
	Put(ctx context.Context, put *widecol.Put) error
	Get(ctx context.Context, key string) (*widecol.Result, error)
	Delete(ctx context.Context, key string) error
}

// TaskSearcher runs attribute searches.
type TaskSearcher interface {
	DoSearch(ctx context.Context, params models.TaskSearchParams) ([]string, error)
}

// idPrefix is prepended to generated task ids.
const idPrefix = "Task-"

type TaskService struct {
	tasks  TaskRepository
	search TaskSearcher
	codec  codec.JSON
}

func NewTaskService(tasks TaskRepository, search TaskSearcher) *TaskService {
	return &TaskService{tasks: tasks, search: search}
}

// Outcome maps the error of a write to its outcome.
func Outcome(err error) models.StoreOutcome {
	if err == nil {
		return models.StoreOutcomeGood
	}
	if srvErrors.Classify(err) == srvErrors.SourceCaller {
		return models.StoreOutcomeBad
	}
	return models.StoreOutcomeFailed
}

// Write indexes and stores task under its id.
func (s *TaskService) Write(ctx context.Context, task *models.Task) (models.StoreOutcome, error) {
	put, err := store.Index(task, s.codec)
	if err == nil {
		err = s.tasks.Put(ctx, put)
	}

	outcome := Outcome(err)
	if err != nil {
		zap.S().Named("task_service").Warnw("failed to write task", "id", taskID(task), "outcome", outcome, "error", err)
	}
	return outcome, err
}

// Create stores a new task. A task without id gets a generated one.
func (s *TaskService) Create(ctx context.Context, task *models.Task) (models.StoreOutcome, error) {
	if task == nil {
		return models.StoreOutcomeBad, srvErrors.NewMalformedInputError("task is required", nil)
	}
	assignID(task)
	return s.Write(ctx, task)
}

func assignID(task *models.Task) {
	if task.ID == "" {
		task.ID = idPrefix + uuid.NewString()
	}
}

// Update stores task under id. The task may omit its id but must not carry
// a different one.
func (s *TaskService) Update(ctx context.Context, id string, task *models.Task) (models.StoreOutcome, error) {
	if task == nil {
		return models.StoreOutcomeBad, srvErrors.NewMalformedInputError("task is required", nil)
	}
	if id == "" {
		return models.StoreOutcomeBad, srvErrors.NewMalformedInputError("update requires an id", nil)
	}
	if task.ID != "" && task.ID != id {
		return models.StoreOutcomeBad, srvErrors.NewMalformedInputError(fmt.Sprintf("task id %q does not match %q", task.ID, id), nil)
	}
	task.ID = id
	return s.Write(ctx, task)
}

// Get reads the task stored under id.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	result, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	body, ok := result.Value(store.FamilyData, store.QualifierBody)
	if !ok {
		return nil, srvErrors.NewResourceNotFoundError("Task", id)
	}
	return s.codec.Decode(string(body))
}

// Delete is not supported and always returns an UnsupportedOperationError.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

// Search returns the stored documents of the tasks matching params.
func (s *TaskService) Search(ctx context.Context, params models.TaskSearchParams) ([]string, error) {
	return s.search.DoSearch(ctx, params)
}

func taskID(t *models.Task) string {
	if t == nil {
		return ""
	}
	return t.ID
}
