package services

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"io"
	"slices"

	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/internal/codec"
	"github.com/fhirfactory/hestia-task/internal/models"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/scheduler"
)

// ImportFailure describes one task that was not stored.
type ImportFailure struct {
	Index   int
	ID      string
	Outcome models.StoreOutcome
	Err     error
}

// ImportSummary counts the outcome of every task of an import.
type ImportSummary struct {
	Good     int
	Bad      int
	Failed   int
	Failures []ImportFailure
}

func (s *ImportSummary) Total() int {
	return s.Good + s.Bad + s.Failed
}

func (s *ImportSummary) add(index int, id string, outcome models.StoreOutcome, err error) {
	switch outcome {
	case models.StoreOutcomeGood:
		s.Good++
		return
	case models.StoreOutcomeBad:
		s.Bad++
	default:
		s.Failed++
	}
	s.Failures = append(s.Failures, ImportFailure{Index: index, ID: id, Outcome: outcome, Err: err})
}

// ImportService writes many tasks concurrently.
type ImportService struct {
	tasks   *TaskService
	workers int
	codec   codec.JSON
}

func NewImportService(tasks *TaskService, workers int) *ImportService {
	return &ImportService{tasks: tasks, workers: workers}
}

// Import reads a searchset Bundle, a JSON array of tasks or a single task
// from r and creates every task in it. Entries that cannot be decoded count
// as Bad; only an unreadable document is returned as an error.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (*ImportSummary, error) {
	docs, err := readDocuments(r)
	if err != nil {
		return nil, err
	}

	log := zap.S().Named("import")
	log.Infow("importing tasks", "count", len(docs), "workers", s.workers)

	sched := scheduler.NewScheduler[models.StoreOutcome](s.workers)
	defer sched.Close()

	summary := &ImportSummary{}
	ids := make([]string, len(docs))
	futures := make([]*scheduler.Future[models.StoreOutcome], len(docs))
	for i, doc := range docs {
		task, err := s.codec.Decode(string(doc))
		if err != nil {
			summary.add(i, "", models.StoreOutcomeBad, err)
			continue
		}
		assignID(task)
		ids[i] = task.ID
		futures[i] = sched.AddWork(func(ctx context.Context) (models.StoreOutcome, error) {
			return s.tasks.Create(ctx, task)
		})
	}

	for i, f := range futures {
		if f == nil {
			continue
		}
		outcome, err := f.Wait(ctx)
		if err != nil && outcome == "" {
			outcome = Outcome(err)
		}
		summary.add(i, ids[i], outcome, err)
	}

	slices.SortFunc(summary.Failures, func(a, b ImportFailure) int {
		return cmp.Compare(a.Index, b.Index)
	})

	log.Infow("import done", "good", summary.Good, "bad", summary.Bad, "failed", summary.Failed)
	return summary, nil
}

type bundle struct {
	ResourceType string `json:"resourceType"`
	Entry        []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}

func readDocuments(r io.Reader) ([]json.RawMessage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, srvErrors.NewInfrastructureError("read import", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, srvErrors.NewMalformedInputError("import document is empty", nil)
	}

	if data[0] == '[' {
		var docs []json.RawMessage
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, srvErrors.NewMalformedInputError("invalid task array", err)
		}
		return docs, nil
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, srvErrors.NewMalformedInputError("invalid import document", err)
	}
	if b.ResourceType != "Bundle" {
		return []json.RawMessage{data}, nil
	}

	docs := make([]json.RawMessage, 0, len(b.Entry))
	for _, e := range b.Entry {
		docs = append(docs, e.Resource)
	}
	return docs, nil
}
