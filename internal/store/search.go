package store

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/util"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// Scanner is the part of TaskStore the search engine drives.
type Scanner interface {
	Scan(ctx context.Context, scan *widecol.Scan) ([]*widecol.Result, error)
}

// SearchEngine turns search parameters into a filtered scan of the task table.
type SearchEngine struct {
	tasks Scanner
}

func NewSearchEngine(tasks Scanner) *SearchEngine {
	return &SearchEngine{tasks: tasks}
}

// DoSearch returns the bodies of the rows matching every non-blank attribute
// of params, in row key order. No attribute, or a limit that is not a
// positive integer, yields no results without scanning.
func (e *SearchEngine) DoSearch(ctx context.Context, params models.TaskSearchParams) ([]string, error) {
	log := zap.S().Named("search")

	filters := Predicates(params)
	if filters.Len() == 0 {
		log.Infow("search has no attributes, returning no results")
		return []string{}, nil
	}

	scan := widecol.NewScan().SetFilter(filters)

	if !util.IsBlank(params.Limit) {
		// The engines take LIMIT as a signed 64-bit value.
		limit, err := strconv.ParseInt(strings.TrimSpace(params.Limit), 10, 64)
		if err != nil || limit <= 0 {
			log.Warnw("search limit is not a positive integer, returning no results", "limit", params.Limit)
			return []string{}, nil
		}
		scan.SetLimit(uint64(limit)).SetReversed(params.Direction != models.DirectionAscending)
	}

	results, err := e.tasks.Scan(ctx, scan)
	if err != nil {
		return nil, err
	}

	bodies := make([]string, 0, len(results))
	for _, r := range results {
		body, ok := r.Value(FamilyData, QualifierBody)
		if !ok {
			log.Debugw("row has no body, skipping", "row", r.Row())
			continue
		}
		bodies = append(bodies, string(body))
	}

	log.Debugw("search done", "filters", filters.Len(), "results", len(bodies))
	return bodies, nil
}

// Predicates builds one equality filter per non-blank attribute of params.
// All filters must pass.
func Predicates(params models.TaskSearchParams) *widecol.FilterList {
	list := widecol.NewFilterList(widecol.MustPassAll)
	for _, a := range []struct {
		qualifier string
		value     string
	}{
		{QualifierStatus, params.Status},
		{QualifierLoc, params.Location},
		{QualifierCode, params.Code},
		{QualifierPart, params.PartOf},
		{QualifierBased, params.BasedOn},
		{QualifierOwner, params.Owner},
		{QualifierFocus, params.Focus},
	} {
		if util.IsBlank(a.value) {
			continue
		}
		list.AddFilter(widecol.DependentColumnFilter(FamilyInfo, a.qualifier, widecol.RegexStringComparator(ExactPattern(a.value))))
	}
	return list
}

// ExactPattern returns a pattern matching exactly value.
func ExactPattern(value string) string {
	return "^" + regexp.QuoteMeta(value) + "$"
}
