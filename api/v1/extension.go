package v1

import (
	"encoding/json"

	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
)

// NewSearchBundle wraps stored task documents in a searchset Bundle,
// keeping their order.
func NewSearchBundle(bodies []string) Bundle {
	b := Bundle{
		ResourceType: ResourceTypeBundle,
		Type:         BundleTypeSearchset,
		Total:        len(bodies),
	}
	for _, body := range bodies {
		b.Entry = append(b.Entry, BundleEntry{
			Resource: json.RawMessage(body),
			Search:   &BundleSearch{Mode: "match"},
		})
	}
	return b
}

// NewOperationOutcome describes err as a single issue.
func NewOperationOutcome(err error) OperationOutcome {
	issue := Issue{Severity: IssueSeverityError, Code: IssueCodeException, Diagnostics: err.Error()}

	switch {
	case srvErrors.IsMalformedInputError(err):
		issue.Code = IssueCodeInvalid
	case srvErrors.IsResourceNotFoundError(err):
		issue.Code = IssueCodeNotFound
	case srvErrors.IsUnsupportedOperationError(err):
		issue.Code = IssueCodeNotSupported
	case srvErrors.IsConnectionError(err):
		issue.Severity = IssueSeverityFatal
		issue.Code = IssueCodeTransient
	case srvErrors.IsInfrastructureError(err):
		issue.Code = IssueCodeTransient
	}

	return OperationOutcome{
		ResourceType: ResourceTypeOperationOutcome,
		Issue:        []Issue{issue},
	}
}
