package v1

import "encoding/json"

const (
	ResourceTypeBundle           = "Bundle"
	ResourceTypeOperationOutcome = "OperationOutcome"

	BundleTypeSearchset = "searchset"
)

// Bundle is a FHIR searchset Bundle holding task documents as stored.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Type         string        `json:"type"`
	Total        int           `json:"total"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	Resource json.RawMessage `json:"resource"`
	Search   *BundleSearch   `json:"search,omitempty"`
}

type BundleSearch struct {
	Mode string `json:"mode"`
}

// OperationOutcome reports a failed request.
type OperationOutcome struct {
	ResourceType string  `json:"resourceType"`
	Issue        []Issue `json:"issue"`
}

type IssueSeverity string

const (
	IssueSeverityError IssueSeverity = "error"
	IssueSeverityFatal IssueSeverity = "fatal"
)

// IssueCode is a FHIR issue-type code.
type IssueCode string

const (
	IssueCodeInvalid      IssueCode = "invalid"
	IssueCodeNotFound     IssueCode = "not-found"
	IssueCodeNotSupported IssueCode = "not-supported"
	IssueCodeTransient    IssueCode = "transient"
	IssueCodeException    IssueCode = "exception"
)

type Issue struct {
	Severity    IssueSeverity `json:"severity"`
	Code        IssueCode     `json:"code"`
	Diagnostics string        `json:"diagnostics,omitempty"`
}
