package models

// ResourceTypeTask is the FHIR resource type of a Task document.
const ResourceTypeTask = "Task"

// TaskStatus is the FHIR R4 task-status code.
type TaskStatus string

const (
	TaskStatusDraft          TaskStatus = "draft"
	TaskStatusRequested      TaskStatus = "requested"
	TaskStatusReceived       TaskStatus = "received"
	TaskStatusAccepted       TaskStatus = "accepted"
	TaskStatusRejected       TaskStatus = "rejected"
	TaskStatusReady          TaskStatus = "ready"
	TaskStatusCancelled      TaskStatus = "cancelled"
	TaskStatusInProgress     TaskStatus = "in-progress"
	TaskStatusOnHold         TaskStatus = "on-hold"
	TaskStatusFailed         TaskStatus = "failed"
	TaskStatusCompleted      TaskStatus = "completed"
	TaskStatusEnteredInError TaskStatus = "entered-in-error"
)

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Identifier struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type Annotation struct {
	AuthorString string `json:"authorString,omitempty"`
	Time         string `json:"time,omitempty"`
	Text         string `json:"text"`
}

type Meta struct {
	VersionID   string `json:"versionId,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Task is the subset of the FHIR R4 Task resource handled by this service.
type Task struct {
	ResourceType     string           `json:"resourceType"`
	ID               string           `json:"id,omitempty"`
	Meta             *Meta            `json:"meta,omitempty"`
	Identifier       []Identifier     `json:"identifier,omitempty"`
	BasedOn          []Reference      `json:"basedOn,omitempty"`
	PartOf           []Reference      `json:"partOf,omitempty"`
	Status           TaskStatus       `json:"status,omitempty"`
	StatusReason     *CodeableConcept `json:"statusReason,omitempty"`
	BusinessStatus   *CodeableConcept `json:"businessStatus,omitempty"`
	Intent           string           `json:"intent,omitempty"`
	Priority         string           `json:"priority,omitempty"`
	Code             *CodeableConcept `json:"code,omitempty"`
	Description      string           `json:"description,omitempty"`
	Focus            *Reference       `json:"focus,omitempty"`
	For              *Reference       `json:"for,omitempty"`
	ExecutionPeriod  *Period          `json:"executionPeriod,omitempty"`
	AuthoredOn       string           `json:"authoredOn,omitempty"`
	LastModified     string           `json:"lastModified,omitempty"`
	Requester        *Reference       `json:"requester,omitempty"`
	Owner            *Reference       `json:"owner,omitempty"`
	Location         *Reference       `json:"location,omitempty"`
	Note             []Annotation     `json:"note,omitempty"`
}
