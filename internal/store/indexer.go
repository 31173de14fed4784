package store

import (
	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/util"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// Attribute is one searchable attribute of a task and the INFO column it
// is denormalized into.
type Attribute struct {
	Qualifier string
	Extract   func(*models.Task) string
}

// Attributes are evaluated in order for every write. An extractor returns
// "" when the attribute does not apply to the task.
var Attributes = []Attribute{
	{Qualifier: QualifierStatus, Extract: status},
	{Qualifier: QualifierLoc, Extract: location},
	{Qualifier: QualifierCode, Extract: code},
	{Qualifier: QualifierPart, Extract: partOf},
	{Qualifier: QualifierBased, Extract: basedOn},
	{Qualifier: QualifierOwner, Extract: owner},
	{Qualifier: QualifierFocus, Extract: focus},
}

func status(t *models.Task) string {
	return string(t.Status)
}

func location(t *models.Task) string {
	return reference(t.Location)
}

func code(t *models.Task) string {
	if t.Code == nil {
		return ""
	}
	return t.Code.Text
}

func partOf(t *models.Task) string {
	if len(t.PartOf) == 0 {
		return ""
	}
	return t.PartOf[0].Reference
}

func basedOn(t *models.Task) string {
	if len(t.BasedOn) == 0 {
		return ""
	}
	return t.BasedOn[0].Reference
}

func owner(t *models.Task) string {
	return reference(t.Owner)
}

func focus(t *models.Task) string {
	return reference(t.Focus)
}

func reference(r *models.Reference) string {
	if r == nil {
		return ""
	}
	return r.Reference
}

// Encoder turns a task into its canonical text.
type Encoder interface {
	Encode(*models.Task) (string, error)
}

// Index builds the row for task: one INFO column for every attribute with a
// non-blank value plus the DATA:BODY column holding the encoded document.
func Index(task *models.Task, enc Encoder) (*widecol.Put, error) {
	if task == nil || util.IsBlank(task.ID) {
		return nil, srvErrors.NewMalformedInputError("task has no id", nil)
	}

	body, err := enc.Encode(task)
	if err != nil {
		return nil, err
	}

	put := widecol.NewPut(task.ID)
	for _, a := range Attributes {
		if v := a.Extract(task); !util.IsBlank(v) {
			put.AddColumn(FamilyInfo, a.Qualifier, []byte(v))
		}
	}
	put.AddColumn(FamilyData, QualifierBody, []byte(body))

	return put, nil
}
