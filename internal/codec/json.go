// Package codec converts tasks to and from their canonical JSON text, the
// form kept in the DATA:BODY column.
package codec

import (
	"encoding/json"
	"fmt"

	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/util"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
)

// JSON is the canonical task codec.
type JSON struct{}

func (JSON) Encode(t *models.Task) (string, error) {
	if t == nil {
		return "", srvErrors.NewMalformedInputError("task is nil", nil)
	}
	doc := *t
	if doc.ResourceType == "" {
		doc.ResourceType = models.ResourceTypeTask
	}
	if doc.ResourceType != models.ResourceTypeTask {
		return "", srvErrors.NewMalformedInputError(fmt.Sprintf("resourceType %q is not %s", doc.ResourceType, models.ResourceTypeTask), nil)
	}
	data, err := json.Marshal(&doc)
	if err != nil {
		return "", srvErrors.NewMalformedInputError("failed to encode task", err)
	}
	return string(data), nil
}

func (JSON) Decode(body string) (*models.Task, error) {
	if util.IsBlank(body) {
		return nil, srvErrors.NewMalformedInputError("empty task document", nil)
	}
	var t models.Task
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		return nil, srvErrors.NewMalformedInputError("failed to decode task", err)
	}
	if t.ResourceType != models.ResourceTypeTask {
		return nil, srvErrors.NewMalformedInputError(fmt.Sprintf("resourceType %q is not %s", t.ResourceType, models.ResourceTypeTask), nil)
	}
	return &t, nil
}
