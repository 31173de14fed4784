package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/fhirfactory/hestia-task/api/v1"
	"github.com/fhirfactory/hestia-task/internal/services"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
)

const contentTypeFHIR = "application/fhir+json"

type Handler struct {
	taskSrv *services.TaskService
}

func New(taskSrv *services.TaskService) *Handler {
	return &Handler{
		taskSrv: taskSrv,
	}
}

// RegisterHandlers mounts the /Task routes on router.
func RegisterHandlers(router gin.IRouter, h *Handler) {
	tasks := router.Group("/Task")
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.SearchTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
}

// StatusCode maps an error to the HTTP status reported for it.
func StatusCode(err error) int {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		return http.StatusNotFound
	case srvErrors.IsUnsupportedOperationError(err):
		return http.StatusMethodNotAllowed
	case srvErrors.IsMalformedInputError(err):
		return http.StatusBadRequest
	case srvErrors.IsConnectionError(err), srvErrors.IsInfrastructureError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, err error) {
	c.Header("Content-Type", contentTypeFHIR)
	c.AbortWithStatusJSON(StatusCode(err), v1.NewOperationOutcome(err))
}
