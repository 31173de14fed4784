package handlers

import (
	"io"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/fhirfactory/hestia-task/api/v1"
	"github.com/fhirfactory/hestia-task/internal/codec"
	"github.com/fhirfactory/hestia-task/internal/models"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
)

// CreateTask stores a new task
// (POST /Task)
func (h *Handler) CreateTask(c *gin.Context) {
	task, ok := readTask(c)
	if !ok {
		return
	}

	if _, err := h.taskSrv.Create(c.Request.Context(), task); err != nil {
		abort(c, err)
		return
	}

	c.Header("Location", path.Join(c.FullPath(), task.ID))
	c.Header("Content-Type", contentTypeFHIR)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask stores a task under the given id
// (PUT /Task/{id})
func (h *Handler) UpdateTask(c *gin.Context) {
	task, ok := readTask(c)
	if !ok {
		return
	}

	if _, err := h.taskSrv.Update(c.Request.Context(), c.Param("id"), task); err != nil {
		abort(c, err)
		return
	}

	c.Header("Content-Type", contentTypeFHIR)
	c.JSON(http.StatusOK, task)
}

// GetTask returns the task stored under the given id
// (GET /Task/{id})
func (h *Handler) GetTask(c *gin.Context) {
	task, err := h.taskSrv.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	c.Header("Content-Type", contentTypeFHIR)
	c.JSON(http.StatusOK, task)
}

// DeleteTask is refused: tasks are never deleted
// (DELETE /Task/{id})
func (h *Handler) DeleteTask(c *gin.Context) {
	abort(c, h.taskSrv.Delete(c.Request.Context(), c.Param("id")))
}

// SearchTasks returns the tasks matching every given attribute as a searchset Bundle
// (GET /Task?status=&location=&code=&part-of=&based-on=&owner=&focus=&limit=&order=)
func (h *Handler) SearchTasks(c *gin.Context) {
	params := models.TaskSearchParams{
		Status:    c.Query("status"),
		Location:  c.Query("location"),
		Code:      c.Query("code"),
		PartOf:    c.Query("part-of"),
		BasedOn:   c.Query("based-on"),
		Owner:     c.Query("owner"),
		Focus:     c.Query("focus"),
		Limit:     c.Query("limit"),
		Direction: models.Direction(c.Query("order")),
	}

	switch params.Direction {
	case models.DirectionUnspecified, models.DirectionAscending, models.DirectionDescending:
	default:
		abort(c, srvErrors.NewMalformedInputError("order must be asc or desc", nil))
		return
	}

	bodies, err := h.taskSrv.Search(c.Request.Context(), params)
	if err != nil {
		zap.S().Named("task_handler").Errorw("failed to search tasks", "error", err)
		abort(c, err)
		return
	}

	c.Header("Content-Type", contentTypeFHIR)
	c.JSON(http.StatusOK, v1.NewSearchBundle(bodies))
}

func readTask(c *gin.Context) (*models.Task, bool) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abort(c, srvErrors.NewMalformedInputError("failed to read request body", err))
		return nil, false
	}

	task, err := codec.JSON{}.Decode(string(data))
	if err != nil {
		abort(c, err)
		return nil, false
	}
	return task, true
}
