package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	apperrors "taskboard.com/taskboard/internal/errors"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
	model "taskboard.com/taskboard/internal/models"
	"taskboard.com/taskboard/internal/services"
)

type Handler struct {
	taskService     *services.TaskService
	settingsService *services.SettingsService
	authService     *services.AuthService
	contactService  *services.ContactService
}

func NewHandler(
	taskService *services.TaskService,
	settingsService *services.SettingsService,
	authService *services.AuthService,
	contactService *services.ContactService,
) *Handler {
	return &Handler{
		taskService:     taskService,
		settingsService: settingsService,
		authService:     authService,
		contactService:  contactService,
	}
}

// ListTasks serves the board for the requested view mode. The private view
// is always scoped to the authenticated user, regardless of the userId
// query parameter.
func (h *Handler) ListTasks(c echo.Context) error {
	viewMode := constants.ViewMode(c.QueryParam("viewMode"))
	if viewMode == "" {
		viewMode = constants.ViewModePublic
	}
	if !viewMode.Valid() {
		return httpError(apperrors.ErrInvalidViewMode)
	}

	userID, _ := c.Get(middleware.UserIDContextKey).(string)

	tasks, err := h.taskService.List(c.Request().Context(), viewMode, userID)
	if err != nil {
		log.WithError(err).Error("list tasks failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	if tasks == nil {
		tasks = []model.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	task, err := h.taskService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	if req.OwnerID == "" {
		if userID, ok := c.Get(middleware.UserIDContextKey).(string); ok {
			req.OwnerID = userID
		}
	}

	task, err := h.taskService.Create(c.Request().Context(), &req)
	if err != nil {
		log.WithError(err).Error("create task failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	if err := h.taskService.Update(c.Request().Context(), id, &req); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return httpError(apperrors.ErrTaskIDRequired)
	}

	if err := h.taskService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// httpError maps service errors onto echo responses, falling back to a
// plain 500 for anything without a declared status code.
func httpError(err error) error {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
		return echo.NewHTTPError(code, "internal server error")
	}
	return echo.NewHTTPError(code, err.Error())
}
