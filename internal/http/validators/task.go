package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	model "taskboard.com/taskboard/internal/models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if !r.Priority.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be urgent, medium or low")
	}
	if r.Status != "" && !r.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	return validateSubtasks(r.Subtasks)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields to update")
	}
	if r.Title != nil && *r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title must not be empty")
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be urgent, medium or low")
	}
	if r.Status != nil && !r.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
	}
	if r.Subtasks != nil {
		return validateSubtasks(*r.Subtasks)
	}
	return nil
}

func validateSubtasks(subtasks []model.Subtask) error {
	seen := make(map[string]struct{}, len(subtasks))
	for _, st := range subtasks {
		if st.ID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "subtask id is required")
		}
		if _, dup := seen[st.ID]; dup {
			return echo.NewHTTPError(http.StatusBadRequest, "duplicate subtask id")
		}
		seen[st.ID] = struct{}{}
		if len([]rune(st.Title)) > constants.SubtaskTitleMaxLen {
			return echo.NewHTTPError(http.StatusBadRequest, "subtask title too long")
		}
	}
	return nil
}
