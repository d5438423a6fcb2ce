package dto

import (
	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
)

type CreateTaskRequest struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	DueDate     string                 `json:"dueDate"`
	Priority    constants.TaskPriority `json:"priority"`
	Category    string                 `json:"category"`
	Status      constants.TaskStatus   `json:"status"`
	AssignedTo  []string               `json:"assignedTo"`
	Subtasks    []model.Subtask        `json:"subtasks"`
	Order       *int                   `json:"order"`
	IsPrivate   bool                   `json:"isPrivate"`
	OwnerID     string                 `json:"ownerId"`
}

// UpdateTaskRequest carries a partial update. Only non-nil fields are
// written; everything else stays untouched server-side.
type UpdateTaskRequest struct {
	Title       *string                 `json:"title,omitempty"`
	Description *string                 `json:"description,omitempty"`
	DueDate     *string                 `json:"dueDate,omitempty"`
	Priority    *constants.TaskPriority `json:"priority,omitempty"`
	Category    *string                 `json:"category,omitempty"`
	Status      *constants.TaskStatus   `json:"status,omitempty"`
	AssignedTo  *[]string               `json:"assignedTo,omitempty"`
	Subtasks    *[]model.Subtask        `json:"subtasks,omitempty"`
	Order       *int                    `json:"order,omitempty"`
	IsPrivate   *bool                   `json:"isPrivate,omitempty"`
}

func (r *UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil &&
		r.Priority == nil && r.Category == nil && r.Status == nil &&
		r.AssignedTo == nil && r.Subtasks == nil && r.Order == nil &&
		r.IsPrivate == nil
}
