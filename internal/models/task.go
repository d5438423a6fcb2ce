package model

import (
	"taskboard.com/taskboard/internal/constants"
)

// Subtask is stored inline on its parent task as part of a JSON column.
// IDs are generated by the client that created the subtask and are only
// required to be unique within the parent task.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task represents a single board item. Date fields are kept as the wire
// strings the board exchanges (RFC 3339 for timestamps), not parsed times.
type Task struct {
	ID          string                 `gorm:"primaryKey;size:36" json:"id"`
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description"`
	DueDate     string                 `gorm:"size:50" json:"dueDate"`
	Priority    constants.TaskPriority `gorm:"type:varchar(10);not null" json:"priority"`
	Category    string                 `gorm:"size:100" json:"category"`
	Status      constants.TaskStatus   `gorm:"type:varchar(20);not null;default:todo" json:"status"`
	AssignedTo  []string               `gorm:"serializer:json" json:"assignedTo"`
	Subtasks    []Subtask              `gorm:"serializer:json" json:"subtasks"`
	CreatedAt   string                 `gorm:"size:50" json:"createdAt"`
	UpdatedAt   string                 `gorm:"size:50" json:"updatedAt,omitempty"`
	Order       *int                   `gorm:"column:sort_order" json:"order,omitempty"`
	IsPrivate   bool                   `gorm:"not null;default:false" json:"isPrivate"`
	OwnerID     string                 `gorm:"size:100" json:"ownerId,omitempty"`
}
