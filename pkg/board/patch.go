package board

import (
	"fmt"
)

// Patch is a partial task update with one explicit optional field per
// mutable task attribute. The zero value changes nothing; nil fields are
// left untouched by the backend. Its JSON form is exactly the wire payload
// of a partial update.
type Patch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *string    `json:"dueDate,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	AssignedTo  *[]string  `json:"assignedTo,omitempty"`
	Subtasks    *[]Subtask `json:"subtasks,omitempty"`
	Order       *int       `json:"order,omitempty"`
	IsPrivate   *bool      `json:"isPrivate,omitempty"`
	UpdatedAt   *string    `json:"updatedAt,omitempty"`
}

func (p Patch) WithTitle(title string) Patch             { p.Title = &title; return p }
func (p Patch) WithDescription(description string) Patch { p.Description = &description; return p }
func (p Patch) WithDueDate(dueDate string) Patch         { p.DueDate = &dueDate; return p }
func (p Patch) WithPriority(priority Priority) Patch     { p.Priority = &priority; return p }
func (p Patch) WithCategory(category string) Patch       { p.Category = &category; return p }
func (p Patch) WithStatus(status Status) Patch           { p.Status = &status; return p }
func (p Patch) WithAssignedTo(ids []string) Patch        { p.AssignedTo = &ids; return p }
func (p Patch) WithSubtasks(subtasks []Subtask) Patch    { p.Subtasks = &subtasks; return p }
func (p Patch) WithOrder(order int) Patch                { p.Order = &order; return p }
func (p Patch) WithPrivate(isPrivate bool) Patch         { p.IsPrivate = &isPrivate; return p }
func (p Patch) WithUpdatedAt(updatedAt string) Patch     { p.UpdatedAt = &updatedAt; return p }

func (p Patch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		p.Priority == nil && p.Category == nil && p.Status == nil &&
		p.AssignedTo == nil && p.Subtasks == nil && p.Order == nil &&
		p.IsPrivate == nil && p.UpdatedAt == nil
}

// Validate checks the patch before dispatch so obviously bad payloads never
// reach the wire.
func (p Patch) Validate() error {
	if p.IsZero() {
		return fmt.Errorf("empty patch")
	}
	if p.Title != nil && *p.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("invalid priority %q", *p.Priority)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("invalid status %q", *p.Status)
	}
	if p.Subtasks != nil {
		seen := make(map[string]struct{}, len(*p.Subtasks))
		for _, st := range *p.Subtasks {
			if st.ID == "" {
				return fmt.Errorf("subtask id must not be empty")
			}
			if _, dup := seen[st.ID]; dup {
				return fmt.Errorf("duplicate subtask id %q", st.ID)
			}
			seen[st.ID] = struct{}{}
		}
	}
	return nil
}

// apply patches a task in place; used for optimistic local mutation.
func (p Patch) apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssignedTo != nil {
		t.AssignedTo = append([]string(nil), (*p.AssignedTo)...)
	}
	if p.Subtasks != nil {
		t.Subtasks = append([]Subtask(nil), (*p.Subtasks)...)
	}
	if p.Order != nil {
		order := *p.Order
		t.Order = &order
	}
	if p.IsPrivate != nil {
		t.IsPrivate = *p.IsPrivate
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = *p.UpdatedAt
	}
}
