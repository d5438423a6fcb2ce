package board

import (
	"context"
	"fmt"
	"sync"
)

// fakeRepo is an in-memory Repository for tests. It honors the adapter
// contract: delete of a missing task is success, updates of missing tasks
// fail with NotFoundError, and privacy filtering happens on "the server".
type fakeRepo struct {
	mu       sync.Mutex
	tasks    []Task
	settings map[string]Settings
	nextID   int

	updateErrs map[string]error
	listErr    error
	updates    int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		settings:   map[string]Settings{},
		updateErrs: map[string]error{},
	}
}

func (f *fakeRepo) seed(tasks ...Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, tasks...)
}

func (f *fakeRepo) task(id string) (Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

func (f *fakeRepo) ListTasks(_ context.Context, scope Scope, userID string) ([]Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}

	var visible []Task
	for _, t := range f.tasks {
		if scope == ScopePersonal {
			if t.IsPrivate && t.OwnerID == userID {
				visible = append(visible, t)
			}
		} else if !t.IsPrivate {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

func (f *fakeRepo) CreateTask(_ context.Context, draft Draft) (Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	task := Task{
		ID:          fmt.Sprintf("task-%d", f.nextID),
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    draft.Priority,
		Category:    draft.Category,
		Status:      draft.Status,
		AssignedTo:  draft.AssignedTo,
		Subtasks:    draft.Subtasks,
		CreatedAt:   "2026-01-02T15:04:05Z",
		Order:       draft.Order,
		IsPrivate:   draft.IsPrivate,
		OwnerID:     draft.OwnerID,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

func (f *fakeRepo) UpdateTask(_ context.Context, id string, patch Patch) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err, ok := f.updateErrs[id]; ok {
		return err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			patch.apply(&f.tasks[i])
			f.updates++
			return nil
		}
	}
	return &NotFoundError{Resource: "task", ID: id}
}

func (f *fakeRepo) DeleteTask(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	// Already gone counts as deleted.
	return nil
}

func (f *fakeRepo) ViewMode(_ context.Context, userID string) (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	settings, ok := f.settings[userID]
	if !ok {
		return Settings{}, &NotFoundError{Resource: "board settings", ID: userID}
	}
	return settings, nil
}

func (f *fakeRepo) SaveViewMode(_ context.Context, userID string, mode Scope) (Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	settings := Settings{UserID: userID, ViewMode: mode, LastChanged: "2026-01-02T15:04:05Z"}
	f.settings[userID] = settings
	return settings, nil
}

func intp(v int) *int { return &v }
