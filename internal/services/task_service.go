package services

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"

	"taskboard.com/taskboard/internal/cache"
	"taskboard.com/taskboard/internal/constants"
	dto "taskboard.com/taskboard/internal/data_models"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	cache *cache.BoardCache
}

func NewTaskService(repo *repository.TaskRepository, boardCache *cache.BoardCache) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: boardCache,
	}
}

// List returns the tasks visible under the requested view mode. The private
// board needs an owner; a private request without one falls back to the
// shared board rather than leaking other owners' tasks.
func (s *TaskService) List(ctx context.Context, viewMode constants.ViewMode, userID string) ([]model.Task, error) {
	if viewMode == constants.ViewModePrivate && userID != "" {
		return s.listPrivate(ctx, userID)
	}
	return s.listPublic(ctx)
}

func (s *TaskService) listPublic(ctx context.Context) ([]model.Task, error) {
	if tasks, ok := s.cache.LoadTasks(ctx, cache.PublicTasksKey()); ok {
		return tasks, nil
	}

	tasks, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.StoreTasks(ctx, cache.PublicTasksKey(), tasks)
	return tasks, nil
}

func (s *TaskService) listPrivate(ctx context.Context, ownerID string) ([]model.Task, error) {
	if tasks, ok := s.cache.LoadTasks(ctx, cache.PrivateTasksKey(ownerID)); ok {
		return tasks, nil
	}

	tasks, err := s.repo.ListPrivate(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.cache.StoreTasks(ctx, cache.PrivateTasksKey(ownerID), tasks)
	return tasks, nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	task := &model.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Category:    req.Category,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		Subtasks:    req.Subtasks,
		Order:       req.Order,
		IsPrivate:   req.IsPrivate,
		OwnerID:     req.OwnerID,
	}
	if task.OwnerID == "" {
		task.OwnerID = constants.GuestOwnerID
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, err
	}

	s.evictFor(ctx, created)
	log.WithFields(log.Fields{"task": created.ID, "status": created.Status}).
		Debug("task created")
	return created, nil
}

// Update applies a partial update and refreshes the updatedAt stamp. The
// creation timestamp is never rewritten.
func (s *TaskService) Update(ctx context.Context, id string, req *dto.UpdateTaskRequest) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	fields := updateFieldMap(req)
	fields["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}

	s.evictFor(ctx, task)
	return nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.evictFor(ctx, task)
	log.WithField("task", id).Debug("task deleted")
	return nil
}

func (s *TaskService) evictFor(ctx context.Context, task *model.Task) {
	keys := []string{cache.PublicTasksKey()}
	if task.OwnerID != "" {
		keys = append(keys, cache.PrivateTasksKey(task.OwnerID))
	}
	s.cache.Evict(ctx, keys...)
}

// updateFieldMap flattens the non-nil request fields into a column map.
// JSON-column values are marshalled here because gorm serializers only run
// for struct updates, not map updates.
func updateFieldMap(req *dto.UpdateTaskRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DueDate != nil {
		fields["due_date"] = *req.DueDate
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.AssignedTo != nil {
		if data, err := json.Marshal(*req.AssignedTo); err == nil {
			fields["assigned_to"] = string(data)
		}
	}
	if req.Subtasks != nil {
		if data, err := json.Marshal(*req.Subtasks); err == nil {
			fields["subtasks"] = string(data)
		}
	}
	if req.Order != nil {
		fields["sort_order"] = *req.Order
	}
	if req.IsPrivate != nil {
		fields["is_private"] = *req.IsPrivate
	}
	return fields
}
