package board

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RestRepository talks to the board backend over its REST contract. It owns
// no task state: every call is a plain request/response round trip with no
// retries and no internal queueing.
type RestRepository struct {
	baseURL string
	client  *http.Client
	token   func() string
}

// NewRestRepository builds an adapter against baseURL. tokenSource supplies
// the session token attached to outgoing requests; it may return "" for
// guest sessions and may be nil.
func NewRestRepository(baseURL string, tokenSource func() string) *RestRepository {
	return &RestRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		token:   tokenSource,
	}
}

// SetHTTPClient swaps the underlying client, e.g. to add a transport-level
// timeout outside the core.
func (r *RestRepository) SetHTTPClient(client *http.Client) {
	if client != nil {
		r.client = client
	}
}

func (r *RestRepository) ListTasks(ctx context.Context, scope Scope, userID string) ([]Task, error) {
	const op = "list tasks"
	if !scope.Valid() {
		scope = ScopeShared
	}

	params := url.Values{}
	params.Set("viewMode", string(scope))
	if scope == ScopePersonal && userID != "" {
		params.Set("userId", userID)
	}

	var tasks []Task
	err := r.do(ctx, op, http.MethodGet,
		"/api/board-tasks/tasks/?"+params.Encode(), nil, &tasks, "task", "")
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *RestRepository) CreateTask(ctx context.Context, draft Draft) (Task, error) {
	const op = "create task"
	var created Task
	err := r.do(ctx, op, http.MethodPost,
		"/api/board-tasks/tasks/", draft, &created, "task", "")
	if err != nil {
		return Task{}, err
	}
	return created, nil
}

func (r *RestRepository) UpdateTask(ctx context.Context, id string, patch Patch) error {
	const op = "update task"
	if err := patch.Validate(); err != nil {
		return &ValidationError{Op: op, Message: err.Error()}
	}
	return r.do(ctx, op, http.MethodPatch,
		"/api/board-tasks/tasks/"+url.PathEscape(id)+"/", patch, nil, "task", id)
}

// DeleteTask is idempotent from the caller's perspective: a task that is
// already gone counts as deleted.
func (r *RestRepository) DeleteTask(ctx context.Context, id string) error {
	const op = "delete task"
	err := r.do(ctx, op, http.MethodDelete,
		"/api/board-tasks/tasks/"+url.PathEscape(id)+"/", nil, nil, "task", id)
	if IsNotFound(err) {
		return nil
	}
	return err
}

func (r *RestRepository) ViewMode(ctx context.Context, userID string) (Settings, error) {
	const op = "get board settings"
	var settings Settings
	err := r.do(ctx, op, http.MethodGet,
		"/api/board-tasks/board-settings/"+url.PathEscape(userID)+"/", nil, &settings,
		"board settings", userID)
	if err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// SaveViewMode updates the stored view mode, creating the settings record
// on first use.
func (r *RestRepository) SaveViewMode(ctx context.Context, userID string, mode Scope) (Settings, error) {
	const op = "save board settings"
	payload := Settings{
		UserID:      userID,
		ViewMode:    mode,
		LastChanged: time.Now().UTC().Format(time.RFC3339),
	}

	var saved Settings
	err := r.do(ctx, op, http.MethodPut,
		"/api/board-tasks/board-settings/"+url.PathEscape(userID)+"/", payload, &saved,
		"board settings", userID)
	if IsNotFound(err) {
		err = r.do(ctx, op, http.MethodPost,
			"/api/board-tasks/board-settings/", payload, &saved, "board settings", userID)
	}
	if err != nil {
		return Settings{}, err
	}
	return saved, nil
}

// Login exchanges credentials for a session identity at the auth
// collaborator. It is not part of the Repository contract; callers that
// already hold a token never need it.
func (r *RestRepository) Login(ctx context.Context, email, password string) (Identity, error) {
	const op = "login"
	payload := map[string]string{"email": email, "password": password}

	var resp struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Token string `json:"token"`
	}
	if err := r.do(ctx, op, http.MethodPost, "/api/auth/login/", payload, &resp, "user", email); err != nil {
		return Identity{}, err
	}
	return Identity{UserID: resp.ID, Name: resp.Name, Token: resp.Token}, nil
}

// ListContacts fetches the assignment picker contents.
func (r *RestRepository) ListContacts(ctx context.Context) ([]Contact, error) {
	const op = "list contacts"
	var contacts []Contact
	err := r.do(ctx, op, http.MethodGet, "/api/contacts/", nil, &contacts, "contacts", "")
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *RestRepository) do(ctx context.Context, op, method, path string, body, out interface{}, resource, id string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != nil {
		if token := r.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Op: op, Err: err}
		}
		return nil
	}

	message := errorMessage(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return &NotFoundError{Resource: resource, ID: id}
	case http.StatusBadRequest:
		return &ValidationError{Op: op, Message: message}
	default:
		if message == "" {
			message = resp.Status
		}
		return &TransportError{Op: op, Err: fmt.Errorf("%s: %s", resp.Status, message)}
	}
}

// errorMessage pulls the human-readable reason out of an error body,
// accepting both the echo ("message") and DRF ("detail") field names.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Detail
}
