package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, repo *fakeRepo) (*Controller, *Collection, *Session) {
	t.Helper()
	session := NewSession()
	cache := NewCollection(repo, session)
	_, err := cache.Refresh(context.Background())
	require.NoError(t, err)
	return NewController(repo, cache, session), cache, session
}

func TestControllerMovePersistsStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusTodo})
	ctrl, cache, _ := newBoard(t, repo)

	require.NoError(t, ctrl.Move(context.Background(), "t-1", StatusAwaitFeedback))

	stored, ok := repo.task("t-1")
	require.True(t, ok)
	assert.Equal(t, StatusAwaitFeedback, stored.Status)
	assert.NotEmpty(t, stored.UpdatedAt)

	// Confirmed: nothing pending, grouping already moved.
	assert.Empty(t, cache.Pending())
	assert.Len(t, cache.ByStatus().AwaitFeedback, 1)
}

func TestControllerMoveAllowsAnyTransition(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusDone})
	ctrl, cache, _ := newBoard(t, repo)

	// Backwards moves are fine; columns are not a one-way pipeline.
	require.NoError(t, ctrl.Move(context.Background(), "t-1", StatusTodo))
	assert.Len(t, cache.ByStatus().Todo, 1)
}

func TestControllerMoveFailureLeavesOptimisticState(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusTodo})
	ctrl, cache, _ := newBoard(t, repo)

	repo.updateErrs["t-1"] = &TransportError{Op: "update task", Err: context.DeadlineExceeded}

	err := ctrl.Move(context.Background(), "t-1", StatusDone)
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	// Optimistic state stays visible until a refresh corrects it.
	assert.Len(t, cache.ByStatus().Done, 1)
	require.Len(t, cache.Pending(), 1)

	delete(repo.updateErrs, "t-1")
	superseded, err := cache.Refresh(context.Background())
	require.NoError(t, err)
	assert.Len(t, superseded, 1)
	assert.Len(t, cache.ByStatus().Todo, 1)
}

func TestControllerMoveMissingTaskResyncs(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusTodo}, Task{ID: "t-2", Status: StatusTodo})
	ctrl, cache, _ := newBoard(t, repo)

	// The task vanishes behind our back.
	require.NoError(t, repo.DeleteTask(context.Background(), "t-1"))

	err := ctrl.Move(context.Background(), "t-1", StatusDone)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	// The failed move triggered a resync; the stale task is gone.
	assert.Len(t, cache.Snapshot(), 1)
	assert.Equal(t, "t-2", cache.Snapshot()[0].ID)
}

func TestControllerReorderWithinColumn(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(
		Task{ID: "a", Status: StatusTodo, Order: intp(0)},
		Task{ID: "b", Status: StatusTodo, Order: intp(1)},
		Task{ID: "c", Status: StatusTodo, Order: intp(2)},
	)
	ctrl, cache, _ := newBoard(t, repo)

	result, err := ctrl.Reorder(context.Background(), StatusTodo, 0, 2)
	require.NoError(t, err)
	assert.True(t, result.Ok())
	assert.Equal(t, 3, result.Persisted)

	todo := cache.ByStatus().Todo
	require.Len(t, todo, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{todo[0].ID, todo[1].ID, todo[2].ID})

	// Order values are strictly increasing with no gaps, matching position.
	for idx, task := range todo {
		require.NotNil(t, task.Order)
		assert.Equal(t, idx, *task.Order)
	}
}

func TestControllerMoveAtCrossColumnRenumbersBothColumns(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(
		Task{ID: "a", Status: StatusTodo, Order: intp(0)},
		Task{ID: "b", Status: StatusTodo, Order: intp(1)},
		Task{ID: "c", Status: StatusTodo, Order: intp(2)},
		Task{ID: "d", Status: StatusDone, Order: intp(0)},
		Task{ID: "e", Status: StatusDone, Order: intp(1)},
	)
	ctrl, cache, _ := newBoard(t, repo)

	result, err := ctrl.MoveAt(context.Background(), "b", StatusDone, 1)
	require.NoError(t, err)
	assert.True(t, result.Ok())
	assert.Equal(t, 5, result.Persisted)

	grouping := cache.ByStatus()

	todo := grouping.Todo
	require.Len(t, todo, 2)
	assert.Equal(t, []string{"a", "c"}, []string{todo[0].ID, todo[1].ID})
	assert.Equal(t, 0, *todo[0].Order)
	assert.Equal(t, 1, *todo[1].Order)

	done := grouping.Done
	require.Len(t, done, 3)
	assert.Equal(t, []string{"d", "b", "e"}, []string{done[0].ID, done[1].ID, done[2].ID})
	for idx, task := range done {
		assert.Equal(t, idx, *task.Order)
	}

	moved, ok := repo.task("b")
	require.True(t, ok)
	assert.Equal(t, StatusDone, moved.Status)
	assert.NotEmpty(t, moved.UpdatedAt)
}

func TestControllerReorderPartialFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(
		Task{ID: "a", Status: StatusTodo, Order: intp(0)},
		Task{ID: "b", Status: StatusTodo, Order: intp(1)},
		Task{ID: "c", Status: StatusTodo, Order: intp(2)},
	)
	ctrl, _, _ := newBoard(t, repo)

	repo.updateErrs["b"] = &TransportError{Op: "update task", Err: context.DeadlineExceeded}

	result, err := ctrl.Reorder(context.Background(), StatusTodo, 2, 0)
	require.NoError(t, err)
	assert.False(t, result.Ok())
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "b", result.Failed[0].TaskID)

	// The other updates committed and stay committed.
	assert.Equal(t, 2, result.Persisted)
}

func TestControllerReorderRejectsBadIndexes(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "a", Status: StatusTodo})
	ctrl, _, _ := newBoard(t, repo)

	_, err := ctrl.Reorder(context.Background(), StatusTodo, 0, 3)
	assert.Error(t, err)
	_, err = ctrl.Reorder(context.Background(), StatusTodo, -1, 0)
	assert.Error(t, err)
}

func TestControllerCreateDefaultsToTodo(t *testing.T) {
	repo := newFakeRepo()
	ctrl, cache, _ := newBoard(t, repo)

	created, err := ctrl.Create(context.Background(), Draft{
		Title:    "New task",
		Priority: PriorityMedium,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusTodo, created.Status)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, GuestUserID, created.OwnerID)

	// The refresh after create made it visible exactly once.
	assert.Len(t, cache.ByStatus().Todo, 1)
	assert.Len(t, cache.Snapshot(), 1)
}

func TestControllerCreateUsesOriginColumn(t *testing.T) {
	repo := newFakeRepo()
	ctrl, cache, _ := newBoard(t, repo)

	origin := StatusAwaitFeedback
	created, err := ctrl.Create(context.Background(), Draft{
		Title:    "From column add button",
		Priority: PriorityLow,
		Status:   StatusTodo,
	}, &origin)
	require.NoError(t, err)

	assert.Equal(t, StatusAwaitFeedback, created.Status)
	assert.Len(t, cache.ByStatus().AwaitFeedback, 1)
}

func TestControllerCreateStampsSessionScope(t *testing.T) {
	repo := newFakeRepo()
	ctrl, cache, session := newBoard(t, repo)

	session.SetUser(Identity{UserID: "user-1"})
	session.SetScope(ScopePersonal)

	created, err := ctrl.Create(context.Background(), Draft{
		Title:    "Private note",
		Priority: PriorityLow,
	}, nil)
	require.NoError(t, err)

	assert.True(t, created.IsPrivate)
	assert.Equal(t, "user-1", created.OwnerID)
	assert.Len(t, cache.ByStatus().Todo, 1)
}

func TestControllerCreateRejectsEmptyTitle(t *testing.T) {
	ctrl, _, _ := newBoard(t, newFakeRepo())

	_, err := ctrl.Create(context.Background(), Draft{Priority: PriorityLow}, nil)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestControllerDeleteIsIdempotentAndClearsSelection(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusTodo})
	ctrl, cache, _ := newBoard(t, repo)

	ctrl.Select("t-1")
	require.NoError(t, ctrl.Delete(context.Background(), "t-1"))

	assert.Empty(t, ctrl.Selected())
	assert.Empty(t, cache.Snapshot())

	// Deleting again is still a success, never a user-visible error.
	require.NoError(t, ctrl.Delete(context.Background(), "t-1"))
}

func TestControllerSelectionSurvivesUnrelatedDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(Task{ID: "t-1", Status: StatusTodo}, Task{ID: "t-2", Status: StatusTodo})
	ctrl, _, _ := newBoard(t, repo)

	ctrl.Select("t-2")
	require.NoError(t, ctrl.Delete(context.Background(), "t-1"))
	assert.Equal(t, "t-2", ctrl.Selected())
}
