package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/rueidis"

	"taskboard.com/taskboard/internal/constants"
	model "taskboard.com/taskboard/internal/models"
)

func setupCache(t *testing.T, ttl time.Duration) *BoardCache {
	srv := miniredis.RunT(t)

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:       []string{srv.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to connect redis client: %v", err)
	}
	t.Cleanup(client.Close)

	return NewBoardCache(client, ttl)
}

func TestBoardCache_TasksRoundTrip(t *testing.T) {
	c := setupCache(t, time.Minute)
	ctx := context.Background()

	if _, ok := c.LoadTasks(ctx, PublicTasksKey()); ok {
		t.Fatal("expected a cache miss on a cold cache")
	}

	tasks := []model.Task{
		{ID: "t-1", Title: "cached", Status: constants.StatusTodo},
		{ID: "t-2", Title: "also cached", Status: constants.StatusDone},
	}
	c.StoreTasks(ctx, PublicTasksKey(), tasks)

	got, ok := c.LoadTasks(ctx, PublicTasksKey())
	if !ok {
		t.Fatal("expected a cache hit after store")
	}
	if len(got) != 2 || got[0].ID != "t-1" || got[1].Status != constants.StatusDone {
		t.Errorf("cached tasks mangled: %+v", got)
	}
}

func TestBoardCache_EvictDropsEntries(t *testing.T) {
	c := setupCache(t, time.Minute)
	ctx := context.Background()

	c.StoreTasks(ctx, PublicTasksKey(), []model.Task{{ID: "t-1"}})
	c.StoreTasks(ctx, PrivateTasksKey("u-1"), []model.Task{{ID: "t-2"}})

	c.Evict(ctx, PublicTasksKey(), PrivateTasksKey("u-1"))

	if _, ok := c.LoadTasks(ctx, PublicTasksKey()); ok {
		t.Error("public entry survived eviction")
	}
	if _, ok := c.LoadTasks(ctx, PrivateTasksKey("u-1")); ok {
		t.Error("private entry survived eviction")
	}
}

func TestBoardCache_SettingsRoundTrip(t *testing.T) {
	c := setupCache(t, time.Minute)
	ctx := context.Background()

	c.StoreSettings(ctx, &model.BoardSettings{
		UserID:   "u-1",
		ViewMode: constants.ViewModePrivate,
	})

	settings, ok := c.LoadSettings(ctx, "u-1")
	if !ok {
		t.Fatal("expected a settings cache hit")
	}
	if settings.ViewMode != constants.ViewModePrivate {
		t.Errorf("expected private view mode, got %s", settings.ViewMode)
	}

	if _, ok := c.LoadSettings(ctx, "u-2"); ok {
		t.Error("unexpected hit for another user")
	}
}

func TestBoardCache_ZeroTTLNeverStores(t *testing.T) {
	c := setupCache(t, 0)
	ctx := context.Background()

	c.StoreTasks(ctx, PublicTasksKey(), []model.Task{{ID: "t-1"}})
	if _, ok := c.LoadTasks(ctx, PublicTasksKey()); ok {
		t.Error("zero-ttl cache must not store")
	}
}

func TestBoardCache_CorruptEntryIsDropped(t *testing.T) {
	srv := miniredis.RunT(t)
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:       []string{srv.Addr()},
		DisableCache:      true,
		ForceSingleClient: true,
	})
	if err != nil {
		t.Fatalf("failed to connect redis client: %v", err)
	}
	t.Cleanup(client.Close)
	c := NewBoardCache(client, time.Minute)

	if err := srv.Set(PublicTasksKey(), "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, ok := c.LoadTasks(context.Background(), PublicTasksKey()); ok {
		t.Fatal("corrupt entry must read as a miss")
	}
	if srv.Exists(PublicTasksKey()) {
		t.Error("corrupt entry must be dropped")
	}
}

func TestBoardCache_NilClientIsNoop(t *testing.T) {
	c := NewBoardCache(nil, time.Minute)
	ctx := context.Background()

	c.StoreTasks(ctx, PublicTasksKey(), []model.Task{{ID: "t-1"}})
	if _, ok := c.LoadTasks(ctx, PublicTasksKey()); ok {
		t.Error("nil-client cache must always miss")
	}
	c.Evict(ctx, PublicTasksKey())
}
