package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	model "taskboard.com/taskboard/internal/models"
)

// BoardCache is a redis-backed read cache for task lists and board settings.
// It is strictly best-effort: every redis failure falls back to the database
// without surfacing an error, and corrupt entries are dropped on read.
type BoardCache struct {
	redis rueidis.Client
	ttl   time.Duration
}

func NewBoardCache(client rueidis.Client, ttl time.Duration) *BoardCache {
	if ttl < 0 {
		ttl = 0
	}
	return &BoardCache{redis: client, ttl: ttl}
}

func (c *BoardCache) LoadTasks(ctx context.Context, key string) ([]model.Task, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Do(ctx, c.redis.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		return nil, false
	}
	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		c.drop(ctx, key)
		return nil, false
	}
	return tasks, true
}

func (c *BoardCache) StoreTasks(ctx context.Context, key string, tasks []model.Task) {
	if c == nil || c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	_ = c.redis.Do(ctx, c.redis.B().Set().Key(key).Value(string(data)).
		Ex(c.ttl).Build()).Error()
}

func (c *BoardCache) LoadSettings(ctx context.Context, userID string) (*model.BoardSettings, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Do(ctx, c.redis.B().Get().Key(SettingsKey(userID)).Build()).AsBytes()
	if err != nil {
		return nil, false
	}
	var settings model.BoardSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		c.drop(ctx, SettingsKey(userID))
		return nil, false
	}
	return &settings, true
}

func (c *BoardCache) StoreSettings(ctx context.Context, settings *model.BoardSettings) {
	if c == nil || c.redis == nil || c.ttl == 0 || settings == nil {
		return
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return
	}
	_ = c.redis.Do(ctx, c.redis.B().Set().Key(SettingsKey(settings.UserID)).
		Value(string(data)).Ex(c.ttl).Build()).Error()
}

// Evict removes the given keys after a mutation.
func (c *BoardCache) Evict(ctx context.Context, keys ...string) {
	if c == nil || c.redis == nil || len(keys) == 0 {
		return
	}
	_ = c.redis.Do(ctx, c.redis.B().Del().Key(keys...).Build()).Error()
}

func (c *BoardCache) drop(ctx context.Context, key string) {
	_ = c.redis.Do(ctx, c.redis.B().Del().Key(key).Build()).Error()
}

func PublicTasksKey() string {
	return "tasks:public"
}

func PrivateTasksKey(ownerID string) string {
	return "tasks:private:" + ownerID
}

func SettingsKey(userID string) string {
	return "settings:" + userID
}
