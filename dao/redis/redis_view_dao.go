package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"bike-dashboard/db"
	"bike-dashboard/models"
	"bike-dashboard/util/log"
)

// DASHBOARD_VIEW_KEY_FORMAT is dashboard_view_v1:<dataset fingerprint>:<criteria key>.
const DASHBOARD_VIEW_KEY_FORMAT = "dashboard_view_v1:%s:%s"
const DASHBOARD_VIEW_KEY_PREFIX = "dashboard_view_v1:"

// RedisViewDAO caches rendered dashboard views as JSON.
type RedisViewDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisViewDAO initializes a RedisViewDAO; ttl 0 keeps entries until evicted.
func NewRedisViewDAO(client db.RedisClient, ttl time.Duration) *RedisViewDAO {
	return &RedisViewDAO{client: client, ttl: ttl}
}

// SetView caches view under the dataset fingerprint and criteria key.
func (dao *RedisViewDAO) SetView(fingerprint, criteriaKey string, view *models.DashboardView) error {
	key := fmt.Sprintf(DASHBOARD_VIEW_KEY_FORMAT, fingerprint, criteriaKey)
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard view %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set dashboard view in redis: %w", err)
	}
	return nil
}

// GetView returns the cached view, or nil without error on a miss.
func (dao *RedisViewDAO) GetView(fingerprint, criteriaKey string) (*models.DashboardView, error) {
	key := fmt.Sprintf(DASHBOARD_VIEW_KEY_FORMAT, fingerprint, criteriaKey)
	str, err := dao.client.Get(key)
	if errors.Is(err, db.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard view from redis: %w", err)
	}
	var v models.DashboardView
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard view JSON: %w", err)
	}
	return &v, nil
}

// ListCachedViewKeys returns the full keys of every cached view.
func (dao *RedisViewDAO) ListCachedViewKeys() ([]string, error) {
	keys, err := dao.client.Keys(DASHBOARD_VIEW_KEY_PREFIX + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list dashboard view keys: %w", err)
	}
	return keys, nil
}

// DeleteStaleViews removes cached views that belong to another dataset fingerprint.
func (dao *RedisViewDAO) DeleteStaleViews(fingerprint string) (int, error) {
	keys, err := dao.ListCachedViewKeys()
	if err != nil {
		return 0, err
	}
	current := DASHBOARD_VIEW_KEY_PREFIX + fingerprint + ":"
	var stale []string
	for _, k := range keys {
		if !strings.HasPrefix(k, current) {
			stale = append(stale, k)
		}
	}
	if err := dao.client.Del(stale...); err != nil {
		return 0, fmt.Errorf("failed to delete stale dashboard views: %w", err)
	}
	if len(stale) > 0 {
		log.Infof("[RedisViewDAO] Deleted %d stale dashboard views", len(stale))
	}
	return len(stale), nil
}
