package redis

import (
	"testing"
	"time"

	redis_models "partyhub/models/redis"
)

func TestPresenceOperations(t *testing.T) {
	rc, err := InitRedis("localhost:6379", 0)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer CloseRedis(rc)

	cleanup := func() {
		keys := []string{"presence:test_socket_123"}
		if err := rc.CleanupKeys(keys); err != nil {
			t.Fatalf("Failed to cleanup Redis keys: %v", err)
		}
	}
	cleanup()
	defer cleanup()

	presence := &redis_models.PlayerPresence{
		SocketID: "test_socket_123",
		Status:   redis_models.StatusOnline,
		LastPing: time.Now().Unix(),
	}

	if err := rc.SavePlayerPresence(presence); err != nil {
		t.Errorf("Failed to save presence: %v", err)
	}

	retrieved, err := rc.GetPlayerPresence("test_socket_123")
	if err != nil {
		t.Fatalf("Failed to get presence: %v", err)
	}

	if retrieved.SocketID != presence.SocketID ||
		retrieved.Status != presence.Status ||
		retrieved.LastPing != presence.LastPing {
		t.Errorf("Presence data mismatch: %+v != %+v", retrieved, presence)
	}

	if err := rc.DeletePlayerPresence("test_socket_123"); err != nil {
		t.Errorf("Failed to delete presence: %v", err)
	}

	if _, err := rc.GetPlayerPresence("test_socket_123"); err == nil {
		t.Error("Expected error getting deleted presence")
	}
}
