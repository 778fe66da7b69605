package utils

import "fmt"

// FormatPlayerPresenceKey builds the Redis key for a connection's presence
// record. Key format: "presence:{socketID}"
func FormatPlayerPresenceKey(socketID string) string {
	return fmt.Sprintf("presence:%s", socketID)
}
