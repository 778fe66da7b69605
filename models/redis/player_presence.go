package redis

type PlayerStatus string

const (
	StatusOnline  PlayerStatus = "online"
	StatusOffline PlayerStatus = "offline"
	StatusInMatch PlayerStatus = "in_match"
)

// PlayerPresence is the liveness record kept per connection. It is a cache
// for other services to read (who is online, on which socket); lobby state
// itself never lives in Redis.
type PlayerPresence struct {
	SocketID string       `json:"socket_id"`
	Status   PlayerStatus `json:"status"`
	LastPing int64        `json:"last_ping"` // Unix timestamp
}
