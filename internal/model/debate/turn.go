package debate

import "time"

// Role identifies which side of the debate produced a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is a single utterance in a conversation. Timestamps are kept for
// ordering and audit only; no business rule reads them.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
