package ws

// Event types pushed to back-office clients.

type Event string

const (
	EventActivity Event = "activity"
	EventPong     Event = "pong"
	EventError    Event = "error"
)

// ActivityEvent wraps one audit entry for the live feed.
type ActivityEvent struct {
	Event   Event       `json:"event"`
	Payload interface{} `json:"payload"`
}

// ErrorResponse is sent before closing a misbehaving connection.
type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

// Action types received from clients. The feed is one-directional apart
// from keepalives.

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}
