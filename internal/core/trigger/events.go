package trigger

import "time"

// State represents the current Scheduler mode.
type State string

const (
	StateIdle      State = "idle"
	StateArmed     State = "armed"
	StateExecuting State = "executing"
)

// Origin tells where a trigger request came from.
type Origin string

const (
	OriginManual   Origin = "manual"
	OriginExternal Origin = "external"
)

// EventType defines the type of Scheduler event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventRejected    EventType = "rejected"
	EventExecuted    EventType = "executed"
	EventFailed      EventType = "failed"
)

// Event represents a Scheduler update for observers.
type Event struct {
	Type      EventType
	State     State
	Origin    Origin
	Remaining int
	Message   string
	Err       error
	At        time.Time
}
