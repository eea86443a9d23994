package obj

// Event is what happened to an actor during one tick.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventBlocked
	EventLanded
	EventDied
	EventFellOut
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventBlocked:
		return "blocked"
	case EventLanded:
		return "landed"
	case EventDied:
		return "died"
	case EventFellOut:
		return "fell out"
	default:
		return "unknown"
	}
}

// Respawned reports whether the actor was sent back to its spawn.
func (e Event) Respawned() bool {
	return e == EventDied || e == EventFellOut
}
