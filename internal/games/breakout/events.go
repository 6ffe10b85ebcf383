package breakout

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventLevelStart EventKind = iota
	EventPaddleHit
	EventBrickDestroyed
	EventEffectOn
	EventEffectOff
	EventLifeLost
	EventWon
	EventGameOver
	EventQuit
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventLevelStart:
		return "level_start"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventEffectOn:
		return "effect_on"
	case EventEffectOff:
		return "effect_off"
	case EventLifeLost:
		return "life_lost"
	case EventWon:
		return "won"
	case EventGameOver:
		return "game_over"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is a record of a state change, consumed by the host for logging.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Edge   Edge       // Struck face, for paddle and brick hits
	Effect EffectKind // For effect events and effect bricks
	Score  int
	Lives  int
}

// Stats accumulates counters over a session.
type Stats struct {
	Ticks            uint64
	BricksDestroyed  int
	PaddleHits       int
	LivesLost        int
	EffectsTriggered int
	ExtraLives       int
}
