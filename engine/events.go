package engine

// EventType represents the type of game event
type EventType int

const (
	// EventShieldActivated: a player paid a heart for a fresh shield
	// Trigger: ActionSystem | Consumer: audio, log
	EventShieldActivated EventType = iota

	// EventShieldRejected: shield pressed with no hearts left
	EventShieldRejected

	// EventShieldExpired: countdown reached zero
	// Trigger: MovementSystem
	EventShieldExpired

	// EventPlayerHit: unshielded enemy contact cost a heart
	// Trigger: CollisionResolver | Target: enemy index
	EventPlayerHit

	// EventHitBlocked: enemy contact absorbed by an active shield
	EventHitBlocked

	// EventPlayerDown: a hit took the last heart
	EventPlayerDown

	// EventEnemyRepelled: a shield pushed an enemy off a pending ally
	// Player: protecting player | Target: enemy index
	EventEnemyRepelled

	// EventAllyRescued: rescue action succeeded
	// Target: ally index | Score: points awarded | Sacrifice: heart paid
	EventAllyRescued

	// EventRescueDenied: sacrifice ally in range but no heart to pay
	EventRescueDenied

	// EventHeartCollected: heal pickup consumed
	// Target: pickup index
	EventHeartCollected

	// EventEnemySpawned, EventAllySpawned, EventPickupSpawned: SpawnDirector output
	// Target: index of the new entity
	EventEnemySpawned
	EventAllySpawned
	EventPickupSpawned

	// EventGameOver: no living player remains, emitted once per session
	EventGameOver
)

var eventNames = [...]string{
	EventShieldActivated: "shield_activated",
	EventShieldRejected:  "shield_rejected",
	EventShieldExpired:   "shield_expired",
	EventPlayerHit:       "player_hit",
	EventHitBlocked:      "hit_blocked",
	EventPlayerDown:      "player_down",
	EventEnemyRepelled:   "enemy_repelled",
	EventAllyRescued:     "ally_rescued",
	EventRescueDenied:    "rescue_denied",
	EventHeartCollected:  "heart_collected",
	EventEnemySpawned:    "enemy_spawned",
	EventAllySpawned:     "ally_spawned",
	EventPickupSpawned:   "pickup_spawned",
	EventGameOver:        "game_over",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event records one rule firing during a tick
// Player and Target are indices into World slices, -1 when unused
type Event struct {
	Type      EventType
	Player    int
	Target    int
	Score     int
	Sacrifice bool
}

// CountEvents returns how many events of type t are in events
func CountEvents(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}
