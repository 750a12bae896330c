package parameter

// Play Area
const (
	// ScreenWidth and ScreenHeight are the play area extents in world units (pixels)
	ScreenWidth  = 900.0
	ScreenHeight = 600.0

	// TickRate is the reference tick rate; per-tick speeds are scaled by dt*TickRate
	TickRate = 60

	// EdgeMargin keeps player centres this far inside the play area
	EdgeMargin = 20.0
)

// Player
const (
	PlayerRadius     = 16.0
	PlayerSpeed      = 4.0
	PlayerStartHeart = 3
	MaxHearts        = 5
)

// Shield
const (
	// ShieldDuration is the shield lifetime in seconds after one activation
	ShieldDuration = 3.0

	// ShieldHeartCost is paid on every activation, including re-activation
	ShieldHeartCost = 1

	// ShieldProtectFactor scales player radius into the ally protection range
	ShieldProtectFactor = 2.5
)

// Enemy
const (
	EnemySpeedBase   = 1.0
	EnemySpeedSpread = 0.8
	EnemyRadiusMin   = 12
	EnemyRadiusMax   = 18

	// EnemySpawnOffset places new enemies this far beyond the chosen edge
	EnemySpawnOffset = 20.0

	// EnemyArriveDistance stops pursuit jitter once an enemy sits on its target
	EnemyArriveDistance = 0.1
)

// Ally
const (
	AllyRadius            = 12.0
	AllySpawnMargin       = 60
	AllySacrificeChance   = 0.35
	RescueRange           = 40.0
	RescueScore           = 100
	SacrificeRescueScore  = 200
	SacrificeRescueHearts = 1
)

// Heal Pickup
const (
	PickupRadius      = 10.0
	PickupSpawnMargin = 40
	PickupHealAmount  = 1
)

// Spawn Cadence (seconds)
const (
	EnemySpawnInterval  = 3.0
	AllySpawnInterval   = 6.0
	PickupSpawnInterval = 10.0
)
