package parameter

// System Execution Priorities (lower runs first)
// The order is part of the rules: actions read pre-movement positions,
// collisions see every entity after it moved or spawned
const (
	PriorityAction    = 10 // Shield and rescue presses
	PriorityMovement  = 20 // Player movement, shield countdown
	PriorityPursuit   = 30
	PrioritySpawn     = 40
	PriorityCollision = 50
)
