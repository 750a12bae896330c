package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in world units
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FDist returns Euclidean distance between two points
func V2FDist(a, b Vec2F) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// V2FClamp clamps each axis into [minX,maxX] × [minY,maxY]
func V2FClamp(v Vec2F, minX, minY, maxX, maxY float64) Vec2F {
	return Vec2F{Clamp(v.X, minX, maxX), Clamp(v.Y, minY, maxY)}
}

// CirclesOverlap reports strict overlap: touching circles do not collide
func CirclesOverlap(a Vec2F, ra float64, b Vec2F, rb float64) bool {
	return V2FDist(a, b) < ra+rb
}
