package common

import "math"

// Vec3 is a plain 3-component float32 vector used for world-space positions,
// directions, and displacements throughout the engine.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum v + o.
//
// Parameters:
//   - o: the vector to add
//
// Returns:
//   - Vec3: the component-wise sum
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
//
// Parameters:
//   - o: the vector to subtract
//
// Returns:
//   - Vec3: the component-wise difference
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with each component multiplied by s.
//
// Parameters:
//   - s: the scalar multiplier
//
// Returns:
//   - Vec3: the scaled vector
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - float32: the dot product
func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o following the right-hand rule.
//
// Parameters:
//   - o: the other vector
//
// Returns:
//   - Vec3: the cross product
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared magnitude of v. Cheaper than Length when only
// comparing distances.
//
// Returns:
//   - float32: the squared magnitude
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of v.
//
// Returns:
//   - float32: the magnitude
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns v scaled to unit length. Returns the zero vector if v has
// near-zero magnitude.
//
// Returns:
//   - Vec3: the unit-length vector, or the zero vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-8 {
		return Vec3{}
	}
	inv := 1.0 / l
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Clamp limits value to the inclusive range [min, max].
//
// Parameters:
//   - value: the value to clamp
//   - min: the lower bound
//   - max: the upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// WrapAngle normalizes an angle in radians to the range [0, 2π).
// Continuous yaw values are wrapped before being used in periodic offset math.
//
// Parameters:
//   - angle: the angle in radians
//
// Returns:
//   - float32: the equivalent angle in [0, 2π)
func WrapAngle(angle float32) float32 {
	const twoPi = 2 * math.Pi
	wrapped := float32(math.Mod(float64(angle), twoPi))
	if wrapped < 0 {
		wrapped += twoPi
	}
	return wrapped
}
