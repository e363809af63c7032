// Package vector provides 3D vector operations for the star field model.
package vector

import "math"

// NewVec3 creates a new 3D vector with the given components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Vec3 represents a point or direction in the star field's
// right-handed coordinate space (catalog units).
type Vec3 struct{ X, Y, Z float64 }

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale scales a vector by a scalar.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared magnitude, avoiding the sqrt when only
// relative distances matter.
func (v Vec3) LengthSq() float64 { return v.Dot(v) }

// Length returns the vector's magnitude (Euclidean norm).
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 { return v.Sub(o).Length() }

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates from v to o by t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}
