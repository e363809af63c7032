package scene

import (
	"math"

	"github.com/litescript/ls-starfield/internal/geometry/vector"
)

const (
	// orbitScale converts a one-unit drag delta into radians of rotation,
	// i.e. one degree per unit.
	orbitScale = math.Pi / 180

	// pitchLimit keeps the look-at basis well defined; at ±90° the up
	// vector degenerates and ray construction breaks down.
	pitchLimit = 89.9 * math.Pi / 180

	// focusOffset is where the camera parks relative to a focused star.
	focusOffsetZ = 1.0

	// defaultFOV is the vertical field of view in degrees.
	defaultFOV = 60.0
)

// worldUp is the fixed up direction used to derive the camera basis.
var worldUp = vector.Vec3{Y: 1}

// Pose is a camera placement: position plus yaw/pitch in radians.
// Yaw 0 / pitch 0 looks down -Z; positive yaw turns toward +X, positive
// pitch tilts up.
type Pose struct {
	Position vector.Vec3
	Yaw      float64
	Pitch    float64
}

// DefaultPose is the session-start placement when the world-tracking
// collaborator supplies none: at the origin looking down -Z.
func DefaultPose() Pose {
	return Pose{}
}

// Camera owns the single camera state. It is mutated only through Orbit
// and FocusOn; the renderer and picker read it.
type Camera struct {
	Position vector.Vec3
	Yaw      float64
	Pitch    float64
	FOVDeg   float64
}

// NewCamera creates the scene camera at the given pose.
func NewCamera(pose Pose) *Camera {
	return &Camera{
		Position: pose.Position,
		Yaw:      pose.Yaw,
		Pitch:    pose.Pitch,
		FOVDeg:   defaultFOV,
	}
}

// Orbit accumulates a drag delta into the camera orientation: dx turns
// yaw, dy tilts pitch, both scaled by orbitScale. The caller must deliver
// each delta exactly once; the pending-delta reset lives with the state
// manager that feeds this.
func (c *Camera) Orbit(dx, dy float64) {
	c.Yaw = normalizeRad(c.Yaw + dx*orbitScale)
	c.Pitch = clampPitch(c.Pitch + dy*orbitScale)
}

// FocusOn relocates the camera to the target plus a fixed +Z offset and
// orients it to look directly at the target, overriding any accumulated
// yaw/pitch for that frame.
func (c *Camera) FocusOn(target vector.Vec3) {
	c.Position = target.Add(vector.Vec3{Z: focusOffsetZ})
	c.LookAt(target)
}

// LookAt orients the camera toward a world point without moving it.
func (c *Camera) LookAt(target vector.Vec3) {
	d := target.Sub(c.Position).Normalize()
	if d == (vector.Vec3{}) {
		return
	}
	c.Pitch = clampPitch(math.Asin(d.Y))
	c.Yaw = math.Atan2(d.X, -d.Z)
}

// Pose returns the camera placement as a value.
func (c *Camera) Pose() Pose {
	return Pose{Position: c.Position, Yaw: c.Yaw, Pitch: c.Pitch}
}

// Forward returns the unit view direction for the current yaw/pitch.
func (c *Camera) Forward() vector.Vec3 {
	cp := math.Cos(c.Pitch)
	return vector.Vec3{
		X: math.Sin(c.Yaw) * cp,
		Y: math.Sin(c.Pitch),
		Z: -math.Cos(c.Yaw) * cp,
	}
}

// Basis returns the camera's orthonormal frame: forward, right, up.
func (c *Camera) Basis() (forward, right, up vector.Vec3) {
	forward = c.Forward()
	right = forward.Cross(worldUp).Normalize()
	if right == (vector.Vec3{}) {
		// Looking straight along worldUp; pick an arbitrary right.
		right = vector.Vec3{X: 1}
	}
	up = right.Cross(forward)
	return forward, right, up
}

// Ray builds the world-space picking ray through a screen point, given
// the viewport size in the same units as the point. Origin is the camera
// position; the returned direction is unit length.
func (c *Camera) Ray(px, py, width, height float64) (origin, dir vector.Vec3) {
	forward, right, up := c.Basis()

	// Screen point to normalized device coordinates, y up.
	ndcX := 2*(px+0.5)/width - 1
	ndcY := 1 - 2*(py+0.5)/height

	tanHalf := math.Tan(degToRad(c.FOVDeg) / 2)
	aspect := width / height

	dir = forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf)).
		Normalize()

	return c.Position, dir
}

func clampPitch(p float64) float64 {
	if p > pitchLimit {
		return pitchLimit
	}
	if p < -pitchLimit {
		return -pitchLimit
	}
	return p
}

// normalizeRad wraps an angle to (-π, π].
func normalizeRad(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
