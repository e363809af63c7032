package scene

import (
	"math"

	"github.com/litescript/ls-starfield/internal/geometry/vector"
)

// PickMarker casts a ray against all marker spheres and returns the
// nearest intersected marker, or nil on a miss. Labels and lines are not
// hit-testable. Ties at exactly equal distance resolve to whichever
// marker is seen first; callers must not depend on the order.
//
// Side-effect free: selection and focus decisions belong to the caller.
func (g *Graph) PickMarker(origin, dir vector.Vec3) *Marker {
	var nearest *Marker
	nearestT := math.Inf(1)

	for _, m := range g.Markers {
		if m.Hidden {
			continue
		}
		t, ok := raySphere(origin, dir, m.Position, m.Radius)
		if ok && t < nearestT {
			nearest = m
			nearestT = t
		}
	}

	return nearest
}

// Resolve maps a screen point to the nearest intersected marker using the
// graph's own camera, or nil when nothing is under the point.
func (g *Graph) Resolve(px, py, width, height float64) *Marker {
	origin, dir := g.Camera.Ray(px, py, width, height)
	return g.PickMarker(origin, dir)
}

// raySphere intersects a ray (unit dir) with a sphere and reports the
// smallest non-negative hit distance. A ray starting inside the sphere
// hits at the exit point.
func raySphere(origin, dir, center vector.Vec3, radius float64) (float64, bool) {
	oc := center.Sub(origin)
	tca := oc.Dot(dir)

	d2 := oc.LengthSq() - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc // origin inside the sphere
	}
	if t < 0 {
		return 0, false // sphere entirely behind the ray
	}
	return t, true
}
