package scene

import (
	"testing"

	"github.com/litescript/ls-starfield/internal/geometry/vector"
)

// pickGraph builds a graph with markers placed by hand along -Z so ray
// geometry is easy to reason about.
func pickGraph() *Graph {
	g := &Graph{Camera: NewCamera(DefaultPose())}
	g.Markers = []*Marker{
		{Name: "near", Position: vector.Vec3{Z: -2}, Radius: 0.5},
		{Name: "far", Position: vector.Vec3{Z: -8}, Radius: 0.5},
		{Name: "aside", Position: vector.Vec3{X: 5, Z: -2}, Radius: 0.5},
	}
	return g
}

func TestPickMarker_NearestWins(t *testing.T) {
	g := pickGraph()

	// Straight down -Z: hits both "near" and "far"; nearest wins.
	m := g.PickMarker(vector.Vec3{}, vector.Vec3{Z: -1})
	if m == nil || m.Name != "near" {
		t.Fatalf("PickMarker = %v, want near", m)
	}
}

func TestPickMarker_Miss(t *testing.T) {
	g := pickGraph()

	m := g.PickMarker(vector.Vec3{}, vector.Vec3{Y: 1})
	if m != nil {
		t.Errorf("PickMarker up = %v, want nil", m.Name)
	}

	// Behind the camera is a miss even though the line through the ray
	// would intersect.
	m = g.PickMarker(vector.Vec3{}, vector.Vec3{Z: 1})
	if m != nil {
		t.Errorf("PickMarker backwards = %v, want nil", m.Name)
	}
}

func TestPickMarker_SkipsHidden(t *testing.T) {
	g := pickGraph()
	g.Markers[0].Hidden = true

	m := g.PickMarker(vector.Vec3{}, vector.Vec3{Z: -1})
	if m == nil || m.Name != "far" {
		t.Fatalf("PickMarker with hidden near = %v, want far", m)
	}
}

func TestPickMarker_OriginInsideSphere(t *testing.T) {
	g := &Graph{Camera: NewCamera(DefaultPose())}
	g.Markers = []*Marker{{Name: "host", Position: vector.Vec3{}, Radius: 2}}

	m := g.PickMarker(vector.Vec3{}, vector.Vec3{Z: -1})
	if m == nil || m.Name != "host" {
		t.Fatal("ray starting inside a sphere should hit its exit point")
	}
}

func TestResolve_ScreenCenterHitsFocusedMarker(t *testing.T) {
	g := pickGraph()

	// The camera looks down -Z by default; the marker at (0,0,-2) sits in
	// the middle of the screen.
	m := g.Resolve(40, 12, 80, 24)
	if m == nil || m.Name != "near" {
		t.Fatalf("Resolve(center) = %v, want near", m)
	}

	// A corner point misses everything.
	if m := g.Resolve(0, 0, 80, 24); m != nil {
		t.Errorf("Resolve(corner) = %v, want nil", m.Name)
	}
}

func TestResolve_LabelsAndLinesNotPickable(t *testing.T) {
	g := pickGraph()

	// Park a label and a line directly in front of the camera, closer
	// than any marker; picking must see through them.
	g.Labels = append(g.Labels, &Label{Text: "decoy", Position: vector.Vec3{Z: -1}})
	g.AddLine(&Line{From: vector.Vec3{X: -1, Z: -1}, To: vector.Vec3{X: 1, Z: -1}})

	m := g.Resolve(40, 12, 80, 24)
	if m == nil || m.Name != "near" {
		t.Fatalf("Resolve = %v, want near (labels/lines are not hit-testable)", m)
	}
}
