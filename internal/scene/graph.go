package scene

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-starfield/internal/geometry/vector"
)

// ContainerName tags the group all marker and label nodes live under, so
// the renderable field can be rebuilt or cleared atomically.
const ContainerName = "starContainer"

// labelOffset is the fixed vertical gap between the top of a marker
// sphere and its nametag.
const labelOffset = 0.25

// labelScale is the fixed text scale for nametags.
const labelScale = 0.06

// Marker is the renderable sphere representing one star. Geometry is a
// white diffuse sphere with alpha-blended transparency.
type Marker struct {
	ID       uuid.UUID
	StarID   uuid.UUID
	Name     string
	Position vector.Vec3
	Radius   float64
	Opacity  float64
	Hidden   bool
}

// Label is the billboarded nametag floating above its marker. The
// billboard constraint itself is the renderer's job; the graph only
// records text, scale and placement.
type Label struct {
	ID       uuid.UUID
	MarkerID uuid.UUID
	Text     string
	Position vector.Vec3
	Scale    float64
	Hidden   bool
}

// Line is a renderable segment between two star positions, created by a
// constellation session. Endpoints are fixed at creation; lines use a
// constant (unlit) lighting model.
type Line struct {
	ID    uuid.UUID
	From  vector.Vec3
	To    vector.Vec3
	Color colorful.Color
}

// LightKind distinguishes the two fixed scene lights.
type LightKind int

const (
	LightDirectional LightKind = iota
	LightAmbient
)

// Light is one of the scene's fixed lights. Directional lights carry an
// orientation; ambient lights only intensity and color.
type Light struct {
	Kind        LightKind
	Name        string
	Direction   vector.Vec3 // directional only; unit vector
	Intensity   float64     // normalized 0-1
	Color       colorful.Color
	CastsShadow bool
}

// Graph is the scene graph the renderer traverses each frame. Collections
// are typed rather than name-tagged so queries never rescan by string.
// All mutation goes through the owning state manager; the renderer only
// reads.
type Graph struct {
	Container string

	Markers []*Marker
	Labels  []*Label
	Lines   []*Line
	Lights  []Light
	Camera  *Camera

	markersByStar map[uuid.UUID]*Marker
}

// Build constructs the scene graph for a star model: one marker and one
// nametag per star, two fixed lights, and a camera at the supplied pose.
// It has no side effects beyond construction.
func Build(stars []Star, pose Pose) *Graph {
	g := &Graph{
		Container:     ContainerName,
		Markers:       make([]*Marker, 0, len(stars)),
		Labels:        make([]*Label, 0, len(stars)),
		markersByStar: make(map[uuid.UUID]*Marker, len(stars)),
	}

	for _, star := range stars {
		m := &Marker{
			ID:       uuid.New(),
			StarID:   star.ID,
			Name:     star.Name,
			Position: star.Position,
			Radius:   star.DisplaySize,
			Opacity:  star.Opacity,
		}
		l := &Label{
			ID:       uuid.New(),
			MarkerID: m.ID,
			Text:     star.Name,
			Position: labelPosition(m),
			Scale:    labelScale,
		}
		g.Markers = append(g.Markers, m)
		g.Labels = append(g.Labels, l)
		g.markersByStar[star.ID] = m
	}

	g.Lights = []Light{
		{
			Kind:        LightDirectional,
			Name:        "keyLight",
			Direction:   vector.Vec3{X: 0, Y: -0.6, Z: -0.8}.Normalize(),
			Intensity:   0.9,
			Color:       colorful.Color{R: 1, G: 1, B: 1},
			CastsShadow: false,
		},
		{
			Kind:      LightAmbient,
			Name:      "fillLight",
			Intensity: 0.4,
			Color:     colorful.Color{R: 0.8, G: 0.8, B: 0.9},
		},
	}

	g.Camera = NewCamera(pose)

	return g
}

// labelPosition places a nametag a fixed distance above its marker.
func labelPosition(m *Marker) vector.Vec3 {
	p := m.Position
	p.Y += m.Radius + labelOffset
	return p
}

// MarkerForStar returns the marker created for the given star, or nil.
func (g *Graph) MarkerForStar(starID uuid.UUID) *Marker {
	return g.markersByStar[starID]
}

// SetLabelsVisible sets every nametag's hidden flag to the negation of
// visible. Idempotent; O(number of labels).
func (g *Graph) SetLabelsVisible(visible bool) {
	for _, l := range g.Labels {
		l.Hidden = !visible
	}
}

// AddLine attaches a session-owned line node to the graph.
func (g *Graph) AddLine(l *Line) {
	g.Lines = append(g.Lines, l)
}

// RemoveAllLines detaches every line node and returns how many were
// removed.
func (g *Graph) RemoveAllLines() int {
	n := len(g.Lines)
	g.Lines = nil
	return n
}
