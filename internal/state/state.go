// Package state provides the single owning controller for the star field:
// it serializes every mutation (gestures, picking, session transitions,
// scene edits) and exposes read-only snapshots to the UI layer.
package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/scene"
	"github.com/litescript/ls-starfield/internal/session"
)

// EventType labels entries in the interaction event log.
type EventType string

const (
	EventStarFocused EventType = "STAR_FOCUSED"
	EventLineDrawn   EventType = "LINE_DRAWN"
	EventLinesErased EventType = "LINES_ERASED"
	EventModeChanged EventType = "MODE_CHANGED"
)

// Event records one interaction for the event log.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Star      string    `json:"star,omitempty"`
	Partner   string    `json:"partner,omitempty"` // second endpoint of a drawn line
	Count     int       `json:"count,omitempty"`   // lines erased
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents   int
	InitialPose scene.Pose
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:   50,
		InitialPose: scene.DefaultPose(),
	}
}

// Manager owns the star model, the scene graph, the camera and the
// constellation session. Nothing outside this package writes to any of
// them; the renderer reads the graph, the UI layer reads snapshots and
// requests changes through the command methods.
type Manager struct {
	mu sync.Mutex

	stars   []scene.Star
	graph   *scene.Graph
	session *session.Session

	initialPose scene.Pose
	loadStats   catalog.Stats

	// UI-facing observables
	selectedName  string
	selectedInfo  string
	labelsVisible bool

	// Pending drag delta; most recent event wins, consumed exactly once.
	pendingDX float64
	pendingDY float64

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int
}

// NewManager creates a manager with an empty star field.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	m := &Manager{
		initialPose:   cfg.InitialPose,
		labelsVisible: true,
		maxEvents:     maxEvents,
		events:        make([]Event, 0, maxEvents),
	}
	m.rebuild(nil)
	return m
}

// Reset replaces the star field from a validated record sequence. The
// previous graph, stars and lines are discarded wholesale; the swap is
// atomic from any reader's perspective.
func (m *Manager) Reset(records []catalog.Record, stats catalog.Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadStats = stats
	m.rebuild(records)
}

// rebuild constructs stars, graph and session. Caller holds the lock
// (or is the constructor).
func (m *Manager) rebuild(records []catalog.Record) {
	m.stars = scene.NewStars(records)
	m.graph = scene.Build(m.stars, m.initialPose)
	m.graph.SetLabelsVisible(m.labelsVisible)
	m.session = session.New(m.graph)
	m.selectedName = ""
	m.selectedInfo = ""
	m.pendingDX, m.pendingDY = 0, 0
}

// Graph returns the scene graph for per-frame traversal. The renderer
// only reads it; mutation stays behind this manager.
func (m *Manager) Graph() *scene.Graph {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.graph
}

// TapOutcome describes what a tap gesture resolved to.
type TapOutcome int

const (
	TapMiss TapOutcome = iota
	TapFocused
	TapBuffered
	TapLineDrawn
	TapSelfPick
)

// Tap resolves a tap at a screen point. With line-drawing mode off, a hit
// focuses the camera on the star and updates the selection observables;
// with it on, the pick feeds the constellation session. A miss changes
// nothing.
func (m *Manager) Tap(px, py, width, height float64) TapOutcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	marker := m.graph.Resolve(px, py, width, height)
	if marker == nil {
		return TapMiss
	}

	star, ok := m.starByID(marker.StarID)
	if !ok {
		return TapMiss
	}

	if !m.session.Active() {
		m.graph.Camera.FocusOn(star.Position)
		m.selectedName = star.Name
		m.selectedInfo = star.Info()
		m.addEvent(Event{Type: EventStarFocused, Timestamp: time.Now(), Star: star.Name})
		return TapFocused
	}

	wasPending := m.session.Pending()
	line := m.session.Pick(star)
	switch {
	case line != nil:
		m.addEvent(Event{
			Type:      EventLineDrawn,
			Timestamp: time.Now(),
			Star:      wasPending.Name,
			Partner:   star.Name,
		})
		return TapLineDrawn
	case wasPending != nil && wasPending.ID == star.ID:
		return TapSelfPick
	default:
		return TapBuffered
	}
}

// Pan records a drag delta. Only the most recent un-applied delta is
// kept; ApplyPan consumes it.
func (m *Manager) Pan(dx, dy float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pendingDX = dx
	m.pendingDY = dy
}

// ApplyPan feeds the pending drag delta into the camera orbit and zeroes
// it, so a delta is never applied twice.
func (m *Manager) ApplyPan() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pendingDX == 0 && m.pendingDY == 0 {
		return
	}
	m.graph.Camera.Orbit(m.pendingDX, m.pendingDY)
	m.pendingDX, m.pendingDY = 0, 0
}

// ToggleLineMode flips constellation-drawing mode and returns the new
// flag. An in-progress pick is discarded by the session.
func (m *Manager) ToggleLineMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.session.ToggleMode()
	m.addEvent(Event{Type: EventModeChanged, Timestamp: time.Now()})
	return active
}

// EraseAllLines removes every constellation line; mode is unaffected.
func (m *Manager) EraseAllLines() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.session.EraseAll()
	if n > 0 {
		m.addEvent(Event{Type: EventLinesErased, Timestamp: time.Now(), Count: n})
	}
	return n
}

// SetLabelsVisible propagates the labels-visible flag to every nametag.
func (m *Manager) SetLabelsVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.labelsVisible = visible
	m.graph.SetLabelsVisible(visible)
}

func (m *Manager) starByID(id uuid.UUID) (scene.Star, bool) {
	for _, s := range m.stars {
		if s.ID == id {
			return s, true
		}
	}
	return scene.Star{}, false
}

// Snapshot is an immutable view of the observable state for the UI layer.
type Snapshot struct {
	SelectedName  string
	SelectedInfo  string
	LineMode      bool
	SessionState  session.State
	PendingName   string
	LabelsVisible bool
	StarCount     int
	LineCount     int
	CameraPose    scene.Pose
	LoadStats     catalog.Stats
	Events        []Event
}

// Snapshot returns a consistent copy of the observable state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	pendingName := ""
	if p := m.session.Pending(); p != nil {
		pendingName = p.Name
	}

	return Snapshot{
		SelectedName:  m.selectedName,
		SelectedInfo:  m.selectedInfo,
		LineMode:      m.session.Active(),
		SessionState:  m.session.State(),
		PendingName:   pendingName,
		LabelsVisible: m.labelsVisible,
		StarCount:     len(m.stars),
		LineCount:     len(m.graph.Lines),
		CameraPose:    m.graph.Camera.Pose(),
		LoadStats:     m.loadStats,
		Events:        m.eventsOrdered(),
	}
}

// Stars returns a copy of the star model.
func (m *Manager) Stars() []scene.Star {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]scene.Star, len(m.stars))
	copy(out, m.stars)
	return out
}

// addEvent appends to the ring buffer. Caller holds the lock.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// eventsOrdered returns events oldest-first. Caller holds the lock.
func (m *Manager) eventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		out := make([]Event, len(m.events))
		copy(out, m.events)
		return out
	}

	out := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		out[i] = m.events[(m.eventWriteAt+i)%m.maxEvents]
	}
	return out
}

// RecentEvents returns the last n events, oldest-first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.eventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}
