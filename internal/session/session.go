// Package session implements the constellation-drawing state machine:
// picks accumulate in pairs and materialize as line nodes in the scene.
package session

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-starfield/internal/scene"
)

// State is the line-drawing machine state.
type State int

const (
	// Inactive: line-drawing mode is off; picks go elsewhere.
	Inactive State = iota
	// Armed: mode is on with an empty selection buffer.
	Armed
	// OnePicked: one star is buffered, waiting for its partner.
	OnePicked
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Armed:
		return "armed"
	case OnePicked:
		return "one-picked"
	default:
		return "unknown"
	}
}

// ColorFunc produces the color for a new line. Injectable for tests.
type ColorFunc func() colorful.Color

// Session owns the line collection and the in-progress selection. It is
// not safe for concurrent use; the state manager serializes access.
type Session struct {
	state   State
	pending *scene.Star
	lines   []*scene.Line
	graph   *scene.Graph
	color   ColorFunc
}

// New creates an inactive session drawing into the given graph.
func New(graph *scene.Graph) *Session {
	return &Session{
		graph: graph,
		color: colorful.FastHappyColor,
	}
}

// SetColorFunc overrides the randomized line color source.
func (s *Session) SetColorFunc(f ColorFunc) {
	if f != nil {
		s.color = f
	}
}

// State reports the current machine state.
func (s *Session) State() State { return s.state }

// Active reports whether line-drawing mode is on.
func (s *Session) Active() bool { return s.state != Inactive }

// Pending returns the buffered star, or nil.
func (s *Session) Pending() *scene.Star { return s.pending }

// Lines returns the session's line collection.
func (s *Session) Lines() []*scene.Line { return s.lines }

// ToggleMode flips line-drawing mode. Entering or leaving always clears
// the selection buffer, so an in-progress pick is discarded rather than
// carried across mode changes. Returns the new active flag.
func (s *Session) ToggleMode() bool {
	s.pending = nil
	if s.state == Inactive {
		s.state = Armed
		return true
	}
	s.state = Inactive
	return false
}

// Pick delivers a picked star while the session is active.
//
// Armed with an empty buffer: the star is buffered (OnePicked). With one
// star buffered: a distinct star closes the pair, emits a line into the
// graph, clears the buffer and returns to Armed; picking the buffered
// star again is a no-op. Picks while Inactive are ignored; the caller is
// expected to route those to camera focus instead.
//
// Returns the created line, or nil when no line was drawn.
func (s *Session) Pick(star scene.Star) *scene.Line {
	switch s.state {
	case Inactive:
		return nil

	case Armed:
		buffered := star
		s.pending = &buffered
		s.state = OnePicked
		return nil

	case OnePicked:
		if s.pending != nil && s.pending.ID == star.ID {
			return nil // self-pick, buffer unchanged
		}

		line := &scene.Line{
			ID:    uuid.New(),
			From:  s.pending.Position,
			To:    star.Position,
			Color: s.color(),
		}
		s.lines = append(s.lines, line)
		s.graph.AddLine(line)

		s.pending = nil
		s.state = Armed
		return line
	}

	return nil
}

// EraseAll detaches every line from the graph and discards the
// collection. Callable in any state; mode and buffer are unaffected.
// Returns how many lines were erased.
func (s *Session) EraseAll() int {
	n := len(s.lines)
	s.lines = nil
	s.graph.RemoveAllLines()
	return n
}
