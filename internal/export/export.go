// Package export renders the star field to headless outputs: a text
// summary table and a JSON snapshot.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-starfield/internal/scene"
	"github.com/litescript/ls-starfield/internal/state"
)

// SnapshotExport is the JSON-serializable view of the star field.
type SnapshotExport struct {
	GeneratedAt   time.Time    `json:"generated_at"`
	StarCount     int          `json:"star_count"`
	LineCount     int          `json:"line_count"`
	LabelsVisible bool         `json:"labels_visible"`
	Stars         []StarExport `json:"stars"`
	Lines         []LineExport `json:"lines,omitempty"`
}

// StarExport is a JSON-friendly star with its resolved field position.
type StarExport struct {
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	DisplaySize float64 `json:"display_size"`
	Opacity     float64 `json:"opacity"`
}

// LineExport is a JSON-friendly constellation line.
type LineExport struct {
	From  [3]float64 `json:"from"`
	To    [3]float64 `json:"to"`
	Color string     `json:"color"`
}

// Snapshot converts the manager's current state to an exportable form.
func Snapshot(stars []scene.Star, graph *scene.Graph, snap state.Snapshot, generatedAt time.Time) *SnapshotExport {
	export := &SnapshotExport{
		GeneratedAt:   generatedAt,
		StarCount:     snap.StarCount,
		LineCount:     snap.LineCount,
		LabelsVisible: snap.LabelsVisible,
		Stars:         make([]StarExport, 0, len(stars)),
	}

	for _, s := range stars {
		export.Stars = append(export.Stars, StarExport{
			Name:        s.Name,
			X:           s.Position.X,
			Y:           s.Position.Y,
			Z:           s.Position.Z,
			DisplaySize: s.DisplaySize,
			Opacity:     s.Opacity,
		})
	}

	for _, l := range graph.Lines {
		export.Lines = append(export.Lines, LineExport{
			From:  [3]float64{l.From.X, l.From.Y, l.From.Z},
			To:    [3]float64{l.To.X, l.To.Y, l.To.Z},
			Color: l.Color.Hex(),
		})
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text table of the star field.
func WriteSummaryTable(w io.Writer, stars []scene.Star, snap state.Snapshot, timestamp time.Time) {
	fmt.Fprintf(w, "Star field @ %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(stars) == 0 {
		fmt.Fprintln(w, "No stars loaded")
		return
	}

	fmt.Fprintf(w, "%-16s %9s %9s %9s %6s %8s\n",
		"Name", "X", "Y", "Z", "Size", "Opacity")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	for _, s := range stars {
		fmt.Fprintf(w, "%-16s %9.3f %9.3f %9.3f %6.2f %7.0f%%\n",
			truncateStr(s.Name, 16),
			s.Position.X, s.Position.Y, s.Position.Z,
			s.DisplaySize, s.Opacity*100)
	}

	fmt.Fprintf(w, "\nTotal: %d stars, %d constellation lines", len(stars), snap.LineCount)
	if snap.LoadStats.Skipped > 0 {
		fmt.Fprintf(w, " (%d catalog rows skipped)", snap.LoadStats.Skipped)
	}
	fmt.Fprintln(w)
}

// truncateStr shortens a string to max characters with an ellipsis.
func truncateStr(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
