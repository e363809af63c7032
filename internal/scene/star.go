// Package scene holds the star field model and the renderable scene graph:
// star entities, marker/label/line/light nodes, the camera, and picking.
package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/geometry/vector"
)

// displaySizeDivisor converts a catalog size value to marker radius.
const displaySizeDivisor = 10.0

// Opacity range markers are mapped onto. Brightest (magnitude -4) stars are
// fully opaque; the dimmest valid star (magnitude 4) stays faintly visible.
const (
	opacityMax = 1.0
	opacityMin = 0.2
)

// Star is the in-memory, position-resolved form of a catalog record.
// Stars are created once at load time and never mutated; a full scene
// reset replaces the slice wholesale.
type Star struct {
	ID          uuid.UUID
	Name        string
	Position    vector.Vec3
	DisplaySize float64
	Opacity     float64
}

// NewStar resolves one catalog record into a star entity.
func NewStar(rec catalog.Record) Star {
	return Star{
		ID:          uuid.New(),
		Name:        rec.Name,
		Position:    astro.Project(rec.RA, rec.Dec, rec.Radius),
		DisplaySize: rec.Size / displaySizeDivisor,
		Opacity:     OpacityForMagnitude(rec.Magnitude),
	}
}

// NewStars resolves a validated record sequence into the star model.
func NewStars(records []catalog.Record) []Star {
	stars := make([]Star, 0, len(records))
	for _, rec := range records {
		stars = append(stars, NewStar(rec))
	}
	return stars
}

// OpacityForMagnitude maps an apparent magnitude onto marker opacity.
// Magnitude runs brighter-is-lower over [-4, 4]; opacity runs [0.2, 1.0]
// linearly with brightness. Inputs outside the valid magnitude range are
// clamped, keeping the function total.
func OpacityForMagnitude(mag float64) float64 {
	if mag < catalog.MagnitudeMin {
		mag = catalog.MagnitudeMin
	} else if mag > catalog.MagnitudeMax {
		mag = catalog.MagnitudeMax
	}

	span := catalog.MagnitudeMax - catalog.MagnitudeMin
	return opacityMin + (opacityMax-opacityMin)*(catalog.MagnitudeMax-mag)/span
}

// Info returns the short description shown when a star is selected.
func (s Star) Info() string {
	return fmt.Sprintf("%s  pos(%.2f, %.2f, %.2f)  size %.2f",
		s.Name, s.Position.X, s.Position.Y, s.Position.Z, s.DisplaySize)
}
