package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starfield/internal/geometry/vector"
	"github.com/litescript/ls-starfield/internal/scene"
)

const (
	// nearClip rejects geometry at or behind the camera plane.
	nearClip = 0.05

	// Marker glyphs by opacity tier (opacity tracks brightness).
	glyphStarBright = '✶' // opacity > 0.8
	glyphStarMedium = '✸' // opacity > 0.55
	glyphStarDim    = '·'

	glyphStarSelected = '◆'
	glyphLine         = '·'

	// Colors
	colorStarBright   = "255"
	colorStarMedium   = "250"
	colorStarDim      = "244"
	colorStarSelected = "229" // bright gold
	colorLabel        = "#d0c8ff"
	colorBackground   = "236"
)

// canvas is a rune grid with per-cell colors, rendered row by row.
type canvas struct {
	width, height int
	cells         [][]rune
	colors        [][]lipgloss.Color
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	c.colors = make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = colorBackground
		}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

func (c *canvas) writeText(x, y int, text string, color lipgloss.Color) {
	for i, r := range []rune(text) {
		c.set(x+i, y, r, color)
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			style := lipgloss.NewStyle().Foreground(c.colors[y][x])
			b.WriteString(style.Render(string(c.cells[y][x])))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// projectPoint maps a world position to canvas coordinates. It is the
// exact inverse of the camera's picking ray, so a tap on a drawn cell
// resolves to the geometry drawn there.
func projectPoint(cam *scene.Camera, p vector.Vec3, width, height int) (int, int, bool) {
	forward, right, up := cam.Basis()
	v := p.Sub(cam.Position)

	cz := v.Dot(forward)
	if cz < nearClip {
		return 0, 0, false
	}

	tanHalf := math.Tan(cam.FOVDeg * math.Pi / 360)
	aspect := float64(width) / float64(height)

	ndcX := (v.Dot(right) / cz) / (tanHalf * aspect)
	ndcY := (v.Dot(up) / cz) / tanHalf

	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return 0, 0, false
	}

	x := int(math.Round((ndcX+1)/2*float64(width) - 0.5))
	y := int(math.Round((1-ndcY)/2*float64(height) - 0.5))
	return x, y, true
}

// renderField draws markers, labels and constellation lines from the
// scene graph onto a fresh canvas. The graph is read-only here.
func renderField(g *scene.Graph, width, height int, selectedName string) *canvas {
	c := newCanvas(width, height)
	cam := g.Camera

	// Lines first so markers draw over their endpoints.
	for _, line := range g.Lines {
		drawLine(c, cam, line)
	}

	for _, m := range g.Markers {
		if m.Hidden {
			continue
		}
		x, y, ok := projectPoint(cam, m.Position, width, height)
		if !ok {
			continue
		}

		glyph, color := markerGlyph(m.Opacity)
		if m.Name == selectedName {
			glyph, color = glyphStarSelected, colorStarSelected
		}
		c.set(x, y, glyph, color)
	}

	for _, l := range g.Labels {
		if l.Hidden {
			continue
		}
		x, y, ok := projectPoint(cam, l.Position, width, height)
		if !ok {
			continue
		}
		// Nametag sits centered above its marker position.
		c.writeText(x-len([]rune(l.Text))/2, y, l.Text, colorLabel)
	}

	return c
}

// markerGlyph picks the glyph and color for a marker's opacity tier.
func markerGlyph(opacity float64) (rune, lipgloss.Color) {
	switch {
	case opacity > 0.8:
		return glyphStarBright, colorStarBright
	case opacity > 0.55:
		return glyphStarMedium, colorStarMedium
	default:
		return glyphStarDim, colorStarDim
	}
}

// drawLine rasters a constellation line between its projected endpoints.
// Lines with either endpoint clipped are skipped entirely rather than
// partially drawn.
func drawLine(c *canvas, cam *scene.Camera, line *scene.Line) {
	x0, y0, ok0 := projectPoint(cam, line.From, c.width, c.height)
	x1, y1, ok1 := projectPoint(cam, line.To, c.width, c.height)
	if !ok0 || !ok1 {
		return
	}

	color := lipgloss.Color(line.Color.Hex())

	// Bresenham between the two cells.
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		c.set(x, y, glyphLine, color)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
