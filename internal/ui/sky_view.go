package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/camera"
	"github.com/litescript/pocket-planetarium/internal/sky"
)

const (
	// Star glyphs by radius class
	glyphStarBright = '✶'
	glyphStarMedium = '✸'
	glyphStarDim    = '•'
	glyphStarFaint  = '·'

	// Star colors
	colorStarBright = "255" // bright white
	colorStarMedium = "250" // medium gray
	colorStarDim    = "246"
	colorStarFaint  = "240" // very dim gray

	// Picked target
	glyphTarget = '◆'
	colorTarget = "229" // bright gold

	// Center reticle
	glyphReticle = '+'
	colorReticle = "60" // muted purple

	colorLabel      = "#d0c8ff"
	colorHorizon    = "60"
	colorCardinal   = "252"
	colorBackground = "236"

	// Finest azimuth step when tracing the horizon
	minHorizonStepDeg = 0.05
)

// LabelMode controls which stars get name labels.
type LabelMode int

const (
	LabelNone    LabelMode = iota // No labels
	LabelFocused                  // Only the picked star
	LabelBright                   // Picked star plus the brightest class
	LabelAll                      // Every plotted star
)

var labelModeNames = [...]string{"none", "focused", "bright", "all"}

func (l LabelMode) String() string {
	if l < 0 || int(l) >= len(labelModeNames) {
		return "unknown"
	}
	return labelModeNames[l]
}

// ParseLabelMode parses a label mode name. Unknown names select LabelFocused.
func ParseLabelMode(s string) LabelMode {
	for i, name := range labelModeNames {
		if strings.EqualFold(s, name) {
			return LabelMode(i)
		}
	}
	return LabelFocused
}

func (l LabelMode) next() LabelMode {
	return (l + 1) % LabelMode(len(labelModeNames))
}

// canvas is a grid of terminal cells.
type canvas struct {
	cols, rows int
	cells      [][]rune
	colors     [][]lipgloss.Color
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows}
	c.cells = make([][]rune, rows)
	c.colors = make([][]lipgloss.Color, rows)
	for y := 0; y < rows; y++ {
		c.cells[y] = make([]rune, cols)
		c.colors[y] = make([]lipgloss.Color, cols)
		for x := 0; x < cols; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = colorBackground
		}
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.cols && y >= 0 && y < c.rows
}

func (c *canvas) set(x, y int, r rune, color lipgloss.Color) {
	if c.inside(x, y) {
		c.cells[y][x] = r
		c.colors[y][x] = color
	}
}

func (c *canvas) blank(x, y int) bool {
	return c.inside(x, y) && c.cells[y][x] == ' '
}

// String renders the canvas, batching runs of one color into one style.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.colors[y][x] == c.colors[y][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][start])
			b.WriteString(style.Render(string(c.cells[y][start:x])))
			start = x
		}
		if y < c.rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// toCell maps a viewport pixel onto the terminal grid.
func toCell(p camera.Point, vp camera.Viewport, cols, rows int) (int, int) {
	return p.X * cols / vp.Width, p.Y * rows / vp.Height
}

// starGlyph returns the glyph and color for a radius class.
func starGlyph(r sky.RadiusClass) (rune, lipgloss.Color) {
	switch r {
	case sky.RadiusBright:
		return glyphStarBright, colorStarBright
	case sky.RadiusMedium:
		return glyphStarMedium, colorStarMedium
	case sky.RadiusDim:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarFaint, colorStarFaint
	}
}

// starPos tracks a plotted star for label rendering.
type starPos struct {
	x, y       int
	name       string
	isFocused  bool
	bright     bool
	labelStart int
	labelEnd   int
}

// RenderFrame draws one frame onto a cols x rows grid.
func RenderFrame(f sky.Frame, stars []astro.Star, labels LabelMode, cols, rows int) string {
	c := newCanvas(cols, rows)
	vp := f.Viewport

	drawHorizon(c, f.Basis, vp)

	// Reticle yields to cardinal letters
	cx, cy := cols/2, rows/2
	if c.blank(cx, cy) || (c.inside(cx, cy) && c.cells[cy][cx] == '─') {
		c.set(cx, cy, glyphReticle, colorReticle)
	}

	var positions []starPos
	for _, p := range f.Points {
		x, y := toCell(p.Point, vp, cols, rows)
		if !c.inside(x, y) {
			continue
		}

		focused := f.HasPick && p.Index == f.Picked
		glyph, color := starGlyph(p.Radius)
		if focused {
			glyph, color = glyphTarget, colorTarget
		}
		// The picked star wins a shared cell
		if !focused && c.cells[y][x] == glyphTarget {
			continue
		}
		c.set(x, y, glyph, color)

		name := ""
		if p.Index < len(stars) {
			name = stars[p.Index].Name
		}
		positions = append(positions, starPos{
			x:         x,
			y:         y,
			name:      name,
			isFocused: focused,
			bright:    p.Radius == sky.RadiusBright,
		})
	}

	renderLabels(c, labels, positions)
	return c.String()
}

// drawHorizon traces altitude zero and marks the cardinal points.
func drawHorizon(c *canvas, b camera.Basis, vp camera.Viewport) {
	// Two samples per column keep the line unbroken
	step := vp.FOVDeg / float64(2*c.cols)
	if step < minHorizonStepDeg {
		step = minHorizonStepDeg
	}
	for az := 0.0; az < 360; az += step {
		p, ok := camera.Project(astro.AltAzToHorizonUnit(0, az), b, vp)
		if !ok {
			continue
		}
		x, y := toCell(p, vp, c.cols, c.rows)
		if c.blank(x, y) {
			c.set(x, y, '─', colorHorizon)
		}
	}

	cardinals := []struct {
		label rune
		az    float64
	}{{'N', 0}, {'E', 90}, {'S', 180}, {'W', 270}}
	for _, card := range cardinals {
		p, ok := camera.Project(astro.AltAzToHorizonUnit(0, card.az), b, vp)
		if !ok {
			continue
		}
		x, y := toCell(p, vp, c.cols, c.rows)
		c.set(x, y, card.label, colorCardinal)
	}
}

// renderLabels draws star labels on the canvas based on label mode.
// The focused label takes priority in overlapping regions.
func renderLabels(c *canvas, mode LabelMode, positions []starPos) {
	if mode == LabelNone || len(positions) == 0 {
		return
	}

	// Label starts 2 cells after the glyph
	for i := range positions {
		pos := &positions[i]
		pos.labelStart = pos.x + 2
		labelLen := len([]rune(pos.name))
		if pos.isFocused {
			labelLen += 2
		}
		pos.labelEnd = pos.labelStart + labelLen
	}

	// Cells claimed by the focused label, per row
	focusedClaims := make(map[int]map[int]bool)
	for _, pos := range positions {
		if !pos.isFocused {
			continue
		}
		if focusedClaims[pos.y] == nil {
			focusedClaims[pos.y] = make(map[int]bool)
		}
		for x := pos.labelStart; x < pos.labelEnd; x++ {
			focusedClaims[pos.y][x] = true
		}
	}

	for _, pos := range positions {
		show := false
		switch mode {
		case LabelFocused:
			show = pos.isFocused
		case LabelBright:
			show = pos.isFocused || pos.bright
		case LabelAll:
			show = true
		}
		if !show || pos.name == "" {
			continue
		}

		color := lipgloss.Color(colorLabel)
		text := pos.name
		if pos.isFocused {
			color = colorTarget
			text = "◄ " + pos.name
		}

		for i, r := range []rune(text) {
			x := pos.labelStart + i
			if !c.inside(x, pos.y) {
				continue
			}
			if !pos.isFocused && focusedClaims[pos.y][x] {
				continue
			}
			c.set(x, pos.y, r, color)
		}
	}
}
