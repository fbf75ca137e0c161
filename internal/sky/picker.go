package sky

import (
	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/camera"
)

// DefaultPickRadius is the pick radius in pixels around the view center.
const DefaultPickRadius = 35.0

// nearest tracks the projected entry closest to the viewport center.
// Ties keep the earlier index.
type nearest struct {
	cx, cy float64
	index  int
	dist2  float64
	found  bool
}

func newNearest(vp camera.Viewport) nearest {
	cx, cy := vp.Center()
	return nearest{cx: cx, cy: cy, index: -1}
}

func (n *nearest) offer(i int, p camera.Point) {
	dx := float64(p.X) - n.cx
	dy := float64(p.Y) - n.cy
	d2 := dx*dx + dy*dy
	if !n.found || d2 < n.dist2 {
		n.index, n.dist2, n.found = i, d2, true
	}
}

func (n nearest) result(radiusPx float64) (int, bool) {
	if !n.found || n.dist2 > radiusPx*radiusPx {
		return -1, false
	}
	return n.index, true
}

// Pick returns the index of the visible entry that projects nearest to the
// viewport center, if it lies within radiusPx. Ties go to the lower index.
func Pick(entries []Entry, b camera.Basis, vp camera.Viewport, radiusPx float64) (int, bool) {
	n := newNearest(vp)
	for i := range entries {
		e := &entries[i]
		if !e.Visible {
			continue
		}
		p, ok := camera.Project(e.Dir, b, vp)
		if !ok {
			continue
		}
		n.offer(i, p)
	}
	return n.result(radiusPx)
}

// Plotted is one star placed on screen.
type Plotted struct {
	Index  int
	Point  camera.Point
	Radius RadiusClass
}

// Frame is everything a renderer needs for one frame.
type Frame struct {
	Basis    camera.Basis
	Viewport camera.Viewport
	Points   []Plotted
	Picked   int
	HasPick  bool
	JD       float64
	LSTHours float64
}

// Compose projects every visible cache entry through one basis and picks
// the star nearest the center. It agrees with Pick on the picked index.
//
// buf is reused for the Points slice when it has enough capacity.
func Compose(c *Cache, b camera.Basis, vp camera.Viewport, radiusPx float64, buf []Plotted) Frame {
	points := buf[:0]
	n := newNearest(vp)

	entries := c.Entries()
	for i := range entries {
		e := &entries[i]
		if !e.Visible {
			continue
		}
		p, ok := camera.Project(e.Dir, b, vp)
		if !ok {
			continue
		}
		points = append(points, Plotted{Index: i, Point: p, Radius: e.Radius})
		n.offer(i, p)
	}

	picked, has := n.result(radiusPx)
	return Frame{
		Basis:    b,
		Viewport: vp,
		Points:   points,
		Picked:   picked,
		HasPick:  has,
		JD:       c.JD(),
		LSTHours: c.LSTHours(),
	}
}

// PickedStar returns the picked star from stars, if any.
func (f Frame) PickedStar(stars []astro.Star) (astro.Star, bool) {
	if !f.HasPick || f.Picked < 0 || f.Picked >= len(stars) {
		return astro.Star{}, false
	}
	return stars[f.Picked], true
}

// PickedPoint returns the screen position of the picked star.
func (f Frame) PickedPoint() (camera.Point, bool) {
	if !f.HasPick {
		return camera.Point{}, false
	}
	for _, p := range f.Points {
		if p.Index == f.Picked {
			return p.Point, true
		}
	}
	return camera.Point{}, false
}
