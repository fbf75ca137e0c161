package sky

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/attitude"
)

// FrameExport is the JSON-serializable representation of one composed frame.
type FrameExport struct {
	Timestamp time.Time         `json:"timestamp"`
	JD        float64           `json:"jd"`
	LSTHours  float64           `json:"lst_hours"`
	Observer  astro.Observer    `json:"observer"`
	Attitude  attitude.Attitude `json:"attitude"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	FOVDeg    float64           `json:"fov_deg"`
	Visible   int               `json:"visible"`
	Picked    *StarExport       `json:"picked,omitempty"`
	Stars     []StarExport      `json:"stars"`
}

// StarExport is a JSON-friendly plotted star.
type StarExport struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Mag    float64 `json:"mag"`
	Alt    float64 `json:"alt"`
	Az     float64 `json:"az"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Radius int     `json:"radius"`
}

// ExportFrame converts a frame composed from c into an exportable format.
func ExportFrame(f Frame, c *Cache, att attitude.Attitude, at time.Time) *FrameExport {
	export := &FrameExport{
		Timestamp: at.UTC(),
		JD:        f.JD,
		LSTHours:  f.LSTHours,
		Attitude:  att,
		Width:     f.Viewport.Width,
		Height:    f.Viewport.Height,
		FOVDeg:    f.Viewport.FOVDeg,
		Stars:     make([]StarExport, 0, len(f.Points)),
	}
	if c == nil {
		return export
	}

	export.Observer = c.Observer()
	export.Visible = c.VisibleCount()

	stars := c.Stars()
	for _, p := range f.Points {
		s := stars[p.Index]
		e := c.Entry(p.Index)
		row := StarExport{
			Index:  p.Index,
			Name:   s.Name,
			Mag:    s.Mag,
			Alt:    e.AltDeg,
			Az:     e.AzDeg,
			X:      p.Point.X,
			Y:      p.Point.Y,
			Radius: int(p.Radius),
		}
		export.Stars = append(export.Stars, row)
		if f.HasPick && p.Index == f.Picked {
			picked := row
			export.Picked = &picked
		}
	}

	return export
}

// WriteJSON writes the frame as JSON to the given writer.
func (e *FrameExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes the plotted stars of f as a text table in catalog
// order. The picked star is marked with '>'.
func WriteSummaryTable(w io.Writer, f Frame, c *Cache, timestamp time.Time) {
	obs := c.Observer()
	fmt.Fprintf(w, "Sky @ %s  JD %.5f  LST %s\n",
		timestamp.UTC().Format(time.RFC3339), f.JD, FormatHours(f.LSTHours))
	fmt.Fprintf(w, "Observer %s (%.4f, %.4f)  FOV %.0f°  %dx%d\n",
		observerName(obs), obs.LatDeg, obs.LonDeg, f.Viewport.FOVDeg, f.Viewport.Width, f.Viewport.Height)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(f.Points) == 0 {
		fmt.Fprintln(w, "No stars in view")
		fmt.Fprintf(w, "\nAbove horizon: %d of %d\n", c.VisibleCount(), c.Len())
		return
	}

	fmt.Fprintf(w, "  %-16s %6s %7s %7s %5s %5s %3s\n",
		"Star", "Mag", "Alt", "Az", "X", "Y", "R")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	stars := c.Stars()
	for _, p := range f.Points {
		s := stars[p.Index]
		e := c.Entry(p.Index)
		mark := " "
		if f.HasPick && p.Index == f.Picked {
			mark = ">"
		}
		fmt.Fprintf(w, "%s %-16s %6.2f %7.2f %7.2f %5d %5d %3d\n",
			mark,
			truncateStr(s.Name, 16),
			s.Mag,
			e.AltDeg,
			e.AzDeg,
			p.Point.X,
			p.Point.Y,
			p.Radius,
		)
	}

	fmt.Fprintf(w, "\nIn view: %d  Above horizon: %d of %d\n", len(f.Points), c.VisibleCount(), c.Len())
	if s, ok := f.PickedStar(stars); ok {
		fmt.Fprintf(w, "Picked: %s\n", s.Name)
	} else {
		fmt.Fprintln(w, "Picked: none")
	}
}

// FormatHours renders decimal hours as HHhMMmSSs.
func FormatHours(h float64) string {
	total := int(h*3600 + 0.5)
	total %= 24 * 3600
	return fmt.Sprintf("%02dh%02dm%02ds", total/3600, total/60%60, total%60)
}

func observerName(o astro.Observer) string {
	if o.Name == "" {
		return "unnamed"
	}
	return o.Name
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
