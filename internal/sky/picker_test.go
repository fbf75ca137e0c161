package sky

import (
	"testing"
	"time"

	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/camera"
)

var testViewport = camera.Viewport{Width: 800, Height: 480, FOVDeg: 60}

// northAt returns a visible entry that lands dx pixels right of center when
// the camera looks due north.
func northAt(dx float64) Entry {
	east := dx / testViewport.Focal()
	return Entry{Dir: astro.NewHorizonDir(east, 1, 0), Visible: true}
}

func TestPick(t *testing.T) {
	level := camera.BasisFromAttitude(0, 0, 0)

	hidden := northAt(0)
	hidden.Visible = false

	tests := []struct {
		name    string
		entries []Entry
		want    int
		wantOK  bool
	}{
		{"empty", nil, -1, false},
		{"centered", []Entry{northAt(0)}, 0, true},
		{"nearest wins", []Entry{northAt(20), northAt(5), northAt(-12)}, 1, true},
		{"tie keeps first", []Entry{northAt(30), northAt(8), northAt(8)}, 1, true},
		{"outside radius", []Entry{northAt(50), northAt(-60)}, -1, false},
		{"invisible skipped", []Entry{hidden, northAt(25)}, 1, true},
		{"behind camera", []Entry{{Dir: astro.NewHorizonDir(0, -1, 0), Visible: true}}, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(tt.entries, level, testViewport, DefaultPickRadius)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Pick() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNearest_RadiusInclusive(t *testing.T) {
	tests := []struct {
		x      int
		wantOK bool
	}{
		{400, true},
		{435, true},
		{436, false},
		{365, true},
		{364, false},
	}
	for _, tt := range tests {
		n := newNearest(testViewport)
		n.offer(7, camera.Point{X: tt.x, Y: 240})
		idx, ok := n.result(DefaultPickRadius)
		if ok != tt.wantOK {
			t.Errorf("x=%d: ok = %v, want %v", tt.x, ok, tt.wantOK)
		}
		if ok && idx != 7 {
			t.Errorf("x=%d: index = %d, want 7", tt.x, idx)
		}
	}
}

func TestCompose(t *testing.T) {
	stars := []astro.Star{
		{Name: "Off axis", RAHours: 3, DecDeg: 45, Mag: 1.5},
		{Name: "Near zenith", RAHours: 1, DecDeg: 89.9, Mag: 2.0},
		{Name: "Too faint", RAHours: 5, DecDeg: 89.95, Mag: 6.0},
		{Name: "Also high", RAHours: 13, DecDeg: 88, Mag: 3.0},
	}
	c := NewCache(stars, CacheConfig{Observer: pole, MagCutoff: DefaultMagCutoff})
	c.Refresh(time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC))

	// Looking straight up from the pole
	b := camera.BasisFromAttitude(0, 90, 0)
	f := Compose(c, b, testViewport, DefaultPickRadius, nil)

	if !f.HasPick || f.Picked != 1 {
		t.Fatalf("Compose picked (%d, %v), want (1, true)", f.Picked, f.HasPick)
	}
	if idx, ok := Pick(c.Entries(), b, testViewport, DefaultPickRadius); idx != f.Picked || ok != f.HasPick {
		t.Errorf("Pick() = (%d, %v) disagrees with Compose", idx, ok)
	}

	for _, p := range f.Points {
		if p.Index == 0 || p.Index == 2 {
			t.Errorf("star %d should not be plotted", p.Index)
		}
	}
	if len(f.Points) != 2 {
		t.Errorf("plotted %d stars, want 2", len(f.Points))
	}

	s, ok := f.PickedStar(stars)
	if !ok || s.Name != "Near zenith" {
		t.Errorf("PickedStar() = %q, %v", s.Name, ok)
	}
	p, ok := f.PickedPoint()
	if !ok {
		t.Fatal("PickedPoint() not found")
	}
	if dx, dy := p.X-400, p.Y-240; dx*dx+dy*dy > 35*35 {
		t.Errorf("picked point %+v outside the pick radius", p)
	}

	if f.JD != c.JD() || f.LSTHours != c.LSTHours() {
		t.Error("frame time does not match cache refresh")
	}
}

func TestCompose_ReusesBuffer(t *testing.T) {
	c := NewCache([]astro.Star{{Name: "Up", DecDeg: 89.9, Mag: 1}},
		CacheConfig{Observer: pole, MagCutoff: DefaultMagCutoff})
	c.Refresh(time.Now())
	b := camera.BasisFromAttitude(0, 90, 0)

	buf := make([]Plotted, 0, 8)
	f := Compose(c, b, testViewport, DefaultPickRadius, buf)
	if len(f.Points) != 1 {
		t.Fatalf("plotted %d, want 1", len(f.Points))
	}
	if &f.Points[:1][0] != &buf[:1][0] {
		t.Error("Compose did not reuse the supplied buffer")
	}
}

func TestFrame_NoPick(t *testing.T) {
	f := Frame{Picked: -1}
	if _, ok := f.PickedStar([]astro.Star{{Name: "x"}}); ok {
		t.Error("PickedStar() ok without a pick")
	}
	if _, ok := f.PickedPoint(); ok {
		t.Error("PickedPoint() ok without a pick")
	}
}
