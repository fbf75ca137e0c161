package sky

import (
	"math"
	"testing"
	"time"

	"github.com/litescript/pocket-planetarium/internal/astro"
)

// At the north pole altitude equals declination at every instant.
var pole = astro.Observer{Name: "pole", LatDeg: 90, LonDeg: 0}

func poleStars() []astro.Star {
	return []astro.Star{
		{Name: "High", RAHours: 2.0, DecDeg: 45, Mag: 2.0},
		{Name: "Low", RAHours: 6.0, DecDeg: -10, Mag: 1.0},
		{Name: "Faint", RAHours: 8.0, DecDeg: 60, Mag: 6.0},
		{Name: "Limit", RAHours: 10.0, DecDeg: 30, Mag: 5.5},
	}
}

func newPoleCache() *Cache {
	return NewCache(poleStars(), CacheConfig{Observer: pole, MagCutoff: DefaultMagCutoff})
}

func TestRadiusFor(t *testing.T) {
	tests := []struct {
		mag  float64
		want RadiusClass
	}{
		{-1.46, RadiusBright},
		{1.0, RadiusBright},
		{1.01, RadiusMedium},
		{2.5, RadiusMedium},
		{2.51, RadiusDim},
		{4.0, RadiusDim},
		{4.01, RadiusFaint},
		{5.5, RadiusFaint},
	}
	for _, tt := range tests {
		if got := RadiusFor(tt.mag); got != tt.want {
			t.Errorf("RadiusFor(%v) = %d, want %d", tt.mag, got, tt.want)
		}
	}
}

func TestCache_StartsStale(t *testing.T) {
	c := newPoleCache()
	if c.Fresh() {
		t.Error("new cache reports fresh")
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	if c.Interval() != DefaultRefreshInterval {
		t.Errorf("Interval() = %v, want %v", c.Interval(), DefaultRefreshInterval)
	}
	for i, e := range c.Entries() {
		if e.Visible {
			t.Errorf("entry %d visible before first refresh", i)
		}
	}
}

func TestCache_RefreshCadence(t *testing.T) {
	c := newPoleCache()
	t0 := time.Date(2025, 3, 20, 21, 0, 0, 0, time.UTC)

	steps := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{500 * time.Millisecond, false},
		{time.Second, false},
		{time.Second + time.Millisecond, true},
		{1500 * time.Millisecond, false},
	}
	for _, s := range steps {
		if got := c.Update(t0.Add(s.offset)); got != s.want {
			t.Errorf("Update(+%v) = %v, want %v", s.offset, got, s.want)
		}
	}
	if want := t0.Add(time.Second + time.Millisecond); !c.LastRefresh().Equal(want) {
		t.Errorf("LastRefresh() = %v, want %v", c.LastRefresh(), want)
	}
}

func TestCache_InvalidateForcesRefresh(t *testing.T) {
	c := newPoleCache()
	now := time.Date(2025, 3, 20, 21, 0, 0, 0, time.UTC)
	c.Update(now)

	c.Invalidate()
	if c.Fresh() {
		t.Error("Fresh() after Invalidate")
	}
	if !c.Update(now) {
		t.Error("Update after Invalidate did not refresh")
	}
}

func TestCache_SetObserverInvalidates(t *testing.T) {
	c := newPoleCache()
	now := time.Date(2025, 3, 20, 21, 0, 0, 0, time.UTC)
	c.Update(now)

	south := astro.Observer{Name: "south pole", LatDeg: -90}
	c.SetObserver(south)
	if c.Fresh() {
		t.Error("Fresh() after SetObserver")
	}
	if c.Observer() != south {
		t.Errorf("Observer() = %+v", c.Observer())
	}

	c.Update(now)
	// Seen from the south pole only the southern star is up
	if !c.Entry(1).Visible || c.Entry(0).Visible {
		t.Errorf("visibility after move: high=%v low=%v", c.Entry(0).Visible, c.Entry(1).Visible)
	}
}

func TestCache_Entries(t *testing.T) {
	c := newPoleCache()
	now := time.Date(2025, 3, 20, 21, 0, 0, 0, time.UTC)
	c.Refresh(now)

	high := c.Entry(0)
	if !high.Visible {
		t.Fatal("dec +45 star not visible from the pole")
	}
	if math.Abs(high.AltDeg-45) > 1e-6 {
		t.Errorf("High alt = %v, want 45", high.AltDeg)
	}
	if high.Radius != RadiusMedium {
		t.Errorf("High radius = %d, want %d", high.Radius, RadiusMedium)
	}
	if got := high.Dir.Vec().Norm(); math.Abs(got-1) > 1e-9 {
		t.Errorf("High dir norm = %v", got)
	}
	alt, _ := astro.HorizonUnitToAltAz(high.Dir)
	if math.Abs(alt-high.AltDeg) > 1e-6 {
		t.Errorf("dir alt %v disagrees with cached alt %v", alt, high.AltDeg)
	}

	low := c.Entry(1)
	if low.Visible {
		t.Error("dec -10 star visible from the north pole")
	}
	if math.Abs(low.AltDeg+10) > 1e-6 {
		t.Errorf("Low alt = %v, want -10", low.AltDeg)
	}

	if faint := c.Entry(2); faint != (Entry{}) {
		t.Errorf("star past the cutoff has entry %+v, want zero", faint)
	}

	if !c.Entry(3).Visible {
		t.Error("star at exactly the cutoff not visible")
	}

	if c.VisibleCount() != 2 {
		t.Errorf("VisibleCount() = %d, want 2", c.VisibleCount())
	}
}

func TestCache_SharedInstant(t *testing.T) {
	c := newPoleCache()
	now := time.Date(2025, 3, 20, 21, 0, 0, 0, time.UTC)
	c.Refresh(now)

	jd := astro.JulianDate(now)
	if c.JD() != jd {
		t.Errorf("JD() = %v, want %v", c.JD(), jd)
	}
	if want := astro.LSTHours(jd, pole.LonDeg); c.LSTHours() != want {
		t.Errorf("LSTHours() = %v, want %v", c.LSTHours(), want)
	}
}

func TestCache_CutoffHidesEverything(t *testing.T) {
	c := NewCache(poleStars(), CacheConfig{Observer: pole, MagCutoff: -5})
	c.Refresh(time.Now())
	if c.VisibleCount() != 0 {
		t.Errorf("VisibleCount() = %d with cutoff -5, want 0", c.VisibleCount())
	}
}

func TestCache_NonFiniteHidden(t *testing.T) {
	stars := []astro.Star{
		{Name: "Ghost", RAHours: math.NaN(), DecDeg: math.NaN(), Mag: 1},
		{Name: "Blank", RAHours: 1, DecDeg: 45, Mag: math.NaN()},
		{Name: "Real", RAHours: 1, DecDeg: 45, Mag: 1},
	}
	c := NewCache(stars, CacheConfig{Observer: pole, MagCutoff: DefaultMagCutoff})
	c.Refresh(time.Now())

	for i := 0; i < 2; i++ {
		if c.Entry(i).Visible {
			t.Errorf("%s marked visible: %+v", stars[i].Name, c.Entry(i))
		}
	}
	if !c.Entry(2).Visible || c.VisibleCount() != 1 {
		t.Errorf("VisibleCount() = %d, want only Real visible", c.VisibleCount())
	}
}

func TestCache_Empty(t *testing.T) {
	c := NewCache(nil, CacheConfig{Observer: pole, MagCutoff: DefaultMagCutoff, Interval: 5 * time.Second})
	if !c.Update(time.Now()) {
		t.Error("first Update on empty cache did not refresh")
	}
	if c.Len() != 0 || c.VisibleCount() != 0 {
		t.Errorf("empty cache Len=%d Visible=%d", c.Len(), c.VisibleCount())
	}
	if c.Interval() != 5*time.Second {
		t.Errorf("Interval() = %v, want 5s", c.Interval())
	}
}
