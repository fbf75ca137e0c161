// Package sky keeps the per-star visibility cache and picks the star
// nearest the center of the view each frame.
package sky

import (
	"time"

	"github.com/litescript/pocket-planetarium/internal/astro"
	"github.com/litescript/pocket-planetarium/internal/logging"
)

const (
	// DefaultRefreshInterval is how long cached directions stay valid.
	DefaultRefreshInterval = time.Second

	// DefaultMagCutoff hides stars fainter than a dark-sky naked eye limit.
	DefaultMagCutoff = 5.5
)

// RadiusClass is the coarse on-screen size of a star, 0 (faint) to 3 (bright).
type RadiusClass int

const (
	RadiusFaint RadiusClass = iota
	RadiusDim
	RadiusMedium
	RadiusBright
)

// RadiusFor returns the size class for an apparent magnitude.
func RadiusFor(mag float64) RadiusClass {
	switch {
	case mag <= 1.0:
		return RadiusBright
	case mag <= 2.5:
		return RadiusMedium
	case mag <= 4.0:
		return RadiusDim
	default:
		return RadiusFaint
	}
}

// Entry is the cached state of one catalog star.
type Entry struct {
	Dir     astro.HorizonDir
	Visible bool
	Radius  RadiusClass
	AltDeg  float64
	AzDeg   float64
}

// CacheConfig configures a Cache.
type CacheConfig struct {
	Observer  astro.Observer
	MagCutoff float64
	Interval  time.Duration
	Logger    *logging.Logger
}

// Cache holds horizon-frame directions for every catalog star, recomputed
// on a fixed cadence. Entries are indexed by catalog position.
//
// A Cache is owned by a single frame loop and is not safe for concurrent use.
type Cache struct {
	stars   []astro.Star
	entries []Entry

	observer  astro.Observer
	magCutoff float64
	interval  time.Duration
	logger    *logging.Logger

	fresh       bool
	lastRefresh time.Time
	jd          float64
	lst         float64
	visible     int
}

// NewCache creates a stale cache over stars. The slice is referenced, not
// copied, and must not change while the cache is in use.
func NewCache(stars []astro.Star, cfg CacheConfig) *Cache {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Cache{
		stars:     stars,
		entries:   make([]Entry, len(stars)),
		observer:  cfg.Observer,
		magCutoff: cfg.MagCutoff,
		interval:  interval,
		logger:    logger,
	}
}

// Update refreshes the cache if it is stale or the refresh interval has
// elapsed since the last refresh. It reports whether a refresh ran.
func (c *Cache) Update(now time.Time) bool {
	if c.fresh && now.Sub(c.lastRefresh) <= c.interval {
		return false
	}
	c.Refresh(now)
	return true
}

// Refresh recomputes every entry for the instant now.
func (c *Cache) Refresh(now time.Time) {
	jd := astro.JulianDate(now)
	lat, lon := c.observer.LatDeg, c.observer.LonDeg

	visible := 0
	for i, s := range c.stars {
		e := &c.entries[i]

		// In-range tests so NaN magnitudes and altitudes stay hidden
		if !(s.Mag <= c.magCutoff) {
			*e = Entry{}
			continue
		}

		alt, az := astro.RADecToAltAz(s.RAHours, s.DecDeg, jd, lat, lon)
		if !(alt >= 0) {
			*e = Entry{AltDeg: alt, AzDeg: az}
			continue
		}

		*e = Entry{
			Dir:     astro.AltAzToHorizonUnit(alt, az),
			Visible: true,
			Radius:  RadiusFor(s.Mag),
			AltDeg:  alt,
			AzDeg:   az,
		}
		visible++
	}

	c.jd = jd
	c.lst = astro.LSTHours(jd, lon)
	c.visible = visible
	c.lastRefresh = now
	c.fresh = true

	c.logger.Debug("Sky cache refreshed: jd=%.5f lst=%.3fh visible=%d/%d",
		jd, c.lst, visible, len(c.stars))
}

// Invalidate marks the cache stale so the next Update refreshes it.
func (c *Cache) Invalidate() {
	c.fresh = false
}

// SetObserver changes the observer location and invalidates the cache.
func (c *Cache) SetObserver(obs astro.Observer) {
	c.observer = obs
	c.Invalidate()
}

// Observer returns the observer location.
func (c *Cache) Observer() astro.Observer { return c.observer }

// Fresh reports whether the cache has been refreshed and not invalidated.
func (c *Cache) Fresh() bool { return c.fresh }

// Entries returns the cached entries in catalog order. The slice is owned
// by the cache; callers must treat it as read-only.
func (c *Cache) Entries() []Entry { return c.entries }

// Entry returns the entry for catalog index i.
func (c *Cache) Entry(i int) Entry { return c.entries[i] }

// Stars returns the catalog the cache was built over.
func (c *Cache) Stars() []astro.Star { return c.stars }

// Len returns the number of catalog entries.
func (c *Cache) Len() int { return len(c.entries) }

// VisibleCount returns how many entries the last refresh marked visible.
func (c *Cache) VisibleCount() int { return c.visible }

// LastRefresh returns the instant of the last refresh.
func (c *Cache) LastRefresh() time.Time { return c.lastRefresh }

// JD returns the Julian Date shared by all entries of the last refresh.
func (c *Cache) JD() float64 { return c.jd }

// LSTHours returns the local sidereal time of the last refresh.
func (c *Cache) LSTHours() float64 { return c.lst }

// Interval returns the refresh interval.
func (c *Cache) Interval() time.Duration { return c.interval }
