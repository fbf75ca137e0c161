// Package astro provides astronomical coordinate transformations and sky math.
package astro

import "math"

// Observer represents a ground-based observer location.
type Observer struct {
	LatDeg float64 `yaml:"latitude" json:"lat_deg"`  // Latitude in degrees (north positive)
	LonDeg float64 `yaml:"longitude" json:"lon_deg"` // Longitude in degrees (east positive)
	Name   string  `yaml:"name" json:"name,omitempty"`
}

// EquatorialDir is a unit direction in the equatorial frame:
// X toward RA 0h, Z toward the north celestial pole.
type EquatorialDir struct {
	v Vec3
}

// Vec returns the underlying vector.
func (d EquatorialDir) Vec() Vec3 { return d.v }

// HorizonDir is a unit direction in the observer's horizon frame,
// East-North-Up: X east, Y north, Z zenith.
type HorizonDir struct {
	v Vec3
}

// NewHorizonDir builds a horizon-frame direction from ENU components.
// The result is normalized.
func NewHorizonDir(east, north, up float64) HorizonDir {
	return HorizonDir{v: Vec3{X: east, Y: north, Z: up}.Normalized()}
}

// Vec returns the underlying ENU vector.
func (d HorizonDir) Vec() Vec3 { return d.v }

// East returns the east component.
func (d HorizonDir) East() float64 { return d.v.X }

// North returns the north component.
func (d HorizonDir) North() float64 { return d.v.Y }

// Up returns the zenith component.
func (d HorizonDir) Up() float64 { return d.v.Z }

// RADecToEquatorialUnit converts RA (hours) and Dec (degrees) to a unit
// vector on the celestial sphere.
func RADecToEquatorialUnit(raHours, decDeg float64) EquatorialDir {
	ra := degToRad(raHours * 15)
	dec := degToRad(decDeg)

	cd := math.Cos(dec)
	v := Vec3{
		X: cd * math.Cos(ra),
		Y: cd * math.Sin(ra),
		Z: math.Sin(dec),
	}
	return EquatorialDir{v: v.Normalized()}
}

// RADecToAltAz converts RA (hours) and Dec (degrees) to altitude and
// azimuth in degrees for an observer at latDeg/lonDeg at jdUTC.
//
// Azimuth is measured from north, clockwise through east, in [0, 360).
func RADecToAltAz(raHours, decDeg, jdUTC, latDeg, lonDeg float64) (altDeg, azDeg float64) {
	// Hour angle H = LST - RA
	lst := LSTHours(jdUTC, lonDeg)
	hourAngle := wrapHours(lst - raHours)

	h := degToRad(hourAngle * 15)
	dec := degToRad(decDeg)
	lat := degToRad(latDeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(h)
	alt := math.Asin(clampUnit(sinAlt))

	y := -math.Sin(h)
	x := math.Tan(dec)*math.Cos(lat) - math.Sin(lat)*math.Cos(h)
	az := math.Atan2(y, x)
	if az < 0 {
		az += 2 * math.Pi
	}

	return radToDeg(alt), radToDeg(az)
}

// AltAzToHorizonUnit converts altitude/azimuth in degrees to an ENU unit vector.
func AltAzToHorizonUnit(altDeg, azDeg float64) HorizonDir {
	alt := degToRad(altDeg)
	az := degToRad(azDeg)

	ca := math.Cos(alt)
	return HorizonDir{v: Vec3{
		X: ca * math.Sin(az),
		Y: ca * math.Cos(az),
		Z: math.Sin(alt),
	}}
}

// HorizonUnitToAltAz is the inverse of AltAzToHorizonUnit.
// At the zenith and nadir the azimuth is arbitrary.
func HorizonUnitToAltAz(dir HorizonDir) (altDeg, azDeg float64) {
	alt := math.Asin(clampUnit(dir.Up()))

	az := math.Atan2(dir.East(), dir.North())
	if az < 0 {
		az += 2 * math.Pi
	}

	azDeg = radToDeg(az)
	if azDeg >= 360 {
		azDeg = 0
	}
	return radToDeg(alt), azDeg
}

// EquatorialToHorizon rotates an equatorial direction into the horizon
// frame of an observer at latDeg, given the local sidereal time.
func EquatorialToHorizon(dir EquatorialDir, lstHours, latDeg float64) HorizonDir {
	lst := degToRad(lstHours * 15)
	lat := degToRad(latDeg)
	v := dir.v

	// Rotate about the pole by -LST: x toward the meridian, y = cos(dec)sin(-H)
	cl, sl := math.Cos(lst), math.Sin(lst)
	hx := cl*v.X + sl*v.Y
	hy := -sl*v.X + cl*v.Y
	hz := v.Z

	// Tilt the pole down to the observer's latitude
	cp, sp := math.Cos(lat), math.Sin(lat)
	return HorizonDir{v: Vec3{
		X: hy,
		Y: cp*hz - sp*hx,
		Z: sp*hz + cp*hx,
	}}
}
