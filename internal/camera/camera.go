// Package camera builds a pinhole camera from device attitude and projects
// horizon-frame directions onto a 2D viewport.
package camera

import (
	"math"

	"github.com/litescript/pocket-planetarium/internal/astro"
)

// minDepth rejects points behind or grazing the image plane.
const minDepth = 1e-4

// Basis is an orthonormal camera frame expressed in horizon (ENU)
// coordinates. The camera sits at the origin.
type Basis struct {
	Right   astro.Vec3
	Up      astro.Vec3
	Forward astro.Vec3
}

// Viewport describes the screen the camera projects onto.
// FOVDeg is the horizontal field of view; the vertical extent follows
// from the shared focal length.
type Viewport struct {
	Width  int
	Height int
	FOVDeg float64
}

// Center returns the viewport center in pixels.
func (vp Viewport) Center() (x, y float64) {
	return float64(vp.Width) * 0.5, float64(vp.Height) * 0.5
}

// Focal returns the focal length in pixels.
func (vp Viewport) Focal() float64 {
	fov := vp.FOVDeg * math.Pi / 180
	return float64(vp.Width) / (2 * math.Tan(fov*0.5))
}

// Point is a projected screen position. Depth is the distance along the
// camera's forward axis.
type Point struct {
	X, Y  int
	Depth float64
}

// BasisFromAttitude builds the camera frame for yaw, pitch and roll in
// degrees. At zero attitude the camera looks north with zenith up.
//
// Yaw turns in the x/y plane, then pitch in the y/z plane, then roll in the
// x/z plane. The order and axes determine how roll looks on screen.
func BasisFromAttitude(yawDeg, pitchDeg, rollDeg float64) Basis {
	yaw := yawDeg * math.Pi / 180
	pitch := pitchDeg * math.Pi / 180
	roll := rollDeg * math.Pi / 180

	// Reference frame: looking down +Y (north), +Z up
	f := astro.Vec3{X: 0, Y: 1, Z: 0}
	u := astro.Vec3{X: 0, Y: 0, Z: 1}

	cy, sy := math.Cos(yaw), math.Sin(yaw)
	f = rotateXY(f, cy, sy)
	u = rotateXY(u, cy, sy)

	cp, sp := math.Cos(pitch), math.Sin(pitch)
	f = rotateYZ(f, cp, sp)
	u = rotateYZ(u, cp, sp)

	cr, sr := math.Cos(roll), math.Sin(roll)
	f = rotateXZ(f, cr, sr)
	u = rotateXZ(u, cr, sr)

	f = f.Normalized()
	u = u.Normalized()

	right := f.Cross(u).Normalized()
	// up is re-derived so it is exactly orthogonal to forward
	up := right.Cross(f).Normalized()

	return Basis{Right: right, Up: up, Forward: f}
}

func rotateXY(v astro.Vec3, c, s float64) astro.Vec3 {
	return astro.Vec3{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

func rotateYZ(v astro.Vec3, c, s float64) astro.Vec3 {
	return astro.Vec3{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
}

func rotateXZ(v astro.Vec3, c, s float64) astro.Vec3 {
	return astro.Vec3{X: c*v.X + s*v.Z, Y: v.Y, Z: -s*v.X + c*v.Z}
}

// ToCamera expresses a world vector in camera coordinates
// (x right, y up, z forward).
func (b Basis) ToCamera(v astro.Vec3) astro.Vec3 {
	return astro.Vec3{
		X: v.Dot(b.Right),
		Y: v.Dot(b.Up),
		Z: v.Dot(b.Forward),
	}
}

// Project maps a horizon-frame direction onto the viewport.
// It reports false when the direction is behind the camera or lands
// outside the screen.
func Project(dir astro.HorizonDir, b Basis, vp Viewport) (Point, bool) {
	return ProjectCamera(b.ToCamera(dir.Vec()), vp)
}

// ProjectCamera is Project for a vector already in camera coordinates.
func ProjectCamera(cam astro.Vec3, vp Viewport) (Point, bool) {
	if cam.Z <= minDepth {
		return Point{}, false
	}

	focal := vp.Focal()
	cx, cy := vp.Center()

	sx := (cam.X/cam.Z)*focal + cx
	// Screen y grows downward
	sy := (-cam.Y/cam.Z)*focal + cy

	// Written as an in-range test so NaN coordinates are rejected
	if !(sx >= 0 && sx < float64(vp.Width) && sy >= 0 && sy < float64(vp.Height)) {
		return Point{}, false
	}

	return Point{X: int(sx), Y: int(sy), Depth: cam.Z}, true
}
