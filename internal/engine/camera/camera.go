// Package camera provides the orbit camera used by the viewer.
package camera

import (
	gomath "math"

	"github.com/mopinfish/gltfview/pkg/math"
)

const (
	// Sensitivity scales raw input deltas to radians.
	Sensitivity = 0.01

	// poleEpsilon keeps the polar angle away from the poles so the world-up
	// vector never degenerates in the look-at.
	poleEpsilon = 0.1
)

// OrbitCamera orbits a fixed target at a fixed distance. The pose is stored
// in spherical coordinates, which makes orbiting a pure rotation: the
// distance cannot drift across updates.
type OrbitCamera struct {
	Target   math.Vec3
	Distance float32
	Theta    float32 // polar angle from +Y, radians
	Phi      float32 // azimuth in the XZ plane, radians
}

// New returns a camera at eye looking at target.
func New(eye, target math.Vec3) *OrbitCamera {
	c := &OrbitCamera{Target: target}
	c.SetPosition(eye)
	return c
}

// SetPosition derives the spherical pose from a cartesian eye position.
func (c *OrbitCamera) SetPosition(eye math.Vec3) {
	to := eye.Sub(c.Target)
	c.Distance = to.Length()
	if c.Distance == 0 {
		c.Distance = 1
	}
	c.Theta = clampTheta(float32(gomath.Acos(float64(to.Y / c.Distance))))
	c.Phi = float32(gomath.Atan2(float64(to.Z), float64(to.X)))
}

// Position reconstructs the cartesian eye position.
func (c *OrbitCamera) Position() math.Vec3 {
	sinTheta := float32(gomath.Sin(float64(c.Theta)))
	return c.Target.Add(math.Vec3{
		X: c.Distance * sinTheta * float32(gomath.Cos(float64(c.Phi))),
		Y: c.Distance * float32(gomath.Cos(float64(c.Theta))),
		Z: c.Distance * sinTheta * float32(gomath.Sin(float64(c.Phi))),
	})
}

// ViewMatrix returns the look-at matrix for the current pose.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position(), c.Target, up)
}

// Orbit rotates the camera around the target. Deltas are raw input-device
// units; distance and target are invariant under this operation.
func (c *OrbitCamera) Orbit(deltaX, deltaY float32) {
	c.Phi += deltaX * Sensitivity
	c.Theta = clampTheta(c.Theta + deltaY*Sensitivity)
}

func clampTheta(t float32) float32 {
	const max = gomath.Pi - poleEpsilon
	if t < poleEpsilon {
		return poleEpsilon
	}
	if t > max {
		return max
	}
	return t
}
