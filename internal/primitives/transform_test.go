package primitives

import (
	"math"
	"testing"

	"mjcf-parser/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, want rl.Vector3, local rl.Vector3, m rl.Matrix) {
	t.Helper()
	got := rl.Vector3Transform(local, m)
	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}

func TestColor(t *testing.T) {
	assert.Equal(t, rl.NewColor(128, 128, 128, 255), Color(geom.DefaultMaterial()))
	assert.Equal(t, rl.NewColor(255, 0, 0, 255), Color(geom.Material{RGBA: mgl64.Vec4{2, -1, 0, 1}}))
}

func TestPoseMatrix(t *testing.T) {
	p := geom.Pose{
		Translation: mgl64.Vec3{1, 2, 3},
		Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1}),
	}
	assertPoint(t, rl.NewVector3(1, 3, 3), rl.NewVector3(1, 0, 0), PoseMatrix(p))
}

func TestBoxPart(t *testing.T) {
	d := geom.Descriptor{
		Shape: geom.Box{HalfExtents: mgl64.Vec3{1, 2, 3}},
		Pose:  geom.Pose{Translation: mgl64.Vec3{0, 0, 1}, Orientation: mgl64.QuatIdent()},
	}
	parts := Parts(d)
	require.Len(t, parts, 1)
	assert.Equal(t, meshCube, parts[0].mesh)
	assertPoint(t, rl.NewVector3(1, 2, 4), rl.NewVector3(0.5, 0.5, 0.5), parts[0].Transform)
}

func TestCapsuleParts(t *testing.T) {
	d := geom.Descriptor{
		Shape: geom.Capsule{HalfLength: 1, Radius: 0.25},
		Pose:  geom.Identity(),
	}
	parts := Parts(d)
	require.Len(t, parts, 3)
	assert.Equal(t, meshCylinder, parts[0].mesh)
	// Base and top of the unit cylinder land on the capsule's end centers.
	assertPoint(t, rl.NewVector3(0, 0, -1), rl.NewVector3(0, 0, 0), parts[0].Transform)
	assertPoint(t, rl.NewVector3(0, 0, 1), rl.NewVector3(0, 1, 0), parts[0].Transform)
	assertPoint(t, rl.NewVector3(0.25, 0, 0), rl.NewVector3(0.5, 0.5, 0), parts[0].Transform)

	assertPoint(t, rl.NewVector3(0, 0, -1.25), rl.NewVector3(0, 0, -0.5), parts[1].Transform)
	assertPoint(t, rl.NewVector3(0, 0, 1.25), rl.NewVector3(0, 0, 0.5), parts[2].Transform)
}

func TestPlanePartFacesUp(t *testing.T) {
	d := geom.Descriptor{Shape: geom.Plane{}, Pose: geom.Pose{Translation: mgl64.Vec3{0, 0, -1}, Orientation: mgl64.QuatIdent()}}
	parts := Parts(d)
	require.Len(t, parts, 1)
	assert.Equal(t, meshPlane, parts[0].mesh)
	assertPoint(t, rl.NewVector3(PlaneDrawExtent/2, 0, -1), rl.NewVector3(0.5, 0, 0), parts[0].Transform)
	assertPoint(t, rl.NewVector3(0, 0, 0), rl.NewVector3(0, 1, 0), parts[0].Transform)
}

func TestSpherePart(t *testing.T) {
	d := geom.Descriptor{Shape: geom.Sphere{Radius: 2}, Pose: geom.Identity()}
	parts := Parts(d)
	require.Len(t, parts, 1)
	assertPoint(t, rl.NewVector3(2, 0, 0), rl.NewVector3(0.5, 0, 0), parts[0].Transform)
}
