package primitives

import (
	"math"

	"mjcf-parser/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlaneDrawExtent is the side length used to draw an infinite plane.
const PlaneDrawExtent = 20

// mesh names a unit mesh: a 1x1x1 cube, a sphere of diameter 1, a cylinder of
// diameter 1 along +Y with its base at the origin, and a 1x1 quad in XZ.
type mesh int

const (
	meshCube mesh = iota
	meshSphere
	meshCylinder
	meshPlane
)

// Part is one unit mesh placed in the scene.
type Part struct {
	mesh      mesh
	Transform rl.Matrix
}

// Color converts an RGBA material in [0,1] to an 8-bit colour.
func Color(m geom.Material) rl.Color {
	c := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return rl.NewColor(c(m.RGBA[0]), c(m.RGBA[1]), c(m.RGBA[2]), c(m.RGBA[3]))
}

// PoseMatrix returns the rotation-then-translation of a pose in raylib's convention.
func PoseMatrix(p geom.Pose) rl.Matrix {
	q := p.Orientation
	rot := rl.QuaternionToMatrix(rl.NewQuaternion(float32(q.V[0]), float32(q.V[1]), float32(q.V[2]), float32(q.W)))
	t := p.Translation
	return rl.MatrixMultiply(rot, rl.MatrixTranslate(float32(t[0]), float32(t[1]), float32(t[2])))
}

// Parts returns the unit meshes that draw a descriptor. A capsule is a cylinder plus
// a sphere at each end.
func Parts(d geom.Descriptor) []Part {
	pose := PoseMatrix(d.Pose)
	place := func(m mesh, local rl.Matrix) Part {
		return Part{mesh: m, Transform: rl.MatrixMultiply(local, pose)}
	}
	// Y-up unit meshes are turned so their axis is the model's local +Z.
	yToZ := rl.MatrixRotateX(math.Pi / 2)

	switch s := d.Shape.(type) {
	case geom.Plane:
		return []Part{place(meshPlane, rl.MatrixMultiply(rl.MatrixScale(PlaneDrawExtent, 1, PlaneDrawExtent), yToZ))}
	case geom.Sphere:
		r := float32(2 * s.Radius)
		return []Part{place(meshSphere, rl.MatrixScale(r, r, r))}
	case geom.Box:
		h := s.HalfExtents
		return []Part{place(meshCube, rl.MatrixScale(float32(2*h[0]), float32(2*h[1]), float32(2*h[2])))}
	case geom.Capsule:
		r, l := float32(2*s.Radius), float32(2*s.HalfLength)
		body := rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixTranslate(0, -0.5, 0), rl.MatrixScale(r, l, r)), yToZ)
		half := float32(s.HalfLength)
		return []Part{
			place(meshCylinder, body),
			place(meshSphere, rl.MatrixMultiply(rl.MatrixScale(r, r, r), rl.MatrixTranslate(0, 0, -half))),
			place(meshSphere, rl.MatrixMultiply(rl.MatrixScale(r, r, r), rl.MatrixTranslate(0, 0, half))),
		}
	}
	return nil
}
