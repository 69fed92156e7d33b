package physics

import (
	"mjcf-parser/internal/geom"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Plane slab dimensions. A plane becomes a thin box whose top face is the plane surface.
const (
	PlaneHalfExtent = 1000
	PlaneThickness  = 0.1
)

// Body is an axis-aligned box collider with position and velocity.
// Static bodies do not move and are not affected by gravity.
type Body struct {
	Name        string
	Position    [3]float32
	Velocity    [3]float32
	HalfExtents [3]float32
	Mass        float32
	Static      bool
}

// NewBody returns a body centered at position. Velocity is zero.
// mass is used for collision response; use 1 for default.
func NewBody(name string, position, halfExtents [3]float32, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:        name,
		Position:    position,
		HalfExtents: halfExtents,
		Mass:        mass,
		Static:      static,
	}
}

// NewStaticBody returns a fixed collider bounding the descriptor's shape under its pose.
func NewStaticBody(d geom.Descriptor) *Body {
	t := d.Pose.Translation
	pos := [3]float32{float32(t[0]), float32(t[1]), float32(t[2])}

	if _, ok := d.Shape.(geom.Plane); ok {
		pos[2] -= PlaneThickness / 2
		return NewBody(d.Name, pos, [3]float32{PlaneHalfExtent, PlaneHalfExtent, PlaneThickness / 2}, 0, true)
	}

	local := localHalfExtents(d.Shape)
	rot := d.Pose.Orientation.Mat4()
	var half [3]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			half[i] += math32.Abs(float32(rot.At(i, j))) * local[j]
		}
	}
	return NewBody(d.Name, pos, half, 0, true)
}

// localHalfExtents bounds a shape in its own frame.
func localHalfExtents(s geom.Shape) [3]float32 {
	switch s := s.(type) {
	case geom.Sphere:
		r := float32(s.Radius)
		return [3]float32{r, r, r}
	case geom.Capsule:
		r := float32(s.Radius)
		return [3]float32{r, r, float32(s.HalfLength) + r}
	case geom.Box:
		return [3]float32{float32(s.HalfExtents[0]), float32(s.HalfExtents[1]), float32(s.HalfExtents[2])}
	}
	return [3]float32{}
}

// BoundingBox returns the body's world-space AABB.
func (b *Body) BoundingBox() rl.BoundingBox {
	p, h := b.Position, b.HalfExtents
	return rl.NewBoundingBox(
		rl.NewVector3(p[0]-h[0], p[1]-h[1], p[2]-h[2]),
		rl.NewVector3(p[0]+h[0], p[1]+h[1], p[2]+h[2]),
	)
}
