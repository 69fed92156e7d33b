// Package geom holds the engine-agnostic output of resolving a model geometry:
// a shape, a rigid pose, and fixed material defaults.
package geom

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind identifies a supported shape.
type Kind int

const (
	KindPlane Kind = iota + 1
	KindSphere
	KindCapsule
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindSphere:
		return "sphere"
	case KindCapsule:
		return "capsule"
	case KindBox:
		return "box"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// SegmentLike reports whether the shape has a preferred axis, so that a from/to
// segment can place it and its orientation matters.
func (k Kind) SegmentLike() bool {
	return k == KindCapsule || k == KindBox
}

// Shape is one of Plane, Sphere, Capsule or Box.
type Shape interface {
	Kind() Kind
	isShape()
}

// Plane is the infinite plane through the pose origin with local normal +Z.
type Plane struct{}

// Sphere is centered on the pose origin.
type Sphere struct {
	Radius float64
}

// Capsule is a cylinder along local Z with hemispherical caps; HalfLength excludes the caps.
type Capsule struct {
	HalfLength float64
	Radius     float64
}

// Box is centered on the pose origin.
type Box struct {
	HalfExtents mgl64.Vec3
}

func (Plane) Kind() Kind   { return KindPlane }
func (Sphere) Kind() Kind  { return KindSphere }
func (Capsule) Kind() Kind { return KindCapsule }
func (Box) Kind() Kind     { return KindBox }

func (Plane) isShape()   {}
func (Sphere) isShape()  {}
func (Capsule) isShape() {}
func (Box) isShape()     {}

// Pose places a shape in the scene frame. Orientation is always unit length.
type Pose struct {
	Translation mgl64.Vec3
	Orientation mgl64.Quat
}

// Identity returns the pose at the origin with no rotation.
func Identity() Pose {
	return Pose{Orientation: mgl64.QuatIdent()}
}

// Mat4 returns the homogeneous transform rotating first, then translating.
func (p Pose) Mat4() mgl64.Mat4 {
	return mgl64.Translate3D(p.Translation[0], p.Translation[1], p.Translation[2]).Mul4(p.Orientation.Mat4())
}

// Apply transforms a point from the shape frame to the scene frame.
func (p Pose) Apply(v mgl64.Vec3) mgl64.Vec3 {
	return p.Orientation.Rotate(v).Add(p.Translation)
}

// Material carries contact and display defaults. None of them are read from the model.
type Material struct {
	TorsionalFriction float64
	RollingFriction   float64
	RGBA              mgl64.Vec4
}

// DefaultMaterial returns the defaults applied to every geometry.
func DefaultMaterial() Material {
	return Material{
		TorsionalFriction: 0.005,
		RollingFriction:   0.0001,
		RGBA:              mgl64.Vec4{0.5, 0.5, 0.5, 1},
	}
}

// Descriptor is one resolved geometry. Named is false when Name was synthesized from
// the geometry's position among its siblings.
type Descriptor struct {
	Name     string
	Named    bool
	Shape    Shape
	Pose     Pose
	Material Material
}

// Endpoints returns the scene-frame centers of a capsule's end caps.
func (d Descriptor) Endpoints() (a, b mgl64.Vec3, ok bool) {
	c, ok := d.Shape.(Capsule)
	if !ok {
		return a, b, false
	}
	half := mgl64.Vec3{0, 0, c.HalfLength}
	return d.Pose.Apply(half.Mul(-1)), d.Pose.Apply(half), true
}
