package physics

import (
	"fmt"

	"mjcf-parser/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity points down the Z axis, the model's up direction.
var DefaultGravity = [3]float32{0, 0, -9.81}

// World holds a set of bodies and runs a simple step: gravity, integration, AABB collision.
type World struct {
	Gravity [3]float32
	Bodies  []*Body
}

// NewWorld returns an empty world with DefaultGravity.
func NewWorld() *World {
	return &World{Gravity: DefaultGravity}
}

// NewStaticWorld returns a world with one static body per descriptor, in order.
func NewStaticWorld(descs []geom.Descriptor) *World {
	w := NewWorld()
	for _, d := range descs {
		w.AddBody(NewStaticBody(d))
	}
	return w
}

// SetGravity sets the gravity vector.
func (w *World) SetGravity(g [3]float32) {
	w.Gravity = g
}

// AddBody appends a body to the world. Order is preserved for syncing with the model.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
}

// Body returns the first body with the given name.
func (w *World) Body(name string) (*Body, error) {
	for _, b := range w.Bodies {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, fmt.Errorf("physics: no body named %q", name)
}

// penetrationAxis returns the overlap amount and axis index (0=X, 1=Y, 2=Z) for the minimum penetration.
// If no overlap, returns (0, -1).
func penetrationAxis(a, b rl.BoundingBox) (depth float32, axis int) {
	overlapX := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	overlapY := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	overlapZ := min(a.Max.Z, b.Max.Z) - max(a.Min.Z, b.Min.Z)
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}

// Step advances the simulation by dt seconds: apply gravity, integrate, then resolve
// AABB overlaps. Pairs of static bodies are never separated, so overlapping geometry in
// the model stays where it was placed.
func (w *World) Step(dt float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		for k := range 3 {
			b.Velocity[k] += w.Gravity[k] * dt
			b.Position[k] += b.Velocity[k] * dt
		}
	}

	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			boxI, boxJ := bi.BoundingBox(), bj.BoundingBox()
			if !rl.CheckCollisionBoxes(boxI, boxJ) {
				continue
			}
			depth, axis := penetrationAxis(boxI, boxJ)
			if axis < 0 {
				continue
			}
			// j is pushed along +axis when its center is above i's.
			if bj.Position[axis] < bi.Position[axis] {
				depth = -depth
			}
			var moveI, moveJ float32
			switch {
			case bi.Static:
				moveJ = depth
			case bj.Static:
				moveI = -depth
			default:
				total := bi.Mass + bj.Mass
				moveI = -depth * (bj.Mass / total)
				moveJ = depth * (bi.Mass / total)
			}
			bi.Position[axis] += moveI
			bj.Position[axis] += moveJ
			if !bi.Static {
				bi.Velocity[axis] = 0
			}
			if !bj.Static {
				bj.Velocity[axis] = 0
			}
		}
	}
}
