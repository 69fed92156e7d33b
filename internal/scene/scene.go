// Package scene draws a parsed model: a Z-up camera, a ground grid on the XY plane,
// and every geometry through the primitives registry.
package scene

import (
	"mjcf-parser/internal/config"
	"mjcf-parser/internal/geom"
	"mjcf-parser/internal/physics"
	"mjcf-parser/internal/primitives"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 20
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// Scene holds the camera and what to draw. Update runs camera logic; Draw renders between
// BeginMode3D and EndMode3D.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool
	ShowBounds  bool

	geoms      []geom.Descriptor
	world      *physics.World
	prims      *primitives.Registry
	cursorDone bool
}

// New returns a scene showing geoms, with the camera placed from c. world may be nil;
// when set, its bodies' AABBs are drawn if ShowBounds is on.
func New(c config.Config, geoms []geom.Descriptor, world *physics.World) *Scene {
	s := &Scene{
		Camera:      NewCamera(c),
		GridVisible: true,
		ShowBounds:  c.ShowBounds,
		geoms:       geoms,
		world:       world,
		prims:       primitives.NewRegistry(),
	}
	return s
}

// NewCamera returns a perspective camera with +Z up.
func NewCamera(c config.Config) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Eye[0], c.Eye[1], c.Eye[2]),
		Target:     rl.NewVector3(c.Target[0], c.Target[1], c.Target[2]),
		Up:         rl.NewVector3(0, 0, 1),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Update runs once per frame. The cursor is captured for raylib's free camera.
func (s *Scene) Update() {
	if !s.cursorDone {
		rl.DisableCursor()
		s.cursorDone = true
	}
	rl.UpdateCamera(&s.Camera, rl.CameraFree)
}

// Draw renders the grid, every geometry, and optionally the collision bounds.
func (s *Scene) Draw() {
	p := s.Camera.Position
	s.prims.SetView([3]float32{p.X, p.Y, p.Z}, [3]float32{0.5, 0.3, 1})

	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawGrid()
	}
	for _, d := range s.geoms {
		s.prims.Draw(d)
	}
	if s.ShowBounds && s.world != nil {
		for _, b := range s.world.Bodies {
			rl.DrawBoundingBox(b.BoundingBox(), rl.Yellow)
		}
	}
	rl.EndMode3D()
}

// drawGrid draws a grid on the XY plane with major/minor lines and axis lines.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i += gridMinorStep {
		c := major
		if i%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(i), -gridExtent, 0
		end.X, end.Y, end.Z = float32(i), gridExtent, 0
		rl.DrawLine3D(start, end, c)
		start.X, start.Y = -gridExtent, float32(i)
		end.X, end.Y = gridExtent, float32(i)
		rl.DrawLine3D(start, end, c)
	}

	// X=red, Y=green, Z=blue
	rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, 0), rl.NewVector3(gridExtent, 0, 0), rl.NewColor(220, 80, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, -gridExtent, 0), rl.NewVector3(0, gridExtent, 0), rl.NewColor(80, 220, 80, axisLineAlpha))
	rl.DrawLine3D(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, gridExtent), rl.NewColor(80, 80, 220, axisLineAlpha))
}
