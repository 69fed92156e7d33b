package primitives

import (
	"mjcf-parser/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds the mesh and material for one unit primitive. Created lazily on first Draw.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
}

// Registry draws geometry descriptors with lit unit meshes. Meshes are created on first
// use so that GPU resources are allocated after the window/OpenGL context exists.
type Registry struct {
	cache    map[mesh]cached
	viewPos  [3]float32 // camera position, set each frame for lighting
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes loaded.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[mesh]cached),
		lightDir: [3]float32{0.5, 0.5, 1},
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once per frame
// before drawing.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

const (
	sphereRings     = 16
	sphereSlices    = 16
	cylinderSlices  = 16
	planeResolution = 1
)

func (r *Registry) ensure(m mesh) cached {
	if c, ok := r.cache[m]; ok {
		return c
	}
	var data rl.Mesh
	switch m {
	case meshCube:
		data = rl.GenMeshCube(1, 1, 1)
	case meshSphere:
		data = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case meshCylinder:
		data = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
	case meshPlane:
		data = rl.GenMeshPlane(1, 1, planeResolution, planeResolution)
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	c := cached{mesh: data, mtl: mtl}
	r.cache[m] = c
	return c
}

// Draw draws one descriptor in its material colour. Must be called between
// BeginMode3D and EndMode3D, after SetView.
func (r *Registry) Draw(d geom.Descriptor) {
	color := Color(d.Material)
	for _, part := range Parts(d) {
		c := r.ensure(part.mesh)
		if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = color
		}
		r.setLitShaderUniforms(c.mtl.Shader)
		rl.DrawMesh(c.mesh, c.mtl, part.Transform)
	}
}
