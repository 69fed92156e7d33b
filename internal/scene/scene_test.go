package scene

import (
	"testing"

	"mjcf-parser/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestNewCameraIsZUp(t *testing.T) {
	c := config.Default()
	cam := NewCamera(c)
	assert.Equal(t, rl.NewVector3(0, 0, 1), cam.Up)
	assert.Equal(t, rl.NewVector3(0, 0, 1), cam.Target)
	assert.Equal(t, rl.NewVector3(c.Eye[0], c.Eye[1], c.Eye[2]), cam.Position)
	assert.Equal(t, c.Fovy, cam.Fovy)
}

func TestNewKeepsBoundsSetting(t *testing.T) {
	c := config.Default()
	c.ShowBounds = true
	s := New(c, nil, nil)
	assert.True(t, s.ShowBounds)
	assert.True(t, s.GridVisible)
}
