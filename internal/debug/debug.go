package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

// HUD draws the model name and geometry count at the top-left and, when ShowFPS is set,
// the frame rate at the top-right.
type HUD struct {
	ShowFPS bool

	lines       []string
	frameCount  uint32
	lastFpsText string
}

// New returns a HUD describing a model.
func New(modelName string, geomCount int) *HUD {
	return &HUD{lines: Lines(modelName, geomCount)}
}

// Lines returns the static HUD text.
func Lines(modelName string, geomCount int) []string {
	noun := "geoms"
	if geomCount == 1 {
		noun = "geom"
	}
	return []string{modelName, fmt.Sprintf("%d %s", geomCount, noun)}
}

// Draw renders the overlay. Call after the scene in the draw loop.
func (h *HUD) Draw() {
	y := int32(padding)
	for _, line := range h.lines {
		rl.DrawText(line, padding, y, fontSize, rl.DarkGray)
		y += lineHeight
	}

	if !h.ShowFPS {
		return
	}
	h.frameCount++
	if h.lastFpsText == "" || h.frameCount%updateInterval == 0 {
		h.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
	}
	w := rl.MeasureText(h.lastFpsText, fontSize)
	x := int32(rl.GetScreenWidth()) - w - padding
	rl.DrawText(h.lastFpsText, x, padding, fontSize, rl.DarkGreen)
}
