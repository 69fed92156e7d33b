package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title     string
	Width     int
	Height    int
	TargetFPS int32
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls
// update with the frame time in seconds, then clears the screen and calls draw.
func Run(w Window, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	fps := w.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}
