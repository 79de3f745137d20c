package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/physics"
)

var (
	colorPanel      = rl.NewColor(18, 18, 24, 235)
	colorElement    = rl.NewColor(28, 28, 38, 255)
	colorHover      = rl.NewColor(38, 38, 52, 255)
	colorAccent     = rl.NewColor(108, 99, 255, 255)
	colorText       = rl.NewColor(255, 255, 255, 255)
	colorTextMuted  = rl.NewColor(200, 200, 208, 255)
	colorBorderLine = rl.NewColor(50, 50, 65, 255)
	colorSky        = rl.NewColor(135, 206, 235, 255)
)

// initRayguiStyle sets the dark indigo theme used by the prompt and modal.
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextMuted))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorText))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorderLine))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorBorderLine))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

func (g *Game) drawUI() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	if g.instructions.Visible() {
		alpha := g.instructions.Alpha()
		rl.DrawRectangle(10, 10, 360, 88, rl.Fade(colorPanel, alpha))
		rl.DrawText("W/S or Up/Down: drive and reverse", 20, 20, 18, rl.Fade(colorText, alpha))
		rl.DrawText("A/D or Left/Right: steer", 20, 44, 18, rl.Fade(colorText, alpha))
		rl.DrawText("E: open station, Esc: close", 20, 68, 18, rl.Fade(colorText, alpha))
	}

	if g.prompt != "" && !g.modal.IsOpen() {
		width := rl.MeasureText(g.prompt, 22) + 40
		x := (screenW - width) / 2
		y := screenH - 90
		rl.DrawRectangle(x, y, width, 44, colorPanel)
		rl.DrawRectangleLines(x, y, width, 44, colorAccent)
		rl.DrawText(g.prompt, x+20, y+11, 22, colorText)
	}

	if g.modal.IsOpen() {
		g.drawModal(screenW, screenH)
	}

	rl.DrawFPS(screenW-90, 10)

	if g.debug {
		g.drawDebug()
	}
}

func (g *Game) drawModal(screenW, screenH int32) {
	entry := g.modal.Entry()
	w := float32(screenW) * 0.6
	h := float32(screenH) * 0.6
	bounds := rl.Rectangle{X: (float32(screenW) - w) / 2, Y: (float32(screenH) - h) / 2, Width: w, Height: h}

	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.4))
	if gui.WindowBox(bounds, entry.Title) {
		g.modal.Close()
		return
	}

	y := bounds.Y + 40
	for _, section := range entry.Sections {
		gui.Label(rl.Rectangle{X: bounds.X + 20, Y: y, Width: w - 40, Height: 24}, section.Heading)
		y += 28
		for _, line := range section.Lines {
			rl.DrawText(line, int32(bounds.X)+32, int32(y), 18, colorTextMuted)
			y += 22
		}
		y += 10
	}
	rl.DrawText("Esc to close", int32(bounds.X+bounds.Width)-130, int32(bounds.Y+bounds.Height)-28, 16, colorTextMuted)
}

func (g *Game) drawDebug() {
	v := *g.sim.Vehicle()
	lines := []string{
		fmt.Sprintf("Pos:   (%.2f, %.2f, %.2f)", v.Position.X(), v.Position.Y(), v.Position.Z()),
		fmt.Sprintf("Yaw:   %.3f rad", v.Yaw),
		fmt.Sprintf("Speed: %.3f  Turn: %.4f", v.LinearVelocity, v.TurnVelocity),
		fmt.Sprintf("Ticks: %d  Colliding: %v", g.sim.Ticks(), physics.IsColliding(v.Position, g.sim.Obstacles())),
		fmt.Sprintf("Tick:  %.2f ms  Draw: %.2f ms", g.tickMs, g.drawMs),
		fmt.Sprintf("Culled: %d/%d", g.culled, len(g.scene.GameObjects)),
	}
	if s := g.sim.Monitor().Current(); s != nil {
		lines = append(lines, fmt.Sprintf("Station: %s (%.2f)", s.ID, g.sim.Monitor().IntensityOf(s.ID)))
	}
	for i, line := range lines {
		rl.DrawText(line, 10, 110+int32(i)*20, 16, rl.Green)
	}
}

// drawObstacleRadii outlines every collision circle on the ground.
func (g *Game) drawObstacleRadii() {
	for _, o := range g.sim.Obstacles() {
		center := rl.NewVector3(o.Position.X(), 0.1, o.Position.Z())
		rl.DrawCircle3D(center, o.Radius, rl.NewVector3(1, 0, 0), 90, rl.Red)
	}
	for _, s := range g.sim.Monitor().Stations() {
		center := rl.NewVector3(s.Position.X(), 0.15, s.Position.Z())
		rl.DrawCircle3D(center, g.sim.Monitor().Radius(&s), rl.NewVector3(1, 0, 0), 90, rl.Yellow)
	}
}
