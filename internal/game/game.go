package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"stationdrive/internal/camera"
	"stationdrive/internal/config"
	"stationdrive/internal/content"
	"stationdrive/internal/engine"
	"stationdrive/internal/input"
	"stationdrive/internal/proximity"
	"stationdrive/internal/sim"
	"stationdrive/internal/telemetry"
	"stationdrive/internal/vehicle"
	"stationdrive/internal/world"
)

// TickRate is the fixed simulation rate. Motion constants are per tick.
const TickRate = 60

// maxTicksPerFrame caps catch-up after a stall.
const maxTicksPerFrame = 5

type Game struct {
	cfg config.Config
	log zerolog.Logger

	layout   *world.Layout
	sim      *sim.Simulation
	input    *input.State
	bindings Bindings

	scene *engine.Scene
	car   *engine.GameObject

	modal        Modal
	instructions Instructions
	prompt       string
	debug        bool
	showRadii    bool

	accumulator float32
	frames      uint64
	culled      int

	// Debug timing (ms)
	tickMs float64
	drawMs float64
}

// New wires the simulation for layout. It does not touch the window.
func New(cfg config.Config, layout *world.Layout, catalogue *content.Catalogue, log zerolog.Logger, metrics *telemetry.Metrics) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log,
		layout:   layout,
		input:    input.NewState(),
		bindings: DefaultBindings(),
		debug:    cfg.Debug,
	}
	g.modal.Catalogue = catalogue
	g.instructions.Timeout = cfg.UI.InstructionSeconds

	v := vehicle.New(layout.Spawn, layout.SpawnYaw)
	vt := cfg.Vehicle.Tuning()
	follow := camera.NewFollow(v, cfg.Camera.Tuning(), vt)
	if cfg.Camera.Shake {
		follow.Jitter = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	monitor := proximity.NewMonitor(layout.ProximityStations(), cfg.Proximity.Tuning())

	g.sim = sim.New(sim.Options{
		Vehicle:       &v,
		Obstacles:     layout.Obstacles(cfg.Collision.Radii()),
		Camera:        follow,
		Monitor:       monitor,
		VehicleTuning: vt,
		Response:      cfg.Collision.Response(),
		Logger:        log,
		Metrics:       metrics,
	})

	monitor.OnChange.AddListener(func(c proximity.Change) {
		g.prompt = PromptText(c.To)
	})
	g.sim.OnContentRequest.AddListener(func(req sim.ContentRequest) {
		g.log.Info().Str("station", req.StationID).Str("modal", req.Modal).Msg("Opening station")
		g.modal.Open(req)
	})
	g.sim.OnCloseContent.AddListener(g.modal.Close)

	return g
}

// Run opens the window and drives the frame loop until the window closes.
// A panic inside a frame is reported and returned as an error.
func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.TargetFPS))
	// Escape is the Cancel action, not quit.
	rl.SetExitKey(0)
	initRayguiStyle()

	g.scene, g.car = buildScene(g.layout, g.sim.Monitor(), g.sim.Vehicle())
	g.scene.Start()
	g.log.Info().
		Int("stations", g.layout.Stations.Len()).
		Int("props", len(g.layout.Props)).
		Str("seed", g.layout.Seed).
		Msg("World built")

	for !rl.WindowShouldClose() {
		if err := g.frame(); err != nil {
			return err
		}
	}
	g.log.Info().Uint64("ticks", g.sim.Ticks()).Msg("Window closed")
	return nil
}

func (g *Game) frame() (err error) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Uint64("frame", g.frames).Msg("Frame panic")
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("frame", fmt.Sprint(g.frames))
				if s := g.sim.Monitor().Current(); s != nil {
					scope.SetTag("station", s.ID)
				}
			})
			hub.Recover(r)
			hub.Flush(5 * time.Second)
			err = fmt.Errorf("frame %d panic: %v", g.frames, r)
		}
	}()

	g.frames++
	g.update(rl.GetFrameTime())
	g.draw()
	return nil
}

func (g *Game) update(deltaTime float32) {
	tickStart := time.Now()

	pollDevices(g.input, g.bindings)

	g.accumulator += deltaTime
	step := float32(1) / TickRate
	ticks := 0
	for g.accumulator >= step && ticks < maxTicksPerFrame {
		g.sim.Tick(g.input.Snapshot())
		g.accumulator -= step
		ticks++
	}
	if ticks == maxTicksPerFrame {
		g.accumulator = 0
	}

	syncVehicle(g.car, *g.sim.Vehicle())
	g.scene.Update(deltaTime)
	g.instructions.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.debug = !g.debug
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.showRadii = !g.showRadii
	}

	g.tickMs = float64(time.Since(tickStart).Microseconds()) / 1000.0
}

func (g *Game) raylibCamera() rl.Camera3D {
	cs := g.sim.Camera().State
	return rl.Camera3D{
		Position:   rl.NewVector3(cs.Position.X(), cs.Position.Y(), cs.Position.Z()),
		Target:     rl.NewVector3(cs.Target.X(), cs.Target.Y(), cs.Target.Z()),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       camera.DefaultLens(1).FovY,
		Projection: rl.CameraPerspective,
	}
}

func (g *Game) draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(colorSky)

	rl.BeginMode3D(g.raylibCamera())
	aspect := float32(rl.GetScreenWidth()) / float32(max(rl.GetScreenHeight(), 1))
	frustum := g.sim.Camera().State.Frustum(camera.DefaultLens(aspect))
	g.culled = g.scene.DrawVisible(frustum.ContainsSphere)
	if g.showRadii {
		g.drawObstacleRadii()
	}
	rl.EndMode3D()

	g.drawUI()
	rl.EndDrawing()

	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}
