package game

import (
	"deskfolio/internal/assets"
	"deskfolio/internal/camera"
	"deskfolio/internal/config"
	"deskfolio/internal/content"
	"deskfolio/internal/interact"
	"deskfolio/internal/overlay"
	"deskfolio/internal/picking"
	"deskfolio/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

type Game struct {
	cfg     config.Config
	log     *zap.Logger
	pose    camera.Pose
	flight  *camera.Controller
	tracker *interact.Tracker
	overlay *overlay.Overlay
	world   *scene.World
}

func New(cfg config.Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		cfg:  cfg,
		log:  log,
		pose: camera.DefaultPose(),
	}
	g.flight = camera.NewController(&g.pose)
	g.tracker = interact.NewTracker(g.flight)
	g.overlay = overlay.New(log)
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.Window.TargetFPS)

	layout, err := scene.LoadLayout(g.cfg.Scene.LayoutPath)
	if err != nil {
		g.log.Info("using built-in desk layout", zap.Error(err))
		layout = scene.DefaultLayout()
	}

	assets.Init()
	defer assets.Unload()
	models := assets.LoadSet(modelSpecs(layout), g.cfg.Assets.LoadTimeout(), g.log)

	g.world = scene.Build(layout, models, g.log)
	for _, item := range g.world.Items {
		g.tracker.Register(item.Object, item.Kind)
	}
	g.log.Info("desk ready",
		zap.Int("items", len(g.world.Items)),
		zap.Int("models", len(models)))

	dispatcher := content.NewDispatcher(g.log)
	g.tracker.Selected.AddListener(func(k content.Kind) {
		if id, ok := dispatcher.Dispatch(k); ok {
			g.overlay.Show(id)
		}
	})
	g.tracker.CursorChanged.AddListener(func(hovering bool) {
		if hovering {
			rl.SetMouseCursor(rl.MouseCursorPointingHand)
		} else {
			rl.SetMouseCursor(rl.MouseCursorDefault)
		}
	})

	for !rl.WindowShouldClose() {
		g.step(rl.GetTime())
		g.draw()
	}
}

func (g *Game) step(now float64) {
	vp := picking.Viewport{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
	mouse := rl.GetMousePosition()

	// While the overlay is up it owns the pointer; the 3D scene gets no
	// hover or click events, and the click that opened it must not stay
	// frozen in its hover pose underneath.
	if g.overlay.Visible() {
		g.tracker.ClearHover()
	} else {
		g.tracker.PointerMove(mouse.X, mouse.Y, vp, g.pose)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.tracker.Click(mouse.X, mouse.Y, vp, g.pose, now)
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.pose = camera.DefaultPose()
	}

	g.flight.Update(now)
	g.tracker.Update(now)
}

func (g *Game) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(24, 26, 33, 255))

	rl.BeginMode3D(g.pose.ToRaylib())
	g.world.Draw()
	rl.EndMode3D()

	g.overlay.Draw()
	rl.EndDrawing()
}

func modelSpecs(layout *scene.Layout) []assets.ModelSpec {
	var specs []assets.ModelSpec
	for _, def := range layout.Items {
		if def.Model == "" {
			continue
		}
		kind, ok := content.ParseKind(def.Kind)
		if !ok {
			continue
		}
		specs = append(specs, assets.ModelSpec{Kind: kind, Path: def.Model})
	}
	return specs
}
