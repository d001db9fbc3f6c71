package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Carmen-Shannon/arena-go/common"
	"github.com/Carmen-Shannon/arena-go/config"
	"github.com/Carmen-Shannon/arena-go/engine"
	"github.com/Carmen-Shannon/arena-go/engine/camera"
	"github.com/Carmen-Shannon/arena-go/engine/collision"
	"github.com/Carmen-Shannon/arena-go/engine/game"
	"github.com/Carmen-Shannon/arena-go/engine/game_object"
	"github.com/Carmen-Shannon/arena-go/engine/input"
	"github.com/Carmen-Shannon/arena-go/engine/projectile"
	"github.com/Carmen-Shannon/arena-go/engine/scene"
	"github.com/Carmen-Shannon/arena-go/engine/window"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config  string `help:"Path to a YAML gameplay configuration file." type:"existingfile" optional:""`
	Debug   bool   `help:"Whether to enable debug logging."`
	Profile bool   `help:"Whether to log frame and memory statistics."`
	Width   int    `help:"Window width in pixels." default:"1280"`
	Height  int    `help:"Window height in pixels." default:"720"`
}

// arenaHalfSize is the playable area's half extent; the four boundary walls
// sit on its edges.
const arenaHalfSize = float32(20)

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	kong.Parse(&CLI,
		kong.Name("arena"),
		kong.Description("a third-person arena shooter core"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			writeError(err)
		}
		cfg = loaded
		log.Info().Str("path", CLI.Config).Msg("configuration loaded")
	}

	win := window.NewWindow(
		window.WithTitle("Arena"),
		window.WithWidth(CLI.Width),
		window.WithHeight(CLI.Height),
		window.WithCapturedCursor(true),
	)

	scn := buildArenaScene(cfg)
	scn.SetActive(true)

	controller, err := game.NewController(cfg,
		game.WithScene(scn),
		game.WithSpawnPosition(common.Vec3{Z: -arenaHalfSize + 4}),
		game.WithBossHitCallback(func(b projectile.Bullet) {
			log.Info().
				Uint64("bullet_id", b.ID).
				Float32("x", b.Position.X).
				Float32("y", b.Position.Y).
				Float32("z", b.Position.Z).
				Msg("boss hit")
		}),
	)
	if err != nil {
		writeError(err)
	}

	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithController(controller.Camera()),
	)
	scn.SetCamera(cam)

	wireInput(win, controller.Input())

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(60),
		engine.WithRenderFrameLimit(144),
		engine.WithProfiling(CLI.Profile),
		engine.WithLogger(log.Logger),
		engine.WithScene(0, scn),
	)

	eng.SetTickCallback(func(dt float32) {
		controller.Tick(dt)
	})

	log.Info().Msg("starting arena")
	eng.Run()
	log.Info().Msg("arena shut down")
}

// wireInput forwards window events into the game's input collector.
func wireInput(win window.Window, collector input.Collector) {
	win.SetKeyDownCallback(collector.KeyDown)
	win.SetKeyUpCallback(collector.KeyUp)
	win.SetMouseMoveCallback(collector.MouseMove)
	win.SetScrollCallback(collector.Scroll)
	win.SetLeftMouseDownCallback(func() { collector.MouseButtonDown(input.MouseButtonLeft) })
	win.SetLeftMouseUpCallback(func() { collector.MouseButtonUp(input.MouseButtonLeft) })
	win.SetRightMouseDownCallback(func() { collector.MouseButtonDown(input.MouseButtonRight) })
	win.SetRightMouseUpCallback(func() { collector.MouseButtonUp(input.MouseButtonRight) })
}

// buildArenaScene assembles the default level: the player avatar, four
// boundary walls, and the boss at the arena's far end.
func buildArenaScene(cfg config.Config) scene.Scene {
	wall := func(name string, center, halfExtents common.Vec3) game_object.GameObject {
		return game_object.NewGameObject(
			game_object.WithName(name),
			game_object.WithRole(game_object.RoleWall),
			game_object.WithPosition(center),
			game_object.WithCollider(collision.NewBoxCollider(center, halfExtents)),
		)
	}

	wallHalf := common.Vec3{X: arenaHalfSize, Y: 4, Z: 0.5}
	sideHalf := common.Vec3{X: 0.5, Y: 4, Z: arenaHalfSize}

	bossCenter := common.Vec3{Y: 2.5, Z: arenaHalfSize - 4}
	boss := game_object.NewGameObject(
		game_object.WithName("boss"),
		game_object.WithRole(game_object.RoleBoss),
		game_object.WithPosition(bossCenter),
		game_object.WithCollider(collision.NewBoxCollider(bossCenter, common.Vec3{X: 2, Y: 2.5, Z: 2})),
	)

	avatar := game_object.NewGameObject(
		game_object.WithName("player"),
		game_object.WithRole(game_object.RolePlayer),
		game_object.WithPosition(common.Vec3{Y: cfg.GroundLevel, Z: -arenaHalfSize + 4}),
	)

	return scene.NewScene("arena",
		scene.WithObjects(
			avatar,
			wall("north_wall", common.Vec3{Y: 4, Z: arenaHalfSize}, wallHalf),
			wall("south_wall", common.Vec3{Y: 4, Z: -arenaHalfSize}, wallHalf),
			wall("east_wall", common.Vec3{X: arenaHalfSize, Y: 4}, sideHalf),
			wall("west_wall", common.Vec3{X: -arenaHalfSize, Y: 4}, sideHalf),
			boss,
		),
	)
}
