// Command sandbox opens a window showing a scene file laid out live. Resize
// the window to watch anchors and boxes follow.
package main

import (
	_ "embed"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hubastard/grove-ui/engine/colors"
	"github.com/hubastard/grove-ui/engine/core"
	glbackend "github.com/hubastard/grove-ui/engine/gfx/gl"
	"github.com/hubastard/grove-ui/engine/platform"
	"github.com/hubastard/grove-ui/engine/profiler"
)

//go:embed demo.toml
var demoScene []byte

type App struct {
	title   string
	source  sceneSource
	profile bool
	scene   *LayerScene
	debug   *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	if a.profile {
		profiler.Init(1 << 16)
	}
	a.scene = &LayerScene{source: a.source}
	e.PushLayer(a.scene)
	a.debug = &LayerDebug{scene: a.scene, title: a.title}
	e.PushLayer(a.debug)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	if _, ok := ev.(core.EventCloseRequested); ok {
		e.Log.Debug("close requested")
	}
}
func (a *App) OnShutdown(e *core.Engine) {}

func main() {
	var (
		verbose bool
		vsync   bool
		profile bool
	)

	cmd := &cobra.Command{
		Use:          "sandbox [scene.toml]",
		Short:        "Preview a scene layout in a window",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
				Prefix:          "sandbox",
			})

			src := sceneSource{name: "demo.toml", data: demoScene}
			if len(args) == 1 {
				src = sceneSource{name: args[0], path: args[0]}
			}

			cfg := core.Config{
				Title:      "grove sandbox: " + src.name,
				Width:      1280,
				Height:     720,
				VSync:      vsync,
				ClearColor: colors.DarkGray,
				Logger:     logger,
			}
			newWindow := func(cfg core.Config) (core.Window, error) {
				return platform.NewGLFWWindow(cfg, nil)
			}
			newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
				return glbackend.NewRendererGL(win, cfg)
			}
			return core.Run(&App{title: cfg.Title, source: src, profile: profile}, cfg, newWindow, newRenderer)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().BoolVar(&vsync, "vsync", true, "wait for vertical sync")
	cmd.Flags().BoolVar(&profile, "profile", false, "record spans; Ctrl+P writes a speedscope file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
