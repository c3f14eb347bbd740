package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hubastard/grove-ui/engine/profiler"
	"github.com/hubastard/grove-ui/engine/scene"
	"github.com/hubastard/grove-ui/engine/ui"
)

type layoutOptions struct {
	width, height float32
	viewport      bool // --width or --height was given
	profile       bool
	speedscope    string
}

func newLayoutCmd() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout [scene.toml]",
		Short: "Lay out a scene and print every widget rect",
		Long: `Lay out a scene and print every widget rect.

The scene root is sized to the viewport, taken from the scene's [viewport]
table or from --width and --height. Rects are printed in layout
coordinates: origin bottom-left, y up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.viewport = cmd.Flags().Changed("width") || cmd.Flags().Changed("height")
			return runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().Float32Var(&opts.width, "width", 0, "viewport width (default: scene viewport)")
	cmd.Flags().Float32Var(&opts.height, "height", 0, "viewport height (default: scene viewport)")
	cmd.Flags().BoolVar(&opts.profile, "profile", false, "print time spent per layout span")
	cmd.Flags().StringVar(&opts.speedscope, "speedscope", "", "write a speedscope profile to this file")

	return cmd
}

func runLayout(ctx context.Context, w io.Writer, path string, opts layoutOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.profile || opts.speedscope != "" {
		profiler.Init(1 << 16)
	}

	sceneOpts := []scene.Option{scene.WithLogger(logger)}
	if opts.viewport {
		if opts.width <= 0 || opts.height <= 0 {
			return fmt.Errorf("--width and --height must be given together and be positive")
		}
		sceneOpts = append(sceneOpts, scene.WithViewport(opts.width, opts.height))
	}

	end := profiler.Start("load")
	s, err := scene.Load(path, sceneOpts...)
	end()
	if err != nil {
		return err
	}

	end = profiler.Start("layout")
	err = s.Layout()
	end()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d widgets", s.Len()))

	fmt.Fprintln(w, StyleTitle.Render(path)+" "+StyleDim.Render(fmt.Sprintf("%vx%v", s.Doc.Viewport.Width, s.Doc.Viewport.Height)))
	fmt.Fprintln(w, renderTable(
		[]string{"id", "type", "left", "bottom", "width", "height", "size_hint_min"},
		widgetRows(s.Root),
		2,
	))

	if opts.profile {
		printProfile(w)
	}
	if opts.speedscope != "" {
		if err := profiler.WriteSpeedscope(opts.speedscope); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
		logger.Info("Wrote profile", "path", opts.speedscope)
	}
	return nil
}

// widgetRows lists the tree depth first, indenting ids by depth.
func widgetRows(root ui.UIElement) [][]string {
	var rows [][]string
	ui.Walk(root, func(el ui.UIElement, depth int) bool {
		n := el.Node()
		r := n.Rect()
		hint := "-"
		if m := n.SizeHintMin(); m.Set {
			hint = formatFloat(m.X) + "x" + formatFloat(m.Y)
		}
		rows = append(rows, []string{
			strings.Repeat("  ", depth) + n.ID(),
			ui.Kind(el),
			formatFloat(r.Left()),
			formatFloat(r.Bottom()),
			formatFloat(r.Width),
			formatFloat(r.Height),
			hint,
		})
		return true
	})
	return rows
}

func printProfile(w io.Writer) {
	var rows [][]string
	for _, s := range profiler.Summary() {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprint(s.Count),
			s.Total.Round(time.Microsecond).String(),
			s.Max.Round(time.Microsecond).String(),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"span", "count", "total", "max"}, rows, 1))
}
