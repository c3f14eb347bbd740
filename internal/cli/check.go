package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hubastard/grove-ui/engine/errors"
	"github.com/hubastard/grove-ui/engine/scene"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene.toml]",
		Short: "Validate a scene file",
		Long: `Validate a scene file.

check builds the scene and runs one layout pass. On failure it prints the
error code (INVALID_SCENE, INVALID_ANCHOR, INVALID_ALIGN, INVALID_SPACING)
and exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func runCheck(ctx context.Context, w io.Writer, path string) error {
	logger := loggerFromContext(ctx)

	s, err := scene.Load(path, scene.WithLogger(logger))
	if err == nil {
		err = s.Layout()
	}
	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		printError(w, "%s %s", StyleTitle.Render(string(code)), path)
		return fmt.Errorf("check %s: %w", path, err)
	}

	printSuccess(w, "%s %s", path, StyleDim.Render(fmt.Sprintf("(%d widgets)", s.Len())))
	return nil
}
