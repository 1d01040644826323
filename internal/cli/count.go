package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/midi-fractal/internal/config"
	"github.com/ironsheep/midi-fractal/internal/imaging"
)

// newCountCmd creates the count command, which measures an image file.
func (c *CLI) newCountCmd() *cobra.Command {
	var flags boxCountFlags

	cmd := &cobra.Command{
		Use:   "count [image_file]",
		Short: "Estimate the fractal dimension of an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd.Flags(), &cfg.BoxCount); err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.BoxCount.ImageFile = args[0]
			}
			return c.runCount(cmd.Context(), cfg.BoxCount)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runCount(ctx context.Context, opts config.BoxCount) error {
	logger := loggerFromContext(ctx)

	if opts.ImageFile == "" {
		return fmt.Errorf("no image file given")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	img, info, err := imaging.Load(opts.ImageFile)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %s: %dx%d %s", opts.ImageFile, info.Width, info.Height, info.Format)

	res, err := measure(ctx, img, opts)
	if err != nil {
		return err
	}
	return printDimension(c.stdout, res.Dimension)
}
