package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/midi-fractal/internal/config"
	"github.com/ironsheep/midi-fractal/internal/imaging"
	"github.com/ironsheep/midi-fractal/internal/notes"
	"github.com/ironsheep/midi-fractal/internal/render"
)

// newPlotCmd creates the plot command, which renders a MIDI file and
// measures the rendering.
func (c *CLI) newPlotCmd() *cobra.Command {
	var (
		bcFlags   boxCountFlags
		plotFlags plotFlags
	)

	cmd := &cobra.Command{
		Use:   "plot [midi_file_name] [image_file]",
		Short: "Render a MIDI note sequence and estimate its fractal dimension",
		Long: `Render the note-on pitches of a MIDI file as an image, estimate the image's
box-counting dimension and save it as PNG. Every "FD" in image_file is
replaced with the dimension.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if err := bcFlags.apply(cmd.Flags(), &cfg.BoxCount); err != nil {
				return err
			}
			plotFlags.apply(cmd.Flags(), &cfg.Plot)
			if len(args) > 0 {
				cfg.Plot.MIDIFileName = args[0]
			}
			if len(args) > 1 {
				cfg.Plot.ImageFile = args[1]
			}
			return c.runPlot(cmd.Context(), cfg)
		},
	}

	bcFlags.register(cmd.Flags())
	plotFlags.register(cmd.Flags())
	return cmd
}

func (c *CLI) runPlot(ctx context.Context, opts *config.Options) error {
	logger := loggerFromContext(ctx)

	if opts.Plot.ImageFile == "" {
		return fmt.Errorf("no output image file given")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	pitches, err := notes.ReadFile(opts.Plot.MIDIFileName)
	if err != nil {
		return err
	}
	logger.Infof("Read %d notes from %s", len(pitches), opts.Plot.MIDIFileName)

	ro := opts.Plot.RenderOptions()
	canvas, err := render.Render(render.Samples(pitches), ro)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Plot.MIDIFileName, err)
	}
	logger.Debugf("Rendered %dx%d %s plot", ro.Width, ro.Height, ro.Style)

	res, err := measure(ctx, canvas, opts.BoxCount)
	if err != nil {
		return err
	}
	if err := printDimension(c.stdout, res.Dimension); err != nil {
		return err
	}

	name := imaging.OutputName(opts.Plot.ImageFile, res.Dimension)
	if err := imaging.SavePNG(canvas, name); err != nil {
		return err
	}
	logger.Infof("Saved %s", name)
	return nil
}
