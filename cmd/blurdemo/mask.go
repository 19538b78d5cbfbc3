package main

import (
	"image"

	"github.com/spf13/cobra"

	blurkit "github.com/TimOliver/BlurUIKit"
)

func newMaskCmd() *cobra.Command {
	var (
		length    int
		direction string
		start     float64
		maxInset  float64
		smooth    bool
		width     int
		height    int
		out       string
	)

	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Render a gradient mask to a PNG",
		Long: `mask rasterizes a one-dimensional gradient strip and writes it out as a
PNG. With --width and --height the strip is expanded to a full-size mask.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := blurkit.ParseDirection(direction)
			if err != nil {
				return err
			}
			inset := blurkit.Inset{Fraction: start, MaxAbsolute: maxInset}
			req := dir.Request(length, inset.StartLocation(length), smooth)

			strip, err := blurkit.DefaultCache.GetOrCreate(req)
			if err != nil {
				return err
			}

			var img image.Image = strip
			if width > 0 && height > 0 {
				img = blurkit.Expand(strip, width, height)
			}
			return writePNG(out, img)
		},
	}

	cmd.Flags().IntVar(&length, "length", 256, "strip length in pixels")
	cmd.Flags().StringVar(&direction, "direction", "down", "fade direction: down, up, left or right")
	cmd.Flags().Float64Var(&start, "start", 0.25, "fraction of the strip held at the solid end value")
	cmd.Flags().Float64Var(&maxInset, "max-inset", 0, "cap the solid region at this many pixels (0 = no cap)")
	cmd.Flags().BoolVar(&smooth, "smooth", true, "ease the ramp with a sine curve")
	cmd.Flags().IntVar(&width, "width", 0, "expand the strip to this width")
	cmd.Flags().IntVar(&height, "height", 0, "expand the strip to this height")
	cmd.Flags().StringVarP(&out, "out", "o", "mask.png", "output PNG path")
	return cmd
}
