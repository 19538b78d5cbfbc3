package main

import (
	"image"

	"github.com/spf13/cobra"

	blurkit "github.com/TimOliver/BlurUIKit"
)

func newOverlayCmd() *cobra.Command {
	var (
		length    int
		direction string
		start     float64
		smooth    bool
		tint      string
		width     int
		height    int
		out       string
	)

	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Render a tinted gradient overlay to a PNG",
		Long: `overlay renders a gradient strip as a tinted dimming layer, the kind
stacked over a blur to keep foreground content legible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := blurkit.ParseDirection(direction)
			if err != nil {
				return err
			}
			c, err := blurkit.Hex(tint)
			if err != nil {
				return err
			}

			strip, err := blurkit.DefaultCache.GetOrCreate(dir.Request(length, start, smooth))
			if err != nil {
				return err
			}

			var img image.Image = blurkit.Overlay(strip, c)
			if width > 0 && height > 0 {
				img = blurkit.Expand(img, width, height)
			}
			return writePNG(out, img)
		},
	}

	cmd.Flags().IntVar(&length, "length", 256, "strip length in pixels")
	cmd.Flags().StringVar(&direction, "direction", "down", "fade direction: down, up, left or right")
	cmd.Flags().Float64Var(&start, "start", 0.25, "fraction of the strip held at the solid end value")
	cmd.Flags().BoolVar(&smooth, "smooth", true, "ease the ramp with a sine curve")
	cmd.Flags().StringVar(&tint, "tint", "#000000cc", "overlay tint as a hex color")
	cmd.Flags().IntVar(&width, "width", 0, "expand the overlay to this width")
	cmd.Flags().IntVar(&height, "height", 0, "expand the overlay to this height")
	cmd.Flags().StringVarP(&out, "out", "o", "overlay.png", "output PNG path")
	return cmd
}
