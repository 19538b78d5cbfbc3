// Command blurdemo exercises the gradient engine from the command line. It
// renders gradient mask strips, tinted overlay layers and progressive blurs
// to PNG files.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	blurkit "github.com/TimOliver/BlurUIKit"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blurdemo:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "blurdemo",
		Short: "Render gradient masks and progressive blurs",
		Long: `blurdemo renders the building blocks of a progressive blur to PNG files:
bare gradient mask strips, tinted overlay layers, and images blurred with a
radius that ramps across the frame.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				blurkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log internal diagnostics to stderr")

	cmd.AddCommand(newMaskCmd())
	cmd.AddCommand(newOverlayCmd())
	cmd.AddCommand(newBlurCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blurdemo version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("blurdemo", version)
		},
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
