// This program shows four classic fractals in a window, one at a time,
// picked with the buttons above the drawing.
package main

import (
	"context"
	"log"
	"os"

	"github.com/scottkirkwood/fraktale"
	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
)

const (
	flagSettings = "settings"
	flagRenderer = "renderer"
	flagVerbose  = "verbose"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fraktale",
		Short: "Draws the Cantor set, Sierpinski triangle, Koch curve and a recursive tree",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}
	cmd.Flags().String(flagSettings, "", "JSON settings file, reloaded when it changes")
	cmd.Flags().String(flagRenderer, "", "raster or vector, overrides the settings file")
	cmd.Flags().BoolP(flagVerbose, "v", false, "log every redraw")
	return cmd
}

type options struct {
	settings     fraktale.Settings
	settingsFile string
	renderer     string
	verbose      bool
}

// optionsFromFlags loads the settings file and applies the renderer flag.
func optionsFromFlags(cmd *cobra.Command) (options, error) {
	var (
		opts options
		err  error
	)
	if opts.settingsFile, err = cmd.Flags().GetString(flagSettings); err != nil {
		return opts, err
	}
	if opts.renderer, err = cmd.Flags().GetString(flagRenderer); err != nil {
		return opts, err
	}
	if opts.verbose, err = cmd.Flags().GetBool(flagVerbose); err != nil {
		return opts, err
	}
	if opts.settings, err = fraktale.LoadSettings(opts.settingsFile); err != nil {
		return opts, err
	}
	if opts.renderer != "" {
		opts.settings.Renderer = opts.renderer
	}
	return opts, opts.settings.Validate()
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	v := newViewer(opts.settings, opts.renderer, opts.verbose)
	var runErr error
	driver.Main(func(s screen.Screen) {
		runErr = run(s, v, opts.settingsFile)
	})
	return runErr
}

func main() {
	log.SetPrefix("[fraktale] ")
	log.SetFlags(log.Ltime)

	err := mainCmd().ExecuteContext(context.Background())
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
