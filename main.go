package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"exodiag/diagrams"
	"exodiag/internal/logger"
)

const (
	exocortexFile    = "exocortex-architecture.png"
	architectureFile = "exocortex-system-architecture.png"
	overlayFile      = "exocortex-architecture-with-aepath.png"
)

func main() {
	cmd := newRootCmd(loadConfig(), os.Stderr)
	if err := cmd.Execute(); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *Config, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, log: logger.New(stderr, logger.LevelInfo, "")}
	var (
		fontDirs []string
		copyPath bool
		verbose  bool
	)

	root := &cobra.Command{
		Use:           "exodiag",
		Short:         "Render the Exocortex architecture diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.LevelInfo
			if verbose {
				level = logger.LevelDebug
			}
			a.log = logger.New(stderr, level, "")
			if len(fontDirs) > 0 {
				cfg.FontDirs = append(append([]string(nil), fontDirs...), cfg.FontDirs...)
			}
			if copyPath {
				cfg.CopyPath = true
			}
		},
	}
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringSliceVar(&fontDirs, "font-dir", nil, "directory to search for fonts (repeatable)")
	pf.BoolVar(&copyPath, "copy", false, "copy the written path to the clipboard")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log font resolution and other details")

	root.AddCommand(
		renderCmd(a, "exocortex", "Render the layered system diagram", exocortexFile, func(a *app, out string) error {
			return a.render(diagrams.Exocortex, out)
		}),
		renderCmd(a, "architecture", "Render the section diagram", architectureFile, func(a *app, out string) error {
			return a.render(diagrams.Architecture, out)
		}),
		overlayCmd(a),
	)
	return root
}

func renderCmd(a *app, use, short, defaultOut string, run func(*app, string) error) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", defaultOut, "output PNG path")
	return cmd
}

func overlayCmd(a *app) *cobra.Command {
	var input, out string
	cmd := &cobra.Command{
		Use:   "overlay",
		Short: "Add the ae_path dashboard to a rendered Exocortex diagram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.overlay(input, out)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "base PNG to annotate")
	cmd.Flags().StringVarP(&out, "out", "o", overlayFile, "output PNG path")
	cmd.MarkFlagRequired("input")
	return cmd
}
