package main

import (
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/raycaster/internal/scene"
)

func sceneFlags(cmd *cobra.Command, opts *scene.Options) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "data/config.yaml", "YAML config file (missing file means defaults)")
	cmd.Flags().StringVarP(&opts.MapPath, "map", "m", "", "map file (.yaml or .json); built-in map when empty")
	cmd.Flags().BoolVar(&opts.NoFisheye, "no-fisheye", false, "project radial instead of perpendicular distance")
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "raycaster",
		Short:        "Pseudo-3D raycasting demo over a top-down polygon map",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(windowCmd())
	rootCmd.AddCommand(termCmd())
	rootCmd.AddCommand(castCmd())
	rootCmd.AddCommand(mapsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func windowCmd() *cobra.Command {
	var opts scene.Options

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run the demo in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runWindow(opts)
		},
	}

	sceneFlags(cmd, &opts)
	return cmd
}

func termCmd() *cobra.Command {
	var opts scene.Options
	var logPath string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the demo inside the terminal",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTerm(opts, logPath)
		},
	}

	sceneFlags(cmd, &opts)
	cmd.Flags().StringVar(&logPath, "log", "", "write log output to this file while the terminal is in use")
	return cmd
}

func castCmd() *cobra.Command {
	var opts scene.Options
	var x, y, heading float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Cast a single frame headlessly and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			castOpts := scene.CastOptions{JSON: asJSON}
			if cmd.Flags().Changed("x") {
				castOpts.X = &x
			}
			if cmd.Flags().Changed("y") {
				castOpts.Y = &y
			}
			if cmd.Flags().Changed("heading") {
				castOpts.Heading = &heading
			}
			return scene.Cast(opts, castOpts, cmd.OutOrStdout())
		},
	}

	sceneFlags(cmd, &opts)
	cmd.Flags().Float64Var(&x, "x", 0, "camera x (default: map spawn)")
	cmd.Flags().Float64Var(&y, "y", 0, "camera y (default: map spawn)")
	cmd.Flags().Float64Var(&heading, "heading", 0, "camera heading in degrees (default: map spawn)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the whole frame as JSON")
	return cmd
}

func mapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maps [dir]",
		Short: "List map files in a data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "data/maps"
			if len(args) == 1 {
				dir = args[0]
			}
			return scene.ListMaps(dir, cmd.OutOrStdout())
		},
	}
}
