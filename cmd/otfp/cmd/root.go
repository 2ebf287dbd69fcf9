package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePattern/pkg/config"
	"github.com/OpenTraceLab/OpenTracePattern/pkg/ipc"
)

var (
	// Global flags
	verbose    bool
	configPath string
	density    string

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "otfp",
	Short: "OpenTracePattern - IPC-7351 land pattern generator",
	Long: `OpenTracePattern (otfp) generates PCB land patterns from component
descriptions following the IPC-7351 calculation rules.

An element file describes the package housing dimensions in YAML; otfp
derives the pad stack for the chosen density level and writes a KiCad
footprint.

Examples:
  otfp list                               # List supported package kinds
  otfp generate soic chip.yaml -o lib     # Generate a footprint
  otfp preview soic chip.yaml -o out.png  # Render a preview image`,
	Version: "0.9.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.WarnLevel
		if verbose {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
			Level:           level,
		})
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSettings resolves the generation settings from the config file
// and the density flag.
func loadSettings() (config.Settings, error) {
	s := config.Default()
	if configPath != "" {
		var err error
		s, err = config.Load(configPath)
		if err != nil {
			return s, err
		}
		logger.Debug("settings loaded", "path", configPath)
	}
	if density != "" {
		s.DensityLevel = ipc.Density(density)
		if !s.DensityLevel.Valid() {
			return s, fmt.Errorf("invalid density level %q: must be L, N or M", density)
		}
	}
	return s, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (TOML)")
	rootCmd.PersistentFlags().StringVarP(&density, "density", "d", "", "density level: L, N or M")
}
