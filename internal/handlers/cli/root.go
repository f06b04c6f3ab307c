package cli

import (
	"fmt"

	"github.com/AntonioJCosta/wordfreq/internal/adapters/logging"
	"github.com/AntonioJCosta/wordfreq/internal/adapters/render"
	"github.com/AntonioJCosta/wordfreq/internal/config"
	"github.com/AntonioJCosta/wordfreq/internal/core/domain/unit"
	"github.com/AntonioJCosta/wordfreq/internal/core/ports"
	"github.com/AntonioJCosta/wordfreq/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the counting service once the logger is configured.
type ServiceFactory func(logger ports.Logger) ports.CountingService

func NewRootCommand(version string, newService ServiceFactory) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "wordfreq [FILE...]",
		Short: "wordfreq counts how often characters, words or lines occur in text files.",
		Long: `wordfreq reads the given files, counts every character, word or line
across all of them and prints a histogram in descending order of frequency.
Files that cannot be opened or read are reported and skipped.`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newService == nil {
				return fmt.Errorf("counting service not initialized for command %s", cmd.Name())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, configPath, newService)
		},
	}

	cmd.Flags().VarP(newEnumValue(unit.Default.String(), unit.Names), config.KeyUnit, "u", "Unit of frequency of occurrence.")
	cmd.Flags().VarP(newEnumValue(string(render.HistogramFormat), render.Formats), config.KeyFormat, "f", "Output format.")
	cmd.Flags().String(config.KeyLogLevel, logging.DefaultLevel, "Diagnostic log level (trace, debug, info, warn, error).")
	cmd.Flags().Bool(config.KeyNoColor, false, "Disable coloured output.")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default is $HOME/.config/wordfreq/config.yml).")

	return cmd
}

// runRootCmd counts every FILE argument and prints the rendered table.
func runRootCmd(
	cmd *cobra.Command,
	files []string,
	configPath string,
	newService ServiceFactory,
) error {
	cfg, err := config.Load(cmd.Flags(), configPath)
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}
	if cfg.NoColor {
		ui.DisableColor()
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if cfg.ConfigPath != "" {
		logger.Debugf("using config file %s", cfg.ConfigPath)
	}

	var opts []render.HistogramOption
	if ui.ColorEnabled() {
		opts = append(opts, render.WithBarPainter(ui.BarColor))
	}
	renderer, err := render.New(cfg.OutputFormat, opts...)
	if err != nil {
		return err
	}

	table := newService(logger).Count(files, cfg.UnitKind)

	out, err := renderer.Render(table)
	if err != nil {
		return fmt.Errorf("could not render frequencies: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
