package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rhyrak/class-scheduler/internal/config"
	"github.com/rhyrak/class-scheduler/internal/logger"
	"github.com/rhyrak/class-scheduler/internal/printer"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Assign subjects to teachers, classrooms and time slots",
	Long: `scheduler binds each subject to the first free time slot and classroom,
giving it to the least-loaded teacher who still has capacity.

Entities are loaded from CSV files (generate) or built up over HTTP (serve).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// setup loads configuration and builds the logger shared by subcommands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, printer.Error("Failed to load configuration", err.Error(), []string{
			"Check the YAML syntax of " + displayPath(configPath),
		})
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, printer.Error("Failed to initialise logging", err.Error(), nil)
	}
	return cfg, log, nil
}

func displayPath(p string) string {
	if p == "" {
		return config.DefaultFile
	}
	return p
}
