package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fhirfactory/hestia-task/internal/config"
	"github.com/fhirfactory/hestia-task/internal/services"
	"github.com/fhirfactory/hestia-task/internal/store"
)

// app carries what the subcommands share once the root command has loaded
// the configuration.
type app struct {
	cfg   *config.Configuration
	store *store.Store
	tasks *services.TaskService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "hestia-task",
		Short:        "FHIR Task store with attribute search",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
			if err != nil {
				return err
			}
			zap.ReplaceGlobals(logger)
			zap.S().Debugw("configuration loaded", "config", cfg.DebugMap())

			a.cfg = cfg
			a.store = store.NewStore(cfg.Store)
			a.tasks = services.NewTaskService(a.store.Tasks(), a.store.Search())
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			_ = zap.L().Sync()
			if a.store == nil {
				return nil
			}
			return a.store.Close()
		},
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newRunCmd(a),
		newImportCmd(a),
		newGetCmd(a),
		newSearchCmd(a),
	)
	return cmd
}

func newLogger(format, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var zc zap.Config
	switch format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
