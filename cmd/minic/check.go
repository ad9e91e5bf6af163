package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/pattyshack/minic/config"
	"github.com/pattyshack/minic/driver"
	"github.com/pattyshack/minic/report"
)

// Returned when at least one file failed analysis.  The reports already
// describe the failure, so cobra is told not to print it again.
var errAnalysisFailed = errors.New("analysis failed")

var (
	configPath string
	format     string
	logLevel   string
	noColor    bool
	watch      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [files]",
	Short: "Analyze one or more source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	flags := checkCmd.Flags()
	flags.StringVarP(
		&configPath,
		"config",
		"c",
		config.DefaultFileName,
		"config file")
	flags.StringVarP(
		&format,
		"format",
		"f",
		string(report.TextFormat),
		"report format (text, yaml, json)")
	flags.StringVarP(
		&logLevel,
		"log-level",
		"l",
		"verbose",
		"text report verbosity (silent, error, warning, verbose)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(
		&watch,
		"watch",
		"w",
		false,
		"re-check files whenever they change")
}

// Config file values are overridden by explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(configPath)
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format, err = report.ParseFormat(format)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, err = report.ParseLogLevel(logLevel)
		if err != nil {
			return nil, err
		}
	}

	if noColor {
		cfg.Color = false
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report.SetColor(cfg.Color)
	logger := report.NewLogger(cmd.OutOrStdout(), cfg.LogLevel, cfg.Format)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	results, err := driver.AnalyzeFiles(ctx, args, runtime.NumCPU())
	if err != nil {
		logger.Error("read", err)
		return err
	}

	failed := false
	for _, result := range results {
		if result.Failed() {
			failed = true
		}

		err := logger.Report(result.Report)
		if err != nil {
			return err
		}
	}

	if watch {
		return watchFiles(ctx, logger, args)
	}

	if failed {
		cmd.SilenceErrors = true
		return errAnalysisFailed
	}
	return nil
}

func watchFiles(
	ctx context.Context,
	logger *report.Logger,
	fileNames []string,
) error {
	logger.Info("watch", "waiting for changes (interrupt to stop)")

	return driver.Watch(ctx, fileNames, func(result *driver.Result) {
		err := logger.Report(result.Report)
		if err != nil {
			logger.Error("report", err)
		}
	})
}
