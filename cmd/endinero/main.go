package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iwvelando/endinero/internal/config"
	"github.com/iwvelando/endinero/pkg/constants"
	"github.com/iwvelando/endinero/pkg/format"
	"github.com/iwvelando/endinero/pkg/output"
	"github.com/iwvelando/endinero/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes returned by run.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "json"
	}

	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run formats every positional amount and writes the results to stdout.
// Negative amounts must follow "--" so they are not read as flags.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("endinero", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configLocation := flags.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flags.String("output-format", "", "type of output override: pretty, csv, plain")
	logLevel := flags.String("log-level", "", "log level override (debug, info, warn, error)")
	styleFlag := flags.String("style", "", "style override: spanish, us or a language tag such as es-ES")
	single := flags.Bool("single", false, "format amounts as float32")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": %q}\n", *configLocation, err.Error())
		return exitError
	}
	if *styleFlag != "" {
		conf.Style.Preset = *styleFlag
	}
	if *single {
		conf.Style.Width = constants.Width32
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": %q}\n", err.Error())
		return exitError
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(), zap.String("op", "main"))
		return exitError
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	style, err := conf.ResolveStyle()
	if err != nil {
		logger.Error("failed to resolve style",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return exitError
	}

	if flags.NArg() == 0 {
		logger.Error("no amounts given", zap.String("op", "main"))
		return exitUsage
	}

	formatter := format.NewFormatter(style, logger)
	width := conf.Style.WidthOrDefault()
	results := make([]output.Result, 0, flags.NArg())
	for _, arg := range flags.Args() {
		formatted, err := formatArgument(formatter, width, arg)
		if err != nil {
			logger.Error("failed to parse amount",
				zap.String("op", "main"),
				zap.String("amount", arg),
				zap.Error(err),
			)
			return exitError
		}
		results = append(results, output.Result{Input: arg, Formatted: formatted})
	}

	if err := output.Write(stdout, outputFormat, results); err != nil {
		logger.Error("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return exitError
	}
	return exitOK
}

func formatArgument(formatter *format.Formatter, width int, arg string) (string, error) {
	if width == constants.Width32 {
		amount, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return "", err
		}
		return formatter.Format32(float32(amount)), nil
	}

	amount, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return "", err
	}
	return formatter.Format(amount), nil
}
