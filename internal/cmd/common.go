package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/fstools/internal/config"
	"github.com/harrison/fstools/internal/logger"
	"github.com/harrison/fstools/internal/models"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// addCommonFlags registers the flags both commands share
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: $FSTOOLS_HOME/config.yaml)")
	cmd.Flags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Also write a per-run log file to this directory")
	cmd.Flags().String("color", "", "Color output: auto, always, never")
}

// loadConfig reads the config file and applies only the flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevel, logDir, colorMode *string
	var absolute *bool

	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDir = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorMode = &v
	}
	if f := cmd.Flags().Lookup("absolute"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("absolute")
		absolute = &v
	}

	cfg.MergeWithFlags(logLevel, logDir, colorMode, absolute)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// useColor reports whether out should receive ANSI codes under mode.
// auto means out is a terminal and NO_COLOR is unset.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// commandLoggers holds the loggers for one command run
type commandLoggers struct {
	// all receives every message
	all logger.Logger
	// file is nil unless log_dir is configured
	file *logger.FileLogger
}

// newCommandLoggers builds a console logger on console (nil = none) plus a
// file logger when cfg.LogDir is set
func newCommandLoggers(cfg *config.Config, console io.Writer) (*commandLoggers, error) {
	multi := &multiLogger{}

	if console != nil {
		consoleLog := logger.NewConsoleLoggerWithColor(console, cfg.LogLevel, useColor(cfg.Color, console))
		multi.loggers = append(multi.loggers, consoleLog)
	}

	logs := &commandLoggers{all: multi}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create file logger: %w", err)
		}
		multi.loggers = append(multi.loggers, fileLog)
		logs.file = fileLog
		logs.all.LogInfo(fmt.Sprintf("run %s logging to %s", fileLog.RunID(), fileLog.Path()))
	}

	return logs, nil
}

// recordFailure writes err to the run log file only; the console gets it from main
func (l *commandLoggers) recordFailure(err error) {
	if l.file != nil {
		l.file.LogError(err.Error())
	}
}

// Close closes the file logger, if any
func (l *commandLoggers) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// multiLogger implements logger.Logger by delegating to multiple loggers
type multiLogger struct {
	loggers []logger.Logger
}

func (ml *multiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

func (ml *multiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}

// LogSearchResult forwards to all loggers
func (ml *multiLogger) LogSearchResult(result models.SearchResult) {
	for _, l := range ml.loggers {
		l.LogSearchResult(result)
	}
}

// LogSelectionResult forwards to all loggers
func (ml *multiLogger) LogSelectionResult(result models.SelectionResult) {
	for _, l := range ml.loggers {
		l.LogSelectionResult(result)
	}
}
