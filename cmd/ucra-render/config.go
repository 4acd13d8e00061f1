// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

func setViperDefaults() {
	viper.SetDefault("loglevel", "info")
	viper.SetDefault("logfile", "")
	viper.SetDefault("samplerate", 44100)
	viper.SetDefault("channels", 1)
	viper.SetDefault("format", "float32")
	viper.SetDefault("manifest", "")
	viper.SetDefault("flagrules", "")
}

// loadConfig reads the optional config file; defaults apply when it is
// absent.
func loadConfig(configFilePath string) {
	setViperDefaults()

	viper.SetConfigFile(configFilePath)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			slog.Info("no config file found, using defaults", "configFilePath", configFilePath)
		} else {
			slog.Error("error during config read", "err", err)
			os.Exit(1)
		}
	}
}

// configureLogger points slog at stdout or a JSON log file at the configured
// level. Returns the log file handle, if any, so main can close it.
func configureLogger(logLevel, logFile string) (*os.File, error) {
	var opts slog.HandlerOptions
	switch logLevel {
	case "none":
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil, nil
	case "error":
		opts.Level = slog.LevelError
	case "warn":
		opts.Level = slog.LevelWarn
	case "info":
		opts.Level = slog.LevelInfo
	case "debug":
		opts.Level = slog.LevelDebug
	default:
		return nil, errors.New("unexpected log level")
	}

	if logFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &opts)))
		return nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, &opts)))
	return f, nil
}
