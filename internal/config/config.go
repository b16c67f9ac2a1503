// Package config resolves the fixed settings struktur runs with.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// DefaultOutputFileName is the name of the tree listing written next to the executable.
	DefaultOutputFileName = "struktur.txt"
	// DefaultErrorFileName is the name of the report written when a run fails.
	DefaultErrorFileName = "struktur-error.txt"
	// DefaultSuccessExitCode is returned by runs that wrote the listing.
	DefaultSuccessExitCode = 0
	// DefaultFailureExitCode is returned by runs that failed for any reason.
	DefaultFailureExitCode = 1

	outputFileKey      = "output_file"
	errorFileKey       = "error_file"
	successExitCodeKey = "exit_codes.success"
	failureExitCodeKey = "exit_codes.failure"

	errorDecodeSettingsFormat = "decode settings: %w"
)

// Settings holds the file names and exit codes used by a run.
type Settings struct {
	OutputFileName string    `mapstructure:"output_file"`
	ErrorFileName  string    `mapstructure:"error_file"`
	ExitCodes      ExitCodes `mapstructure:"exit_codes"`
}

// ExitCodes maps run outcomes to process exit statuses.
type ExitCodes struct {
	Success int `mapstructure:"success"`
	Failure int `mapstructure:"failure"`
}

// DefaultSettings returns the settings used when Load cannot produce any.
func DefaultSettings() Settings {
	return Settings{
		OutputFileName: DefaultOutputFileName,
		ErrorFileName:  DefaultErrorFileName,
		ExitCodes: ExitCodes{
			Success: DefaultSuccessExitCode,
			Failure: DefaultFailureExitCode,
		},
	}
}

// Load returns the settings for a run. Only defaults are registered: struktur
// reads no configuration file, flags, or environment variables.
func Load() (Settings, error) {
	reader := viper.New()
	reader.SetDefault(outputFileKey, DefaultOutputFileName)
	reader.SetDefault(errorFileKey, DefaultErrorFileName)
	reader.SetDefault(successExitCodeKey, DefaultSuccessExitCode)
	reader.SetDefault(failureExitCodeKey, DefaultFailureExitCode)

	var settings Settings
	if decodeErr := reader.Unmarshal(&settings); decodeErr != nil {
		return Settings{}, fmt.Errorf(errorDecodeSettingsFormat, decodeErr)
	}
	return settings, nil
}
