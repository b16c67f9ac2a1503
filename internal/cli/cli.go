// Package cli provides the command line interface.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/struktur/internal/config"
	"github.com/temirov/struktur/internal/utils"
)

const (
	rootUse              = utils.ApplicationName
	rootShortDescription = "write the directory tree next to the executable"
	rootLongDescription  = `struktur lists the directory that contains its own executable.
Directories come before files, names are sorted without regard to case, and
the result is written to struktur.txt in the same directory. Failures are
recorded in struktur-error.txt instead.`
	versionTemplate = "struktur version: {{.Version}}\n"

	settingsLoadFailedMessage = "unable to load settings"
	commandFailedMessage      = "command failed"
)

// settingsLoader resolves the settings of a run.
type settingsLoader func() (config.Settings, error)

// applicationFactory builds the Application that performs a run.
type applicationFactory func(logger *zap.Logger, settings config.Settings) *Application

// Execute runs struktur with the process arguments and returns the exit code.
func Execute(logger *zap.Logger) int {
	return execute(logger, nil, config.Load, NewApplication)
}

func execute(logger *zap.Logger, arguments []string, loadSettings settingsLoader, newApplication applicationFactory) int {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings, settingsError := loadSettings()
	if settingsError != nil {
		logger.Error(settingsLoadFailedMessage, zap.Error(settingsError))
		fallbackApplication := newApplication(logger, config.DefaultSettings())
		fallbackApplication.reportFailure(settingsError, fallbackApplication.errorReportPath())
		return config.DefaultFailureExitCode
	}
	application := newApplication(logger, settings)
	rootCommand := createRootCommand(application)
	if arguments != nil {
		rootCommand.SetArgs(arguments)
	}
	if commandError := rootCommand.Execute(); commandError != nil {
		logger.Debug(commandFailedMessage, zap.Error(commandError))
		if !application.started {
			application.reportFailure(commandError, application.errorReportPath())
		}
		return settings.ExitCodes.Failure
	}
	return settings.ExitCodes.Success
}

// createRootCommand builds the root Cobra command. Positional arguments and
// unknown flags are accepted and ignored.
func createRootCommand(application *Application) *cobra.Command {
	rootCommand := &cobra.Command{
		Use:                rootUse,
		Short:              rootShortDescription,
		Long:               rootLongDescription,
		Version:            utils.GetApplicationVersion(),
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.Run()
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}
