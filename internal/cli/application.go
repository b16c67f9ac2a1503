package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/temirov/struktur/internal/config"
	"github.com/temirov/struktur/internal/output"
	"github.com/temirov/struktur/internal/tree"
)

const (
	errorResolveExecutableFormat  = "resolve executable path: %w"
	errorAbsoluteExecutableFormat = "absolute path for executable %s: %w"
	errorWriteListingFormat       = "write listing: %w"
	panicMessageFormat            = "panic: %v"

	listingWrittenMessage     = "directory listing written"
	errorReportFailedMessage  = "unable to write error report"
	runFailedMessage          = "run failed"
	logFieldOutputPath        = "output"
	logFieldReportPath        = "report"
	symlinkResolutionFallback = "executable symlink not resolved"
)

// ExecutableResolver returns the path of the running program.
type ExecutableResolver func() (string, error)

// Application lists the directory holding the running executable.
type Application struct {
	Logger             *zap.Logger
	Settings           config.Settings
	ResolveExecutable  ExecutableResolver
	FallbackReportRoot string

	started bool
}

// NewApplication returns an Application resolving the root from os.Executable.
// Failures that happen before the root is known are reported in the working directory.
func NewApplication(logger *zap.Logger, settings config.Settings) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	fallbackReportRoot, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		fallbackReportRoot = "."
	}
	return &Application{
		Logger:             logger,
		Settings:           settings,
		ResolveExecutable:  os.Executable,
		FallbackReportRoot: fallbackReportRoot,
	}
}

// recoveredPanic is a panic converted into an error at the run boundary.
type recoveredPanic struct {
	value any
	stack []byte
}

func (panicError *recoveredPanic) Error() string {
	return fmt.Sprintf(panicMessageFormat, panicError.value)
}

// StackTrace returns the stack of the goroutine that panicked.
func (panicError *recoveredPanic) StackTrace() string {
	return string(panicError.stack)
}

// Run writes the listing next to the executable. Any failure, including a
// panic, is recorded in the error report before being returned.
func (application *Application) Run() (runError error) {
	application.started = true
	reportDirectory := application.FallbackReportRoot
	defer func() {
		if recovered := recover(); recovered != nil {
			runError = &recoveredPanic{value: recovered, stack: debug.Stack()}
		}
		if runError != nil {
			application.reportFailure(runError, filepath.Join(reportDirectory, application.Settings.ErrorFileName))
		}
	}()

	rootDirectory, executableName, resolveError := application.resolveRoot()
	if resolveError != nil {
		return resolveError
	}
	reportDirectory = rootDirectory

	ignoreSet := tree.NewIgnoreSet(executableName, application.Settings.OutputFileName)
	listing := tree.NewTreeBuilder(ignoreSet, application.Logger).BuildTree(rootDirectory)

	outputPath := filepath.Join(rootDirectory, application.Settings.OutputFileName)
	if writeError := output.WriteOutput(listing, outputPath); writeError != nil {
		return fmt.Errorf(errorWriteListingFormat, writeError)
	}
	application.Logger.Info(listingWrittenMessage, zap.String(logFieldOutputPath, outputPath))
	return nil
}

// resolveRoot returns the directory containing the executable and the executable's file name.
func (application *Application) resolveRoot() (string, string, error) {
	executablePath, executableError := application.ResolveExecutable()
	if executableError != nil {
		return "", "", fmt.Errorf(errorResolveExecutableFormat, executableError)
	}
	if resolvedPath, symlinkError := filepath.EvalSymlinks(executablePath); symlinkError == nil {
		executablePath = resolvedPath
	} else {
		application.Logger.Debug(symlinkResolutionFallback, zap.Error(symlinkError))
	}
	absoluteExecutablePath, absoluteError := filepath.Abs(executablePath)
	if absoluteError != nil {
		return "", "", fmt.Errorf(errorAbsoluteExecutableFormat, executablePath, absoluteError)
	}
	return filepath.Dir(absoluteExecutablePath), filepath.Base(absoluteExecutablePath), nil
}

// errorReportPath returns the report location next to the executable, or in
// the fallback directory when the executable cannot be located.
func (application *Application) errorReportPath() string {
	reportDirectory := application.FallbackReportRoot
	if rootDirectory, _, resolveError := application.resolveRoot(); resolveError == nil {
		reportDirectory = rootDirectory
	}
	return filepath.Join(reportDirectory, application.Settings.ErrorFileName)
}

// reportFailure logs runError and writes the error report; a failing report is only logged.
func (application *Application) reportFailure(runError error, reportPath string) {
	application.Logger.Error(runFailedMessage, zap.Error(runError))
	if reportError := output.WriteErrorReport(runError, reportPath); reportError != nil {
		application.Logger.Debug(errorReportFailedMessage, zap.String(logFieldReportPath, reportPath), zap.Error(reportError))
	}
}
