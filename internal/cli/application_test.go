package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/struktur/internal/config"
)

const testExecutableName = "struktur"

func defaultSettings(t *testing.T) config.Settings {
	t.Helper()
	settings, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load error: %v", err)
	}
	return settings
}

// newTestApplication returns an Application whose executable lives in a fresh temporary root.
func newTestApplication(t *testing.T) (*Application, string) {
	t.Helper()
	rootDirectory := t.TempDir()
	executablePath := filepath.Join(rootDirectory, testExecutableName)
	if err := os.WriteFile(executablePath, []byte("binary"), 0o755); err != nil {
		t.Fatalf("write executable: %v", err)
	}
	application := NewApplication(zap.NewNop(), defaultSettings(t))
	application.ResolveExecutable = func() (string, error) { return executablePath, nil }
	application.FallbackReportRoot = t.TempDir()
	return application, rootDirectory
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func TestRunWritesListingNextToExecutable(t *testing.T) {
	application, rootDirectory := newTestApplication(t)
	if err := os.MkdirAll(filepath.Join(rootDirectory, "docs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(rootDirectory, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := application.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	// The second run sees the listing written by the first and must still omit it.
	if err := application.Run(); err != nil {
		t.Fatalf("second Run error: %v", err)
	}

	// The executable and the previous listing sort after notes.txt, so it is not the last sibling.
	separator := string(filepath.Separator)
	expected := filepath.Base(rootDirectory) + separator + "\n" +
		"├── docs" + separator + "\n" +
		"├── notes.txt\n"
	actual := readFile(t, filepath.Join(rootDirectory, config.DefaultOutputFileName))
	if actual != expected {
		t.Fatalf("unexpected listing\nexpected:\n%s\nactual:\n%s", expected, actual)
	}
	if _, statErr := os.Stat(filepath.Join(rootDirectory, config.DefaultErrorFileName)); !os.IsNotExist(statErr) {
		t.Fatalf("error report should not exist after a successful run")
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	application, rootDirectory := newTestApplication(t)
	// A directory in place of the output file makes the write fail.
	if err := os.MkdirAll(filepath.Join(rootDirectory, config.DefaultOutputFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	runError := application.Run()
	if runError == nil {
		t.Fatalf("expected Run to fail")
	}
	report := readFile(t, filepath.Join(rootDirectory, config.DefaultErrorFileName))
	if !strings.HasPrefix(report, "An error occurred: write listing: ") {
		t.Fatalf("unexpected report %q", report)
	}
}

func TestRunReportsUnresolvableExecutable(t *testing.T) {
	application, _ := newTestApplication(t)
	application.ResolveExecutable = func() (string, error) { return "", errors.New("no executable") }

	runError := application.Run()
	if runError == nil || !strings.Contains(runError.Error(), "no executable") {
		t.Fatalf("expected resolve error, got %v", runError)
	}
	report := readFile(t, filepath.Join(application.FallbackReportRoot, config.DefaultErrorFileName))
	if report != "An error occurred: resolve executable path: no executable\n" {
		t.Fatalf("unexpected report %q", report)
	}
}

func TestRunRecoversPanics(t *testing.T) {
	application, _ := newTestApplication(t)
	application.ResolveExecutable = func() (string, error) { panic("unexpected state") }

	runError := application.Run()
	var panicError *recoveredPanic
	if !errors.As(runError, &panicError) {
		t.Fatalf("expected recovered panic, got %v", runError)
	}
	report := readFile(t, filepath.Join(application.FallbackReportRoot, config.DefaultErrorFileName))
	if !strings.HasPrefix(report, "An error occurred: panic: unexpected state\n") {
		t.Fatalf("unexpected report %q", report)
	}
	if !strings.Contains(report, "goroutine") {
		t.Fatalf("expected stack trace in report %q", report)
	}
}

func TestRunIgnoresUnwritableErrorReport(t *testing.T) {
	application, _ := newTestApplication(t)
	application.FallbackReportRoot = filepath.Join(t.TempDir(), "missing")
	application.ResolveExecutable = func() (string, error) { return "", errors.New("no executable") }

	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	application.Logger = zap.New(observedCore)

	if runError := application.Run(); runError == nil {
		t.Fatalf("expected Run to fail")
	}
	if observedLogs.FilterMessage(errorReportFailedMessage).Len() != 1 {
		t.Fatalf("expected report failure to be logged")
	}
}
