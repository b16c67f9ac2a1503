package main

import (
	"os"

	"github.com/temirov/struktur/internal/cli"
	"github.com/temirov/struktur/internal/utils"
)

// main is the entry point for the struktur command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		loggerInstance = utils.NewFallbackLogger()
	}
	exitCode := cli.Execute(loggerInstance)
	_ = loggerInstance.Sync()
	os.Exit(exitCode)
}
