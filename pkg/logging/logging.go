// Package logging configures the shared zap logger for the Stitch CLI.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger built by Setup.
var Logger *zap.Logger

// Setup builds the logger and installs it as the zap global. Debug mode
// switches to the human-readable development config; both modes stamp every
// record with the application name and version.
func Setup(debug bool, appName, appVersion string) error {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
