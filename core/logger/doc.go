// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance suitable for a command line tool:
// console encoding for interactive runs, JSON encoding when the output is
// collected by another process.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Export finished", zap.Int("statements", n))
package logger
