// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("session started", slog.String("source", path))
//
// # Configuration
//
// Configure a logger at creation time using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// # Default Logger
//
// Package-level functions ([Debug], [Info], [Warn], [Error], and their
// context-aware variants) write through a process-wide default logger,
// reconfigurable with [Config]:
//
//	log.Config(log.WithLevel(log.LevelTrace), log.WithPretty(false))
//
// # Output Formats
//
// Two output formats are supported, [FormatJSON] (default) and [FormatText],
// each with an optional colorized pretty variant enabled by [WithPretty].
package log
