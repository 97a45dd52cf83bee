// Package logger builds the *slog.Logger used across l10ncheck and provides
// attribute helpers that keep key names consistent between packages.
//
// New creates a logger from functional options: output format (text or json),
// minimum level, output writer, static attributes and context extractors. The
// resulting handler is wrapped by LogHandlerDecorator, which injects attributes
// pulled from the context of every log call (for example the watch run number).
//
// # Usage
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextValue("run", runKey),
//	)
//	log.WarnContext(ctx, "failed to load catalog",
//		logger.Catalog("messages"),
//		logger.Locale(tag),
//		logger.Error(err),
//	)
//
// Error returns an empty attribute for a nil error, so callers do not need a
// nil check before logging.
package logger
