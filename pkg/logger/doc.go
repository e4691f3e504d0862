// Package logger builds *slog.Logger values with environment presets,
// consistent attribute names and attributes pulled from context.Context.
//
// New applies Option functions to a JSON/INFO default. WithEnvironment
// selects a preset (text/DEBUG for development, JSON/INFO for staging and
// production) and NewFromConfig layers LOG_LEVEL and LOG_FORMAT on top.
// WithContextExtractors registers callbacks that add request-scoped
// attributes, such as the request id, on every Handle call.
//
//	log := logger.NewFromConfig(cfg, environment.Production, "starterkit",
//	    logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "signed in",
//	    logger.UserID(user.ID.String()),
//	    logger.SessionID(sess.ID),
//	)
//
// Attribute helpers in attr.go return an empty slog.Attr for nil or empty
// input, so they can be passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
