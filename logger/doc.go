// Package logger provides structured logging for pushflow using zerolog.
//
// Loggers are scoped by component and, for pipeline runs, by pipeline name
// and stage. Levels are set per logger, so a debug logger for one pipeline
// does not change what others emit.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("access")
//	log.Debug("transform registered", logger.Fields(logger.FieldTransform, "teams"))
package logger
