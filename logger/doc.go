// Package logger provides structured logging for inspectree programs
// using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("inspector")
//	log.Info("graph built", logger.Fields("nodes", 12))
package logger
