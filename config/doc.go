// Package config loads pushflow settings from YAML files, .env files and
// environment variables using Viper.
//
// # Usage
//
//	cfg, err := config.Load("teams")
//	if err != nil {
//	    return err
//	}
//	log := cfg.NewLogger()
//	obs, err := cfg.NewObserver("team-names")
//
// Environment variables prefixed with PUSHFLOW_ override file values.
// Underscores separate nesting levels, so PUSHFLOW_LOGGING_LEVEL sets
// logging.level and PUSHFLOW_OBSERVE_LOG_VALUES sets observe.log_values.
package config
