// Package validation checks configuration structs against their
// `validate` struct tags using go-playground/validator.
//
//	type ReportConfig struct {
//	    Format string `mapstructure:"format" validate:"oneof=text json"`
//	}
//	if err := validation.Validate(cfg); err != nil {
//	    // err is an *errors.AppError with code INVALID_CONFIG
//	}
//
// Field names in messages follow the mapstructure tag, so they match the
// keys used in the YAML file.
package validation
