// Package validation checks configuration structs and registry names.
//
// Struct validation uses validator tags and reports every failing field in
// one AppError:
//
//	type Config struct {
//	    Name string `validate:"required,identifier"`
//	}
//	err := validation.Validate(cfg)
//
// The identifier tag accepts names such as "teams" or "team.manager_name":
// a letter followed by letters, digits, '.', '_' or '-'.
package validation
