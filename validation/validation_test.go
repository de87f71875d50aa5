package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/pushflow/errors"
)

type stage struct {
	Name string `mapstructure:"name" validate:"required,identifier"`
}

type settings struct {
	Pipeline string  `mapstructure:"pipeline" validate:"required,identifier"`
	Mode     string  `mapstructure:"mode" validate:"oneof=read_only read_write"`
	Workers  int     `mapstructure:"max_depth" validate:"min=1,max=16"`
	Stages   []stage `mapstructure:"stages" validate:"dive"`
	NoTag    string  `validate:"required"`
}

func validSettings() settings {
	return settings{
		Pipeline: "teams",
		Mode:     "read_only",
		Workers:  4,
		Stages:   []stage{{Name: "team.manager"}},
		NoTag:    "x",
	}
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(validSettings()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	s := validSettings()
	s.Pipeline = "9teams"
	s.Mode = "append"
	s.Workers = 0
	s.Stages = []stage{{Name: ""}}
	s.NoTag = ""

	err := Validate(s)
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	for _, want := range []string{"pipeline: must start with a letter", "mode: must be one of", "max_depth: must be at least 1", "stages[0].name: is required", "no_tag: is required"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %q", want, err.Error())
		}
	}

	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 5 {
		t.Errorf("expected 5 field errors, got %v", appErr.Details["fields"])
	}
}

func TestStructValidateNotAStruct(t *testing.T) {
	err := Validate(42)
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for a non-struct, got %v", err)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"teams", true},
		{"team.manager_name", true},
		{"Person-2", true},
		{"", false},
		{"2teams", false},
		{"team name", false},
		{".hidden", false},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			err := Identifier("name", tc.value)
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestIdentifierTagRegistered(t *testing.T) {
	v := getValidator()
	if err := v.Var("team.manager", tagIdentifier); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.Var("team manager", tagIdentifier); err == nil {
		t.Error("expected the identifier tag to reject a name with a space")
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("TracerName"); got != "tracer_name" {
		t.Errorf("got %q, want tracer_name", got)
	}
}
