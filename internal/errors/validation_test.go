package errors_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-hud/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("storage", "must be one of: sqlite, redis")
	ve.AddFieldErrorf("autosave_interval", "must be at least %s", "1s")

	s.True(ve.HasErrors())
	s.Equal("validation failed: autosave_interval: must be at least 1s; storage: must be one of: sqlite, redis", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		RequiredField("DocumentRepo").
		InvalidField("AutosaveInterval", "must be positive").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "hud.db", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("sqlite_path", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRangeAndEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("grpc_port", 70000, 1, 65535, vb)
	errors.ValidateRange("level", 5, 1, 20, vb)
	errors.ValidateEnum("storage", "postgres", []string{"sqlite", "redis"}, vb)
	errors.ValidateEnum("log_format", "json", []string{"text", "json"}, vb)

	err := vb.Build()
	s.Require().Error(err)

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(validationErrors["grpc_port"][0], "must be between 1 and 65535")
	s.Contains(validationErrors["storage"][0], "must be one of: sqlite, redis")
	s.NotContains(validationErrors, "level")
	s.NotContains(validationErrors, "log_format")
}

type restKind string

func (s *ValidationTestSuite) TestValidateEnumNamedType() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("kind", restKind("nap"), []restKind{"short", "long"}, vb)
	errors.ValidateEnum("other", restKind("long"), []restKind{"short", "long"}, vb)

	validationErrors := errors.GetMeta(vb.Build())["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be one of: short, long"}, validationErrors["kind"])
	s.NotContains(validationErrors, "other")
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("interval", -time.Second, 0, vb)
	errors.ValidateMin("points", 2, 0, vb)

	validationErrors := errors.GetMeta(vb.Build())["validation_errors"].(map[string][]string)
	s.Equal([]string{"must be at least 0s"}, validationErrors["interval"])
	s.NotContains(validationErrors, "points")
}
