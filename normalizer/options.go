package normalizer

import (
	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/jsonval"
)

// NormalizeOption configures a call to NormalizeWithOptions.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	data     []byte
	value    *jsonval.Value
	logger   Logger
	examples bool
}

// WithData supplies the raw specification bytes, JSON or YAML.
func WithData(data []byte) NormalizeOption {
	return func(c *normalizeConfig) {
		c.data = data
	}
}

// WithValue supplies an already decoded specification document.
func WithValue(v jsonval.Value) NormalizeOption {
	return func(c *normalizeConfig) {
		c.value = &v
	}
}

// WithLogger sets the logger used during normalization. The default is
// NopLogger.
func WithLogger(logger Logger) NormalizeOption {
	return func(c *normalizeConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithoutExamples disables synthesis of per-endpoint request snippets.
func WithoutExamples() NormalizeOption {
	return func(c *normalizeConfig) {
		c.examples = false
	}
}

func (c *normalizeConfig) validate() error {
	if c.data == nil && c.value == nil {
		return &docerrors.ConfigError{
			Option:  "source",
			Message: "one of WithData or WithValue is required",
		}
	}
	if c.data != nil && c.value != nil {
		return &docerrors.ConfigError{
			Option:  "source",
			Message: "WithData and WithValue are mutually exclusive",
		}
	}
	return nil
}
