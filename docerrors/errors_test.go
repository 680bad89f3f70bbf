package docerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificationError(t *testing.T) {
	cause := errors.New("root is a list")
	err := &SpecificationError{
		Path:    "$",
		Message: "document root must be an object",
		Cause:   cause,
	}

	assert.True(t, errors.Is(err, ErrInvalidSpecification))
	assert.False(t, errors.Is(err, ErrUnsupportedDialect))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "invalid specification at $")
	assert.Contains(t, err.Error(), "root is a list")
}

func TestDialectError(t *testing.T) {
	err := &DialectError{Marker: "openapi", Value: "4.0.0"}

	assert.True(t, errors.Is(err, ErrUnsupportedDialect))
	assert.False(t, errors.Is(err, ErrInvalidSpecification))
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(t, `unsupported dialect (openapi: "4.0.0")`, err.Error())
}

func TestFetchError(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "status code",
			err:      &FetchError{URL: "https://example.com/spec.yaml", StatusCode: 404},
			expected: "fetch failed for https://example.com/spec.yaml (status 404)",
		},
		{
			name:     "transport cause",
			err:      &FetchError{URL: "https://example.com", Cause: errors.New("connection refused")},
			expected: "fetch failed for https://example.com: connection refused",
		},
		{
			name:     "bare",
			err:      &FetchError{},
			expected: "fetch failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrFetchFailed))
		})
	}
}

func TestAnalysisError(t *testing.T) {
	err := &AnalysisError{
		Operation: "analyze_documentation",
		Message:   "response did not contain valid JSON",
	}

	assert.True(t, errors.Is(err, ErrAnalysisFailed))
	assert.Contains(t, err.Error(), "during analyze_documentation")
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "language", Value: "cobol", Message: "unsupported language"}

	assert.True(t, errors.Is(err, ErrConfig))
	assert.Contains(t, err.Error(), "for language")
	assert.Contains(t, err.Error(), "cobol")
}

func TestErrorChaining(t *testing.T) {
	inner := fmt.Errorf("dial tcp: %w", errors.New("timeout"))
	fetchErr := &FetchError{URL: "https://example.com", Cause: inner}
	wrapped := fmt.Errorf("loading document: %w", fetchErr)

	assert.True(t, errors.Is(wrapped, ErrFetchFailed))

	var fe *FetchError
	require.True(t, errors.As(wrapped, &fe))
	assert.Equal(t, "https://example.com", fe.URL)
}
