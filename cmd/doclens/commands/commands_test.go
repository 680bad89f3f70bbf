package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("json format", func(t *testing.T) {
		assert.NoError(t, OutputStructured(data, FormatJSON))
	})

	t.Run("yaml format", func(t *testing.T) {
		assert.NoError(t, OutputStructured(data, FormatYAML))
	})

	t.Run("text is not structured", func(t *testing.T) {
		assert.Error(t, OutputStructured(data, FormatText))
	})
}

func TestReadInput(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		require.NoError(t, os.WriteFile(path, []byte("# Hello"), 0o644))

		data, err := readInput(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "# Hello", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readInput(context.Background(), filepath.Join(t.TempDir(), "missing.md"))
		assert.Error(t, err)
	})
}

const testSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Ping API", "version": "1.0.0"},
  "paths": {
    "/ping": {
      "get": {
        "summary": "Ping the server",
        "responses": {"200": {"description": "ok"}}
      }
    }
  }
}`

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(testSpec), 0o644))

	t.Run("text output", func(t *testing.T) {
		assert.NoError(t, Parse([]string{path}))
	})

	t.Run("json output", func(t *testing.T) {
		assert.NoError(t, Parse([]string{"--format", "json", path}))
	})

	t.Run("no arguments", func(t *testing.T) {
		assert.Error(t, Parse(nil))
	})

	t.Run("invalid format", func(t *testing.T) {
		assert.Error(t, Parse([]string{"--format", "xml", path}))
	})

	t.Run("invalid spec", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"info": {}}`), 0o644))
		assert.Error(t, Parse([]string{bad}))
	})
}

func TestAnalyze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	content := "# Guide\n\nIntro text.\n\n## Setup\n\n```bash\nmake install\n```\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("text output", func(t *testing.T) {
		assert.NoError(t, Analyze([]string{path}))
	})

	t.Run("yaml output", func(t *testing.T) {
		assert.NoError(t, Analyze([]string{"--format", "yaml", path}))
	})

	t.Run("no arguments", func(t *testing.T) {
		assert.Error(t, Analyze(nil))
	})

	t.Run("insights without key", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")
		err := Analyze([]string{"--insights", path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})
}

func TestSDK(t *testing.T) {
	t.Run("default language", func(t *testing.T) {
		assert.NoError(t, SDK([]string{"GET", "/ping"}))
	})

	t.Run("curl with auth and body", func(t *testing.T) {
		assert.NoError(t, SDK([]string{"--language", "curl", "--auth", "--body", "POST", "/users"}))
	})

	t.Run("unsupported language", func(t *testing.T) {
		assert.Error(t, SDK([]string{"--language", "cobol", "GET", "/ping"}))
	})

	t.Run("missing arguments", func(t *testing.T) {
		assert.Error(t, SDK([]string{"GET"}))
	})
}

func TestServe_RejectsArguments(t *testing.T) {
	assert.Error(t, Serve([]string{"extra"}))
}

func TestMCP_RejectsArguments(t *testing.T) {
	assert.Error(t, MCP([]string{"extra"}))
}
