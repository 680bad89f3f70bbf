package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Getting Started

Welcome to the API guide.

## Installation

Run the installer.

` + "```bash\nnpm install acme\n```" + `

## Usage: Advanced Topics!

Call the client.

` + "```\nplain snippet\n```" + `

### Configuration

| key | value |
|-----|-------|
`

func TestSplitSections(t *testing.T) {
	doc := Split(sampleDoc)
	require.Len(t, doc.Sections, 4)

	assert.Equal(t, "Getting Started", doc.Sections[0].Title)
	assert.Equal(t, 1, doc.Sections[0].Level)
	assert.Equal(t, "Welcome to the API guide.", doc.Sections[0].Content)

	assert.Equal(t, "Installation", doc.Sections[1].Title)
	assert.Equal(t, 2, doc.Sections[1].Level)
	assert.Contains(t, doc.Sections[1].Content, "Run the installer.")

	assert.Equal(t, "Configuration", doc.Sections[3].Title)
	assert.Equal(t, 3, doc.Sections[3].Level)
}

func TestPreHeadingContentNotASection(t *testing.T) {
	doc := Split("intro line\n\n# First\n\nbody")
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "First", doc.Sections[0].Title)
	assert.Equal(t, "body", doc.Sections[0].Content)
	// The preamble still feeds metadata.
	assert.Equal(t, "intro line", doc.Metadata.Description)
}

func TestCodeBlocks(t *testing.T) {
	doc := Split(sampleDoc)
	require.Len(t, doc.CodeBlocks, 2)
	assert.Equal(t, "bash", doc.CodeBlocks[0].Language)
	assert.Equal(t, "npm install acme", doc.CodeBlocks[0].Code)
	assert.Equal(t, "text", doc.CodeBlocks[1].Language)
	assert.Equal(t, "plain snippet", doc.CodeBlocks[1].Code)
}

func TestHeadings(t *testing.T) {
	doc := Split(sampleDoc)
	require.Len(t, doc.Headings, 4)
	assert.Equal(t, Heading{Level: 1, Text: "Getting Started", Slug: "getting-started"}, doc.Headings[0])
	assert.Equal(t, "usage-advanced-topics", doc.Headings[2].Slug)
}

func TestMetadata(t *testing.T) {
	doc := Split(sampleDoc)
	assert.Equal(t, "Getting Started", doc.Metadata.Title)
	assert.Equal(t, "Welcome to the API guide.", doc.Metadata.Description)
	assert.True(t, doc.Metadata.HasCode)
	assert.True(t, doc.Metadata.HasTables)
	assert.Greater(t, doc.Metadata.LineCount, 10)
}

func TestMetadataNoHeadings(t *testing.T) {
	doc := Split("just a paragraph\nanother line")
	assert.Empty(t, doc.Metadata.Title)
	assert.Equal(t, "just a paragraph", doc.Metadata.Description)
	assert.Empty(t, doc.Sections)
	assert.False(t, doc.Metadata.HasCode)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"Usage: Advanced Topics!", "usage-advanced-topics"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Déjà Vu", "deja-vu"},
		{"API v2.0 (beta)", "api-v20-beta"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSevenHashesIsNotAHeading(t *testing.T) {
	doc := Split("####### Too Deep\n\n###### Just Right")
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, 6, doc.Headings[0].Level)
}
