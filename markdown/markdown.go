// Package markdown splits raw documentation text into a flat structural
// model: sections keyed by ATX heading, fenced code blocks, a heading list
// for a table of contents, and document metadata.
//
// The splitter is regular-expression based. Sections form a flat ordered
// list even though headings carry levels; no nesting hierarchy is built.
// Lines preceding the first heading are not captured as a section, though
// document metadata still draws on them.
package markdown

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	fenceRe   = regexp.MustCompile("(?s)```(\\w*)\n(.*?)```")
	nonWordRe = regexp.MustCompile(`[^\w\s-]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Section is one heading-delimited region of the document.
type Section struct {
	Title   string `json:"title"`
	Level   int    `json:"level"`
	Content string `json:"content"`
}

// CodeBlock is one fenced code region.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Heading is one table-of-contents entry.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Slug  string `json:"slug"`
}

// Metadata carries document-level descriptive fields.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	HasCode     bool   `json:"has_code"`
	HasTables   bool   `json:"has_tables"`
	LineCount   int    `json:"line_count"`
}

// Document is the full structural model of a markdown source.
type Document struct {
	Sections   []Section   `json:"sections"`
	CodeBlocks []CodeBlock `json:"code_blocks"`
	Headings   []Heading   `json:"headings"`
	Metadata   Metadata    `json:"metadata"`
	Raw        string      `json:"-"`
}

// Split parses markdown text into its structural model.
func Split(text string) *Document {
	return &Document{
		Sections:   splitSections(text),
		CodeBlocks: extractCodeBlocks(text),
		Headings:   extractHeadings(text),
		Metadata:   extractMetadata(text),
		Raw:        text,
	}
}

// splitSections walks lines in order, starting a new section at each ATX
// heading and accumulating body lines until the next heading or the end of
// input. Lines before the first heading belong to no section.
func splitSections(text string) []Section {
	sections := make([]Section, 0)
	var current *Section
	var body []string

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(strings.Join(body, "\n"))
			sections = append(sections, *current)
		}
		body = body[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &Section{
				Title: strings.TrimSpace(m[2]),
				Level: len(m[1]),
			}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()
	return sections
}

// extractCodeBlocks finds triple-backtick fenced regions. A missing
// language tag defaults to "text".
func extractCodeBlocks(text string) []CodeBlock {
	blocks := make([]CodeBlock, 0)
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		lang := m[1]
		if lang == "" {
			lang = "text"
		}
		blocks = append(blocks, CodeBlock{
			Language: lang,
			Code:     strings.TrimSpace(m[2]),
		})
	}
	return blocks
}

// extractHeadings builds the flat table-of-contents list.
func extractHeadings(text string) []Heading {
	headings := make([]Heading, 0)
	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[2])
			headings = append(headings, Heading{
				Level: len(m[1]),
				Text:  title,
				Slug:  Slugify(title),
			})
		}
	}
	return headings
}

// extractMetadata reads the document title from the first level-one
// heading and the description from the first non-heading non-blank line.
func extractMetadata(text string) Metadata {
	lines := strings.Split(text, "\n")
	meta := Metadata{
		HasCode:   strings.Contains(text, "```"),
		HasTables: strings.Contains(text, "|"),
		LineCount: len(lines),
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if meta.Title == "" && strings.HasPrefix(trimmed, "# ") {
				meta.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
			}
			continue
		}
		if meta.Description == "" {
			meta.Description = trimmed
		}
		if meta.Title != "" && meta.Description != "" {
			break
		}
	}
	return meta
}

// Slugify turns a heading into a URL-safe anchor: accents are folded away,
// the text is lowercased, punctuation is stripped, and whitespace runs
// collapse to single hyphens.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = nonWordRe.ReplaceAllString(folded, "")
	folded = strings.TrimSpace(folded)
	return spaceRe.ReplaceAllString(folded, "-")
}
