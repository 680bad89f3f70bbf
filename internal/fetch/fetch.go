// Package fetch retrieves documentation content over HTTP. HTML pages are
// reduced to markdown-ish text so the structural splitter can work on
// them; everything else is returned verbatim.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/doclens/doclens"
	"github.com/doclens/doclens/docerrors"
	"github.com/doclens/doclens/normalizer"
)

const defaultTimeout = 30 * time.Second

// Fetcher retrieves documentation from URLs.
type Fetcher struct {
	// HTTPClient is the client used for requests. If nil, a default
	// client with a 30 second timeout is used.
	HTTPClient *http.Client

	// UserAgent is sent with every request. Defaults to the doclens
	// user agent string.
	UserAgent string

	// Logger receives fetch diagnostics. Defaults to NopLogger.
	Logger normalizer.Logger
}

// New returns a Fetcher with default settings.
func New() *Fetcher {
	return &Fetcher{}
}

func (f *Fetcher) client() *http.Client {
	if f.HTTPClient != nil {
		return f.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}

func (f *Fetcher) log() normalizer.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return normalizer.NopLogger{}
}

// Fetch retrieves the content at the given URL. GitHub blob URLs are
// rewritten to their raw form so the file body comes back instead of the
// viewer page. HTML responses are converted to markdown-ish text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	url := rewriteGitHubURL(rawURL)
	if url != rawURL {
		f.log().Debug("rewrote github blob url", "url", url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &docerrors.FetchError{
			URL:     rawURL,
			Message: "building request",
			Cause:   err,
		}
	}
	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = doclens.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client().Do(req)
	if err != nil {
		return "", &docerrors.FetchError{
			URL:     rawURL,
			Message: "request failed",
			Cause:   err,
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &docerrors.FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &docerrors.FetchError{
			URL:     rawURL,
			Message: "reading response body",
			Cause:   err,
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "text/html") {
		f.log().Debug("converting html response", "url", rawURL, "bytes", len(body))
		text, err := htmlToMarkdown(body)
		if err != nil {
			return "", &docerrors.FetchError{
				URL:     rawURL,
				Message: "parsing html content",
				Cause:   err,
			}
		}
		return text, nil
	}
	return string(body), nil
}

// rewriteGitHubURL maps a github.com blob view URL to the raw file URL.
func rewriteGitHubURL(url string) string {
	if strings.Contains(url, "github.com") && strings.Contains(url, "/blob/") {
		return strings.Replace(url, "/blob/", "/raw/", 1)
	}
	return url
}

// htmlToMarkdown reduces an HTML page to markdown-ish text: headings
// become # lines, pre blocks become fenced code, and paragraphs and
// lists become plain text. Content is taken from the page's main content
// region when one can be identified.
func htmlToMarkdown(data []byte) (string, error) {
	root, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return "", err
	}
	content := findMainContent(root)
	if content == nil {
		content = root
	}

	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1":
				parts = append(parts, "\n# "+nodeText(n)+"\n")
				return
			case "h2":
				parts = append(parts, "\n## "+nodeText(n)+"\n")
				return
			case "h3":
				parts = append(parts, "\n### "+nodeText(n)+"\n")
				return
			case "h4":
				parts = append(parts, "\n#### "+nodeText(n)+"\n")
				return
			case "pre":
				parts = append(parts, "\n```\n"+nodeText(n)+"\n```\n")
				return
			case "p", "ul", "ol":
				parts = append(parts, nodeText(n)+"\n")
				return
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(content)
	return strings.Join(parts, "\n"), nil
}

// findMainContent locates the page region most likely to hold the
// documentation body: article, main, a markdown-body div, a readme div,
// or finally the body element.
func findMainContent(root *html.Node) *html.Node {
	if n := findElement(root, func(n *html.Node) bool { return n.Data == "article" }); n != nil {
		return n
	}
	if n := findElement(root, func(n *html.Node) bool { return n.Data == "main" }); n != nil {
		return n
	}
	if n := findElement(root, func(n *html.Node) bool {
		return n.Data == "div" && hasAttr(n, "class", "markdown-body")
	}); n != nil {
		return n
	}
	if n := findElement(root, func(n *html.Node) bool {
		return n.Data == "div" && hasAttr(n, "id", "readme")
	}); n != nil {
		return n
	}
	return findElement(root, func(n *html.Node) bool { return n.Data == "body" })
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func hasAttr(n *html.Node, key, value string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			for _, v := range strings.Fields(attr.Val) {
				if v == value {
					return true
				}
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
