// Package asset builds script tags for JavaScript sources, resolving local names to paths under a root such as
// "/javascripts" and leaving absolute URIs alone.
package asset

import (
	"maps"
	"regexp"
	"strings"

	"github.com/swdunlop/tagkit-go"
)

// Default is the Composer used by the package level functions.
var Default = New()

// New constructs a Composer, applying the provided options.  By default, local sources resolve to
// "/javascripts/{name}.js".
func New(options ...Option) *Composer {
	c := &Composer{root: `/javascripts`, ext: `.js`}
	for _, option := range options {
		option(c)
	}
	return c
}

// Root sets the path that local sources are resolved under.  A trailing slash is ignored.
func Root(path string) Option {
	return func(c *Composer) { c.root = strings.TrimSuffix(path, `/`) }
}

// Extension sets the suffix appended to local sources, ".js" by default.
func Extension(ext string) Option {
	return func(c *Composer) { c.ext = ext }
}

// An Option affects the configuration of a Composer.
type Option func(*Composer)

// A Composer turns JavaScript source names into script tags.  It is safe for concurrent use.
type Composer struct {
	root string
	ext  string
}

// JavascriptIncludeTag returns a script tag for each source, separated by newlines.  The attrs are added to every tag
// and replace the default type and src attributes.
//
//	JavascriptIncludeTag([]string{`app`}, nil)
//	// <script src="/javascripts/app.js" type="text/javascript"></script>
func (c *Composer) JavascriptIncludeTag(sources []string, attrs html.Attrs) html.HTML {
	tags := make([]html.Element, len(sources))
	for i, source := range sources {
		tags[i] = c.JavascriptSrcTag(source, attrs)
	}
	return html.Join("\n", tags...)
}

// JavascriptSrcTag returns an empty script tag with a src resolved by JavascriptPath.
func (c *Composer) JavascriptSrcTag(source string, attrs html.Attrs) html.HTML {
	merged := html.Attrs{`type`: `text/javascript`, `src`: c.JavascriptPath(source)}
	maps.Copy(merged, attrs)
	return html.BlockTag(`script`, html.Text(``), merged, true)
}

// JavascriptPath returns source unchanged if it is a URI, otherwise a path under the root with the extension.
func (c *Composer) JavascriptPath(source string) string {
	if IsURI(source) {
		return source
	}
	return c.root + `/` + source + c.ext
}

// IsURI reports if path starts with a scheme like "https://" or is a "cid:" reference.
func IsURI(path string) bool {
	return rxURI.MatchString(path)
}

// rxURI matches lowercase schemes only; "HTTP://x" is treated as a local name.
var rxURI = regexp.MustCompile(`^[-a-z]+://|^cid:`)

// JavascriptIncludeTag calls Default.JavascriptIncludeTag.
func JavascriptIncludeTag(sources []string, attrs html.Attrs) html.HTML {
	return Default.JavascriptIncludeTag(sources, attrs)
}

// JavascriptSrcTag calls Default.JavascriptSrcTag.
func JavascriptSrcTag(source string, attrs html.Attrs) html.HTML {
	return Default.JavascriptSrcTag(source, attrs)
}

// JavascriptPath calls Default.JavascriptPath.
func JavascriptPath(source string) string {
	return Default.JavascriptPath(source)
}
