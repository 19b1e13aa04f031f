package catalog

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// md renders room and video descriptions. Descriptions are authored as
// markdown in the document; equipment manuals occasionally include
// fenced code blocks, hence the highlighting extension.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// RenderDescription converts a markdown description to HTML for the
// API. An empty description renders empty.
func RenderDescription(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		// Fall back to the raw text escaped; conversion errors are
		// not worth failing a render over.
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
