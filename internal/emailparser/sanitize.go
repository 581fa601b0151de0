package emailparser

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlMarkers are the openings that flag pasted input as HTML rather than
// plain text. Checked case-insensitively.
var htmlMarkers = []string{"<html", "<body", "<div", "<p>", "<p ", "<br", "<table", "<!doctype"}

func looksLikeHTML(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range htmlMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// blockTags are elements whose boundaries become newlines in the stripped
// text, so that block splitting still sees one logical line per row.
var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true,
	"table": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true,
}

// stripHTML converts HTML to plain text using the tolerant x/net/html
// tokenizer: text nodes are kept (entities decoded), script and style
// contents dropped, block element boundaries turned into newlines.
// Malformed markup never fails; the tokenizer recovers and emits what it
// can.
func stripHTML(input string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var sb strings.Builder
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skipDepth++
				}
				continue
			}
			if blockTags[tag] {
				sb.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blockTags[tag] {
				sb.WriteByte('\n')
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
			}
		}
	}
}
