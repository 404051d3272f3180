package similarity

import (
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var stripPolicy = bluemonday.StripTagsPolicy()

// CleanLiteral strips markup and normalizes whitespace in a "top" attribute
// literal before it is treated as a concept for similarity comparison.
// AMR literals may legally carry quoted or HTML-ish content that a parser
// left unescaped; instance/concept labels never do, so this runs only on
// attribute literals, not the instance-triple hot path.
func CleanLiteral(s string) string {
	s = stripTagsWithSpaces(s)
	return collapseWhitespace(s)
}

func stripTagsWithSpaces(s string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			t := string(tokenizer.Text())
			if strings.TrimSpace(t) != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return stripPolicy.Sanitize(s)
	}
	return cleaned
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
		} else {
			b.WriteRune(r)
			inSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}
