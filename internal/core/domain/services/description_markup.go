package services

import (
	"html"
	"strings"
)

// Token is one segment of a parsed product description: either plain text
// (Link empty) or a link with its display text.
type Token struct {
	Text string
	Link string
}

// DescriptionMarkup parses the [text](url) link syntax product
// descriptions may carry. Descriptions are customer-supplied and must be
// treated as attacker-controlled: the parser produces structured tokens
// and RenderHTML escapes every one of them on output. There is no
// unescaped rendering path.
type DescriptionMarkup struct{}

// NewDescriptionMarkup creates the markup service.
func NewDescriptionMarkup() DescriptionMarkup {
	return DescriptionMarkup{}
}

// Parse splits a description into text and link tokens.
//
// A link is a "[text](url)" span with no nesting; the closing paren ends
// the url. Anything malformed (unclosed bracket, missing "(", unclosed
// paren) is kept verbatim as plain text rather than dropped, so no
// customer content silently disappears.
func (DescriptionMarkup) Parse(description string) []Token {
	var tokens []Token
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			tokens = append(tokens, Token{Text: plain.String()})
			plain.Reset()
		}
	}

	rest := description
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			plain.WriteString(rest)
			break
		}

		closeBracket := strings.IndexByte(rest[open:], ']')
		if closeBracket < 0 {
			plain.WriteString(rest)
			break
		}
		closeBracket += open

		if closeBracket+1 >= len(rest) || rest[closeBracket+1] != '(' {
			// "[text]" without "(url)" is plain text
			plain.WriteString(rest[:closeBracket+1])
			rest = rest[closeBracket+1:]
			continue
		}

		closeParen := strings.IndexByte(rest[closeBracket+2:], ')')
		if closeParen < 0 {
			plain.WriteString(rest)
			break
		}
		closeParen += closeBracket + 2

		plain.WriteString(rest[:open])
		flush()
		tokens = append(tokens, Token{
			Text: rest[open+1 : closeBracket],
			Link: rest[closeBracket+2 : closeParen],
		})
		rest = rest[closeParen+1:]
	}
	flush()

	return tokens
}

// RenderHTML renders tokens as an HTML fragment. Text and link values are
// escaped; link values additionally go through attribute escaping via
// html.EscapeString, which covers quotes.
func (m DescriptionMarkup) RenderHTML(description string) string {
	var b strings.Builder
	for _, token := range m.Parse(description) {
		if token.Link == "" {
			b.WriteString(html.EscapeString(token.Text))
			continue
		}
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(token.Link))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(token.Text))
		b.WriteString(`</a>`)
	}
	return b.String()
}
