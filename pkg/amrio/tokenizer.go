package amrio

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokLParen tokenKind = iota
	tokRParen
	tokSlash
	tokRole
	tokString
	tokAtom
)

type token struct {
	kind tokenKind
	text string
}

// tokenize splits a penman-subset block into tokens: parens, the instance
// separator '/', ':role' labels, double-quoted string literals, and bare
// atoms (variables, concepts, and unquoted literals like numbers or '-').
func tokenize(block string) ([]token, error) {
	var toks []token
	r := []rune(block)
	i, n := 0, len(r)

	for i < n {
		c := r[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen})
			i++
		case c == '/':
			toks = append(toks, token{kind: tokSlash})
			i++
		case c == ':':
			j := i + 1
			for j < n && !isBoundary(r[j]) {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("%w: empty role at offset %d", ErrUnexpectedToken, i)
			}
			toks = append(toks, token{kind: tokRole, text: string(r[i+1 : j])})
			i = j
		case c == '"':
			j := i + 1
			var sb strings.Builder
			closed := false
			for j < n {
				if r[j] == '\\' && j+1 < n {
					sb.WriteRune(r[j+1])
					j += 2
					continue
				}
				if r[j] == '"' {
					closed = true
					j++
					break
				}
				sb.WriteRune(r[j])
				j++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated string at offset %d", ErrUnexpectedToken, i)
			}
			toks = append(toks, token{kind: tokString, text: sb.String()})
			i = j
		default:
			j := i
			for j < n && !isBoundary(r[j]) {
				j++
			}
			toks = append(toks, token{kind: tokAtom, text: string(r[i:j])})
			i = j
		}
	}

	return toks, nil
}

func isBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '(', ')', '/', ':':
		return true
	default:
		return false
	}
}
