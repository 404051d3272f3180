package amrio

import (
	"fmt"

	"github.com/s2match/s2match/pkg/triple"
)

// Options controls parser behavior.
type Options struct {
	// DoNotMarkQuotes is carried with the parser but Parse does not read
	// it: quoted literal values are always stored without their surrounding
	// quote characters, whatever its setting. The matching core never
	// inspects quoting either.
	DoNotMarkQuotes bool
}

// Parser turns a single penman-subset block into a triple.Graph.
type Parser struct {
	opts Options
}

// NewParser constructs a Parser with the given options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

type parseState struct {
	toks    []token
	pos     int
	opts    Options
	concept map[string]string // var -> concept label, in first-seen order via seen
	seen    []string
	attrs   []triple.Attribute
	rels    []triple.Relation
}

// Parse decomposes block's penman text into a triple.Graph. The returned
// graph carries original (un-renamed) variable names as node ids; callers
// must call Graph.Rename before using it with pkg/match.
func (p *Parser) Parse(block string) (triple.Graph, error) {
	toks, err := tokenize(block)
	if err != nil {
		return triple.Graph{}, err
	}
	if len(toks) == 0 {
		return triple.Graph{}, fmt.Errorf("%w: empty block", ErrUnexpectedToken)
	}

	st := &parseState{toks: toks, opts: p.opts, concept: map[string]string{}}

	rootVar, err := st.parseNode()
	if err != nil {
		return triple.Graph{}, err
	}
	if st.pos != len(st.toks) {
		return triple.Graph{}, fmt.Errorf("%w: trailing content after root node", ErrUnexpectedToken)
	}
	rootConcept, ok := st.concept[rootVar]
	if !ok {
		return triple.Graph{}, ErrNoRoot
	}

	instances := make([]triple.Instance, 0, len(st.seen))
	for _, v := range st.seen {
		instances = append(instances, triple.Instance{Node: v, Concept: st.concept[v]})
	}

	attributes := append([]triple.Attribute{{Relation: "top", Node: rootVar, Value: rootConcept}}, st.attrs...)

	g := triple.Graph{Instances: instances, Attributes: attributes, Relations: st.rels}
	if err := g.Validate(); err != nil {
		return triple.Graph{}, err
	}
	return g, nil
}

func (st *parseState) peek() (token, bool) {
	if st.pos >= len(st.toks) {
		return token{}, false
	}
	return st.toks[st.pos], true
}

func (st *parseState) next() (token, bool) {
	t, ok := st.peek()
	if ok {
		st.pos++
	}
	return t, ok
}

func (st *parseState) expect(kind tokenKind, what string) (token, error) {
	t, ok := st.next()
	if !ok || t.kind != kind {
		return token{}, fmt.Errorf("%w: expected %s at token %d", ErrUnexpectedToken, what, st.pos)
	}
	return t, nil
}

// parseNode consumes "( var / concept relpair* )" and returns the node's
// variable name. Nested nodes recursively populate st.attrs/st.rels/st.seen.
func (st *parseState) parseNode() (string, error) {
	if _, err := st.expect(tokLParen, "'('"); err != nil {
		return "", err
	}

	varTok, err := st.expect(tokAtom, "node variable")
	if err != nil {
		return "", err
	}
	v := varTok.text

	if _, err := st.expect(tokSlash, "'/'"); err != nil {
		return "", err
	}

	conceptTok, err := st.expect(tokAtom, "concept label")
	if err != nil {
		return "", err
	}
	if _, declared := st.concept[v]; !declared {
		st.seen = append(st.seen, v)
	}
	st.concept[v] = conceptTok.text

	for {
		t, ok := st.peek()
		if !ok {
			return "", fmt.Errorf("%w: node %q never closed", ErrUnterminated, v)
		}
		if t.kind == tokRParen {
			st.pos++
			return v, nil
		}
		roleTok, err := st.expect(tokRole, "':role'")
		if err != nil {
			return "", err
		}
		if err := st.parseRelation(v, roleTok.text); err != nil {
			return "", err
		}
	}
}

// parseRelation consumes one role's value, which is a nested node, a
// reentrant variable reference, or a literal.
func (st *parseState) parseRelation(fromVar, role string) error {
	t, ok := st.peek()
	if !ok {
		return fmt.Errorf("%w: role %q has no value", ErrUnexpectedToken, role)
	}

	switch t.kind {
	case tokLParen:
		dst, err := st.parseNode()
		if err != nil {
			return err
		}
		st.rels = append(st.rels, triple.Relation{Label: role, Src: fromVar, Dst: dst})
		return nil

	case tokString:
		st.pos++
		st.attrs = append(st.attrs, triple.Attribute{Relation: role, Node: fromVar, Value: t.text})
		return nil

	case tokAtom:
		st.pos++
		if _, isVar := st.concept[t.text]; isVar {
			st.rels = append(st.rels, triple.Relation{Label: role, Src: fromVar, Dst: t.text})
			return nil
		}
		st.attrs = append(st.attrs, triple.Attribute{Relation: role, Node: fromVar, Value: t.text})
		return nil

	default:
		return fmt.Errorf("%w: role %q followed by unexpected token", ErrUnexpectedToken, role)
	}
}
