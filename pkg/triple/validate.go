package triple

import "fmt"

// Validate checks the structural invariants a parsed Graph must satisfy
// before it can be renamed and compared: at least one instance triple,
// at least one root ("top") attribute, and no dangling node references.
// A graph carrying more than one "top" attribute is not rejected.
func (g Graph) Validate() error {
	if len(g.Instances) == 0 {
		return ErrEmptyBlock
	}

	known := make(map[string]bool, len(g.Instances))
	for _, inst := range g.Instances {
		known[inst.Node] = true
	}

	roots := 0
	for _, a := range g.Attributes {
		if !known[a.Node] {
			return fmt.Errorf("%w: attribute %q references node %q", ErrDanglingNode, a.Relation, a.Node)
		}
		if a.Relation == "top" {
			roots++
		}
	}
	if roots == 0 {
		return ErrNoRoot
	}

	for _, r := range g.Relations {
		if !known[r.Src] {
			return fmt.Errorf("%w: relation %q references node %q", ErrDanglingNode, r.Label, r.Src)
		}
		if !known[r.Dst] {
			return fmt.Errorf("%w: relation %q references node %q", ErrDanglingNode, r.Label, r.Dst)
		}
	}

	return nil
}
