package style

import "fmt"

// PseudoState is a transient boolean interaction flag affecting style
// resolution without being part of persistent entity identity
type PseudoState uint8

const (
	PseudoHovered PseudoState = iota
	PseudoPressed
)

// String returns the stylesheet spelling of the pseudo state
func (p PseudoState) String() string {
	switch p {
	case PseudoHovered:
		return "hovered"
	case PseudoPressed:
		return "pressed"
	default:
		return fmt.Sprintf("pseudo(%d)", uint8(p))
	}
}

// ParsePseudoState maps stylesheet text to a pseudo state flag
func ParsePseudoState(s string) (PseudoState, error) {
	switch s {
	case "hovered":
		return PseudoHovered, nil
	case "pressed":
		return PseudoPressed, nil
	default:
		return 0, fmt.Errorf("unknown pseudo state %q", s)
	}
}

// selectorOp discriminates the closed selector variant set
type selectorOp uint8

const (
	opNone selectorOp = iota
	opKind
	opClass
	opPseudo
	opAnd
	opDescendant
)

// Selector is a closed matching predicate evaluated against an entity's
// fact chain. The variant set is fixed, so matching is a pure function
// with no dynamic dispatch: kind tag, class membership, pseudo flag, the
// conjunction of two selectors, or a descendant relation.
type Selector struct {
	op     selectorOp
	kind   string
	class  string
	pseudo PseudoState
	left   *Selector // And: first operand; Descendant: ancestor predicate
	right  *Selector // And: second operand; Descendant: child predicate
}

// ByKind matches entities carrying the given widget kind tag
func ByKind(kind string) Selector {
	return Selector{op: opKind, kind: kind}
}

// ByClass matches entities whose class list contains name
func ByClass(name string) Selector {
	return Selector{op: opClass, class: name}
}

// ByPseudo matches entities with the given interaction flag up
func ByPseudo(state PseudoState) Selector {
	return Selector{op: opPseudo, pseudo: state}
}

// And matches entities satisfying both operands
func And(a, b Selector) Selector {
	l, r := a, b
	return Selector{op: opAnd, left: &l, right: &r}
}

// Descendant matches entities satisfying child that have at least one
// ancestor satisfying ancestor
func Descendant(ancestor, child Selector) Selector {
	l, r := ancestor, child
	return Selector{op: opDescendant, left: &l, right: &r}
}

// Facts is one entity's style-relevant state. A fact chain lists the
// entity's own facts first, then each ancestor's facts walking root-ward.
type Facts struct {
	Kind    string
	Classes []string
	Hovered bool
	Pressed bool
}

// HasClass reports class membership
func (f Facts) HasClass(name string) bool {
	for _, c := range f.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Matches evaluates the selector against a fact chain (entity first,
// ancestors after). Unknown kinds or pseudo states never match; a miss
// is not an error.
func (s Selector) Matches(chain []Facts) bool {
	if len(chain) == 0 {
		return false
	}
	self := chain[0]
	switch s.op {
	case opKind:
		return s.kind != "" && self.Kind == s.kind
	case opClass:
		return s.class != "" && self.HasClass(s.class)
	case opPseudo:
		switch s.pseudo {
		case PseudoHovered:
			return self.Hovered
		case PseudoPressed:
			return self.Pressed
		default:
			return false
		}
	case opAnd:
		return s.left.Matches(chain) && s.right.Matches(chain)
	case opDescendant:
		if !s.right.Matches(chain) {
			return false
		}
		for i := 1; i < len(chain); i++ {
			if s.left.Matches(chain[i:]) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Validate rejects selectors that can never match anything: empty kind
// or class names, unknown pseudo values, and the zero Selector
func (s Selector) Validate() error {
	switch s.op {
	case opKind:
		if s.kind == "" {
			return fmt.Errorf("kind selector: empty kind")
		}
	case opClass:
		if s.class == "" {
			return fmt.Errorf("class selector: empty class name")
		}
	case opPseudo:
		if s.pseudo != PseudoHovered && s.pseudo != PseudoPressed {
			return fmt.Errorf("pseudo selector: unknown state %d", uint8(s.pseudo))
		}
	case opAnd, opDescendant:
		if err := s.left.Validate(); err != nil {
			return err
		}
		if err := s.right.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("empty selector")
	}
	return nil
}

// String renders a compact diagnostic form of the selector
func (s Selector) String() string {
	switch s.op {
	case opKind:
		return "kind:" + s.kind
	case opClass:
		return "class:" + s.class
	case opPseudo:
		return "pseudo:" + s.pseudo.String()
	case opAnd:
		return "(" + s.left.String() + " & " + s.right.String() + ")"
	case opDescendant:
		return "(" + s.left.String() + " >> " + s.right.String() + ")"
	default:
		return "<empty>"
	}
}

// classKey returns the class name for top-level class selectors, which
// the sheet indexes on its fast path
func (s Selector) classKey() (string, bool) {
	if s.op == opClass {
		return s.class, true
	}
	return "", false
}

// kindKey returns the kind tag for top-level kind selectors
func (s Selector) kindKey() (string, bool) {
	if s.op == opKind {
		return s.kind, true
	}
	return "", false
}

// visitDescendants invokes fn for every descendant relation inside the
// selector tree, however deeply nested
func (s Selector) visitDescendants(fn func(ancestor, child Selector)) {
	switch s.op {
	case opAnd:
		s.left.visitDescendants(fn)
		s.right.visitDescendants(fn)
	case opDescendant:
		fn(*s.left, *s.right)
		s.left.visitDescendants(fn)
		s.right.visitDescendants(fn)
	}
}
