package style

import (
	"fmt"
	"sync"
)

// Rule pairs a selector with the fragment values it sets
type Rule struct {
	Name     string // optional; file-loaded rules carry their entry name
	Selector Selector
	Set      Setter
}

// DescendantDep records one descendant relation present in the sheet:
// entities matching Ancestor influence the resolution of entities
// matching Child. The invalidation pass walks these entries instead of
// re-scanning every rule.
type DescendantDep struct {
	Ancestor Selector
	Child    Selector
}

// Sheet is the process-wide rule collection: declaration-ordered rules,
// a class-name fast-path index, a descendant reverse-dependency index,
// and a revision counter bumped on every mutation.
//
// Single writer at a time. Reads take the shared lock so the hot-reload
// path can hand replacements through the event queue without tearing a
// resolution pass in half.
type Sheet struct {
	mu          sync.RWMutex
	rules       []Rule
	kindRules   []int            // indices of top-level kind rules, declaration order
	classRules  map[string][]int // class name -> rule indices, declaration order
	comboRules  []int            // combined and pseudo rules, declaration order
	descendants []DescendantDep
	revision    uint64
}

// NewSheet creates an empty stylesheet at revision zero
func NewSheet() *Sheet {
	return &Sheet{
		classRules: make(map[string][]int),
	}
}

// AddRule validates and appends one rule, bumping the revision
func (s *Sheet) AddRule(r Rule) error {
	if err := r.Selector.Validate(); err != nil {
		if r.Name != "" {
			return fmt.Errorf("rule %q: %w", r.Name, err)
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, r)
	s.indexRule(len(s.rules) - 1)
	s.revision++
	return nil
}

// DefineClass appends a class fast-path rule: every entity listing name
// in its class list receives set
func (s *Sheet) DefineClass(name string, set Setter) error {
	return s.AddRule(Rule{Name: name, Selector: ByClass(name), Set: set})
}

// ReplaceAll swaps the entire rule set, as a hot reload does. All rules
// are validated before any mutation so a malformed batch leaves the
// sheet untouched.
func (s *Sheet) ReplaceAll(rules []Rule) error {
	for i, r := range rules {
		if err := r.Selector.Validate(); err != nil {
			if r.Name != "" {
				return fmt.Errorf("rule %q: %w", r.Name, err)
			}
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = make([]Rule, len(rules))
	copy(s.rules, rules)
	s.kindRules = s.kindRules[:0]
	s.comboRules = s.comboRules[:0]
	s.classRules = make(map[string][]int)
	s.descendants = s.descendants[:0]
	for i := range s.rules {
		s.indexRule(i)
	}
	s.revision++
	return nil
}

// indexRule files rule i into the precedence buckets and the descendant
// index. Caller holds the write lock.
func (s *Sheet) indexRule(i int) {
	sel := s.rules[i].Selector
	if _, ok := sel.kindKey(); ok {
		s.kindRules = append(s.kindRules, i)
	} else if name, ok := sel.classKey(); ok {
		s.classRules[name] = append(s.classRules[name], i)
	} else {
		s.comboRules = append(s.comboRules, i)
	}
	sel.visitDescendants(func(anc, child Selector) {
		s.descendants = append(s.descendants, DescendantDep{Ancestor: anc, Child: child})
	})
}

// Revision returns the current mutation counter. Any change to the rule
// set bumps it; observers compare against their last-seen value to
// detect sheet-level invalidation.
func (s *Sheet) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// RuleCount returns the number of rules currently in the sheet
func (s *Sheet) RuleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// DescendantDeps returns a copy of the descendant reverse-dependency
// index for the invalidation walk
func (s *Sheet) DescendantDeps() []DescendantDep {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DescendantDep, len(s.descendants))
	copy(out, s.descendants)
	return out
}

// HasDescendants reports whether any rule carries a descendant relation,
// letting the invalidation pass skip the walk entirely on plain sheets
func (s *Sheet) HasDescendants() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.descendants) > 0
}
