package style

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cascade/core"
)

// Stylesheet file format (TOML). Two top-level shapes:
//
//	[class."demo.button"]        # fast-path class rule, fields inline
//	bg = "#2563EB"
//	hover_bg = "#1D4ED8"
//	transition = 0.15
//
//	[[rule]]                     # arbitrary selector rule
//	name = "dark-button-hover"
//	kind = "button"              # optional kind predicate
//	classes = ["theme.dark"]     # optional class predicates, all required
//	pseudo = "hovered"           # optional pseudo predicate
//	within = ["app.root"]        # optional ancestor class predicates
//	[rule.set]
//	bg = "#111827"
//
// All selector fields of a [[rule]] are conjoined; at least one must be
// present. Colors are "#RRGGBB" or "#RRGGBBAA"; transition is seconds.

// ValidationError represents a single invalid stylesheet field
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors, reported together
// so an author sees every problem in one pass
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

type sheetFile struct {
	Class map[string]setterSpec `toml:"class"`
	Rule  []ruleSpec            `toml:"rule"`
}

type ruleSpec struct {
	Name    string     `toml:"name"`
	Kind    string     `toml:"kind"`
	Classes []string   `toml:"classes"`
	Pseudo  string     `toml:"pseudo"`
	Within  []string   `toml:"within"`
	Set     setterSpec `toml:"set"`
}

type setterSpec struct {
	Padding      *float64 `toml:"padding"`
	Gap          *float64 `toml:"gap"`
	CornerRadius *float64 `toml:"corner_radius"`
	BorderWidth  *float64 `toml:"border_width"`
	TextSize     *float64 `toml:"text_size"`

	Bg            *string `toml:"bg"`
	Text          *string `toml:"text"`
	Border        *string `toml:"border"`
	HoverBg       *string `toml:"hover_bg"`
	HoverText     *string `toml:"hover_text"`
	HoverBorder   *string `toml:"hover_border"`
	PressedBg     *string `toml:"pressed_bg"`
	PressedText   *string `toml:"pressed_text"`
	PressedBorder *string `toml:"pressed_border"`

	ShadowColor  *string   `toml:"shadow_color"`
	ShadowOffset []float64 `toml:"shadow_offset"`
	ShadowBlur   *float64  `toml:"shadow_blur"`

	Transition *float64 `toml:"transition"`
}

// LoadFile reads, parses, and validates a stylesheet from disk.
// Any failure is returned in full; the caller decides whether to fail
// startup or keep a previous sheet.
func LoadFile(path string) ([]Rule, error) {
	var f sheetFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	rules, err := buildRules(f)
	if err != nil {
		return nil, fmt.Errorf("stylesheet %s: %w", path, err)
	}
	return rules, nil
}

// Parse reads a stylesheet from TOML source text
func Parse(src string) ([]Rule, error) {
	var f sheetFile
	if _, err := toml.Decode(src, &f); err != nil {
		return nil, fmt.Errorf("stylesheet: %w", err)
	}
	return buildRules(f)
}

// buildRules converts the decoded file into validated rules. Class table
// entries come first in name order (order between distinct classes never
// affects resolution; sorting keeps the slice deterministic), then
// [[rule]] entries in declaration order.
func buildRules(f sheetFile) ([]Rule, error) {
	var errs ValidateErrors
	var rules []Rule

	names := make([]string, 0, len(f.Class))
	for name := range f.Class {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		entry := fmt.Sprintf("class.%q", name)
		if name == "" {
			errs = append(errs, ValidationError{Field: entry, Message: "empty class name"})
			continue
		}
		set, setErrs := buildSetter(entry, f.Class[name])
		errs = append(errs, setErrs...)
		rules = append(rules, Rule{Name: name, Selector: ByClass(name), Set: set})
	}

	for i, spec := range f.Rule {
		entry := fmt.Sprintf("rule[%d]", i)
		if spec.Name != "" {
			entry = fmt.Sprintf("rule[%d] %q", i, spec.Name)
		}

		sel, ok := buildSelector(entry, spec, &errs)
		set, setErrs := buildSetter(entry+".set", spec.Set)
		errs = append(errs, setErrs...)
		if !ok {
			continue
		}
		rules = append(rules, Rule{Name: spec.Name, Selector: sel, Set: set})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rules, nil
}

// buildSelector conjoins the predicate fields of one [[rule]] entry
func buildSelector(entry string, spec ruleSpec, errs *ValidateErrors) (Selector, bool) {
	var parts []Selector

	if spec.Kind != "" {
		parts = append(parts, ByKind(spec.Kind))
	}
	for _, class := range spec.Classes {
		if class == "" {
			*errs = append(*errs, ValidationError{Field: entry + ".classes", Message: "empty class name"})
			return Selector{}, false
		}
		parts = append(parts, ByClass(class))
	}
	if spec.Pseudo != "" {
		state, err := ParsePseudoState(spec.Pseudo)
		if err != nil {
			*errs = append(*errs, ValidationError{Field: entry + ".pseudo", Message: err.Error()})
			return Selector{}, false
		}
		parts = append(parts, ByPseudo(state))
	}

	if len(parts) == 0 {
		msg := "selector needs at least one of kind, classes, pseudo, within"
		if len(spec.Within) > 0 {
			msg = "within requires a predicate on the entity itself (kind, classes, or pseudo)"
		}
		*errs = append(*errs, ValidationError{Field: entry, Message: msg})
		return Selector{}, false
	}

	sel := parts[0]
	for _, p := range parts[1:] {
		sel = And(sel, p)
	}

	for _, anc := range spec.Within {
		if anc == "" {
			*errs = append(*errs, ValidationError{Field: entry + ".within", Message: "empty ancestor class name"})
			return Selector{}, false
		}
		sel = Descendant(ByClass(anc), sel)
	}
	return sel, true
}

// buildSetter converts one setter block, validating colors and ranges
func buildSetter(entry string, spec setterSpec) (Setter, ValidateErrors) {
	var errs ValidateErrors
	var set Setter

	field := func(name string) string { return entry + "." + name }

	nonNegative := func(name string, v *float64) *float64 {
		if v == nil {
			return nil
		}
		if *v < 0 {
			errs = append(errs, ValidationError{Field: field(name), Message: fmt.Sprintf("must be >= 0, got %v", *v)})
			return nil
		}
		return v
	}
	color := func(name string, v *string) *core.RGBA {
		if v == nil {
			return nil
		}
		c, err := core.ParseHex(*v)
		if err != nil {
			errs = append(errs, ValidationError{Field: field(name), Message: err.Error()})
			return nil
		}
		return &c
	}

	set.Layout.Padding = nonNegative("padding", spec.Padding)
	set.Layout.Gap = nonNegative("gap", spec.Gap)
	set.Layout.CornerRadius = nonNegative("corner_radius", spec.CornerRadius)
	set.Layout.BorderWidth = nonNegative("border_width", spec.BorderWidth)
	set.Text.Size = nonNegative("text_size", spec.TextSize)

	set.Colors.Bg = color("bg", spec.Bg)
	set.Colors.Text = color("text", spec.Text)
	set.Colors.Border = color("border", spec.Border)
	set.Colors.HoverBg = color("hover_bg", spec.HoverBg)
	set.Colors.HoverText = color("hover_text", spec.HoverText)
	set.Colors.HoverBorder = color("hover_border", spec.HoverBorder)
	set.Colors.PressedBg = color("pressed_bg", spec.PressedBg)
	set.Colors.PressedText = color("pressed_text", spec.PressedText)
	set.Colors.PressedBorder = color("pressed_border", spec.PressedBorder)

	set.Shadow.Color = color("shadow_color", spec.ShadowColor)
	set.Shadow.Blur = nonNegative("shadow_blur", spec.ShadowBlur)
	if spec.ShadowOffset != nil {
		if len(spec.ShadowOffset) != 2 {
			errs = append(errs, ValidationError{Field: field("shadow_offset"), Message: fmt.Sprintf("needs exactly [x, y], got %d values", len(spec.ShadowOffset))})
		} else {
			set.Shadow.OffsetX = Float(spec.ShadowOffset[0])
			set.Shadow.OffsetY = Float(spec.ShadowOffset[1])
		}
	}

	if spec.Transition != nil {
		if *spec.Transition < 0 {
			errs = append(errs, ValidationError{Field: field("transition"), Message: fmt.Sprintf("must be >= 0 seconds, got %v", *spec.Transition)})
		} else {
			set.Transition = Duration(time.Duration(*spec.Transition * float64(time.Second)))
		}
	}

	return set, errs
}
