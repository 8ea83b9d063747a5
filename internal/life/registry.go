package life

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Registry maps names to patterns and rules.
type Registry struct {
	patterns map[string]*Pattern
	rules    map[string]Rule
}

// NewRegistry returns a registry holding the built-in catalogue.
func NewRegistry() *Registry {
	r := &Registry{
		patterns: make(map[string]*Pattern),
		rules:    make(map[string]Rule),
	}
	for _, src := range builtinCells {
		p, err := ParseCells(src)
		if err != nil {
			panic(fmt.Sprintf("builtin pattern: %v", err))
		}
		r.patterns[p.Name] = p
	}
	for name, spec := range builtinRules {
		r.rules[name] = MustParseRule(spec)
	}
	return r
}

// AddPattern registers p under its name, replacing any previous entry.
func (r *Registry) AddPattern(p *Pattern) {
	r.patterns[strings.ToLower(p.Name)] = p
}

func (r *Registry) Pattern(name string) (*Pattern, error) {
	p, ok := r.patterns[strings.ToLower(name)]
	if !ok {
		return nil, unknown("pattern", name, r.ListPatterns())
	}
	return p, nil
}

// Rule resolves a rule name or B/S notation.
func (r *Registry) Rule(name string) (Rule, error) {
	if rule, ok := r.rules[strings.ToLower(name)]; ok {
		return rule, nil
	}
	if strings.Contains(name, "/") {
		return ParseRule(name)
	}
	return Rule{}, unknown("rule", name, r.ListRules())
}

func (r *Registry) ListPatterns() []string {
	return sortedKeys(r.patterns)
}

func (r *Registry) ListRules() []string {
	return sortedKeys(r.rules)
}

// Suggest returns registered pattern names fuzzily matching query, best first.
func (r *Registry) Suggest(query string) []string {
	return suggest(query, r.ListPatterns())
}

func suggest(query string, names []string) []string {
	matches := fuzzy.Find(query, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}

func unknown(kind, name string, names []string) error {
	if s := suggest(name, names); len(s) > 0 {
		return fmt.Errorf("unknown %s: %s (did you mean %s?)", kind, name, s[0])
	}
	return fmt.Errorf("unknown %s: %s (available: %v)", kind, name, names)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
