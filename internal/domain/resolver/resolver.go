// Package resolver maps free-text backend messages to localized catalog
// entries.
//
// A raw message is normalized into a canonical key, looked up in an exact
// table, then tested against an ordered list of patterns. When nothing
// matches, the raw message is returned untouched. Resolution never fails.
package resolver

import (
	"regexp"
	"strings"

	"authmsg/internal/domain/messages"
)

// Catalog selects the localized text of a message for one locale.
type Catalog interface {
	Message(id messages.ID) string
}

// Rule is a partial-match rule tested against canonical keys.
type Rule struct {
	Pattern *regexp.Regexp
	Message messages.ID
}

// Resolver holds an exact table and an ordered rule list. It is immutable
// and safe for concurrent use.
type Resolver struct {
	exact   map[string]messages.ID
	partial []Rule
}

var defaultResolver = New(exactRules, partialRules)

// Default returns the resolver with the built-in auth, profile and common
// rules.
func Default() *Resolver {
	return defaultResolver
}

// New builds a Resolver. Exact keys are normalized, so they may be given in
// raw backend form. Keys that normalize to "" and rules without a pattern
// are ignored.
func New(exact map[string]messages.ID, partial []Rule) *Resolver {
	r := &Resolver{
		exact:   make(map[string]messages.ID, len(exact)),
		partial: make([]Rule, 0, len(partial)),
	}
	for key, id := range exact {
		if k := Normalize(key); k != "" {
			r.exact[k] = id
		}
	}
	for _, rule := range partial {
		if rule.Pattern != nil {
			r.partial = append(r.partial, rule)
		}
	}
	return r
}

// Rules returns a copy of the partial rules in evaluation order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.partial...)
}

// Match reports the message selected for raw, if any.
func (r *Resolver) Match(raw string) (messages.ID, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", false
	}
	key := Normalize(raw)
	if id, ok := r.exact[key]; ok {
		return id, true
	}
	for _, rule := range r.partial {
		if rule.Pattern.MatchString(key) {
			return rule.Message, true
		}
	}
	return "", false
}

// Lookup resolves raw against c and reports whether a rule matched. On a
// miss the raw message is returned as is.
func (r *Resolver) Lookup(raw string, c Catalog) (string, bool) {
	if c == nil {
		return raw, false
	}
	id, ok := r.Match(raw)
	if !ok {
		return raw, false
	}
	return c.Message(id), true
}

// Resolve returns the localized text for raw, or raw itself when no rule
// matches.
func (r *Resolver) Resolve(raw string, c Catalog) string {
	out, _ := r.Lookup(raw, c)
	return out
}

// Resolve resolves raw with the default rules.
func Resolve(raw string, c Catalog) string {
	return defaultResolver.Resolve(raw, c)
}
