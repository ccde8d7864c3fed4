package advisor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/axox-storefront/internal/model"
)

// Signal names one intent cue detected in a query.
type Signal string

// Known signals.
const (
	SignalHome       Signal = "home"
	SignalCommercial Signal = "commercial"
	SignalBudget     Signal = "budget"
)

// Rule maps a query pattern to its effect on intent and candidate selection.
type Rule struct {
	Signal  Signal
	Pattern string
	// Goal is the intent goal implied by the signal. Among matched rules the
	// one with the highest Priority sets the goal.
	Goal     string
	Priority int
	// Restrict keeps only candidates of this type.
	Restrict model.ProductType
	// Budget is the intent budget label; it also orders candidates by price.
	Budget string
}

// SpaceRule labels the shopper's space from a literal substring.
type SpaceRule struct {
	Substring string
	Label     string
}

// DefaultGoal is used when no rule sets a goal.
const DefaultGoal = "Fitness equipment"

// DefaultRules is the built-in signal table. Commercial outranks home: a query
// mentioning both is treated as the more specific commercial intent.
var DefaultRules = []Rule{
	{
		Signal:   SignalHome,
		Pattern:  `home|apartment|small|compact|personal`,
		Goal:     "Home gym",
		Priority: 1,
		Restrict: model.TypeHome,
	},
	{
		Signal:   SignalCommercial,
		Pattern:  `gym|commercial|studio|facility`,
		Goal:     "Commercial facility",
		Priority: 2,
		Restrict: model.TypeCommercial,
	},
	{
		Signal:  SignalBudget,
		Pattern: `budget|cheap|affordable|under`,
		Budget:  "Budget-conscious",
	},
}

// DefaultSpaceRules are checked in order; the first substring found wins.
var DefaultSpaceRules = []SpaceRule{
	{Substring: "small", Label: "Limited space"},
	{Substring: "large", Label: "Large space"},
}

// RuleSet is a compiled rule table.
type RuleSet struct {
	compiled   []*regexp.Regexp
	rules      []Rule
	spaceRules []SpaceRule
}

// NewRuleSet compiles rules. Patterns are matched against lower-cased text.
func NewRuleSet(rules []Rule, spaceRules []SpaceRule) (*RuleSet, error) {
	rs := &RuleSet{
		rules:      rules,
		spaceRules: spaceRules,
		compiled:   make([]*regexp.Regexp, len(rules)),
	}

	for i, rule := range rules {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: invalid pattern: %w", rule.Signal, err)
		}
		rs.compiled[i] = re
	}

	return rs, nil
}

// DefaultRuleSet compiles DefaultRules and DefaultSpaceRules.
func DefaultRuleSet() *RuleSet {
	rs, err := NewRuleSet(DefaultRules, DefaultSpaceRules)
	if err != nil {
		panic(fmt.Sprintf("built-in rules are invalid: %v", err))
	}
	return rs
}

// Matches is the outcome of evaluating a RuleSet against a query.
type Matches struct {
	rules []Rule
	space string
}

// Match evaluates every rule against text. Matching is case-insensitive.
func (rs *RuleSet) Match(text string) Matches {
	text = strings.ToLower(text)

	var m Matches
	for i, re := range rs.compiled {
		if re.MatchString(text) {
			m.rules = append(m.rules, rs.rules[i])
		}
	}

	for _, sr := range rs.spaceRules {
		if strings.Contains(text, sr.Substring) {
			m.space = sr.Label
			break
		}
	}

	return m
}

// Has reports whether signal fired.
func (m Matches) Has(signal Signal) bool {
	for _, r := range m.rules {
		if r.Signal == signal {
			return true
		}
	}
	return false
}

// Signals lists fired signals in rule-table order.
func (m Matches) Signals() []Signal {
	out := make([]Signal, 0, len(m.rules))
	for _, r := range m.rules {
		out = append(out, r.Signal)
	}
	return out
}

// Placed reports whether any fired rule implies a goal, i.e. the query says
// where the equipment will be used.
func (m Matches) Placed() bool {
	for _, r := range m.rules {
		if r.Goal != "" {
			return true
		}
	}
	return false
}

// Goal returns the goal of the highest-priority fired rule.
func (m Matches) Goal() string {
	goal := DefaultGoal
	best := -1
	for _, r := range m.rules {
		if r.Goal != "" && r.Priority > best {
			goal = r.Goal
			best = r.Priority
		}
	}
	return goal
}

// Space returns the matched space label, or "".
func (m Matches) Space() string {
	return m.space
}

// Budget returns the first fired budget label, or "".
func (m Matches) Budget() string {
	for _, r := range m.rules {
		if r.Budget != "" {
			return r.Budget
		}
	}
	return ""
}

// Keep reports whether p survives every fired type restriction. When rules
// with different restrictions both fire, nothing survives.
func (m Matches) Keep(p model.Product) bool {
	for _, r := range m.rules {
		if r.Restrict != "" && p.Type != r.Restrict {
			return false
		}
	}
	return true
}
