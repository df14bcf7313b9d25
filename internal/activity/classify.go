package activity

import (
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"
)

// ClassificationRules lists the lowercase function-name fragments that mark a
// transaction as belonging to a category. A transaction may match several categories.
type ClassificationRules struct {
	Swap   []string `yaml:"swap"`
	Bridge []string `yaml:"bridge"`
	DeFi   []string `yaml:"defi"`
	Naming []string `yaml:"naming"`
}

// DefaultClassificationRules returns the keyword heuristics used when nothing is configured.
func DefaultClassificationRules() ClassificationRules {
	return ClassificationRules{
		Swap:   []string{"swap", "exactoutput", "exactinput", "multicall"},
		Bridge: []string{"bridge", "deposit", "withdraw"},
		DeFi:   []string{"stake", "supply", "borrow", "repay", "mint", "claim"},
		Naming: []string{"commit", "register", "setname", "settext"},
	}
}

// WithDefaults fills empty keyword lists from DefaultClassificationRules.
func (r ClassificationRules) WithDefaults() ClassificationRules {
	d := DefaultClassificationRules()
	if len(r.Swap) == 0 {
		r.Swap = d.Swap
	}
	if len(r.Bridge) == 0 {
		r.Bridge = d.Bridge
	}
	if len(r.DeFi) == 0 {
		r.DeFi = d.DeFi
	}
	if len(r.Naming) == 0 {
		r.Naming = d.Naming
	}
	return r
}

// CategoryCounts holds per-category transaction tallies.
type CategoryCounts struct {
	ContractsDeployed int
	Swaps             int
	Bridges           int
	DeFi              int
	Naming            int
}

// Classifier applies ClassificationRules to transactions.
type Classifier struct {
	rules ClassificationRules
}

// NewClassifier lowercases the configured keywords once.
func NewClassifier(rules ClassificationRules) *Classifier {
	rules = rules.WithDefaults()
	return &Classifier{rules: ClassificationRules{
		Swap:   lowerAll(rules.Swap),
		Bridge: lowerAll(rules.Bridge),
		DeFi:   lowerAll(rules.DeFi),
		Naming: lowerAll(rules.Naming),
	}}
}

// Tally counts every category each transaction falls into.
func (c *Classifier) Tally(txs []business.TransactionRecord) CategoryCounts {
	var counts CategoryCounts
	for _, tx := range txs {
		fn := strings.ToLower(tx.FunctionName)
		if tx.CreatesContract() {
			counts.ContractsDeployed++
		}
		if containsAny(fn, c.rules.Swap) {
			counts.Swaps++
		}
		if containsAny(fn, c.rules.Bridge) {
			counts.Bridges++
		}
		if containsAny(fn, c.rules.DeFi) {
			counts.DeFi++
		}
		if containsAny(fn, c.rules.Naming) {
			counts.Naming++
		}
	}
	return counts
}

func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
