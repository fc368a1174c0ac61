package hooks

import (
	"regexp"
	"strings"
	"sync"
)

// RiskLevel is the coarse harm category of a shell command.
type RiskLevel string

const (
	RiskSafe        RiskLevel = "safe"
	RiskDestructive RiskLevel = "destructive"
	RiskUnknown     RiskLevel = "unknown"
)

// Classification is the outcome of classifying one command.
type Classification struct {
	Category string
	Risk     RiskLevel
}

// Markers that force a destructive classification: recursive forced
// deletion, shutdown, disk formatting.
var destructivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\brm\s+-rf\b`),
	regexp.MustCompile(`\brm\s+-fr\b`),
	regexp.MustCompile(`\bshutdown\b`),
	regexp.MustCompile(`\bformat\b`),
	regexp.MustCompile(`\bmkfs\b`),
}

// Classifier categorizes shell commands into safe, destructive, or unknown
// via pattern heuristics. A session whitelist, populated through Trust,
// forces commands safe; everything unmatched defaults to unknown, which the
// gate allows. Classification itself is pure; only Trust mutates state.
type Classifier struct {
	mu        sync.Mutex
	whitelist map[string]bool
}

// NewClassifier creates a Classifier with an empty session whitelist.
func NewClassifier() *Classifier {
	return &Classifier{whitelist: make(map[string]bool)}
}

// Classify categorizes the command text. The whitelist is consulted before
// the destructive markers so a trusted command stays safe.
func (c *Classifier) Classify(command string) Classification {
	normalized := normalizeCommand(command)

	if normalized == "" {
		return Classification{Category: "empty", Risk: RiskSafe}
	}

	c.mu.Lock()
	trusted := c.whitelist[normalized]
	c.mu.Unlock()
	if trusted {
		return Classification{Category: "whitelist", Risk: RiskSafe}
	}

	for _, pattern := range destructivePatterns {
		if pattern.MatchString(normalized) {
			return Classification{Category: "destructive", Risk: RiskDestructive}
		}
	}

	return Classification{Category: "unknown", Risk: RiskUnknown}
}

// Trust adds the normalized command to the session whitelist.
func (c *Classifier) Trust(command string) {
	normalized := normalizeCommand(command)
	if normalized == "" {
		return
	}
	c.mu.Lock()
	c.whitelist[normalized] = true
	c.mu.Unlock()
}

// normalizeCommand lowercases and collapses whitespace so whitelist
// matching ignores case and spacing differences.
func normalizeCommand(command string) string {
	return strings.Join(strings.Fields(strings.ToLower(command)), " ")
}
