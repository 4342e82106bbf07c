package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shai-forge/assets"
	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/filesystem"
	"github.com/doeshing/shai-forge/internal/ports"
)

// RuleAuditor implements the LabelAuditor port with regex danger rules.
// analyze uses it to cross-check the generator's danger labels.
type RuleAuditor struct {
	patterns []compiledRule
}

type compiledRule struct {
	re   *regexp.Regexp
	rule DangerRule
}

// DangerRule describes one regex-based audit rule.
type DangerRule struct {
	Pattern string `yaml:"pattern"`
	Message string `yaml:"message"`
}

// RulesFile is the YAML schema root.
type RulesFile struct {
	Rules struct {
		DangerPatterns []DangerRule `yaml:"danger_patterns"`
	} `yaml:"rules"`
}

// NewRuleAuditor loads audit rules from disk (or the embedded defaults when
// the file is missing) and compiles the patterns.
func NewRuleAuditor(path string) (*RuleAuditor, error) {
	rules, err := loadRules(path)
	if err != nil {
		return nil, err
	}

	var compiled []compiledRule
	for _, rule := range rules.Rules.DangerPatterns {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("audit rule %q: %w", rule.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, rule: rule})
	}

	return &RuleAuditor{patterns: compiled}, nil
}

// Evaluate implements ports.LabelAuditor.
func (a *RuleAuditor) Evaluate(command string) domain.DangerMatch {
	var match domain.DangerMatch
	for _, pattern := range a.patterns {
		if pattern.re.MatchString(command) {
			match.Dangerous = true
			match.Reasons = append(match.Reasons, pattern.rule.Message)
			match.MatchedRules = append(match.MatchedRules, pattern.rule.Pattern)
		}
	}
	return match
}

func loadRules(path string) (RulesFile, error) {
	var rules RulesFile
	data, err := os.ReadFile(resolvePath(path))
	if err != nil {
		// fall back to the embedded defaults
		data = assets.DefaultAuditYAML
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return RulesFile{}, err
	}
	if len(rules.Rules.DangerPatterns) == 0 {
		if err := yaml.Unmarshal(assets.DefaultAuditYAML, &rules); err != nil {
			return RulesFile{}, err
		}
	}
	return rules, nil
}

func resolvePath(path string) string {
	if path == "" {
		path = os.Getenv("SHAI_FORGE_RULES")
	}
	if path == "" {
		return filepath.Join(filesystem.UserHomeDir(), ".shai-forge", "audit.yaml")
	}
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.LabelAuditor = (*RuleAuditor)(nil)
