package audit

import (
	"os"
	"path/filepath"
	"testing"
)

// A path pointing into an empty temp dir forces the embedded defaults.
func defaultAuditor(t *testing.T) *RuleAuditor {
	t.Helper()
	auditor, err := NewRuleAuditor(filepath.Join(t.TempDir(), "audit.yaml"))
	if err != nil {
		t.Fatalf("NewRuleAuditor error: %v", err)
	}
	return auditor
}

func TestDefaultRulesFlagDestructiveCommands(t *testing.T) {
	auditor := defaultAuditor(t)

	for _, command := range []string{
		"rm -rf /tmp/x",
		"rm backup.sql",
		"Remove-Item -Recurse -Force -Path 'C:\\Backups'",
		"dd if=/dev/zero of=/dev/sda",
		"mkfs.ext4 /dev/sdb1",
		"shutdown -h now",
	} {
		match := auditor.Evaluate(command)
		if !match.Dangerous {
			t.Fatalf("expected %q to match a danger rule", command)
		}
		if len(match.Reasons) == 0 || len(match.MatchedRules) == 0 {
			t.Fatalf("match for %q missing reasons: %+v", command, match)
		}
	}
}

func TestDefaultRulesPassBenignCommands(t *testing.T) {
	auditor := defaultAuditor(t)

	for _, command := range []string{
		"ls -la /var/log",
		"Get-ChildItem -Path '/tmp'",
		"mkdir -p app.py",
		"grep -r 'error' logs/",
		"ps aux | grep 'nginx'",
		"netstat -tuln | grep 8080",
	} {
		if match := auditor.Evaluate(command); match.Dangerous {
			t.Fatalf("benign command %q flagged: %+v", command, match)
		}
	}
}

func TestCustomRulesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	rules := "rules:\n  danger_patterns:\n    - pattern: 'curl'\n      message: network fetch\n"
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	auditor, err := NewRuleAuditor(path)
	if err != nil {
		t.Fatalf("NewRuleAuditor error: %v", err)
	}
	if match := auditor.Evaluate("curl https://example.com"); !match.Dangerous {
		t.Fatal("custom rule did not match")
	}
	if match := auditor.Evaluate("rm -rf /"); match.Dangerous {
		t.Fatal("custom rules should replace the defaults")
	}
}

func TestInvalidPatternFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yaml")
	rules := "rules:\n  danger_patterns:\n    - pattern: '['\n      message: broken\n"
	if err := os.WriteFile(path, []byte(rules), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	if _, err := NewRuleAuditor(path); err == nil {
		t.Fatal("expected compile error")
	}
}
