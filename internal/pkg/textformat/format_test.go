package textformat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatSubstitutesPlaceholders(t *testing.T) {
	got, err := Format("rm {flags} {target}", map[string]string{"flags": "-rf", "target": "app.py"})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "rm -rf app.py" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFormatEscapesBraces(t *testing.T) {
	got, err := Format("Get-Process | Where-Object {{ $_.ProcessName -match '{term}' }}",
		map[string]string{"term": "nginx"})
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	want := "Get-Process | Where-Object { $_.ProcessName -match 'nginx' }"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormatUnknownPlaceholder(t *testing.T) {
	if _, err := Format("ls {nope}", map[string]string{"path": "/tmp"}); err == nil {
		t.Fatal("expected error for unknown placeholder")
	}
}

func TestFormatUnbalancedBraces(t *testing.T) {
	for _, tmpl := range []string{"ls {path", "ls path}", "{"} {
		if _, err := Format(tmpl, map[string]string{"path": "/tmp"}); err == nil {
			t.Fatalf("expected error for %q", tmpl)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	names, err := Placeholders("grep {flags} '{term}' {target} in {term}")
	if err != nil {
		t.Fatalf("Placeholders error: %v", err)
	}
	want := []string{"flags", "term", "target"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("Placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholdersSkipsEscapes(t *testing.T) {
	names, err := Placeholders("{{literal}} and {real}")
	if err != nil {
		t.Fatalf("Placeholders error: %v", err)
	}
	if diff := cmp.Diff([]string{"real"}, names); diff != "" {
		t.Fatalf("Placeholders mismatch (-want +got):\n%s", diff)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	if got := CollapseWhitespace("ls   /tmp"); got != "ls /tmp" {
		t.Fatalf("CollapseWhitespace = %q", got)
	}
	if got := CollapseWhitespace(" ls \t/tmp "); got != "ls /tmp" {
		t.Fatalf("CollapseWhitespace = %q", got)
	}
}
