package lexicon

import (
	"strings"
	"testing"

	"github.com/doeshing/shai-forge/internal/domain"
)

func validLexicon() domain.Lexicon {
	return domain.Lexicon{
		Pools: domain.Pools{
			Filenames:   []string{"app", "server"},
			Extensions:  []string{".py"},
			Paths:       []string{"/tmp", "/var/log"},
			Services:    []string{"nginx"},
			SearchTerms: []string{"error"},
		},
		Ports: domain.PortRange{Min: 1000, Max: 9000},
		Synonyms: map[string][]string{
			"list": {"list", "show"},
		},
		Generation: domain.GenerationSettings{ComplexRatio: 0.5},
		SimpleTemplates: []domain.SimpleTemplate{
			{
				Intent:     "list",
				Bash:       "ls {flags} {path}",
				PowerShell: "Get-ChildItem {flags} -Path '{path}'",
				Variations: []domain.Variation{
					{Prompt: "files in {path}"},
				},
			},
		},
		ComplexTemplates: []domain.ComplexTemplate{
			{
				Name:       "net_check",
				Prompt:     "check if {service} is listening on port {port}",
				Bash:       "netstat -tuln | grep {port}",
				PowerShell: "Get-NetTCPConnection -LocalPort {port}",
			},
		},
	}
}

func TestValidateAcceptsWellFormedLexicon(t *testing.T) {
	if err := Validate(validLexicon()); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestValidateRejectsEmptyPool(t *testing.T) {
	lex := validLexicon()
	lex.Pools.SearchTerms = nil
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for empty pool")
	}
}

func TestValidateRejectsBadComplexRatio(t *testing.T) {
	lex := validLexicon()
	lex.Generation.ComplexRatio = 1.5
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for ratio > 1")
	}
}

func TestValidateRejectsBadPortRange(t *testing.T) {
	lex := validLexicon()
	lex.Ports = domain.PortRange{Min: 9000, Max: 1000}
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for inverted port range")
	}
}

func TestValidateRejectsSynonymKeyCollision(t *testing.T) {
	lex := validLexicon()
	// "List" would be rewritten by naturalization despite being vocabulary.
	lex.Pools.Filenames = append(lex.Pools.Filenames, "List")
	err := Validate(lex)
	if err == nil {
		t.Fatal("expected collision error")
	}
	if !strings.Contains(err.Error(), "collides with synonym key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownPlaceholder(t *testing.T) {
	lex := validLexicon()
	lex.SimpleTemplates[0].Bash = "ls {flags} {nowhere}"
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for unknown placeholder")
	}
}

func TestValidateRejectsEmptySynonymList(t *testing.T) {
	lex := validLexicon()
	lex.Synonyms["find"] = nil
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for empty synonym list")
	}
}

func TestValidateRequiresComplexTemplatesWhenRatioPositive(t *testing.T) {
	lex := validLexicon()
	lex.ComplexTemplates = nil
	if err := Validate(lex); err == nil {
		t.Fatal("expected error for missing complex templates")
	}
}

func TestEstimateDistinctRecords(t *testing.T) {
	lex := validLexicon()
	estimate, err := EstimateDistinctRecords(lex)
	if err != nil {
		t.Fatalf("EstimateDistinctRecords error: %v", err)
	}
	// Simple template: one variation using {path} (2 values) across 2 shells.
	// Complex template: {service} x {port} = 1 * 8001 across 2 shells.
	want := 2*2 + 2*8001
	if estimate != want {
		t.Fatalf("estimate = %d, want %d", estimate, want)
	}
}
