package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	lexiconapp "github.com/doeshing/shai-forge/internal/application/lexicon"
	"github.com/doeshing/shai-forge/internal/domain"
)

func TestLoadWritesDefaultOnFirstUse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	loader := NewFileLoader(path)

	lex, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default lexicon not materialized: %v", err)
	}
	if len(lex.SimpleTemplates) == 0 || len(lex.ComplexTemplates) == 0 {
		t.Fatalf("default lexicon incomplete: %+v", lex)
	}

	defaults, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if diff := cmp.Diff(defaults, lex); diff != "" {
		t.Fatalf("first load differs from embedded default (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	loader := NewFileLoader(path)

	lex, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	lex.Generation.ComplexRatio = 0.7
	lex.Pools.Services = append(lex.Pools.Services, "redis")

	if err := loader.Save(lex); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	reloaded, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if diff := cmp.Diff(lex, reloaded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestResetRestoresDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	loader := NewFileLoader(path)

	if err := os.WriteFile(path, []byte("pools: {}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if err := loader.Reset(); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	lex, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	defaults, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if diff := cmp.Diff(defaults, lex); diff != "" {
		t.Fatalf("reset lexicon differs from default (-want +got):\n%s", diff)
	}
}

func TestDefaultLexiconIsValid(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if err := lexiconapp.Validate(lex); err != nil {
		t.Fatalf("embedded default rejected: %v", err)
	}

	estimate, err := lexiconapp.EstimateDistinctRecords(lex)
	if err != nil {
		t.Fatalf("EstimateDistinctRecords error: %v", err)
	}
	if estimate < domain.DefaultTargetCount {
		t.Fatalf("default lexicon too small for the default target: %d < %d", estimate, domain.DefaultTargetCount)
	}
}

func TestDefaultLexiconShape(t *testing.T) {
	lex, err := Default()
	if err != nil {
		t.Fatalf("Default error: %v", err)
	}
	if got := lex.Generation.ComplexRatio; got != 0.3 {
		t.Fatalf("complex ratio = %g, want 0.3", got)
	}
	if lex.Ports.Min != 1000 || lex.Ports.Max != 9000 {
		t.Fatalf("port range = %+v", lex.Ports)
	}
	if len(lex.SimpleTemplates) != 4 || len(lex.ComplexTemplates) != 6 {
		t.Fatalf("template counts = %d simple, %d complex", len(lex.SimpleTemplates), len(lex.ComplexTemplates))
	}
	if len(lex.Synonyms) != 7 {
		t.Fatalf("synonym keys = %d, want 7", len(lex.Synonyms))
	}
}
