package lexicon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/textformat"
)

// Probe values used to exercise every template during validation. Catching a
// bad placeholder here keeps formatting faults out of generation runs.
var probeValues = map[string]string{
	"target":  "probe.txt",
	"path":    "/tmp",
	"term":    "probe",
	"service": "probe",
	"port":    "8080",
}

// Validate ensures the lexicon is structurally usable by the generator.
func Validate(lex domain.Lexicon) error {
	if err := validatePools(lex.Pools); err != nil {
		return err
	}
	if lex.Ports.Min <= 0 || lex.Ports.Max < lex.Ports.Min {
		return fmt.Errorf("ports range %d-%d invalid", lex.Ports.Min, lex.Ports.Max)
	}
	ratio := lex.Generation.ComplexRatio
	if ratio < 0 || ratio > 1 {
		return fmt.Errorf("generation.complex_ratio must be within [0,1], got %g", ratio)
	}
	if ratio < 1 && len(lex.SimpleTemplates) == 0 {
		return errors.New("at least one simple template is required")
	}
	if ratio > 0 && len(lex.ComplexTemplates) == 0 {
		return errors.New("complex_ratio > 0 but no complex templates configured")
	}
	for key, alternatives := range lex.Synonyms {
		if len(alternatives) == 0 {
			return fmt.Errorf("synonyms.%s has no entries", key)
		}
	}
	if err := checkSynonymCollisions(lex); err != nil {
		return err
	}
	for i, tmpl := range lex.SimpleTemplates {
		if err := validateSimpleTemplate(i, tmpl); err != nil {
			return err
		}
	}
	for i, tmpl := range lex.ComplexTemplates {
		if err := validateComplexTemplate(i, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func validatePools(pools domain.Pools) error {
	named := []struct {
		name   string
		values []string
	}{
		{"filenames", pools.Filenames},
		{"extensions", pools.Extensions},
		{"paths", pools.Paths},
		{"services", pools.Services},
		{"search_terms", pools.SearchTerms},
	}
	for _, pool := range named {
		if len(pool.values) == 0 {
			return fmt.Errorf("pools.%s is empty", pool.name)
		}
		for _, value := range pool.values {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("pools.%s contains a blank value", pool.name)
			}
		}
	}
	return nil
}

// checkSynonymCollisions rejects pool values whose tokens match a synonym key
// case-insensitively. The naturalization pass rewrites whole tokens, so a
// colliding vocabulary word would be silently replaced inside prompts.
func checkSynonymCollisions(lex domain.Lexicon) error {
	if len(lex.Synonyms) == 0 {
		return nil
	}
	named := map[string][]string{
		"filenames":    lex.Pools.Filenames,
		"extensions":   lex.Pools.Extensions,
		"paths":        lex.Pools.Paths,
		"services":     lex.Pools.Services,
		"search_terms": lex.Pools.SearchTerms,
	}
	for name, values := range named {
		for _, value := range values {
			for _, token := range strings.Fields(value) {
				if _, clash := lex.Synonyms[strings.ToLower(token)]; clash {
					return fmt.Errorf("pools.%s value %q collides with synonym key %q", name, value, strings.ToLower(token))
				}
			}
		}
	}
	return nil
}

func validateSimpleTemplate(index int, tmpl domain.SimpleTemplate) error {
	if tmpl.Intent == "" {
		return fmt.Errorf("simple_templates[%d] missing intent", index)
	}
	if tmpl.Bash == "" || tmpl.PowerShell == "" {
		return fmt.Errorf("simple_templates[%d] (%s) missing a command template", index, tmpl.Intent)
	}
	if len(tmpl.Variations) == 0 {
		return fmt.Errorf("simple_templates[%d] (%s) has no variations", index, tmpl.Intent)
	}
	commandValues := withFlags(probeValues, "-x")
	for j, variation := range tmpl.Variations {
		if _, err := textformat.Format(tmpl.Intent+" "+variation.Prompt, probeValues); err != nil {
			return fmt.Errorf("simple_templates[%d].variations[%d] prompt: %w", index, j, err)
		}
	}
	if _, err := textformat.Format(tmpl.Bash, commandValues); err != nil {
		return fmt.Errorf("simple_templates[%d] (%s) bash: %w", index, tmpl.Intent, err)
	}
	if _, err := textformat.Format(tmpl.PowerShell, commandValues); err != nil {
		return fmt.Errorf("simple_templates[%d] (%s) powershell: %w", index, tmpl.Intent, err)
	}
	return nil
}

func validateComplexTemplate(index int, tmpl domain.ComplexTemplate) error {
	if tmpl.Name == "" {
		return fmt.Errorf("complex_templates[%d] missing name", index)
	}
	if tmpl.Prompt == "" {
		return fmt.Errorf("complex_templates[%d] (%s) missing prompt", index, tmpl.Name)
	}
	if tmpl.Bash == "" || tmpl.PowerShell == "" {
		return fmt.Errorf("complex_templates[%d] (%s) missing a command template", index, tmpl.Name)
	}
	for field, template := range map[string]string{
		"prompt":     tmpl.Prompt,
		"bash":       tmpl.Bash,
		"powershell": tmpl.PowerShell,
	} {
		if _, err := textformat.Format(template, probeValues); err != nil {
			return fmt.Errorf("complex_templates[%d] (%s) %s: %w", index, tmpl.Name, field, err)
		}
	}
	return nil
}

func withFlags(values map[string]string, flags string) map[string]string {
	out := make(map[string]string, len(values)+1)
	for k, v := range values {
		out[k] = v
	}
	out["flags"] = flags
	return out
}
