package generate

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/textformat"
)

// generateEntry builds one template instance and returns the matching bash
// and PowerShell records. Both share the prompt and danger flag so the two
// shells stay balanced in the dataset.
func generateEntry(rng *rand.Rand, lex domain.Lexicon) ([]domain.Record, error) {
	isComplex := rng.Float64() < lex.Generation.ComplexRatio

	values := map[string]string{
		"target":  pick(rng, lex.Pools.Filenames) + pick(rng, lex.Pools.Extensions),
		"path":    pick(rng, lex.Pools.Paths),
		"term":    pick(rng, lex.Pools.SearchTerms),
		"service": pick(rng, lex.Pools.Services),
		"port":    strconv.Itoa(randomPort(rng, lex.Ports)),
	}

	if isComplex && len(lex.ComplexTemplates) > 0 {
		return complexEntry(rng, lex, values)
	}
	return simpleEntry(rng, lex, values)
}

func simpleEntry(rng *rand.Rand, lex domain.Lexicon, values map[string]string) ([]domain.Record, error) {
	tmpl := lex.SimpleTemplates[rng.Intn(len(lex.SimpleTemplates))]
	variation := tmpl.Variations[rng.Intn(len(tmpl.Variations))]

	base, err := textformat.Format(tmpl.Intent+" "+variation.Prompt, values)
	if err != nil {
		return nil, err
	}
	prompt := naturalize(rng, base, lex.Synonyms)

	values["flags"] = variation.BashFlags
	bashCmd, err := textformat.Format(tmpl.Bash, values)
	if err != nil {
		return nil, err
	}
	values["flags"] = variation.PowerShellFlags
	psCmd, err := textformat.Format(tmpl.PowerShell, values)
	if err != nil {
		return nil, err
	}
	delete(values, "flags")

	// Empty flags leave double spaces behind.
	bashCmd = textformat.CollapseWhitespace(bashCmd)
	psCmd = textformat.CollapseWhitespace(psCmd)

	return []domain.Record{
		{Prompt: prompt, Command: bashCmd, Dangerous: tmpl.Dangerous, Shell: domain.ShellBash},
		{Prompt: prompt, Command: psCmd, Dangerous: tmpl.Dangerous, Shell: domain.ShellPowerShell},
	}, nil
}

func complexEntry(rng *rand.Rand, lex domain.Lexicon, values map[string]string) ([]domain.Record, error) {
	tmpl := lex.ComplexTemplates[rng.Intn(len(lex.ComplexTemplates))]

	base, err := textformat.Format(tmpl.Prompt, values)
	if err != nil {
		return nil, err
	}
	prompt := naturalize(rng, base, lex.Synonyms)

	bashCmd, err := textformat.Format(tmpl.Bash, values)
	if err != nil {
		return nil, err
	}
	psCmd, err := textformat.Format(tmpl.PowerShell, values)
	if err != nil {
		return nil, err
	}

	return []domain.Record{
		{Prompt: prompt, Command: bashCmd, Dangerous: tmpl.Dangerous, Shell: domain.ShellBash},
		{Prompt: prompt, Command: psCmd, Dangerous: tmpl.Dangerous, Shell: domain.ShellPowerShell},
	}, nil
}

// naturalize swaps intent keywords for random conversational synonyms.
// Only whole whitespace-delimited tokens are considered, matched on their
// lowercase form; everything else passes through untouched.
func naturalize(rng *rand.Rand, text string, synonyms map[string][]string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if alternatives, ok := synonyms[strings.ToLower(word)]; ok && len(alternatives) > 0 {
			words[i] = alternatives[rng.Intn(len(alternatives))]
		}
	}
	return strings.Join(words, " ")
}

func pick(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}

func randomPort(rng *rand.Rand, ports domain.PortRange) int {
	if ports.Max <= ports.Min {
		return ports.Min
	}
	return ports.Min + rng.Intn(ports.Max-ports.Min+1)
}
