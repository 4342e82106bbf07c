package lexicon

import (
	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/textformat"
)

// EstimateDistinctRecords returns a lower bound on the number of distinct
// (prompt, command) pairs the lexicon can yield. Synonym substitution only
// widens the prompt space, so the bound counts pool combinations alone.
// When the bound is below a run's target, generation would exhaust its
// attempt budget; validate surfaces this before any run stalls.
func EstimateDistinctRecords(lex domain.Lexicon) (int, error) {
	sizes := map[string]int{
		"target":  len(lex.Pools.Filenames) * len(lex.Pools.Extensions),
		"path":    len(lex.Pools.Paths),
		"term":    len(lex.Pools.SearchTerms),
		"service": len(lex.Pools.Services),
		"port":    portSpan(lex.Ports),
	}

	total := 0
	for _, tmpl := range lex.SimpleTemplates {
		for _, variation := range tmpl.Variations {
			promptNames, err := textformat.Placeholders(tmpl.Intent + " " + variation.Prompt)
			if err != nil {
				return 0, err
			}
			for _, command := range []string{tmpl.Bash, tmpl.PowerShell} {
				product, err := combinations(sizes, promptNames, command)
				if err != nil {
					return 0, err
				}
				total += product
			}
		}
	}
	for _, tmpl := range lex.ComplexTemplates {
		promptNames, err := textformat.Placeholders(tmpl.Prompt)
		if err != nil {
			return 0, err
		}
		for _, command := range []string{tmpl.Bash, tmpl.PowerShell} {
			product, err := combinations(sizes, promptNames, command)
			if err != nil {
				return 0, err
			}
			total += product
		}
	}
	return total, nil
}

// combinations multiplies the pool sizes of every placeholder the prompt and
// command actually use. The {flags} placeholder is fixed per variation and
// contributes nothing.
func combinations(sizes map[string]int, promptNames []string, command string) (int, error) {
	commandNames, err := textformat.Placeholders(command)
	if err != nil {
		return 0, err
	}
	used := map[string]bool{}
	for _, name := range promptNames {
		used[name] = true
	}
	for _, name := range commandNames {
		used[name] = true
	}
	product := 1
	for name := range used {
		if size, ok := sizes[name]; ok && size > 0 {
			product *= size
		}
	}
	return product, nil
}

func portSpan(ports domain.PortRange) int {
	if ports.Max < ports.Min {
		return 0
	}
	return ports.Max - ports.Min + 1
}
