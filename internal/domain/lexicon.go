package domain

// Lexicon mirrors ~/.shai-forge/lexicon.yaml. It carries every vocabulary
// pool, the synonym table and the template catalog the generator draws from.
type Lexicon struct {
	Pools            Pools               `yaml:"pools"`
	Ports            PortRange           `yaml:"ports"`
	Synonyms         map[string][]string `yaml:"synonyms"`
	Generation       GenerationSettings  `yaml:"generation"`
	SimpleTemplates  []SimpleTemplate    `yaml:"simple_templates"`
	ComplexTemplates []ComplexTemplate   `yaml:"complex_templates"`
}

// Pools holds the fixed vocabulary placeholder values are sampled from.
type Pools struct {
	Filenames   []string `yaml:"filenames"`
	Extensions  []string `yaml:"extensions"`
	Paths       []string `yaml:"paths"`
	Services    []string `yaml:"services"`
	SearchTerms []string `yaml:"search_terms"`
}

// PortRange bounds the sampled port numbers (inclusive on both ends).
type PortRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GenerationSettings tunes the sampling behavior.
type GenerationSettings struct {
	// ComplexRatio is the probability of drawing a complex template.
	ComplexRatio float64 `yaml:"complex_ratio"`
}

// SimpleTemplate is a single-command template. The prompt is assembled from
// the intent keyword plus a per-variation suffix; commands carry a {flags}
// placeholder filled per variation.
type SimpleTemplate struct {
	Intent     string      `yaml:"intent"`
	Bash       string      `yaml:"bash"`
	PowerShell string      `yaml:"powershell"`
	Dangerous  bool        `yaml:"dangerous"`
	Variations []Variation `yaml:"variations"`
}

// Variation pairs shell-specific flags with a prompt suffix.
type Variation struct {
	BashFlags       string `yaml:"bash_flags"`
	PowerShellFlags string `yaml:"powershell_flags"`
	Prompt          string `yaml:"prompt"`
}

// ComplexTemplate is a multi-clause template (pipes, redirection, chaining)
// with a complete prompt sentence.
type ComplexTemplate struct {
	Name       string `yaml:"name"`
	Prompt     string `yaml:"prompt"`
	Bash       string `yaml:"bash"`
	PowerShell string `yaml:"powershell"`
	Dangerous  bool   `yaml:"dangerous"`
}
