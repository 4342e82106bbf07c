package domain

// WarningKind classifies a per-line integrity warning.
type WarningKind string

const (
	WarningMalformedLine WarningKind = "malformed_line"
	WarningEmptyField    WarningKind = "empty_field"
	WarningUnknownShell  WarningKind = "unknown_shell"
)

// LineWarning points at a single suspicious line in the dataset file.
type LineWarning struct {
	Line   int
	Kind   WarningKind
	Detail string
}

// FindingKind classifies a label-audit disagreement.
type FindingKind string

const (
	// FindingUnderLabeled marks a safe-labeled record matching a danger rule.
	FindingUnderLabeled FindingKind = "under_labeled"
	// FindingOverLabeled marks a dangerous-labeled record matching no rule.
	FindingOverLabeled FindingKind = "over_labeled"
)

// AuditFinding flags a record whose danger label disagrees with the rules.
type AuditFinding struct {
	Line    int
	Kind    FindingKind
	Command string
	Reasons []string
}

// DatasetReport aggregates one analyze pass over a dataset file.
type DatasetReport struct {
	File     string
	Total    int
	Shells   map[string]int
	Danger   map[bool]int
	Warnings []LineWarning

	// Label-audit results. The counters are exact even when the retained
	// findings are capped.
	UnderLabeled int
	OverLabeled  int
	Findings     []AuditFinding

	// Ready is true only when both target shells are represented.
	Ready         bool
	MissingShells []string
}
