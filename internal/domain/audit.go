package domain

// DangerMatch is the outcome of evaluating a command against the audit rules.
type DangerMatch struct {
	Dangerous    bool
	Reasons      []string
	MatchedRules []string
}
