package domain

// Shell identifies the target shell of a generated command.
type Shell string

const (
	ShellBash       Shell = "bash"
	ShellPowerShell Shell = "powershell"
)

// KnownShell reports whether value is one of the shells the dataset targets.
func KnownShell(value string) bool {
	return value == string(ShellBash) || value == string(ShellPowerShell)
}

// Record is one instruction-tuning example: a natural-language prompt paired
// with an equivalent shell command and its danger label.
type Record struct {
	Prompt    string `json:"prompt"`
	Command   string `json:"command"`
	Dangerous bool   `json:"dangerous"`
	Shell     Shell  `json:"shell"`
}

// Signature is the deduplication key for a record within one generated file.
// Matching is exact-string; no normalization beyond template formatting.
func (r Record) Signature() string {
	return r.Prompt + "_" + r.Command
}
