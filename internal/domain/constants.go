package domain

// File permission constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Generation constants
const (
	// DefaultTargetCount is how many unique records a bare run produces.
	DefaultTargetCount = 20000
	// DefaultOutputFile is where the generator writes and the analyzer reads.
	DefaultOutputFile = "shell_instruct_dataset_v2.jsonl"
	// ProgressInterval is how many records pass between progress reports.
	ProgressInterval = 5000
	// DefaultAttemptMultiplier caps generation attempts at multiplier * target.
	DefaultAttemptMultiplier = 50
)

// Reporting constants
const (
	// DefaultMaxFindings caps label-audit findings retained in a report.
	DefaultMaxFindings = 25
	// DefaultMaxWarningsShown limits warnings printed by the renderer.
	DefaultMaxWarningsShown = 10
	// DefaultRunsLimit is the default number of run records to display.
	DefaultRunsLimit = 20
)
