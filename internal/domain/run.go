package domain

import "time"

// RunRecord captures the provenance of one generation run.
type RunRecord struct {
	ID              string         `json:"id"`
	StartedAt       time.Time      `json:"started_at"`
	FinishedAt      time.Time      `json:"finished_at"`
	DurationMS      int64          `json:"duration_ms"`
	Seed            int64          `json:"seed"`
	Target          int            `json:"target"`
	Produced        int            `json:"produced"`
	Attempts        int            `json:"attempts"`
	Duplicates      int            `json:"duplicates"`
	BashCount       int            `json:"bash_count"`
	PowerShellCount int            `json:"powershell_count"`
	DangerousCount  int            `json:"dangerous_count"`
	SafeCount       int            `json:"safe_count"`
	OutputPath      string         `json:"output_path"`
	LexiconPath     string         `json:"lexicon_path"`
	Environment     RunEnvironment `json:"environment"`
}

// RunEnvironment records where a run executed.
type RunEnvironment struct {
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	Hostname    string `json:"hostname"`
	Username    string `json:"username"`
	WorkingDir  string `json:"working_dir"`
	ToolVersion string `json:"tool_version"`
}
