// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces keep the generation and analysis
// services independent of concrete file formats, databases, and the CLI.
package ports

import (
	"context"

	"github.com/doeshing/shai-forge/internal/domain"
)

// LexiconProvider loads the lexicon from persistent storage.
// Implementations typically read from ~/.shai-forge/lexicon.yaml.
type LexiconProvider interface {
	Load(context.Context) (domain.Lexicon, error)
	Path() string
}

// DatasetStore reads and writes newline-delimited JSON dataset files.
// Scan hands the visitor raw line bytes together with a 1-based line number.
type DatasetStore interface {
	Write(path string, records []domain.Record) error
	Scan(path string, visit func(line int, data []byte) error) error
	Exists(path string) bool
}

// LabelAuditor matches a command against the configured danger rules.
// Used by analyze to flag records whose danger label looks wrong.
type LabelAuditor interface {
	Evaluate(command string) domain.DangerMatch
}

// RunRepository persists generation run provenance.
type RunRepository interface {
	Save(domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
	Path() string
}

// EnvironmentCollector captures the environment a run executed in.
type EnvironmentCollector interface {
	Collect() domain.RunEnvironment
}

// OverwritePrompter asks the user before an existing dataset is replaced.
type OverwritePrompter interface {
	ConfirmOverwrite(path string) (bool, error)
	Enabled() bool
}

// ProgressReporter receives periodic generation progress updates.
type ProgressReporter interface {
	Progress(produced, target int)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
