package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/ports"
)

// Service streams a generated dataset file, tallies distributions, flags
// integrity warnings and audits danger labels. A bad line never aborts the
// scan; only the file itself failing to open is fatal.
type Service struct {
	Dataset ports.DatasetStore
	Auditor ports.LabelAuditor
	Logger  ports.Logger
}

// Request configures one analyze pass.
type Request struct {
	Context context.Context
	// File is the dataset path (default shell_instruct_dataset_v2.jsonl).
	File string
	// MaxFindings caps the label-audit findings kept in the report; the
	// under/over-labeled counters stay exact regardless.
	MaxFindings int
}

// Run scans the file line by line and builds the report.
func (s *Service) Run(req Request) (domain.DatasetReport, error) {
	if s.Dataset == nil || s.Logger == nil {
		return domain.DatasetReport{}, errors.New("analyze.Service dependencies not satisfied")
	}

	file := req.File
	if file == "" {
		file = domain.DefaultOutputFile
	}
	maxFindings := req.MaxFindings
	if maxFindings <= 0 {
		maxFindings = domain.DefaultMaxFindings
	}

	report := domain.DatasetReport{
		File:   file,
		Shells: map[string]int{},
		Danger: map[bool]int{},
	}

	err := s.Dataset.Scan(file, func(line int, data []byte) error {
		var record domain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			report.Warnings = append(report.Warnings, domain.LineWarning{
				Line:   line,
				Kind:   domain.WarningMalformedLine,
				Detail: err.Error(),
			})
			return nil
		}

		// A parsed record is always counted, warnings or not.
		report.Total++
		report.Shells[string(record.Shell)]++
		report.Danger[record.Dangerous]++

		if record.Prompt == "" || record.Command == "" {
			report.Warnings = append(report.Warnings, domain.LineWarning{
				Line:   line,
				Kind:   domain.WarningEmptyField,
				Detail: "empty prompt or command",
			})
		}
		if !domain.KnownShell(string(record.Shell)) {
			report.Warnings = append(report.Warnings, domain.LineWarning{
				Line:   line,
				Kind:   domain.WarningUnknownShell,
				Detail: fmt.Sprintf("shell %q", record.Shell),
			})
		}

		if s.Auditor != nil {
			s.auditLabel(&report, line, record, maxFindings)
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("scan %s: %w", file, err)
	}

	for _, shell := range []domain.Shell{domain.ShellBash, domain.ShellPowerShell} {
		if report.Shells[string(shell)] == 0 {
			report.MissingShells = append(report.MissingShells, string(shell))
		}
	}
	report.Ready = len(report.MissingShells) == 0

	s.Logger.Debug("analysis finished", map[string]interface{}{
		"file":     file,
		"total":    report.Total,
		"warnings": len(report.Warnings),
	})

	return report, nil
}

// auditLabel compares a record's danger label against the rule engine.
// Findings are advisory; they never change counts or readiness.
func (s *Service) auditLabel(report *domain.DatasetReport, line int, record domain.Record, maxFindings int) {
	match := s.Auditor.Evaluate(record.Command)
	switch {
	case match.Dangerous && !record.Dangerous:
		report.UnderLabeled++
		if len(report.Findings) < maxFindings {
			report.Findings = append(report.Findings, domain.AuditFinding{
				Line:    line,
				Kind:    domain.FindingUnderLabeled,
				Command: record.Command,
				Reasons: match.Reasons,
			})
		}
	case record.Dangerous && !match.Dangerous:
		report.OverLabeled++
		if len(report.Findings) < maxFindings {
			report.Findings = append(report.Findings, domain.AuditFinding{
				Line:    line,
				Kind:    domain.FindingOverLabeled,
				Command: record.Command,
			})
		}
	}
}
