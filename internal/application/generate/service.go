package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	lexiconapp "github.com/doeshing/shai-forge/internal/application/lexicon"
	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/ports"
)

// Service produces the dataset file end-to-end: sample templates, fill
// placeholders, deduplicate, shuffle, write, and record run provenance.
type Service struct {
	Lexicon     ports.LexiconProvider
	Dataset     ports.DatasetStore
	Runs        ports.RunRepository
	Environment ports.EnvironmentCollector
	Prompter    ports.OverwritePrompter
	Progress    ports.ProgressReporter
	Logger      ports.Logger
}

// Request configures one generation run.
type Request struct {
	Context context.Context
	// Count is the number of unique records to produce (default 20000).
	Count int
	// Output is the dataset path (default shell_instruct_dataset_v2.jsonl).
	Output string
	// Seed fixes the random source; 0 derives a seed from the clock.
	Seed int64
	// MaxAttempts caps generateEntry calls; 0 means 50x Count.
	MaxAttempts int
	// Force overwrites an existing output file without confirmation.
	Force bool
}

// Result summarizes a completed run.
type Result struct {
	Run domain.RunRecord
	// Aborted is true when the user declined to overwrite the output file.
	Aborted bool
}

// Run executes a full generation pass. The same seed against the same
// lexicon yields byte-identical output.
func (s *Service) Run(req Request) (Result, error) {
	if s.Lexicon == nil || s.Dataset == nil || s.Logger == nil {
		return Result{}, errors.New("generate.Service dependencies not satisfied")
	}

	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	lex, err := s.Lexicon.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load lexicon: %w", err)
	}
	if err := lexiconapp.Validate(lex); err != nil {
		return Result{}, fmt.Errorf("lexicon invalid: %w", err)
	}

	count := req.Count
	if count <= 0 {
		count = domain.DefaultTargetCount
	}
	output := req.Output
	if output == "" {
		output = domain.DefaultOutputFile
	}
	budget := req.MaxAttempts
	if budget <= 0 {
		budget = count * domain.DefaultAttemptMultiplier
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if s.Dataset.Exists(output) && !req.Force {
		if s.Prompter == nil || !s.Prompter.Enabled() {
			return Result{}, fmt.Errorf("%s already exists (use --force to overwrite)", output)
		}
		ok, err := s.Prompter.ConfirmOverwrite(output)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{Aborted: true}, nil
		}
	}

	rng := rand.New(rand.NewSource(seed))
	started := time.Now()

	seen := make(map[string]struct{}, count)
	records := make([]domain.Record, 0, count)
	attempts := 0
	duplicates := 0

	for len(records) < count {
		if attempts >= budget {
			return Result{}, fmt.Errorf(
				"attempt budget exhausted: %d attempts yielded %d of %d unique records; grow the lexicon or lower the target",
				attempts, len(records), count)
		}
		attempts++

		pair, err := generateEntry(rng, lex)
		if err != nil {
			return Result{}, fmt.Errorf("generate entry: %w", err)
		}
		for _, record := range pair {
			if len(records) == count {
				break
			}
			signature := record.Signature()
			if _, dup := seen[signature]; dup {
				duplicates++
				continue
			}
			seen[signature] = struct{}{}
			records = append(records, record)
			if s.Progress != nil && len(records)%domain.ProgressInterval == 0 {
				s.Progress.Progress(len(records), count)
			}
		}
	}

	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	if err := s.Dataset.Write(output, records); err != nil {
		return Result{}, fmt.Errorf("write dataset: %w", err)
	}

	run := domain.RunRecord{
		ID:          uuid.NewString(),
		StartedAt:   started,
		FinishedAt:  time.Now(),
		Seed:        seed,
		Target:      count,
		Produced:    len(records),
		Attempts:    attempts,
		Duplicates:  duplicates,
		OutputPath:  output,
		LexiconPath: s.Lexicon.Path(),
	}
	run.DurationMS = run.FinishedAt.Sub(run.StartedAt).Milliseconds()
	for _, record := range records {
		switch record.Shell {
		case domain.ShellBash:
			run.BashCount++
		case domain.ShellPowerShell:
			run.PowerShellCount++
		}
		if record.Dangerous {
			run.DangerousCount++
		} else {
			run.SafeCount++
		}
	}
	if s.Environment != nil {
		run.Environment = s.Environment.Collect()
	}

	// Provenance is best-effort; a failed save never fails the run.
	if s.Runs != nil {
		if err := s.Runs.Save(run); err != nil {
			s.Logger.Warn("run record not saved", map[string]interface{}{"error": err.Error()})
		}
	}

	s.Logger.Info("generation finished", map[string]interface{}{
		"produced":   run.Produced,
		"attempts":   run.Attempts,
		"duplicates": run.Duplicates,
		"output":     run.OutputPath,
	})

	return Result{Run: run}, nil
}
