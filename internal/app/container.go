package app

import (
	"context"

	"github.com/doeshing/shai-forge/internal/application/analyze"
	"github.com/doeshing/shai-forge/internal/application/generate"
	"github.com/doeshing/shai-forge/internal/infrastructure/audit"
	"github.com/doeshing/shai-forge/internal/infrastructure/dataset"
	lexiconstore "github.com/doeshing/shai-forge/internal/infrastructure/lexicon"
	"github.com/doeshing/shai-forge/internal/infrastructure/provenance"
	"github.com/doeshing/shai-forge/internal/infrastructure/runlog"
	"github.com/doeshing/shai-forge/internal/pkg/logger"
	"github.com/doeshing/shai-forge/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	GenerateService *generate.Service
	AnalyzeService  *analyze.Service
	LexiconLoader   *lexiconstore.FileLoader
	RunStore        ports.RunRepository
	Logger          ports.Logger
}

// BuildContainer constructs the dependency graph. Loading the lexicon once
// up front materializes the default file on first run and fails fast on a
// corrupted one.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	log := logger.NewStd(verbose)

	lexLoader := lexiconstore.NewFileLoader("")
	if _, err := lexLoader.Load(ctx); err != nil {
		return nil, err
	}

	datasetStore := dataset.NewJSONLStore()
	runStore := runlog.NewSQLiteStore()

	auditor, err := audit.NewRuleAuditor("")
	if err != nil {
		return nil, err
	}

	generateService := &generate.Service{
		Lexicon:     lexLoader,
		Dataset:     datasetStore,
		Runs:        runStore,
		Environment: provenance.NewCollector(),
		Logger:      log,
	}

	analyzeService := &analyze.Service{
		Dataset: datasetStore,
		Auditor: auditor,
		Logger:  log,
	}

	return &Container{
		GenerateService: generateService,
		AnalyzeService:  analyzeService,
		LexiconLoader:   lexLoader,
		RunStore:        runStore,
		Logger:          log,
	}, nil
}
