package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/shai-forge/internal/app"
	"github.com/doeshing/shai-forge/internal/application/analyze"
	"github.com/doeshing/shai-forge/internal/application/generate"
	lexiconapp "github.com/doeshing/shai-forge/internal/application/lexicon"
	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/infrastructure/audit"
	lexiconstore "github.com/doeshing/shai-forge/internal/infrastructure/lexicon"
	"github.com/doeshing/shai-forge/internal/version"
)

func newGenerateCommand(container *app.Container) *cobra.Command {
	var (
		count       int
		output      string
		seed        int64
		attempts    int
		lexiconPath string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the instruction-tuning dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := container.GenerateService
			if svc == nil {
				return fmt.Errorf("generate service unavailable")
			}
			if lexiconPath != "" {
				svc.Lexicon = lexiconstore.NewFileLoader(lexiconPath)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Generating unique examples...")
			result, err := svc.Run(generate.Request{
				Context:     cmd.Context(),
				Count:       count,
				Output:      output,
				Seed:        seed,
				MaxAttempts: attempts,
				Force:       force,
			})
			if err != nil {
				return err
			}
			if result.Aborted {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted. Existing dataset left untouched.")
				return nil
			}
			renderRunSummary(cmd.OutOrStdout(), result.Run)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", domain.DefaultTargetCount, "Unique records to generate")
	cmd.Flags().StringVar(&output, "output", domain.DefaultOutputFile, "Output dataset path")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 derives one from the clock)")
	cmd.Flags().IntVar(&attempts, "attempts", 0, "Attempt cap before giving up (0 = 50x count)")
	cmd.Flags().StringVar(&lexiconPath, "lexicon", "", "Lexicon file override")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing dataset without asking")
	return cmd
}

func newAnalyzeCommand(container *app.Container) *cobra.Command {
	var (
		rulesPath   string
		maxWarnings int
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Check a generated dataset for integrity and label quality",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := container.AnalyzeService
			if svc == nil {
				return fmt.Errorf("analyze service unavailable")
			}
			if rulesPath != "" {
				auditor, err := audit.NewRuleAuditor(rulesPath)
				if err != nil {
					return err
				}
				svc.Auditor = auditor
			}

			file := domain.DefaultOutputFile
			if len(args) == 1 {
				file = args[0]
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Analyzing %s...\n", file)
			report, err := svc.Run(analyze.Request{
				Context: cmd.Context(),
				File:    file,
			})
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), report, maxWarnings)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Audit rules file override")
	cmd.Flags().IntVar(&maxWarnings, "max-warnings", domain.DefaultMaxWarningsShown, "Warnings to print before truncating")
	return cmd
}

func newLexiconCommand(container *app.Container) *cobra.Command {
	lexiconCmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Inspect the generation lexicon",
	}

	lexiconCmd.AddCommand(
		newLexiconShowCommand(container),
		newLexiconPathCommand(container),
		newLexiconValidateCommand(container),
		newLexiconDiffCommand(container),
		newLexiconResetCommand(container),
	)

	return lexiconCmd
}

func newLexiconShowCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active lexicon as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := container.LexiconLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := yaml.Marshal(lex)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}

func newLexiconPathCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved lexicon path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.LexiconLoader.Path())
			return nil
		},
	}
}

func newLexiconValidateCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the lexicon and estimate its capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			lex, err := container.LexiconLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := lexiconapp.Validate(lex); err != nil {
				return err
			}
			estimate, err := lexiconapp.EstimateDistinctRecords(lex)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Lexicon OK.\nDistinct record lower bound: %d\n", estimate)
			if estimate < domain.DefaultTargetCount {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Warning: below the default target of %d; runs at that target will exhaust their attempt budget.\n",
					domain.DefaultTargetCount)
			}
			return nil
		},
	}
}

func newLexiconDiffCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Diff the active lexicon against the embedded default",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := container.LexiconLoader.Load(cmd.Context())
			if err != nil {
				return err
			}
			defaults, err := lexiconstore.Default()
			if err != nil {
				return err
			}
			diff := cmp.Diff(defaults, current)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Lexicon matches the embedded default.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}

func newLexiconResetCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the embedded default lexicon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.LexiconLoader.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored default lexicon at %s\n", container.LexiconLoader.Path())
			return nil
		},
	}
}

func newRunsCommand(container *app.Container) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect generation run history",
	}

	runsCmd.AddCommand(
		newRunsListCommand(container),
		newRunsClearCommand(container),
	)

	return runsCmd
}

func newRunsListCommand(container *app.Container) *cobra.Command {
	var limit int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.RunStore == nil {
				return fmt.Errorf("run store unavailable")
			}
			records, err := container.RunStore.Records(limit, search)
			if err != nil {
				return fmt.Errorf("failed to retrieve run records: %w", err)
			}
			renderRunRecords(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultRunsLimit, "Max runs to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by run id or path fragment")
	return cmd
}

func newRunsClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear run history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.RunStore == nil {
				return fmt.Errorf("run store unavailable")
			}
			if err := container.RunStore.Clear(); err != nil {
				return fmt.Errorf("failed to clear run history: %w", err)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show SHAI Forge version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "SHAI Forge version %s\n", version.Version)

	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}

	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	return nil
}
