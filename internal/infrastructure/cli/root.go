package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/shai-forge/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	container.GenerateService.Prompter = NewPrompter(nil, nil)
	container.GenerateService.Progress = NewConsoleProgress(os.Stdout)

	root := &cobra.Command{
		Use:   "shai-forge",
		Short: "SHAI Forge - shell instruction dataset foundry",
		Long:  "SHAI Forge builds and vets the natural-language-to-shell-command dataset used to fine-tune local assistant models.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCommand(container))
	root.AddCommand(newAnalyzeCommand(container))
	root.AddCommand(newLexiconCommand(container))
	root.AddCommand(newRunsCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}
