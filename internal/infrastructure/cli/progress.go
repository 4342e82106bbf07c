package cli

import (
	"fmt"
	"io"

	"github.com/doeshing/shai-forge/internal/ports"
)

// ConsoleProgress prints periodic generation progress lines.
type ConsoleProgress struct {
	out io.Writer
}

// NewConsoleProgress builds a progress reporter writing to out.
func NewConsoleProgress(out io.Writer) *ConsoleProgress {
	return &ConsoleProgress{out: out}
}

// Progress implements ports.ProgressReporter.
func (p *ConsoleProgress) Progress(produced, target int) {
	fmt.Fprintf(p.out, "Generated %d of %d items...\n", produced, target)
}

var _ ports.ProgressReporter = (*ConsoleProgress)(nil)
