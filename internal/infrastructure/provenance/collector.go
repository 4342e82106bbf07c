package provenance

import (
	"os"
	"os/user"
	"runtime"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/ports"
	"github.com/doeshing/shai-forge/internal/version"
)

// Collector captures the environment a generation run executed in. All
// lookups are best-effort; missing values stay empty.
type Collector struct{}

// NewCollector builds a Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect implements ports.EnvironmentCollector.
func (*Collector) Collect() domain.RunEnvironment {
	env := domain.RunEnvironment{
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		ToolVersion: version.Version,
	}
	if host, err := os.Hostname(); err == nil {
		env.Hostname = host
	}
	if current, err := user.Current(); err == nil {
		env.Username = current.Username
	}
	if wd, err := os.Getwd(); err == nil {
		env.WorkingDir = wd
	}
	return env
}

var _ ports.EnvironmentCollector = (*Collector)(nil)
