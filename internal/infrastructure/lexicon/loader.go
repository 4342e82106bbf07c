package lexicon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/shai-forge/assets"
	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/pkg/filesystem"
	"github.com/doeshing/shai-forge/internal/ports"
)

// FileLoader loads the lexicon from ~/.shai-forge/lexicon.yaml (overridable
// via SHAI_FORGE_LEXICON). The embedded default is written on first use.
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.LexiconProvider.
func (l *FileLoader) Load(context.Context) (domain.Lexicon, error) {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Lexicon{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Lexicon{}, err
		}
		if err := os.WriteFile(path, assets.DefaultLexiconYAML, domain.SecureFilePermissions); err != nil {
			return domain.Lexicon{}, err
		}
		data = assets.DefaultLexiconYAML
	}

	var lex domain.Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return domain.Lexicon{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return hydrateDefaults(lex), nil
}

// Save writes the lexicon back to its resolved path.
func (l *FileLoader) Save(lex domain.Lexicon) error {
	raw, err := yaml.Marshal(lex)
	if err != nil {
		return err
	}
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

// Reset restores the embedded default lexicon.
func (l *FileLoader) Reset() error {
	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultLexiconYAML, domain.SecureFilePermissions)
}

// Path returns the resolved lexicon path.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("SHAI_FORGE_LEXICON"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".shai-forge", "lexicon.yaml")
}

// Default parses the embedded default lexicon.
func Default() (domain.Lexicon, error) {
	var lex domain.Lexicon
	if err := yaml.Unmarshal(assets.DefaultLexiconYAML, &lex); err != nil {
		return domain.Lexicon{}, fmt.Errorf("parse embedded lexicon: %w", err)
	}
	return hydrateDefaults(lex), nil
}

func hydrateDefaults(lex domain.Lexicon) domain.Lexicon {
	if lex.Ports.Min == 0 && lex.Ports.Max == 0 {
		lex.Ports = domain.PortRange{Min: 1000, Max: 9000}
	}
	return lex
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.LexiconProvider = (*FileLoader)(nil)
