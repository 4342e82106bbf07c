package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/doeshing/shai-forge/internal/domain"
	"github.com/doeshing/shai-forge/internal/ports"
)

// maxLineBytes bounds a single dataset line during scanning.
const maxLineBytes = 1 << 20

// JSONLStore reads and writes newline-delimited JSON dataset files, one
// record per line.
type JSONLStore struct {
	mu sync.Mutex
}

// NewJSONLStore builds the store.
func NewJSONLStore() *JSONLStore {
	return &JSONLStore{}
}

// Write replaces path with the marshaled records.
func (s *JSONLStore) Write(path string, records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			file.Close()
			return err
		}
		if _, err := writer.Write(append(data, '\n')); err != nil {
			file.Close()
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Scan streams path line by line, handing the visitor 1-based line numbers.
// The visitor's error aborts the scan and is returned as-is.
func (s *JSONLStore) Scan(path string, visit func(line int, data []byte) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		if err := visit(line, scanner.Bytes()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Exists reports whether a dataset file is already present at path.
func (s *JSONLStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ ports.DatasetStore = (*JSONLStore)(nil)
