package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/shai-forge/internal/domain"
)

func TestWriteAndScanRoundTrip(t *testing.T) {
	store := NewJSONLStore()
	path := filepath.Join(t.TempDir(), "dataset.jsonl")

	records := []domain.Record{
		{Prompt: "list files in /tmp", Command: "ls /tmp", Shell: domain.ShellBash},
		{Prompt: "list files in /tmp", Command: "Get-ChildItem -Path '/tmp'", Shell: domain.ShellPowerShell},
		{Prompt: "wipe /tmp", Command: "rm -rf /tmp/*", Dangerous: true, Shell: domain.ShellBash},
	}
	if err := store.Write(path, records); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var got []domain.Record
	var lines []int
	err := store.Scan(path, func(line int, data []byte) error {
		lines = append(lines, line)
		var rec domain.Record
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		got = append(got, rec)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, lines); diff != "" {
		t.Fatalf("line numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestScanHandsRawLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	content := "{\"prompt\":\"a\",\"command\":\"ls\",\"dangerous\":false,\"shell\":\"bash\"}\nnot json\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	store := NewJSONLStore()
	var raw []string
	err := store.Scan(path, func(line int, data []byte) error {
		raw = append(raw, string(data))
		return nil
	})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(raw) != 2 || raw[1] != "not json" {
		t.Fatalf("raw lines = %+v", raw)
	}
}

func TestExists(t *testing.T) {
	store := NewJSONLStore()
	path := filepath.Join(t.TempDir(), "dataset.jsonl")

	if store.Exists(path) {
		t.Fatal("Exists should be false before writing")
	}
	if err := store.Write(path, nil); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !store.Exists(path) {
		t.Fatal("Exists should be true after writing")
	}
}

func TestScanMissingFileFails(t *testing.T) {
	store := NewJSONLStore()
	if err := store.Scan(filepath.Join(t.TempDir(), "absent.jsonl"), func(int, []byte) error { return nil }); err == nil {
		t.Fatal("expected error for missing file")
	}
}
