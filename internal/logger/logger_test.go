package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWriter(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	L().Info("hidden")
	L().Warn("patch.refused", "path", "slot.svg")

	if err := cleanup(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record at warn level, got %q", buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if rec["msg"] != "patch.refused" || rec["path"] != "slot.svg" {
		t.Errorf("unexpected record %v", rec)
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Errorf("expected UTC timestamp, got %v", rec["time"])
	}

	// after cleanup the global logger discards
	L().Warn("dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("record written after cleanup")
	}
}

func TestSetupDebug(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()

	L().Debug("layout.built", "dots", 12)
	out := buf.String()
	if !strings.Contains(out, `"msg":"layout.built"`) {
		t.Errorf("debug record missing: %q", out)
	}
	if !strings.Contains(out, `"source"`) {
		t.Errorf("expected source location in debug mode: %q", out)
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slotdots.log")
	cleanup, err := Setup(Config{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if Path() != path {
		t.Errorf("Path() = %q, want %q", Path(), path)
	}
	L().Error("patch.failed")
	if err := cleanup(); err != nil {
		t.Fatal(err)
	}
	if Path() != "" {
		t.Errorf("Path() not reset after cleanup")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "patch.failed") {
		t.Errorf("log file missing record: %q", b)
	}
}

func TestSetupBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "slotdots.log")
	if _, err := Setup(Config{Path: path}); err == nil {
		t.Fatal("expected error for unwritable log path")
	}
}
