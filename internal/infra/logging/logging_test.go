package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//nolint:paralleltest
func TestSetupFileWritesJSON(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "aura.log")

	closer := SetupFile(slog.LevelInfo, path)

	slog.Debug("hidden")
	slog.Info("visible", "identifier", "1234")

	err := closer.Close()
	if err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	out := string(raw)
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"identifier":"1234"`) {
		t.Fatalf("unexpected log output: %s", out)
	}

	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %s", out)
	}
}
