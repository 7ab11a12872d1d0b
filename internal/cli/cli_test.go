package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"worldcup-dashboard/internal/model"
	"worldcup-dashboard/internal/present"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// execute runs the root command with args and returns what it printed
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeWithStderr(t, args...)
	return out, err
}

// executeWithStderr also returns what the command wrote to stderr
func executeWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Flag values live in package vars and survive between runs
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}

	buf, errBuf := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), errBuf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, Version) {
		t.Errorf("Expected version %s, got %q", Version, out)
	}
}

func TestWins(t *testing.T) {
	out, err := execute(t, "wins", "Brazil")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "Brazil has won 5 times.\n" {
		t.Errorf("Unexpected output %q", out)
	}

	if _, err := execute(t, "wins", "England"); err == nil {
		t.Error("Expected error for a name outside the reference set")
	}

	out, err = execute(t, "wins")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 8 {
		t.Fatalf("Expected header and 7 title holders, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "Brazil") {
		t.Errorf("Expected Brazil first, got %q", lines[1])
	}
}

func TestMatch(t *testing.T) {
	out, err := execute(t, "match", "1930")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "Winner: Uruguay, Runner-Up: Argentina\n" {
		t.Errorf("Unexpected output %q", out)
	}

	if _, err := execute(t, "match", "1942"); err == nil {
		t.Error("Expected error for a year without a final")
	}
	if _, err := execute(t, "match", "next"); err == nil {
		t.Error("Expected error for a non-integer year")
	}

	out, err = execute(t, "match")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n := len(strings.Split(strings.TrimSpace(out), "\n")); n != 22 {
		t.Errorf("Expected header and 21 finals, got %d lines", n)
	}
}

func TestMap(t *testing.T) {
	out, err := execute(t, "map")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(out, present.MapTitle) {
		t.Errorf("Expected map title first, got %q", out)
	}

	bands := map[string]string{}
	for _, line := range strings.Split(out, "\n")[1:] {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			bands[fields[0]] = fields[1]
		}
	}
	if bands["Brazil"] != "red" {
		t.Errorf("Expected Brazil red, got %q", bands["Brazil"])
	}
	if bands["Germany"] != "orange" {
		t.Errorf("Expected Germany orange, got %q", bands["Germany"])
	}
	if bands["Spain"] != "yellow" {
		t.Errorf("Expected Spain yellow, got %q", bands["Spain"])
	}
	if _, ok := bands["Canada"]; ok {
		t.Error("Expected countries without a title to be skipped")
	}
}

func TestExport(t *testing.T) {
	out, err := execute(t, "export", "--winners")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "country,wins" || len(lines) != 8 {
		t.Errorf("Unexpected CSV:\n%s", out)
	}

	out, err = execute(t, "export", "--format", "json")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, `"total_wins": 20`) {
		t.Errorf("Expected total_wins 20 in JSON export, got:\n%s", out)
	}

	if _, err := execute(t, "export", "--format", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestExport_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "wins.json")

	out, err := execute(t, "export", "--out", path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out != "" {
		t.Errorf("Expected nothing on stdout, got %q", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected export file, got %v", err)
	}
	// Format follows the extension
	if !strings.Contains(string(data), `"export_type": "win_counts"`) {
		t.Errorf("Expected JSON export, got:\n%s", data)
	}
}

func TestDebugFromEnvironment(t *testing.T) {
	_, stderr, err := executeWithStderr(t, "export", "--winners")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(stderr, "Exported") {
		t.Errorf("Expected no debug output by default, got %q", stderr)
	}

	t.Setenv("WORLDCUP_DEBUG", "true")
	_, stderr, err = executeWithStderr(t, "export", "--winners")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(stderr, "Exported 7 rows") {
		t.Errorf("Expected WORLDCUP_DEBUG to enable debug output, got %q", stderr)
	}
}

func TestConfigShow(t *testing.T) {
	t.Setenv("WORLDCUP_SERVER_ADDR", ":9999")

	out, err := execute(t, "config", "show", "--config", t.TempDir()+"/missing.yaml")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var cfg model.Config
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Expected YAML, got %v:\n%s", err, out)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Expected env to override addr, got %q", cfg.Server.Addr)
	}
	if cfg.Store.DSN != ":memory:" {
		t.Errorf("Expected default DSN, got %q", cfg.Store.DSN)
	}
	if cfg.Server.ReadTimeout != model.DefaultConfig().Server.ReadTimeout {
		t.Errorf("Expected default read timeout, got %v", cfg.Server.ReadTimeout)
	}
}
