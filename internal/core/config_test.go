package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "pathux.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir, path
}

func TestSetupEnv_Defaults(t *testing.T) {
	cfg, err := SetupEnv(&Flags{})
	if err != nil {
		t.Fatalf("SetupEnv() error = %v", err)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatText)
	}
	if cfg.HomeDir != "" || cfg.WorkDir != "" {
		t.Errorf("unexpected dirs: home=%q work=%q", cfg.HomeDir, cfg.WorkDir)
	}
}

func TestSetupEnv_ConfigFile(t *testing.T) {
	dir, path := writeConfig(t, `
home_dir: home
work_dir: /srv/work
format: yaml
list:
  max_goroutines: 4
  filter: "file && name endsWith '.go'"
`)

	cfg, err := SetupEnv(&Flags{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("SetupEnv() error = %v", err)
	}

	if want := filepath.Join(dir, "home"); cfg.HomeDir != want {
		t.Errorf("HomeDir = %q, want %q", cfg.HomeDir, want)
	}
	if cfg.WorkDir != "/srv/work" {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, "/srv/work")
	}
	if cfg.Format != FormatYAML {
		t.Errorf("Format = %q, want %q", cfg.Format, FormatYAML)
	}
	if cfg.List.MaxGoroutines != 4 {
		t.Errorf("List.MaxGoroutines = %d, want 4", cfg.List.MaxGoroutines)
	}
	if cfg.List.Filter != "file && name endsWith '.go'" {
		t.Errorf("List.Filter = %q", cfg.List.Filter)
	}
}

func TestSetupEnv_FlagsOverrideConfig(t *testing.T) {
	_, path := writeConfig(t, "home_dir: /from/config\nwork_dir: /from/config/work\n")

	cfg, err := SetupEnv(&Flags{
		ConfigFilePath: path,
		HomeDir:        "/from/flags",
	})
	if err != nil {
		t.Fatalf("SetupEnv() error = %v", err)
	}

	if cfg.HomeDir != "/from/flags" {
		t.Errorf("HomeDir = %q, want %q", cfg.HomeDir, "/from/flags")
	}
	if cfg.WorkDir != "/from/config/work" {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, "/from/config/work")
	}
}

func TestSetupEnv_Errors(t *testing.T) {
	_, invalidFormat := writeConfig(t, "format: json\n")
	_, invalidYAML := writeConfig(t, "list: [\n")

	tests := []struct {
		name    string
		flags   Flags
		wantMsg string
	}{
		{
			name:    "missing file",
			flags:   Flags{ConfigFilePath: filepath.Join(t.TempDir(), "missing.yml")},
			wantMsg: "does not exist",
		},
		{
			name:    "invalid format",
			flags:   Flags{ConfigFilePath: invalidFormat},
			wantMsg: "invalid format",
		},
		{
			name:    "invalid yaml",
			flags:   Flags{ConfigFilePath: invalidYAML},
			wantMsg: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SetupEnv(&tt.flags)
			if err == nil {
				t.Fatal("SetupEnv() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("SetupEnv() error = %v, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestConfigFile_Resolver(t *testing.T) {
	cfg := ConfigFile{HomeDir: "/home/test", WorkDir: "/home/test/src"}
	paths := cfg.Resolver()

	got, err := paths.Absolute("~/notes")
	if err != nil {
		t.Fatalf("Absolute() error = %v", err)
	}
	if want := filepath.Join("/home/test", "notes"); got != want {
		t.Errorf("Absolute() = %q, want %q", got, want)
	}

	rel, err := paths.SimpleRelative("/home/test/src/pkg")
	if err != nil {
		t.Fatalf("SimpleRelative() error = %v", err)
	}
	if rel != "pkg" {
		t.Errorf("SimpleRelative() = %q, want %q", rel, "pkg")
	}
}
