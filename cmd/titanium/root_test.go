// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"titanium-cli/internal/config"
	"titanium-cli/internal/discovery"
	"titanium-cli/internal/registry"
	"titanium-cli/internal/testutil"
	"titanium-cli/pkg/cmdmeta"
)

type testApp struct {
	app       *App
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	configDir string
}

// newTestApp writes a config whose commands path holds build and clean, and
// returns an App reading only from the temp dir.
func newTestApp(t *testing.T, deps Dependencies) *testApp {
	t.Helper()

	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config")
	cmdsDir := filepath.Join(dir, "commands")

	testutil.WriteFile(t, filepath.Join(cfgDir, "config.cue"), `paths: commands: ["`+filepath.ToSlash(cmdsDir)+`"]`)
	testutil.WriteFile(t, filepath.Join(cmdsDir, "build.cue"), `
desc: "builds the project"
flags: force: {abbr: "f", desc: "force a full rebuild"}
options: platform: {hint: "name", desc: "target platform", values: ["ios", "android"], required: true}
`)
	testutil.WriteFile(t, filepath.Join(cmdsDir, "clean.toml"), `desc = "removes build output"`)
	testutil.WriteFile(t, filepath.Join(cmdsDir, "__global__.cue"), `flags: help: {abbr: "h", desc: "displays help"}`)

	var stdout, stderr bytes.Buffer
	deps.ConfigDir = cfgDir
	deps.Stdout = &stdout
	deps.Stderr = &stderr
	if deps.Discovery == nil {
		deps.Discovery = DiscoveryFunc(func(_ context.Context, cfg *config.Config) (*discovery.Result, error) {
			return discovery.New(cfg, discovery.WithCommandsDir("")).Discover()
		})
	}

	return &testApp{app: NewApp(deps), stdout: &stdout, stderr: &stderr, configDir: cfgDir}
}

func (ta *testApp) run(args ...string) int {
	return run(context.Background(), ta.app, args)
}

func TestRootShowsGeneralHelp(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	if code := ta.run("--no-banner"); code != ExitCodeOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, ta.stderr)
	}

	out := ta.stdout.String()
	if !strings.HasPrefix(out, "Usage: titanium <command> [options]\n\nCommands:\n") {
		t.Errorf("unexpected start of output:\n%s", out)
	}
	for _, want := range []string{"build   builds the project", "clean   removes build output", "Global Flags:", "-h, --help"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if ta.stderr.Len() != 0 {
		t.Errorf("unexpected stderr:\n%s", ta.stderr)
	}
}

func TestBannerPrintsFirst(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	ta.run()

	want := "Titanium Command-Line Interface, version dev\nCopyright (c) 2012-2026 the Titanium CLI authors. All Rights Reserved.\n\nUsage:"
	if !strings.HasPrefix(ta.stdout.String(), want) {
		t.Errorf("output should start with the banner:\n%s", ta.stdout)
	}
}

func TestCommandHelpEntryPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"help command", []string{"help", "build"}},
		{"repeated help", []string{"help", "help", "build"}},
		{"bare command", []string{"build"}},
		{"help flag", []string{"build", "--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ta := newTestApp(t, Dependencies{})
			if code := ta.run(append(tt.args, "--no-banner")...); code != ExitCodeOK {
				t.Fatalf("exit code = %d, stderr:\n%s", code, ta.stderr)
			}

			out := ta.stdout.String()
			wantUsage := "Usage: titanium build --platform <name> [--force]\n\nBuilds the project.\n"
			if !strings.HasPrefix(out, wantUsage) {
				t.Errorf("output should start with %q, got:\n%s", wantUsage, out)
			}
			if !strings.Contains(out, "Build Options:") || !strings.Contains(out, "--platform <name>") {
				t.Errorf("missing options section:\n%s", out)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	if code := ta.run("help", "bld", "--no-banner"); code != ExitCodeFailure {
		t.Errorf("exit code = %d, want %d", code, ExitCodeFailure)
	}

	out := ta.stdout.String()
	if !strings.HasPrefix(out, "[ERROR] Unrecognized command \"bld\"\n\nDid you mean build?\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Commands:") {
		t.Errorf("general listing should follow the notice:\n%s", out)
	}
}

func TestConfigErrorIsCarriedIntoHelp(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	missing := filepath.Join(t.TempDir(), "missing.cue")

	if code := ta.run("--config", missing, "--no-banner"); code != ExitCodeFailure {
		t.Errorf("exit code = %d, want %d", code, ExitCodeFailure)
	}

	if !strings.HasPrefix(ta.stderr.String(), "[ERROR] failed to load configuration: "+missing) {
		t.Errorf("stderr should start with the carried exception:\n%s", ta.stderr)
	}
	out := ta.stdout.String()
	if !strings.Contains(out, "Usage: titanium <command> [options]") {
		t.Errorf("help should still be printed:\n%s", out)
	}
	if !strings.Contains(out, "Failed to load configuration") {
		t.Errorf("linked issue should be rendered:\n%s", out)
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	if code := ta.run("--log-level", "loud", "--no-banner"); code != ExitCodeFailure {
		t.Errorf("exit code = %d, want %d", code, ExitCodeFailure)
	}
	if !strings.Contains(ta.stderr.String(), "failed to set log level: loud") {
		t.Errorf("stderr missing log level error:\n%s", ta.stderr)
	}
	if !strings.Contains(ta.stdout.String(), "Invalid log level") {
		t.Errorf("linked issue should be rendered:\n%s", ta.stdout)
	}
}

func TestPanicIsReportedWithStack(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{
		Loader: registry.LoaderFunc(func(string) (*cmdmeta.Metadata, error) {
			panic("boom")
		}),
	})

	if code := ta.run("help", "build", "--no-banner"); code != ExitCodePanic {
		t.Errorf("exit code = %d, want %d", code, ExitCodePanic)
	}

	lines := strings.Split(strings.TrimSpace(ta.stderr.String()), "\n")
	if lines[0] != "[ERROR] panic: boom" {
		t.Errorf("first stderr line = %q", lines[0])
	}
	if len(lines) < 3 {
		t.Errorf("expected a stack trace, got:\n%s", ta.stderr)
	}
}

func TestDiscoveryDiagnosticsAreLogged(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{
		Discovery: DiscoveryFunc(func(_ context.Context, _ *config.Config) (*discovery.Result, error) {
			return &discovery.Result{
				Table: registry.NewTable(),
				Diagnostics: []discovery.Diagnostic{
					{Severity: discovery.SeverityError, Code: discovery.CodePathUnreadable, Message: "cannot read", Path: "/nope"},
					{Severity: discovery.SeverityWarning, Code: discovery.CodeNoCommands, Message: "nothing found"},
				},
			}, nil
		}),
	})

	ta.run("--no-banner", "--log-level", "debug")

	if got, want := ta.stdout.String(), "[WARN] /nope: cannot read\n"; !strings.HasPrefix(got, want) {
		t.Errorf("stdout should start with %q, got:\n%s", want, got)
	}
	if !strings.Contains(ta.stderr.String(), "[DEBUG] nothing found") {
		t.Errorf("stderr missing debug diagnostic:\n%s", ta.stderr)
	}
}

func TestQuietSuppressesOutput(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	ta.run("--quiet", "help", "build")

	if ta.stdout.Len() != 0 || ta.stderr.Len() != 0 {
		t.Errorf("expected no output, got stdout %q stderr %q", ta.stdout, ta.stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	if code := ta.run("version"); code != ExitCodeOK {
		t.Fatalf("exit code = %d", code)
	}
	if got := ta.stdout.String(); got != "dev (built from source)\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestConfigCommands(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	if code := ta.run("config", "show"); code != ExitCodeOK {
		t.Fatalf("config show exit code = %d, stderr:\n%s", code, ta.stderr)
	}
	if !strings.Contains(ta.stdout.String(), `log_level: "warn"`) {
		t.Errorf("config show output:\n%s", ta.stdout)
	}

	ta.stdout.Reset()
	ta.run("config", "path")
	want := filepath.Join(ta.configDir, "config.cue")
	if got := strings.TrimSpace(ta.stdout.String()); got != want {
		t.Errorf("config path = %q, want %q", got, want)
	}

	ta.stdout.Reset()
	ta.run("config", "init")
	if !strings.Contains(ta.stdout.String(), "already exists") {
		t.Errorf("config init should keep the existing file:\n%s", ta.stdout)
	}
}

func TestConfigInitCreatesFile(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	target := filepath.Join(t.TempDir(), "fresh", "config.cue")

	if code := ta.run("--config", target, "config", "init"); code != ExitCodeOK {
		t.Fatalf("exit code = %d, stderr:\n%s", code, ta.stderr)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(ta.stdout.String(), "Created "+target) {
		t.Errorf("unexpected output:\n%s", ta.stdout)
	}
}

func TestBuiltinCommandsKeepCobraHelp(t *testing.T) {
	t.Parallel()

	ta := newTestApp(t, Dependencies{})
	ta.run("config", "--help")

	if !strings.Contains(ta.stdout.String(), "Manage titanium configuration") {
		t.Errorf("config --help should print Cobra help:\n%s", ta.stdout)
	}
}
