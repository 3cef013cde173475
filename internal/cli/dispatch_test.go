package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dashboard/internal/backend/memory"
	"dashboard/internal/cli"
	"dashboard/internal/commands"
	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/service"
	"dashboard/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

func run(t *testing.T, factory cli.ServiceFactory, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv(config.EnvDebug, "")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "dashboard 0.1.0\n" {
		t.Errorf("expected 'dashboard 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, nil, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	_, stderr, code := run(t, nil, "show", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_ToggleUsesFactory(t *testing.T) {
	svc := testutil.NewFakeService()
	stdout, stderr, code := run(t, testFactory(svc), "toggle", "2")

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	if len(svc.Toggled) != 1 || svc.Toggled[0] != 2 {
		t.Errorf("expected toggle of task 2, got %v", svc.Toggled)
	}
	if !strings.Contains(stdout, "   2  [x] Review team feedback") {
		t.Errorf("expected toggled task in output, got:\n%s", stdout)
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	svc := testutil.NewFakeService()
	stdout, _, code := run(t, testFactory(svc), "done", "--quiet", "3")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
	if len(svc.Toggled) != 1 || svc.Toggled[0] != 3 {
		t.Errorf("expected toggle of task 3, got %v", svc.Toggled)
	}
}

func TestDispatcher_NoArgsOpensDashboard(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("seed unreadable")
	}
	_, stderr, code := run(t, factory)

	if code != exitcode.DataError {
		t.Errorf("expected exit code %d, got %d", exitcode.DataError, code)
	}
	expected := "error: failed to load dashboard: seed unreadable\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NoFactory(t *testing.T) {
	_, stderr, code := run(t, nil, "stats")

	if code != exitcode.DataError {
		t.Errorf("expected exit code %d, got %d", exitcode.DataError, code)
	}
	if stderr != "error: no dashboard backend configured\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	_, stderr, code := run(t, nil, "version", "--debug", "--config", dir)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "debug: config dir " + dir + "\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_SeedFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	seed := `user:
  id: 7
  name: Grace Hopper
  email: grace@example.com
  avatar: https://example.com/grace.png
tasks:
  - id: 1
    title: Write compiler
    completed: true
    priority: high
    due_date: 01-01-1952
  - id: 2
    title: Find the bug
    priority: urgent
    due_date: 09-09-1947
`
	if err := os.WriteFile(filepath.Join(dir, config.SeedFile), []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return memory.Open(ctx, cfg)
	}

	stdout, stderr, code := run(t, factory, "show", "--config", dir)

	if code != exitcode.Success {
		t.Fatalf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr)
	}
	for _, want := range []string{"[GH] Grace Hopper", "grace@example.com", "Find the bug  (urgent)", "Completion Rate   50%"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestDispatcher_InvalidSeed(t *testing.T) {
	dir := t.TempDir()
	seed := "user:\n  id: 0\n  name: Nobody\n"
	if err := os.WriteFile(filepath.Join(dir, config.SeedFile), []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return memory.Open(ctx, cfg)
	}

	_, stderr, code := run(t, factory, "tasks", "--config", dir)

	if code != exitcode.DataError {
		t.Errorf("expected exit code %d, got %d", exitcode.DataError, code)
	}
	if !strings.HasPrefix(stderr, "error: failed to load dashboard: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
