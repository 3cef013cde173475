package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/service"
	"dashboard/internal/tui"
)

func init() {
	Register(&TUICmd{})
}

// DebugLogFile receives debug logs, in the config dir, while the dashboard
// owns the terminal.
const DebugLogFile = "debug.log"

// ProgramRunner runs a bubbletea model to completion.
type ProgramRunner func(ctx context.Context, m tea.Model, out io.Writer) error

// TUICmd implements the interactive dashboard.
type TUICmd struct {
	run ProgramRunner
}

// SetRunner replaces the program runner (for testing).
func (c *TUICmd) SetRunner(r ProgramRunner) {
	c.run = r
}

func (c *TUICmd) Name() string       { return "tui" }
func (c *TUICmd) Aliases() []string  { return []string{"ui"} }
func (c *TUICmd) Synopsis() string   { return "Open the interactive dashboard" }
func (c *TUICmd) Usage() string      { return "dashboard tui" }
func (c *TUICmd) NeedsService() bool { return true }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TUICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	restore := detachLog(cfg)
	defer restore()

	m, err := tui.New(ctx, svc, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read dashboard: %v\n", err)
		return exitcode.DataError
	}

	run := c.run
	if run == nil {
		run = runProgram
	}
	if err := run(ctx, m, out); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UIError
	}
	return exitcode.Success
}

// detachLog moves cfg's debug logger off the terminal until the returned
// func restores it.
func detachLog(cfg *config.Config) func() {
	prev := cfg.Logger
	restore := func() { cfg.Logger = prev }
	if !cfg.Debug {
		cfg.SetLogOutput(io.Discard)
		return restore
	}

	path := filepath.Join(cfg.Dir, DebugLogFile)
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		cfg.SetLogOutput(io.Discard)
		return restore
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		cfg.SetLogOutput(io.Discard)
		return restore
	}
	cfg.SetLogOutput(f)
	return func() {
		f.Close()
		restore()
	}
}

func runProgram(ctx context.Context, m tea.Model, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
