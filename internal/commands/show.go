package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"dashboard/internal/config"
	"dashboard/internal/dashboard"
	"dashboard/internal/exitcode"
	"dashboard/internal/output"
	"dashboard/internal/service"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command: the whole dashboard as text.
type ShowCmd struct{}

func (c *ShowCmd) Name() string       { return "show" }
func (c *ShowCmd) Aliases() []string  { return nil }
func (c *ShowCmd) Synopsis() string   { return "Print profile, statistics and tasks" }
func (c *ShowCmd) Usage() string      { return "dashboard show" }
func (c *ShowCmd) NeedsService() bool { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	snap, code := loadSnapshot(ctx, svc, errOut)
	if code != exitcode.Success {
		return code
	}

	output.FormatHeader(out, dashboard.Title, dashboard.Description)
	fmt.Fprintln(out)
	output.FormatSection(out, "Profile Information")
	output.FormatProfile(out, snap.User)
	fmt.Fprintln(out)
	output.FormatSection(out, "Statistics")
	output.FormatStats(out, snap.Stats)
	fmt.Fprintln(out)
	output.FormatSection(out, "Tasks")
	output.FormatTasks(out, snap.Tasks)
	return exitcode.Success
}

// loadSnapshot reads the dashboard state, reporting failures on errOut.
func loadSnapshot(ctx context.Context, svc service.Service, errOut io.Writer) (service.Snapshot, int) {
	snap, err := service.Load(ctx, svc)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read dashboard: %v\n", err)
		return service.Snapshot{}, exitcode.DataError
	}
	return snap, exitcode.Success
}
