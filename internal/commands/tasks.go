package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/output"
	"dashboard/internal/service"
)

func init() {
	Register(&TasksCmd{})
	Register(&StatsCmd{})
}

// TasksCmd implements the tasks command.
type TasksCmd struct{}

func (c *TasksCmd) Name() string       { return "tasks" }
func (c *TasksCmd) Aliases() []string  { return []string{"list"} }
func (c *TasksCmd) Synopsis() string   { return "Print the task list" }
func (c *TasksCmd) Usage() string      { return "dashboard tasks" }
func (c *TasksCmd) NeedsService() bool { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read tasks: %v\n", err)
		return exitcode.DataError
	}
	output.FormatTasks(out, tasks)
	return exitcode.Success
}

// StatsCmd implements the stats command.
type StatsCmd struct{}

func (c *StatsCmd) Name() string       { return "stats" }
func (c *StatsCmd) Aliases() []string  { return nil }
func (c *StatsCmd) Synopsis() string   { return "Print task statistics" }
func (c *StatsCmd) Usage() string      { return "dashboard stats" }
func (c *StatsCmd) NeedsService() bool { return true }

func (c *StatsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatsCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	snap, code := loadSnapshot(ctx, svc, errOut)
	if code != exitcode.Success {
		return code
	}
	output.FormatStats(out, snap.Stats)
	return exitcode.Success
}
