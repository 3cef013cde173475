package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command. It lists the commands of Registry,
// or of DefaultRegistry when Registry is nil.
type HelpCmd struct {
	Registry *Registry
}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "dashboard help" }
func (c *HelpCmd) NeedsService() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	reg := c.Registry
	if reg == nil {
		reg = DefaultRegistry
	}
	writeHelp(out, reg.All())
	return exitcode.Success
}

func writeHelp(w io.Writer, cmds []Command) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  dashboard <command> [common flags] [args]")
	fmt.Fprintln(w, "  dashboard                 Open the interactive dashboard")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Commands:")
	for _, cmd := range cmds {
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "  %-16s %s\n", name, cmd.Synopsis())
		fmt.Fprintf(w, "  %-16s %s\n", "", cmd.Usage())
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, `Common flags:
  --config <dir>   Override config directory (seed.yaml is read from here)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

State is held in memory and discarded on exit.
`)
}
