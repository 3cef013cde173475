package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"dashboard/internal/avatar"
	"dashboard/internal/config"
	"dashboard/internal/exitcode"
	"dashboard/internal/output"
	"dashboard/internal/profile"
	"dashboard/internal/service"
)

func init() {
	Register(&ProfileCmd{})
}

// ProfileCmd implements the profile command. With no flags it prints the
// profile; otherwise it runs an edit session with the given fields and saves.
type ProfileCmd struct {
	name       optString
	email      optString
	avatarURL  optString
	avatarFile optString
}

// SetName sets the --name flag (for testing).
func (c *ProfileCmd) SetName(v string) { c.name.Set(v) }

// SetEmail sets the --email flag (for testing).
func (c *ProfileCmd) SetEmail(v string) { c.email.Set(v) }

// SetAvatarURL sets the --avatar flag (for testing).
func (c *ProfileCmd) SetAvatarURL(v string) { c.avatarURL.Set(v) }

// SetAvatarFile sets the --avatar-file flag (for testing).
func (c *ProfileCmd) SetAvatarFile(v string) { c.avatarFile.Set(v) }

func (c *ProfileCmd) Name() string       { return "profile" }
func (c *ProfileCmd) Aliases() []string  { return nil }
func (c *ProfileCmd) Synopsis() string   { return "Print or edit the profile" }
func (c *ProfileCmd) NeedsService() bool { return true }

func (c *ProfileCmd) Usage() string {
	return "dashboard profile [--name <name>] [--email <email>] [--avatar <url> | --avatar-file <path>]"
}

func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {
	*c = ProfileCmd{}
	fs.Var(&c.name, "name", "")
	fs.Var(&c.email, "email", "")
	fs.Var(&c.avatarURL, "avatar", "")
	fs.Var(&c.avatarFile, "avatar-file", "")
}

func (c *ProfileCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.avatarURL.set && c.avatarFile.set {
		fmt.Fprintln(errOut, "error: cannot use both --avatar and --avatar-file")
		return exitcode.UserError
	}

	user, err := svc.User(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read profile: %v\n", err)
		return exitcode.DataError
	}

	if !c.editing() {
		output.FormatProfile(out, user)
		return exitcode.Success
	}

	ed := profile.New()
	ed.Begin(user)
	if c.name.set {
		ed.SetName(c.name.value)
	}
	if c.email.set {
		ed.SetEmail(c.email.value)
	}
	if c.avatarURL.set {
		ed.SetAvatarURL(c.avatarURL.value)
	}
	if c.avatarFile.set {
		if code := c.upload(ctx, cfg, ed, errOut); code != exitcode.Success {
			ed.Cancel()
			return code
		}
	}

	updated, _ := ed.Merged()
	if err := svc.UpdateUser(ctx, updated); err != nil {
		ed.Cancel()
		fmt.Fprintf(errOut, "error: failed to update profile: %v\n", err)
		return exitcode.DataError
	}
	ed.Save()
	cfg.Debugf("updated profile for user %d", updated.ID)

	if !cfg.Quiet {
		output.FormatProfile(out, updated)
	}
	return exitcode.Success
}

// upload reads --avatar-file into the editor.
func (c *ProfileCmd) upload(ctx context.Context, cfg *config.Config, ed *profile.Editor, errOut io.Writer) int {
	ed.SelectMethod(profile.MethodUpload)

	f, err := avatar.Stat(c.avatarFile.value)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	up, err := ed.BeginUpload(ctx, f)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	cfg.Debugf("reading %s (%s, %d bytes)", f.Path, f.MediaType, f.Size)

	data, err := up.Read()
	ed.CompleteUpload(up, data, err)
	if err != nil {
		fmt.Fprintf(errOut, "error: upload failed: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

func (c *ProfileCmd) editing() bool {
	return c.name.set || c.email.set || c.avatarURL.set || c.avatarFile.set
}

// optString is a string flag that records whether it was given, so an
// explicitly empty value can be told apart from an absent one.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string { return o.value }

func (o *optString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}
