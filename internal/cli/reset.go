package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/julianstephens/tripboard/internal/instance"
	"github.com/julianstephens/tripboard/internal/locale"
)

type ResetCmd struct {
	NoBackup bool `help:"Skip the automatic backup of a SQLite store."`
}

func (cmd *ResetCmd) Run(ctx *Context) error {
	if pid, ok := instance.Running(ctx.ConfigDir); ok {
		warn := color.New(color.FgYellow)
		_, _ = warn.Fprintf(ctx.Out, "Warning: a tripboard session (pid %d) is open and will not see the reset until it reloads.\n", pid)
	}

	if !cmd.NoBackup {
		ctx.PerformAutomaticBackup()
	}

	if err := ctx.Completion().ResetAll(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.Out, ctx.Locale.T(locale.MsgResetDone))
	return nil
}
