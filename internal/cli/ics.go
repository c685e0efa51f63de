package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/tripboard/internal/ics"
)

type IcsCmd struct {
	Trip string `arg:"" optional:"" help:"Trip id (defaults to the first visible trip)."`
	Out  string `help:"Output file (defaults to stdout)." type:"path"`
}

func (cmd *IcsCmd) Run(ctx *Context) error {
	trip, err := ctx.ResolveTrip(cmd.Trip)
	if err != nil {
		return err
	}

	body := ics.Build(trip, ctx.Location, ctx.Now())
	if cmd.Out == "" || cmd.Out == "-" {
		_, err := fmt.Fprint(ctx.Out, body)
		return err
	}
	if err := os.WriteFile(cmd.Out, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	_, _ = fmt.Fprintln(ctx.Out, cmd.Out)
	return nil
}
