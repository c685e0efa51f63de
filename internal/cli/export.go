package cli

import (
	"context"
	"fmt"

	"github.com/julianstephens/tripboard/internal/snapshot"
)

type ExportCmd struct {
	Trip string `arg:"" optional:"" help:"Trip id (defaults to the first visible trip)."`
	Out  string `help:"Output directory (defaults to export_dir)." type:"path"`
}

func (cmd *ExportCmd) Run(ctx *Context) error {
	trip, err := ctx.ResolveTrip(cmd.Trip)
	if err != nil {
		return err
	}

	board := ctx.Presenter().Build(trip, ctx.Now().In(ctx.Location))
	path, err := ctx.Exporter(cmd.Out).Export(context.Background(), snapshot.NewRequest(board))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(ctx.Out, path)
	return nil
}
