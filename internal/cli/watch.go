package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/snapshot"
)

const defaultWatchSpec = "*/15 * * * *"

type WatchCmd struct {
	Trip string `arg:"" optional:"" help:"Trip id (defaults to the first visible trip)."`
	Cron string `help:"Cron schedule (defaults to export_cron, then every 15 minutes)."`
	Out  string `help:"Output directory (defaults to export_dir)." type:"path"`
}

func (cmd *WatchCmd) Run(ctx *Context) error {
	spec := cmd.Cron
	if spec == "" {
		spec = ctx.Config.ExportCron
	}
	if spec == "" {
		spec = defaultWatchSpec
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("stopping watch", "signal", sig.String())
			cancel()
		case <-runCtx.Done():
		}
	}()

	return cmd.watch(runCtx, ctx, spec)
}

// watch exports once, then on every schedule tick until runCtx is done.
func (cmd *WatchCmd) watch(runCtx context.Context, ctx *Context, spec string) error {
	exp := ctx.Exporter(cmd.Out)
	exportOnce := func() {
		trip, err := ctx.ResolveTrip(cmd.Trip)
		if err != nil {
			logger.Error("watch: cannot resolve trip", "error", err)
			return
		}
		board := ctx.Presenter().Build(trip, ctx.Now().In(ctx.Location))
		if path, ok := exp.ExportLogged(runCtx, snapshot.NewRequest(board)); ok {
			_, _ = fmt.Fprintln(ctx.Out, path)
		}
	}

	c := cron.New(cron.WithLocation(ctx.Location))
	if _, err := c.AddFunc(spec, exportOnce); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}

	exportOnce()
	c.Start()
	logger.Info("watching", "spec", spec)

	<-runCtx.Done()
	<-c.Stop().Done()
	return nil
}
