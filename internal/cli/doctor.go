package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/tripboard/internal/backup"
	"github.com/julianstephens/tripboard/internal/instance"
	"github.com/julianstephens/tripboard/internal/storage"
	"github.com/julianstephens/tripboard/internal/validation"
)

type DoctorCmd struct{}

type checkResult struct {
	name string
	err  error
	warn bool
	info string
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	checks := []checkResult{
		checkTimezone(ctx),
		checkStore(ctx),
		checkSchema(ctx),
		checkBackups(ctx),
		checkTrips(ctx),
		checkSession(ctx),
	}

	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)

	failed := 0
	for _, c := range checks {
		switch {
		case c.err != nil && c.warn:
			_, _ = warn.Fprint(ctx.Out, "! ")
			_, _ = fmt.Fprintf(ctx.Out, "%s: %v\n", c.name, c.err)
		case c.err != nil:
			failed++
			_, _ = fail.Fprint(ctx.Out, "✗ ")
			_, _ = fmt.Fprintf(ctx.Out, "%s: %v\n", c.name, c.err)
		default:
			_, _ = ok.Fprint(ctx.Out, "✓ ")
			_, _ = fmt.Fprintf(ctx.Out, "%s: %s\n", c.name, c.info)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func checkTimezone(ctx *Context) checkResult {
	r := checkResult{name: "timezone"}
	if _, err := time.LoadLocation(ctx.Config.Timezone); err != nil {
		r.err = err
		return r
	}
	r.info = ctx.Config.Timezone
	return r
}

func checkStore(ctx *Context) checkResult {
	r := checkResult{name: "store"}
	if _, err := ctx.Store.Keys(); err != nil {
		r.err = fmt.Errorf("unreadable: %w", err)
		return r
	}
	r.info = ctx.Store.GetConfigPath()
	return r
}

func checkSchema(ctx *Context) checkResult {
	r := checkResult{name: "schema"}
	s, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		r.info = "not applicable"
		return r
	}
	current, latest, err := s.SchemaVersion()
	if err != nil {
		r.err = err
		return r
	}
	if current != latest {
		r.err = fmt.Errorf("version %d, expected %d", current, latest)
		return r
	}
	r.info = fmt.Sprintf("version %d", current)
	return r
}

func checkBackups(ctx *Context) checkResult {
	r := checkResult{name: "backups", warn: true}
	if _, ok := ctx.Store.(*storage.SQLiteStore); !ok {
		r.info = "not applicable"
		return r
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).ListBackups()
	if err != nil {
		r.err = err
		return r
	}
	if len(backups) == 0 {
		r.err = fmt.Errorf("none yet")
		return r
	}
	r.info = fmt.Sprintf("%d, newest %s", len(backups), backups[0].Timestamp.Format(time.RFC3339))
	return r
}

func checkTrips(ctx *Context) checkResult {
	r := checkResult{name: "trips"}
	all, err := ctx.Trips()
	if err != nil {
		r.err = err
		return r
	}
	result := validation.New().ValidateTrips(all)
	if result.HasConflicts() {
		r.err = fmt.Errorf("%d problem(s); run validate", len(result.Conflicts))
		return r
	}
	r.info = fmt.Sprintf("%d loaded", len(all))
	return r
}

func checkSession(ctx *Context) checkResult {
	r := checkResult{name: "session", warn: true}
	if pid, ok := instance.Running(ctx.ConfigDir); ok {
		r.err = fmt.Errorf("TUI running (pid %d)", pid)
		return r
	}
	r.info = "none running"
	return r
}
