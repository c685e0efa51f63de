package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tripboard/internal/cli"
	"github.com/julianstephens/tripboard/internal/config"
	"github.com/julianstephens/tripboard/internal/constants"
	"github.com/julianstephens/tripboard/internal/errors"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Trips   string `help:"Trip document (.json, .yaml or .toml). Overrides trips_path." type:"path"`
	Store   string `help:"State store path. Overrides store_path."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive agenda." default:"1"`
	List     cli.ListCmd     `cmd:"" help:"List trips."`
	Show     cli.ShowCmd     `cmd:"" help:"Print a trip's agenda as of now."`
	Toggle   cli.ToggleCmd   `cmd:"" help:"Toggle completion of an agenda item."`
	Export   cli.ExportCmd   `cmd:"" help:"Export a trip's agenda as a PNG snapshot."`
	Ics      cli.IcsCmd      `cmd:"" help:"Export a trip's agenda as iCalendar."`
	Watch    cli.WatchCmd    `cmd:"" help:"Re-export a snapshot on a cron schedule."`
	Reset    cli.ResetCmd    `cmd:"" help:"Clear all stored state."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the trip document for problems."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage state backups."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Inspect  cli.DebugCmd    `cmd:"" name:"debug" help:"Inspect stored state." hidden:""`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal travel itinerary with completion tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := run(kctx); err != nil {
		errors.Report(os.Stderr, err)
		os.Exit(1)
	}
}

func run(kctx *kong.Context) error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if CLI.Trips != "" {
		cfg.TripsPath = CLI.Trips
	}
	if CLI.Store != "" {
		cfg.StorePath = CLI.Store
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	configDir := config.Dir(CLI.Config)
	if err := logger.Init(logger.Options{Debug: cfg.Debug, Dir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store, err := storage.Open(config.ExpandPath(cfg.StorePath))
	if err != nil {
		return err
	}
	defer store.Close()

	appCtx, err := cli.NewContext(cfg, configDir, store)
	if err != nil {
		return err
	}
	return kctx.Run(appCtx)
}
