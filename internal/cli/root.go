package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/tripboard/internal/backup"
	"github.com/julianstephens/tripboard/internal/completion"
	"github.com/julianstephens/tripboard/internal/config"
	"github.com/julianstephens/tripboard/internal/locale"
	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/models"
	"github.com/julianstephens/tripboard/internal/presenter"
	"github.com/julianstephens/tripboard/internal/selector"
	"github.com/julianstephens/tripboard/internal/snapshot"
	"github.com/julianstephens/tripboard/internal/storage"
	"github.com/julianstephens/tripboard/internal/trips"
)

type Context struct {
	Config    *config.Config
	ConfigDir string
	Store     storage.Provider
	Location  *time.Location
	Locale    *locale.Locale
	Renderer  snapshot.Renderer
	Now       func() time.Time
	Out       io.Writer
}

// NewContext resolves the zone and language from cfg.
func NewContext(cfg *config.Config, configDir string, store storage.Provider) (*Context, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return &Context{
		Config:    cfg,
		ConfigDir: configDir,
		Store:     store,
		Location:  loc,
		Locale:    locale.New(cfg.Locale),
		Renderer:  snapshot.ChromeRenderer{},
		Now:       time.Now,
		Out:       color.Output,
	}, nil
}

// Trips loads the configured trip document, or the bundled one.
func (c *Context) Trips() ([]models.Trip, error) {
	collection, err := trips.Load(config.ExpandPath(c.Config.TripsPath))
	if err != nil {
		return nil, err
	}
	return collection.Trips, nil
}

// Completion returns the completion store over the configured key scheme.
func (c *Context) Completion() *completion.Store {
	scheme := completion.LegacyKeys
	if c.Config.NamespaceKeys {
		scheme = completion.NamespacedKeys
	}
	return completion.New(c.Store, scheme)
}

func (c *Context) Presenter() *presenter.Presenter {
	return presenter.New(c.Location, c.Locale, c.Completion())
}

// Exporter writes snapshots to dir, or to the configured export directory.
func (c *Context) Exporter(dir string) *snapshot.Exporter {
	if dir == "" {
		dir = config.ExpandPath(c.Config.ExportDir)
	}
	return &snapshot.Exporter{
		Renderer: c.Renderer,
		Dir:      dir,
		Lang:     c.Locale.Tag().String(),
		Options: snapshot.RenderOptions{
			Width: c.Config.ExportWidth,
			Scale: float64(c.Config.ExportScale),
		},
	}
}

// errNoTrips is returned by commands that need a visible trip.
type errNoTrips struct {
	msg string
}

func (e errNoTrips) Error() string {
	return e.msg
}

// ResolveTrip returns the visible trip with id, or the first visible trip
// when id is empty.
func (c *Context) ResolveTrip(id string) (models.Trip, error) {
	all, err := c.Trips()
	if err != nil {
		return models.Trip{}, err
	}
	sel := selector.New(all)
	if sel.Empty() {
		return models.Trip{}, errNoTrips{msg: c.Locale.T(locale.MsgNoTrips)}
	}
	if id != "" {
		if err := sel.Select(id); err != nil {
			return models.Trip{}, fmt.Errorf("trip %q: %w", id, err)
		}
	}
	trip, _ := sel.Selected()
	return trip, nil
}

// PerformAutomaticBackup backs up a SQLite store and logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
