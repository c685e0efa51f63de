package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/tripboard/internal/backup"
	"github.com/julianstephens/tripboard/internal/storage"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Back up the state database."`
	List    BackupListCmd    `cmd:"" help:"List state backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the state database from a backup."`
}

func backupManager(ctx *Context) (*backup.Manager, error) {
	if _, ok := ctx.Store.(*storage.SQLiteStore); !ok {
		return nil, fmt.Errorf("backups require the SQLite store (store_path ending in .db)")
	}
	return backup.NewManager(ctx.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(ctx.Out, "Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		_, _ = fmt.Fprintf(ctx.Out, "No backups in %s\n", mgr.GetBackupDir())
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Created"), bold.Sprint("Size"), bold.Sprint("Path"))
	for _, b := range backups {
		tbl.AddRow(humanize.Time(b.Timestamp), humanize.Bytes(uint64(b.Size)), b.Path)
	}
	_, _ = fmt.Fprintln(ctx.Out, tbl)
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore." type:"path"`
}

func (cmd *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cmd.Path); err != nil {
		return fmt.Errorf("backup not found: %w", err)
	}

	// The store holds the database open; release it before replacing the file.
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := mgr.RestoreBackup(cmd.Path); err != nil {
		return err
	}
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("restored, but failed to reopen store: %w", err)
	}
	_, _ = fmt.Fprintf(ctx.Out, "Restored %s\n", cmd.Path)
	return nil
}
