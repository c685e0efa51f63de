// Package snapshot exports a rendered agenda as a PNG image.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/tripboard/internal/logger"
	"github.com/julianstephens/tripboard/internal/presenter"
)

// ErrNoTrip is returned when an export is requested without a trip.
var ErrNoTrip = errors.New("no trip selected")

// Request is everything an export needs, captured when the export is asked
// for so later selection changes do not affect it.
type Request struct {
	Title string
	Board presenter.Board
}

// NewRequest captures board for export.
func NewRequest(board presenter.Board) Request {
	return Request{Title: board.Title, Board: board}
}

// Exporter writes snapshot PNGs to a directory.
type Exporter struct {
	Renderer Renderer
	Dir      string
	Lang     string
	Options  RenderOptions
}

// Export renders req and writes <title>.png into the export directory. It
// returns the written path.
func (e *Exporter) Export(ctx context.Context, req Request) (string, error) {
	if req.Title == "" && len(req.Board.Sections) == 0 {
		return "", ErrNoTrip
	}

	page, err := RenderHTML(req.Board, e.Lang)
	if err != nil {
		return "", fmt.Errorf("snapshot: failed to render page: %w", err)
	}

	png, err := e.Renderer.Render(ctx, page, e.Options)
	if err != nil {
		return "", err
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: failed to create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(req.Title))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("snapshot: failed to write PNG: %w", err)
	}

	logger.Info("snapshot exported", "path", path, "size", humanize.Bytes(uint64(len(png))))
	return path, nil
}

// ExportLogged runs Export and logs failures instead of returning them.
func (e *Exporter) ExportLogged(ctx context.Context, req Request) (string, bool) {
	path, err := e.Export(ctx, req)
	if err != nil {
		logger.Error("export failed", "title", req.Title, "error", err)
		return "", false
	}
	return path, true
}

// FileName turns a title into "<title>.png", replacing path separators and
// characters most filesystems reject.
func FileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, title)
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		name = "tripboard"
	}
	return name + ".png"
}
