package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/julianstephens/tripboard/internal/constants"
)

// Renderer turns a page into PNG bytes.
type Renderer interface {
	Render(ctx context.Context, page []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions are the viewport parameters of a capture.
type RenderOptions struct {
	Width   int
	Scale   float64
	Timeout time.Duration
}

// ChromeRenderer captures pages with a headless Chromium via chromedp.
type ChromeRenderer struct{}

// Render writes page to a temporary file, loads it, waits for the ready
// marker, and takes a full-page screenshot at the requested device scale.
func (ChromeRenderer) Render(parent context.Context, page []byte, opts RenderOptions) ([]byte, error) {
	if opts.Width <= 0 {
		opts.Width = constants.DefaultExportWidth
	}
	if opts.Scale <= 0 {
		opts.Scale = constants.DefaultExportScale
	}
	if opts.Timeout <= 0 {
		opts.Timeout = constants.ExportTimeout
	}

	dir, err := os.MkdirTemp("", "tripboard-snapshot-*")
	if err != nil {
		return nil, fmt.Errorf("snapshot: failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "index.html")
	if err := os.WriteFile(file, page, 0o600); err != nil {
		return nil, fmt.Errorf("snapshot: failed to write page: %w", err)
	}

	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), 800, chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate("file://" + file),
		chromedp.WaitVisible(constants.SnapshotReadyAttr, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, 100),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("snapshot: chromedp run failed: %w", err)
	}
	return png, nil
}
