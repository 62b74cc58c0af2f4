// Package capture renders a web page to an image with headless Chromium.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"time"

	"github.com/chromedp/chromedp"

	"epdctl/internal/log"
)

// DefaultTimeout bounds a capture when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options defines parameters for a Chromium-based screenshot capture.
type Options struct {
	// URL to capture.
	URL string

	// Width and Height are the viewport dimensions in pixels, normally the
	// logical size of the panel.
	Width  int
	Height int

	// WaitSelector, if set, is waited for before the screenshot. A page can
	// expose e.g. [data-ready="true"] once its content has loaded.
	WaitSelector string

	// Settle is an extra delay before the screenshot for final paints.
	Settle time.Duration

	// Timeout bounds the entire capture operation.
	Timeout time.Duration
}

// Capturer turns a page into an image. The dispatcher and the scheduler
// depend on this so tests can swap Chromium out.
type Capturer interface {
	Capture(ctx context.Context, opts Options) (image.Image, error)
}

// Chromium captures pages with chromedp. Each capture launches its own
// browser, which is closed before Capture returns.
type Chromium struct {
	// ExecAllocatorOptions are added to chromedp.DefaultExecAllocatorOptions.
	ExecAllocatorOptions []chromedp.ExecAllocatorOption
}

// Capture navigates to opts.URL, waits for the page, and returns the
// screenshot of the viewport decoded as an image.
func (c *Chromium) Capture(parent context.Context, opts Options) (image.Image, error) {
	if opts.URL == "" {
		return nil, errors.New("capture: URL is required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("capture: invalid viewport %dx%d", opts.Width, opts.Height)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], c.ExecAllocatorOptions...)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, allocOpts...)
	defer cancelAlloc()

	ctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height)),
		chromedp.Navigate(opts.URL),
	}
	if opts.WaitSelector != "" {
		tasks = append(tasks, chromedp.WaitVisible(opts.WaitSelector, chromedp.ByQuery))
	}
	if opts.Settle > 0 {
		tasks = append(tasks, chromedp.Sleep(opts.Settle))
	}
	tasks = append(tasks, chromedp.CaptureScreenshot(&png))

	start := time.Now()
	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("capture: chromedp run failed: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(png))
	if err != nil {
		return nil, fmt.Errorf("capture: decode screenshot: %w", err)
	}
	log.Info("capture: page captured", "url", opts.URL, "size", img.Bounds().Size(), "took", time.Since(start))
	return img, nil
}
