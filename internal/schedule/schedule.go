// Package schedule runs the periodic display jobs on cron schedules.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/robfig/cron/v3"

	"epdctl/internal/capture"
	"epdctl/internal/display"
	"epdctl/internal/epd"
	"epdctl/internal/log"
)

// Config selects the jobs. An empty cron string disables its job.
type Config struct {
	// Refresh re-pushes the framebuffer, a full refresh that clears ghosting.
	Refresh string

	// CaptureCron and CaptureURL together enable the periodic page capture.
	CaptureCron string
	CaptureURL  string
	// CaptureWidth and CaptureHeight set the viewport. Zero uses the
	// display's logical size at the time of the capture.
	CaptureWidth  int
	CaptureHeight int
	// CaptureTimeout bounds one capture; zero uses capture.DefaultTimeout.
	CaptureTimeout time.Duration
}

// Scheduler owns one cron runner. Jobs share the display guard with the
// HTTP dispatcher.
type Scheduler struct {
	cron     *cron.Cron
	guard    *display.Guard
	capturer capture.Capturer
	cfg      Config
	ctx      context.Context
	cancel   context.CancelFunc
}

// New validates the schedules and registers the jobs. A capture job needs a
// non-nil capturer.
func New(g *display.Guard, capturer capture.Capturer, cfg Config) (*Scheduler, error) {
	if g == nil {
		return nil, errors.New("schedule: display guard is required")
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		guard:    g,
		capturer: capturer,
		cfg:      cfg,
		ctx:      ctx,
		cancel:   cancel,
	}
	logger := cronLogger{}
	s.cron = cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if cfg.Refresh != "" {
		if _, err := s.cron.AddFunc(cfg.Refresh, s.runRefresh); err != nil {
			cancel()
			return nil, fmt.Errorf("schedule: refresh %q: %w", cfg.Refresh, err)
		}
		log.Info("schedule: refresh job registered", "cron", cfg.Refresh)
	}
	if cfg.CaptureCron != "" || cfg.CaptureURL != "" {
		if cfg.CaptureCron == "" || cfg.CaptureURL == "" {
			cancel()
			return nil, errors.New("schedule: capture needs both a cron and a url")
		}
		if capturer == nil {
			cancel()
			return nil, errors.New("schedule: capture job without a capturer")
		}
		if _, err := s.cron.AddFunc(cfg.CaptureCron, s.runCapture); err != nil {
			cancel()
			return nil, fmt.Errorf("schedule: capture %q: %w", cfg.CaptureCron, err)
		}
		log.Info("schedule: capture job registered", "cron", cfg.CaptureCron, "url", cfg.CaptureURL)
	}
	return s, nil
}

// Jobs reports how many jobs are registered.
func (s *Scheduler) Jobs() int { return len(s.cron.Entries()) }

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop cancels running captures and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

// Refresh pushes the current framebuffer to the panel.
func (s *Scheduler) Refresh() error {
	return s.guard.Do(func(d *display.Display) error { return d.Update() })
}

// Capture renders the configured page and shows it.
func (s *Scheduler) Capture(ctx context.Context) error {
	opts := capture.Options{
		URL:     s.cfg.CaptureURL,
		Width:   s.cfg.CaptureWidth,
		Height:  s.cfg.CaptureHeight,
		Timeout: s.cfg.CaptureTimeout,
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		var b image.Rectangle
		_ = s.guard.Do(func(d *display.Display) error {
			b = d.Bounds()
			return nil
		})
		opts.Width, opts.Height = b.Dx(), b.Dy()
	}
	img, err := s.capturer.Capture(ctx, opts)
	if err != nil {
		return err
	}
	return s.guard.Do(func(d *display.Display) error {
		d.Clear()
		if err := d.DrawImage(img); err != nil {
			return err
		}
		return d.Update()
	})
}

func (s *Scheduler) runRefresh() {
	start := time.Now()
	if err := s.Refresh(); err != nil && !errors.Is(err, epd.ErrBusyTimeout) {
		log.Error("schedule: refresh failed", err)
		return
	}
	log.Info("schedule: refresh done", "took", time.Since(start))
}

func (s *Scheduler) runCapture() {
	start := time.Now()
	if err := s.Capture(s.ctx); err != nil && !errors.Is(err, epd.ErrBusyTimeout) {
		log.Error("schedule: capture failed", err, "url", s.cfg.CaptureURL)
		return
	}
	log.Info("schedule: capture done", "url", s.cfg.CaptureURL, "took", time.Since(start))
}

// cronLogger routes cron's own messages into the application log.
type cronLogger struct{}

func (cronLogger) Info(msg string, kv ...any) { log.Debug("cron: "+msg, kv...) }

func (cronLogger) Error(err error, msg string, kv ...any) { log.Error("cron: "+msg, err, kv...) }
