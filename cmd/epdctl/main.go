package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"epdctl/internal/battery"
	"epdctl/internal/canvas"
	"epdctl/internal/capture"
	"epdctl/internal/config"
	"epdctl/internal/display"
	"epdctl/internal/epd"
	"epdctl/internal/font"
	appLog "epdctl/internal/log"
	"epdctl/internal/schedule"
	"epdctl/internal/web"
)

type flagConfig struct {
	configPath string
	listen     string
	debug      bool
	once       bool
	renderOnly bool
}

func main() {
	flags := parseFlags()
	if err := run(flags); err != nil {
		appLog.Error("epdctl failed", err)
		os.Exit(1)
	}
}

func run(flags flagConfig) error {
	appLog.Info("epdctl starting", "version", "0.1.0")

	conf, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", flags.configPath, err)
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.debug {
		conf.LogLevel = "debug"
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	level, _ := appLog.ParseLevel(conf.LogLevel)
	appLog.SetLevel(level)

	creds, err := config.LoadCredentials(conf.CredentialsFile)
	if err != nil {
		appLog.Warn("credentials not loaded", "path", conf.CredentialsFile, "err", err)
	}

	appLog.Info("effective config",
		"listen", conf.Listen,
		"panel", fmt.Sprintf("%dx%d", conf.Panel.Width, conf.Panel.Height),
		"bw_only", conf.Panel.BWOnly,
		"dither", conf.Panel.Dither,
		"orientation", conf.Panel.Orientation,
		"refresh", conf.RefreshCron,
		"capture_cron", conf.Capture.Cron,
		"basic_auth", conf.AuthEnabled(),
		"render_only", flags.renderOnly,
		"once", flags.once,
	)

	d, closeHW, err := openDisplay(conf, flags.renderOnly)
	if err != nil {
		return err
	}
	defer closeHW()

	if err := d.Init(); err != nil {
		if !errors.Is(err, epd.ErrBusyTimeout) {
			return fmt.Errorf("panel init: %w", err)
		}
		appLog.Warn("panel init completed with busy timeouts", "err", err)
	}
	if err := d.SetColorMode(conf.Panel.BWOnly); err != nil {
		appLog.Warn("set color mode failed", "err", err)
	}
	d.SetOrientation(canvas.Orientation(conf.Panel.Orientation))
	d.SetDither(conf.Panel.Dither)
	if err := d.ClearPanel(); err != nil {
		appLog.Warn("initial panel clear failed", "err", err)
	}

	if flags.once {
		return runOnce(d)
	}

	guard := display.NewGuard(d)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	capturer := &capture.Chromium{}
	sched, err := schedule.New(guard, capturer, schedule.Config{
		Refresh:       conf.RefreshCron,
		CaptureCron:   conf.Capture.Cron,
		CaptureURL:    conf.Capture.URL,
		CaptureWidth:  conf.Capture.Width,
		CaptureHeight: conf.Capture.Height,
	})
	if err != nil {
		return err
	}
	sched.Start()

	srv := web.NewServer(web.Options{
		Guard:     guard,
		BasicAuth: conf.BasicAuth,
		Battery:   battery.DefaultReader(ctx),
		Capturer:  capturer,
		Network:   creds,
	})
	serveErr := srv.ListenAndServe(ctx, conf.Listen)
	if serveErr == nil {
		appLog.Info("signal received, shutting down")
	}

	sched.Stop()
	if err := guard.Do(func(d *display.Display) error { return d.Sleep() }); err != nil {
		appLog.Warn("panel sleep failed", "err", err)
	}
	appLog.Info("epdctl exiting")
	return serveErr
}

// openDisplay builds the display, bound to the panel hardware unless
// renderOnly is set. The returned func releases the hardware.
func openDisplay(conf *config.Config, renderOnly bool) (*display.Display, func(), error) {
	if renderOnly {
		appLog.Info("render-only mode, panel hardware untouched")
		return display.New(nil, conf.Panel.Width, conf.Panel.Height), func() {}, nil
	}
	opts := conf.PanelOpts()
	dev, err := epd.Open(conf.Hardware(), &opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open panel hardware: %w", err)
	}
	closeHW := func() {
		if err := dev.Close(); err != nil {
			appLog.Warn("closing panel hardware failed", "err", err)
		}
	}
	return display.New(dev.Panel, conf.Panel.Width, conf.Panel.Height), closeHW, nil
}

// runOnce draws a test pattern, pushes it and puts the panel to sleep.
func runOnce(d *display.Display) error {
	b := d.Bounds()
	d.Clear()
	d.DrawRect(0, 0, b.Dx(), b.Dy(), canvas.Black)
	const title = "epdctl"
	tw, th := font.Large.Measure(title, 1)
	d.FillRect(4, 4, b.Dx()-8, th+4, canvas.Accent)
	d.DrawTextLarge((b.Dx()-tw)/2, 6, title, canvas.White, 1)
	d.DrawTextMedium(8, 32, time.Now().Format("2006-01-02 15:04"), canvas.Black, 1)
	d.DrawTextSmall(8, 50, fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), canvas.Black, 1)

	err := d.Update()
	if err != nil && !errors.Is(err, epd.ErrBusyTimeout) {
		return fmt.Errorf("test pattern: %w", err)
	}
	if err := d.Sleep(); err != nil {
		appLog.Warn("panel sleep failed", "err", err)
	}
	appLog.Info("test pattern displayed")
	return nil
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", config.DefaultPath, "Path to config file")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&cfg.once, "once", false, "Draw a test pattern, update the panel and exit")
	flag.BoolVar(&cfg.renderOnly, "render-only", false, "Render only; do not touch panel hardware")

	flag.Parse()

	return cfg
}
