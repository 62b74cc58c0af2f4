package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"epdctl/internal/canvas"
	"epdctl/internal/epd"
	"epdctl/internal/log"
)

// ErrEmptyPath is returned by Load and Save for an empty path.
var ErrEmptyPath = errors.New("config: path is empty")

// DefaultPath is where the binary looks for its config file.
const DefaultPath = "/etc/epdctl/config.yaml"

// PanelConfig is the panel geometry and color mode.
type PanelConfig struct {
	Width  int  `yaml:"width" json:"width"`
	Height int  `yaml:"height" json:"height"`
	BWOnly bool `yaml:"bw_only" json:"bw_only"`
	// Dither selects error diffusion for images instead of thresholding.
	Dither bool `yaml:"dither" json:"dither"`
	// Orientation is the rotation applied at startup, 0..3 quarter turns.
	Orientation int `yaml:"orientation" json:"orientation"`
}

// SPIConfig selects the SPI port and transfer parameters.
type SPIConfig struct {
	// Port is a periph spireg name; empty selects the first port.
	Port     string `yaml:"port" json:"port"`
	SpeedHz  int64  `yaml:"speed_hz" json:"speed_hz"`
	MaxChunk int    `yaml:"max_chunk" json:"max_chunk"`
}

// PinsConfig names the control lines as periph gpioreg names.
type PinsConfig struct {
	CS             string `yaml:"cs" json:"cs"`
	DC             string `yaml:"dc" json:"dc"`
	RST            string `yaml:"rst" json:"rst"`
	PWR            string `yaml:"pwr" json:"pwr"`
	Busy           string `yaml:"busy" json:"busy"`
	BusyActiveHigh bool   `yaml:"busy_active_high" json:"busy_active_high"`
	PowerActiveLow bool   `yaml:"power_active_low" json:"power_active_low"`
}

// TimingConfig overrides the panel delays. Zero values keep the defaults.
type TimingConfig struct {
	PollInterval   Duration   `yaml:"poll_interval" json:"poll_interval"`
	BusyPolls      int        `yaml:"busy_polls" json:"busy_polls"`
	Settle         Duration   `yaml:"settle" json:"settle"`
	PowerStabilize Duration   `yaml:"power_stabilize" json:"power_stabilize"`
	Reset          []Duration `yaml:"reset" json:"reset"`
}

// CaptureConfig describes the periodic page capture.
type CaptureConfig struct {
	URL    string `yaml:"url" json:"url"`
	Cron   string `yaml:"cron" json:"cron"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the control page and API.
	Listen   string `yaml:"listen" json:"listen"`
	LogLevel string `yaml:"log_level" json:"log_level"`

	// CredentialsFile is the KEY=value file read by LoadCredentials.
	CredentialsFile string `yaml:"credentials_file" json:"credentials_file"`

	Panel  PanelConfig  `yaml:"panel" json:"panel"`
	SPI    SPIConfig    `yaml:"spi" json:"spi"`
	Pins   PinsConfig   `yaml:"pins" json:"pins"`
	Timing TimingConfig `yaml:"timing" json:"timing"`

	// RefreshCron re-pushes the framebuffer on a cron schedule. Empty disables it.
	RefreshCron string        `yaml:"refresh" json:"refresh"`
	Capture     CaptureConfig `yaml:"capture" json:"capture"`

	// BasicAuth, if both fields are set, protects every endpoint except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	o := epd.DefaultOpts()
	c := &Config{
		Listen:          "127.0.0.1:8080",
		LogLevel:        "info",
		CredentialsFile: "/etc/epdctl/.env",
		Panel: PanelConfig{
			Width:  o.Width,
			Height: o.Height,
		},
		SPI: SPIConfig{
			SpeedHz:  200000,
			MaxChunk: o.MaxChunk,
		},
		Pins: PinsConfig{
			DC:             "GPIO25",
			RST:            "GPIO17",
			PWR:            "GPIO18",
			Busy:           "GPIO24",
			BusyActiveHigh: o.BusyActiveHigh,
			PowerActiveLow: o.PowerActiveLow,
		},
	}
	c.Normalize()
	return c
}

// Normalize fills in missing/zero values with defaults so that
// partially-filled configs still behave correctly. Geometry is left alone;
// Validate rejects it when unusable.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SPI.SpeedHz <= 0 {
		c.SPI.SpeedHz = 200000
	}
	if c.SPI.MaxChunk <= 0 {
		c.SPI.MaxChunk = epd.DefaultMaxChunk
	}

	t := epd.DefaultTiming()
	if c.Timing.PollInterval <= 0 {
		c.Timing.PollInterval = Duration(t.PollInterval)
	}
	if c.Timing.BusyPolls <= 0 {
		c.Timing.BusyPolls = t.BusyPolls
	}
	if c.Timing.Settle <= 0 {
		c.Timing.Settle = Duration(t.Settle)
	}
	if c.Timing.PowerStabilize <= 0 {
		c.Timing.PowerStabilize = Duration(t.PowerStabilize)
	}
	if len(c.Timing.Reset) == 0 {
		for _, d := range t.Reset {
			c.Timing.Reset = append(c.Timing.Reset, Duration(d))
		}
	}

	if c.Capture.Width <= 0 || c.Capture.Height <= 0 {
		w, h := canvas.Orientation(c.Panel.Orientation).LogicalSize(c.Panel.Width, c.Panel.Height)
		c.Capture.Width, c.Capture.Height = w, h
	}
	if c.BasicAuth != nil && c.BasicAuth.Username == "" && c.BasicAuth.Password == "" {
		c.BasicAuth = nil
	}
}

// Validate reports settings that cannot drive a panel.
func (c *Config) Validate() error {
	var errs []error
	if c.Panel.Width <= 0 || c.Panel.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: panel geometry %dx%d must be positive", c.Panel.Width, c.Panel.Height))
	} else if n := canvas.PlaneSize(c.Panel.Width, c.Panel.Height); n > canvas.MaxPlaneSize {
		errs = append(errs, fmt.Errorf("config: panel plane of %d bytes exceeds %d", n, canvas.MaxPlaneSize))
	}
	if c.Panel.Orientation < 0 || c.Panel.Orientation > 3 {
		errs = append(errs, fmt.Errorf("config: orientation %d must be 0-3", c.Panel.Orientation))
	}
	if c.Pins.DC == "" || c.Pins.RST == "" || c.Pins.Busy == "" {
		errs = append(errs, errors.New("config: pins dc, rst and busy are required"))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	return errors.Join(errs...)
}

// AuthEnabled reports whether basic auth is configured.
func (c *Config) AuthEnabled() bool {
	return c.BasicAuth != nil && c.BasicAuth.Username != "" && c.BasicAuth.Password != ""
}

// PanelOpts converts the panel, SPI, pin and timing sections.
func (c *Config) PanelOpts() epd.Opts {
	o := epd.DefaultOpts()
	o.Width = c.Panel.Width
	o.Height = c.Panel.Height
	o.BusyActiveHigh = c.Pins.BusyActiveHigh
	o.PowerActiveLow = c.Pins.PowerActiveLow
	o.MaxChunk = c.SPI.MaxChunk
	o.Timing.PollInterval = time.Duration(c.Timing.PollInterval)
	o.Timing.BusyPolls = c.Timing.BusyPolls
	o.Timing.Settle = time.Duration(c.Timing.Settle)
	o.Timing.PowerStabilize = time.Duration(c.Timing.PowerStabilize)
	o.Timing.Reset = nil
	for _, d := range c.Timing.Reset {
		o.Timing.Reset = append(o.Timing.Reset, time.Duration(d))
	}
	return o
}

// Hardware converts the SPI and pin sections for epd.Open.
func (c *Config) Hardware() epd.HardwareConfig {
	return epd.HardwareConfig{
		SPIPort: c.SPI.Port,
		SpeedHz: c.SPI.SpeedHz,
		CS:      c.Pins.CS,
		DC:      c.Pins.DC,
		RST:     c.Pins.RST,
		PWR:     c.Pins.PWR,
		Busy:    c.Pins.Busy,
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written with 0600
//     perms (creating the parent directory) and returned.
//   - Otherwise the YAML is decoded over the defaults and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Keys that are absent keep their
// default value.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	// The capture viewport follows the decoded panel geometry.
	cfg.Capture.Width, cfg.Capture.Height = 0, 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes cfg to path atomically via a temp file + rename, leaving the
// final file with 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return ErrEmptyPath
	}
	if cfg == nil {
		return errors.New("config: config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".epdctl-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
