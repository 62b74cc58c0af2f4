// Package epd drives a tri-color e-paper panel (UC8151-class controller)
// over SPI using periph.io.
//
// A Panel is an explicit handle: it owns one Bus and one set of control
// lines, and is not safe for concurrent use. Callers serialize access.
package epd

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"epdctl/internal/log"
)

var (
	// ErrBusyTimeout is returned when the busy line did not clear within the
	// poll budget. The sequence that hit it still ran to completion.
	ErrBusyTimeout = errors.New("epd: busy timeout")
	// ErrNotReady is returned when an operation needs an initialized panel.
	ErrNotReady = errors.New("epd: panel not initialized")
)

// State is the panel link state.
type State int

const (
	Uninitialized State = iota
	PoweredOff
	Resetting
	Ready
	Busy
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case PoweredOff:
		return "powered-off"
	case Resetting:
		return "resetting"
	case Ready:
		return "ready"
	case Busy:
		return "busy"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Pins are the control lines. CS and PWR are optional.
type Pins struct {
	CS   gpio.PinOut
	DC   gpio.PinOut
	RST  gpio.PinOut
	PWR  gpio.PinOut
	Busy gpio.PinIn
}

// Timing holds every delay of the power, reset and busy sequences.
type Timing struct {
	PollInterval   time.Duration
	BusyPolls      int
	Settle         time.Duration
	PowerStabilize time.Duration
	PowerToReset   time.Duration
	// Reset is the pulse pattern: an initial delay, then alternately driving
	// RST low and high, each followed by the next delay.
	Reset []time.Duration
}

// DefaultTiming polls every 2 ms for up to 5000 polls (about 10 s), then
// settles 200 ms, and pulses reset with the 1/5/10/5/1 ms pattern.
func DefaultTiming() Timing {
	return Timing{
		PollInterval:   2 * time.Millisecond,
		BusyPolls:      5000,
		Settle:         200 * time.Millisecond,
		PowerStabilize: time.Second,
		PowerToReset:   5 * time.Millisecond,
		Reset: []time.Duration{
			1 * time.Millisecond,
			5 * time.Millisecond,
			10 * time.Millisecond,
			5 * time.Millisecond,
			1 * time.Millisecond,
		},
	}
}

// Opts configures a Panel.
type Opts struct {
	Width  int
	Height int
	// BusyActiveHigh reports busy when the line reads high.
	BusyActiveHigh bool
	// PowerActiveLow enables panel power by driving PWR low.
	PowerActiveLow bool
	MaxChunk       int
	Timing         Timing
}

// DefaultOpts matches the 152x296 tri-color module.
func DefaultOpts() Opts {
	return Opts{
		Width:          152,
		Height:         296,
		BusyActiveHigh: true,
		PowerActiveLow: true,
		MaxChunk:       DefaultMaxChunk,
		Timing:         DefaultTiming(),
	}
}

// Panel is the power, reset and busy state machine on top of a Bus.
type Panel struct {
	bus   *Bus
	pins  Pins
	opts  Opts
	state State
	bw    bool

	sleep func(time.Duration)
}

// New configures the control lines and returns a PoweredOff panel. conn must
// already be connected in SPI mode 0.
func New(c spi.Conn, pins Pins, opts *Opts) (*Panel, error) {
	if c == nil || pins.DC == nil || pins.RST == nil || pins.Busy == nil {
		return nil, errors.New("epd: spi connection, DC, RST and BUSY are required")
	}
	o := DefaultOpts()
	if opts != nil {
		o = *opts
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("epd: invalid geometry %dx%d", o.Width, o.Height)
	}
	if o.Timing.BusyPolls <= 0 {
		o.Timing.BusyPolls = 1
	}
	p := &Panel{
		bus:   NewBus(c, pins.CS, pins.DC, o.MaxChunk),
		pins:  pins,
		opts:  o,
		state: Uninitialized,
		sleep: time.Sleep,
	}
	for _, step := range []struct {
		pin gpio.PinOut
		l   gpio.Level
	}{
		{pins.CS, gpio.High},
		{pins.DC, gpio.Low},
		{pins.RST, gpio.High},
		{pins.PWR, p.powerLevel(false)},
	} {
		if step.pin == nil {
			continue
		}
		if err := step.pin.Out(step.l); err != nil {
			return nil, fmt.Errorf("epd: configure %s: %w", step.pin, err)
		}
	}
	p.state = PoweredOff
	return p, nil
}

// State reports the link state.
func (p *Panel) State() State { return p.state }

// Size returns the physical geometry.
func (p *Panel) Size() (w, h int) { return p.opts.Width, p.opts.Height }

// PlaneSize is ceil(Width/8)*Height, the byte count of one RAM plane.
func (p *Panel) PlaneSize() int { return (p.opts.Width + 7) / 8 * p.opts.Height }

// BlackWhite reports whether the accent plane is ignored by the panel.
func (p *Panel) BlackWhite() bool { return p.bw }

// Init powers the panel, pulses reset and loads the panel settings. Busy
// timeouts along the way are collected and returned once the sequence ends;
// a transport error aborts immediately.
func (p *Panel) Init() error {
	t := p.opts.Timing
	p.sleep(t.PowerStabilize)
	if err := p.setPower(true); err != nil {
		return err
	}
	p.sleep(t.PowerToReset)

	p.state = Resetting
	if err := p.reset(); err != nil {
		return err
	}
	var timeouts []error
	keep := func(err error) error {
		if errors.Is(err, ErrBusyTimeout) {
			timeouts = append(timeouts, err)
			return nil
		}
		return err
	}
	if err := keep(p.WaitBusy()); err != nil {
		return err
	}
	if err := keep(p.SoftReset()); err != nil {
		return err
	}
	for _, s := range []struct {
		cmd  byte
		data []byte
	}{
		{cmdInputTemperature, []byte{temperature25C}},
		{cmdActiveTemp, []byte{activeTempValue}},
		{cmdPanelSetting, p.psr()},
	} {
		if err := p.bus.SendIndexed(s.cmd, s.data); err != nil {
			return err
		}
	}
	p.state = Ready
	log.Info("epd: panel initialized", "width", p.opts.Width, "height", p.opts.Height, "bw_only", p.bw)
	return errors.Join(timeouts...)
}

// SoftReset sends the soft reset panel setting and waits for busy to clear.
func (p *Panel) SoftReset() error {
	if err := p.bus.SendIndexed(cmdPanelSetting, []byte{psrSoftReset}); err != nil {
		return err
	}
	return p.WaitBusy()
}

// WaitBusy polls the busy line every PollInterval until it clears or
// BusyPolls reads have been made, then sleeps Settle. It never blocks longer
// than about BusyPolls*PollInterval+Settle.
func (p *Panel) WaitBusy() error {
	t := p.opts.Timing
	prev := p.state
	p.state = Busy
	defer func() { p.state = prev }()

	polls := 0
	for ; polls < t.BusyPolls; polls++ {
		if !p.busy() {
			break
		}
		p.sleep(t.PollInterval)
	}
	timedOut := polls == t.BusyPolls && p.busy()
	p.sleep(t.Settle)
	if timedOut {
		log.Warn("epd: busy line did not clear", "polls", polls, "interval", t.PollInterval, "state", prev)
		return fmt.Errorf("%w after %d polls", ErrBusyTimeout, polls)
	}
	log.Debug("epd: busy cleared", "polls", polls)
	return nil
}

// PowerOn enables the internal DC/DC converter.
func (p *Panel) PowerOn() error {
	if err := p.bus.SendIndexed(cmdPowerOn, []byte{powerOnParam}); err != nil {
		return err
	}
	return p.WaitBusy()
}

// PowerOff disables the internal DC/DC converter.
func (p *Panel) PowerOff() error {
	if err := p.bus.SendCommand(cmdPowerOff); err != nil {
		return err
	}
	return p.WaitBusy()
}

// Flush makes the panel redraw from its RAM: power on, refresh, wait, power
// off. It is the only operation that visibly changes the display.
func (p *Panel) Flush() error {
	if err := p.ready(); err != nil {
		return err
	}
	var timeouts []error
	for _, step := range []func() error{
		p.PowerOn,
		func() error { return p.bus.SendCommand(cmdDisplayRefresh) },
		p.WaitBusy,
		p.PowerOff,
	} {
		if err := step(); err != nil {
			if !errors.Is(err, ErrBusyTimeout) {
				return err
			}
			timeouts = append(timeouts, err)
		}
	}
	return errors.Join(timeouts...)
}

// SetColorMode switches between tri-color and black/white-only driving.
func (p *Panel) SetColorMode(bwOnly bool) error {
	if err := p.ready(); err != nil {
		return err
	}
	p.bw = bwOnly
	return p.bus.SendIndexed(cmdPanelSetting, p.psr())
}

// Push writes the ink plane then the accent plane into panel RAM and
// flushes. Both planes must be PlaneSize bytes.
func (p *Panel) Push(ink, accent []byte) error {
	if err := p.ready(); err != nil {
		return err
	}
	if n := p.PlaneSize(); len(ink) != n || len(accent) != n {
		return fmt.Errorf("epd: plane sizes %d/%d, want %d", len(ink), len(accent), n)
	}
	if err := p.writePlane(cmdDataInk, ink); err != nil {
		return err
	}
	if err := p.writePlane(cmdDataAccent, accent); err != nil {
		return err
	}
	return p.Flush()
}

// ClearPanel zeroes both RAM planes and flushes, leaving the panel white.
func (p *Panel) ClearPanel() error {
	if err := p.ready(); err != nil {
		return err
	}
	n := p.PlaneSize()
	for _, cmd := range []byte{cmdDataAccent, cmdDataInk} {
		if err := p.bus.SendCommand(cmd); err != nil {
			return err
		}
		if err := p.bus.SendRepeated(0x00, n); err != nil {
			return err
		}
	}
	return p.Flush()
}

// Sleep puts the controller into deep sleep and cuts panel power. Init must
// be called again before further use.
func (p *Panel) Sleep() error {
	if p.state == Uninitialized || p.state == PoweredOff {
		return nil
	}
	var timeouts []error
	if err := p.PowerOff(); err != nil {
		if !errors.Is(err, ErrBusyTimeout) {
			return err
		}
		timeouts = append(timeouts, err)
	}
	if err := p.bus.SendIndexed(cmdDeepSleep, []byte{deepSleepCheck}); err != nil {
		return err
	}
	if err := p.setPower(false); err != nil {
		return err
	}
	p.state = PoweredOff
	log.Info("epd: panel asleep")
	return errors.Join(timeouts...)
}

func (p *Panel) writePlane(cmd byte, plane []byte) error {
	if err := p.bus.SendCommand(cmd); err != nil {
		return err
	}
	return p.bus.SendBulk(plane)
}

func (p *Panel) reset() error {
	pattern := p.opts.Timing.Reset
	for i, d := range pattern {
		if i > 0 {
			l := gpio.High
			if i%2 == 1 {
				l = gpio.Low
			}
			if err := p.pins.RST.Out(l); err != nil {
				return fmt.Errorf("epd: reset pulse: %w", err)
			}
		}
		p.sleep(d)
	}
	if len(pattern)%2 == 0 {
		// Never leave the controller held in reset.
		if err := p.pins.RST.Out(gpio.High); err != nil {
			return fmt.Errorf("epd: reset release: %w", err)
		}
	}
	return nil
}

func (p *Panel) busy() bool {
	active := gpio.High
	if !p.opts.BusyActiveHigh {
		active = gpio.Low
	}
	return p.pins.Busy.Read() == active
}

func (p *Panel) powerLevel(on bool) gpio.Level {
	return gpio.Level(on != p.opts.PowerActiveLow)
}

func (p *Panel) setPower(on bool) error {
	if p.pins.PWR == nil {
		return nil
	}
	if err := p.pins.PWR.Out(p.powerLevel(on)); err != nil {
		return fmt.Errorf("epd: power %v: %w", on, err)
	}
	return nil
}

func (p *Panel) psr() []byte {
	b0 := psrDefault0 &^ psrBlackWhite
	if p.bw {
		b0 |= psrBlackWhite
	}
	return []byte{b0, psrDefault1}
}

func (p *Panel) ready() error {
	if p.state != Ready {
		return fmt.Errorf("%w (state %s)", ErrNotReady, p.state)
	}
	return nil
}
