package epd

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"epdctl/internal/log"
)

// HardwareConfig names the host resources a panel is wired to. Pin names are
// anything gpioreg understands, e.g. "GPIO8". CS and PWR may be empty.
type HardwareConfig struct {
	SPIPort string // "" selects the first port
	SpeedHz int64
	CS      string
	DC      string
	RST     string
	PWR     string
	Busy    string
}

// Device is a Panel bound to host hardware.
type Device struct {
	*Panel
	port spi.PortCloser
}

// Open initializes periph.io, connects the SPI port in mode 0 and claims the
// control lines.
func Open(hw HardwareConfig, opts *Opts) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("epd: periph host init failed: %w", err)
	}

	port, err := spireg.Open(hw.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("epd: failed to open SPI port %q: %w", hw.SPIPort, err)
	}
	speed := physic.Frequency(hw.SpeedHz) * physic.Hertz
	if speed <= 0 {
		speed = 200 * physic.KiloHertz
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("epd: failed to connect SPI: %w", err)
	}

	pins, err := lookupPins(hw)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	p, err := New(c, pins, opts)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	log.Info("epd: hardware opened", "spi", c, "speed", speed, "dc", hw.DC, "rst", hw.RST, "busy", hw.Busy)
	return &Device{Panel: p, port: port}, nil
}

// Close releases the SPI port.
func (d *Device) Close() error {
	if d == nil || d.port == nil {
		return nil
	}
	return d.port.Close()
}

func lookupPins(hw HardwareConfig) (Pins, error) {
	var pins Pins
	var errs []error
	out := func(name string, optional bool) gpio.PinOut {
		if name == "" {
			if !optional {
				errs = append(errs, errors.New("epd: required gpio name is empty"))
			}
			return nil
		}
		p := gpioreg.ByName(name)
		if p == nil {
			errs = append(errs, fmt.Errorf("epd: gpio %s not found", name))
			return nil
		}
		return p
	}
	pins.CS = out(hw.CS, true)
	pins.DC = out(hw.DC, false)
	pins.RST = out(hw.RST, false)
	pins.PWR = out(hw.PWR, true)

	if busy := gpioreg.ByName(hw.Busy); busy == nil {
		errs = append(errs, fmt.Errorf("epd: gpio %q not found", hw.Busy))
	} else if err := busy.In(gpio.Float, gpio.NoEdge); err != nil {
		errs = append(errs, fmt.Errorf("epd: gpio %s In failed: %w", hw.Busy, err))
	} else {
		pins.Busy = busy
	}
	return pins, errors.Join(errs...)
}
