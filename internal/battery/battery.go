// Package battery reads the supply state reported on /api/status.
package battery

import (
	"context"
	"fmt"
	"runtime"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"epdctl/internal/log"
)

// DefaultAddr is the 7-bit address of the PiSugar-class fuel gauge.
const DefaultAddr = 0x57

// Gauge registers.
const (
	regVoltageHigh = 0x22
	regVoltageLow  = 0x23
	regPercent     = 0x2A
)

// Status is the battery state.
type Status struct {
	// Present is false when no gauge answered.
	Present bool `json:"present"`
	// Percent is the battery level in 0–100%.
	Percent int `json:"percent"`
	// VoltageMv is the battery voltage in millivolts, 0 if unknown.
	VoltageMv int `json:"voltage_mv"`
}

// Reader abstracts how battery information is obtained.
type Reader interface {
	Read(ctx context.Context) (Status, error)
}

// Static always returns the same status. It stands in when no gauge is
// wired.
type Static Status

func (s Static) Read(context.Context) (Status, error) { return Status(s), nil }

// I2CReader talks to the gauge over I2C. Each Read opens the bus, so a
// gauge that appears later is picked up.
type I2CReader struct {
	BusName string // "" selects the default bus
	Addr    uint16
}

// Read implements Reader.
func (r *I2CReader) Read(ctx context.Context) (Status, error) {
	if err := ctx.Err(); err != nil {
		return Status{}, err
	}
	if _, err := host.Init(); err != nil {
		return Status{}, fmt.Errorf("battery: periph host init failed: %w", err)
	}
	bus, err := i2creg.Open(r.BusName)
	if err != nil {
		return Status{}, fmt.Errorf("battery: failed to open i2c bus %q: %w", r.BusName, err)
	}
	defer bus.Close()
	return ReadGauge(&i2c.Dev{Bus: bus, Addr: r.Addr})
}

// ReadGauge reads voltage and percentage from a gauge behind dev.
func ReadGauge(dev conn.Conn) (Status, error) {
	readReg := func(reg byte) (byte, error) {
		buf := []byte{0}
		if err := dev.Tx([]byte{reg}, buf); err != nil {
			return 0, fmt.Errorf("battery: read register %#02x: %w", reg, err)
		}
		return buf[0], nil
	}

	high, err := readReg(regVoltageHigh)
	if err != nil {
		return Status{}, err
	}
	low, err := readReg(regVoltageLow)
	if err != nil {
		return Status{}, err
	}
	pct, err := readReg(regPercent)
	if err != nil {
		return Status{}, err
	}
	return Status{
		Present:   true,
		Percent:   int(min(pct, 100)),
		VoltageMv: int(uint16(high)<<8 | uint16(low)),
	}, nil
}

// DefaultReader tries the gauge at DefaultAddr on the default bus and falls
// back to a Static reader reporting no battery.
func DefaultReader(ctx context.Context) Reader {
	if runtime.GOOS != "linux" {
		return Static{}
	}
	r := &I2CReader{Addr: DefaultAddr}
	if _, err := r.Read(ctx); err != nil {
		log.Info("battery: no gauge found, reporting none", "addr", fmt.Sprintf("%#02x", DefaultAddr), "err", err)
		return Static{}
	}
	log.Info("battery: gauge found", "addr", fmt.Sprintf("%#02x", DefaultAddr))
	return r
}
