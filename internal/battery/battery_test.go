package battery

import (
	"context"
	"testing"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestReadGauge(t *testing.T) {
	for _, tc := range []struct {
		name      string
		high, low byte
		pct       byte
		wantMv    int
		wantPct   int
	}{
		{"typical", 0x0F, 0xA0, 87, 4000, 87},
		{"percent clamped", 0x10, 0x68, 130, 4200, 100},
		{"empty", 0x0C, 0x1C, 0, 3100, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			bus := &i2ctest.Playback{
				Ops: []i2ctest.IO{
					{Addr: DefaultAddr, W: []byte{regVoltageHigh}, R: []byte{tc.high}},
					{Addr: DefaultAddr, W: []byte{regVoltageLow}, R: []byte{tc.low}},
					{Addr: DefaultAddr, W: []byte{regPercent}, R: []byte{tc.pct}},
				},
			}
			got, err := ReadGauge(&i2c.Dev{Bus: bus, Addr: DefaultAddr})
			if err != nil {
				t.Fatalf("ReadGauge() failed: %v", err)
			}
			want := Status{Present: true, Percent: tc.wantPct, VoltageMv: tc.wantMv}
			if got != want {
				t.Errorf("ReadGauge() = %+v, want %+v", got, want)
			}
			if err := bus.Close(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestReadGaugeError(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops:       []i2ctest.IO{{Addr: DefaultAddr, W: []byte{regVoltageHigh}, R: []byte{0x0F}}},
		DontPanic: true,
	}
	if _, err := ReadGauge(&i2c.Dev{Bus: bus, Addr: DefaultAddr}); err == nil {
		t.Fatal("ReadGauge() succeeded with a short playback")
	}
}

func TestStatic(t *testing.T) {
	s, err := Static{}.Read(context.Background())
	if err != nil || s.Present {
		t.Errorf("Static{}.Read() = %+v, %v", s, err)
	}
	s, _ = Static(Status{Present: true, Percent: 50}).Read(context.Background())
	if s.Percent != 50 {
		t.Errorf("Percent = %d, want 50", s.Percent)
	}
}
