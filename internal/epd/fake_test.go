package epd

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi"
)

// trace is the ordered list of line changes and transfers seen by a rig.
type trace []string

func (t *trace) add(format string, a ...any) { *t = append(*t, fmt.Sprintf(format, a...)) }

// tracePin logs every Out call.
type tracePin struct {
	gpiotest.Pin
	t *trace
}

func (p *tracePin) Out(l gpio.Level) error {
	p.t.add("%s=%s", p.N, l)
	return p.Pin.Out(l)
}

// busyPin reads busy until it has been read clearAfter times. A negative
// clearAfter never clears.
type busyPin struct {
	gpiotest.Pin
	activeHigh bool
	clearAfter int
	reads      int
}

func (p *busyPin) Read() gpio.Level {
	p.reads++
	busy := p.clearAfter < 0 || p.reads <= p.clearAfter
	return gpio.Level(busy == p.activeHigh)
}

// record is one command with the data bytes that followed it.
type record struct {
	cmd  byte
	data []byte
}

// traceConn is an spi.Conn that groups transfers into records using the
// level of the DC line, and can fail the nth transfer.
type traceConn struct {
	t       *trace
	dc      *tracePin
	records []record
	stray   []byte // data sent before any command
	txs     []int
	failAt  int // 1-based; 0 never fails
	limit   int
}

func (c *traceConn) String() string      { return "trace" }
func (c *traceConn) Duplex() conn.Duplex { return conn.Half }

func (c *traceConn) TxPackets(p []spi.Packet) error {
	return errors.New("traceConn: TxPackets not implemented")
}

func (c *traceConn) Tx(w, r []byte) error {
	c.txs = append(c.txs, len(w))
	if c.failAt > 0 && len(c.txs) == c.failAt {
		c.t.add("tx error")
		return errors.New("traceConn: injected failure")
	}
	c.t.add("tx %d", len(w))
	if c.dc.Read() == gpio.Low {
		for _, b := range w {
			c.records = append(c.records, record{cmd: b})
		}
		return nil
	}
	if len(c.records) == 0 {
		c.stray = append(c.stray, w...)
		return nil
	}
	cur := &c.records[len(c.records)-1]
	cur.data = append(cur.data, w...)
	return nil
}

// limitedConn reports a maximum transfer size.
type limitedConn struct {
	*traceConn
}

func (c limitedConn) MaxTxSize() int { return c.limit }

type rig struct {
	tr     trace
	conn   *traceConn
	cs     *tracePin
	dc     *tracePin
	rst    *tracePin
	pwr    *tracePin
	busy   *busyPin
	sleeps []time.Duration
	p      *Panel
}

func testOpts() Opts {
	o := DefaultOpts()
	o.Width, o.Height = 16, 4
	o.Timing.BusyPolls = 25
	return o
}

func newRig(t *testing.T, opts Opts) *rig {
	t.Helper()
	r := &rig{}
	r.cs = &tracePin{Pin: gpiotest.Pin{N: "cs"}, t: &r.tr}
	r.dc = &tracePin{Pin: gpiotest.Pin{N: "dc"}, t: &r.tr}
	r.rst = &tracePin{Pin: gpiotest.Pin{N: "rst"}, t: &r.tr}
	r.pwr = &tracePin{Pin: gpiotest.Pin{N: "pwr"}, t: &r.tr}
	r.busy = &busyPin{Pin: gpiotest.Pin{N: "busy"}, activeHigh: opts.BusyActiveHigh}
	r.conn = &traceConn{t: &r.tr, dc: r.dc}

	p, err := New(r.conn, Pins{CS: r.cs, DC: r.dc, RST: r.rst, PWR: r.pwr, Busy: r.busy}, &opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	p.sleep = func(d time.Duration) { r.sleeps = append(r.sleeps, d) }
	p.bus.yield = func() {}
	r.p = p
	return r
}

// ready runs Init and forgets everything it recorded.
func (r *rig) ready(t *testing.T) {
	t.Helper()
	if err := r.p.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	r.reset()
}

func (r *rig) reset() {
	r.tr = nil
	r.conn.records = nil
	r.conn.stray = nil
	r.conn.txs = nil
	r.sleeps = nil
	r.busy.reads = 0
}

func (r *rig) pinTrace(name string) []string {
	var out []string
	prefix := name + "="
	for _, e := range r.tr {
		if len(e) > len(prefix) && e[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}
