package epd

import (
	"fmt"
	"runtime"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"epdctl/internal/log"
)

// DefaultMaxChunk is the largest single SPI transfer used for bulk data.
const DefaultMaxChunk = 4096

// Bus frames bytes as commands or data on the SPI link. DC low selects
// command mode and DC high data mode; CS is held low for the duration of one
// logical operation. Every call blocks until the transfer completes.
//
// CS may be nil when the SPI controller drives chip select itself.
type Bus struct {
	c        spi.Conn
	cs       gpio.PinOut
	dc       gpio.PinOut
	maxChunk int
	yield    func()
}

// NewBus returns a Bus writing at most maxChunk bytes per transfer. The
// chunk is further capped by the connection's own limit, if it reports one.
func NewBus(c spi.Conn, cs, dc gpio.PinOut, maxChunk int) *Bus {
	if maxChunk <= 0 {
		maxChunk = DefaultMaxChunk
	}
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 && m < maxChunk {
			maxChunk = m
		}
	}
	return &Bus{c: c, cs: cs, dc: dc, maxChunk: maxChunk, yield: runtime.Gosched}
}

// ChunkSize is the largest payload sent in one SPI transfer.
func (b *Bus) ChunkSize() int { return b.maxChunk }

// SendCommand transmits one command byte.
func (b *Bus) SendCommand(cmd byte) error {
	t := b.begin(gpio.Low)
	t.tx([]byte{cmd})
	if err := t.end(); err != nil {
		log.Error("epd: command transfer failed", err, "cmd", fmt.Sprintf("%#02x", cmd))
		return fmt.Errorf("epd: send command %#02x: %w", cmd, err)
	}
	return nil
}

// SendData transmits data bytes under a single chip select. An empty call is
// a no-op.
func (b *Bus) SendData(data ...byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := b.sendChunks(data, false); err != nil {
		log.Error("epd: data transfer failed", err, "len", len(data))
		return fmt.Errorf("epd: send data (%d bytes): %w", len(data), err)
	}
	return nil
}

// SendIndexed sends cmd followed by its parameter bytes as one protocol unit.
func (b *Bus) SendIndexed(cmd byte, data []byte) error {
	if err := b.SendCommand(cmd); err != nil {
		return err
	}
	if err := b.SendData(data...); err != nil {
		return fmt.Errorf("epd: index %#02x: %w", cmd, err)
	}
	return nil
}

// SendBulk streams data in ChunkSize transfers, yielding the processor
// between chunks so a multi-kilobyte plane does not starve other goroutines.
func (b *Bus) SendBulk(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := b.sendChunks(data, true); err != nil {
		log.Error("epd: bulk transfer failed", err, "len", len(data), "chunk", b.maxChunk)
		return fmt.Errorf("epd: send bulk (%d bytes): %w", len(data), err)
	}
	return nil
}

// SendRepeated streams n copies of v without allocating n bytes.
func (b *Bus) SendRepeated(v byte, n int) error {
	if n <= 0 {
		return nil
	}
	chunk := make([]byte, min(n, b.maxChunk))
	for i := range chunk {
		chunk[i] = v
	}
	t := b.begin(gpio.High)
	for sent := 0; sent < n && t.err == nil; {
		k := min(n-sent, len(chunk))
		t.tx(chunk[:k])
		sent += k
		if sent < n {
			b.yield()
		}
	}
	if err := t.end(); err != nil {
		log.Error("epd: fill transfer failed", err, "value", fmt.Sprintf("%#02x", v), "len", n)
		return fmt.Errorf("epd: send %d x %#02x: %w", n, v, err)
	}
	return nil
}

func (b *Bus) sendChunks(data []byte, yield bool) error {
	t := b.begin(gpio.High)
	for len(data) > 0 && t.err == nil {
		k := min(len(data), b.maxChunk)
		t.tx(data[:k])
		data = data[k:]
		if yield && len(data) > 0 {
			b.yield()
		}
	}
	return t.end()
}

// txn carries the first error of a framed transfer. Once set, further steps
// are skipped, but end always releases chip select.
type txn struct {
	b   *Bus
	err error
}

func (b *Bus) begin(dc gpio.Level) *txn {
	t := &txn{b: b}
	t.err = b.dc.Out(dc)
	if t.err == nil && b.cs != nil {
		t.err = b.cs.Out(gpio.Low)
	}
	return t
}

func (t *txn) tx(w []byte) {
	if t.err != nil {
		return
	}
	t.err = t.b.c.Tx(w, nil)
}

func (t *txn) end() error {
	if t.b.cs != nil {
		if err := t.b.cs.Out(gpio.High); t.err == nil {
			t.err = err
		}
	}
	return t.err
}
