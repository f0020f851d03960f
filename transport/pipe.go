package transport

import (
	"sync"
	"time"

	"github.com/pion/logging"
	"github.com/pion/transport/v3/packetio"
)

// Pipe returns two connected streams backed by in-memory packet buffers.
// Every report written on one end is read as a single packet on the other,
// the way a HID endpoint delivers them. Use it to run a device emulator
// against a session without hardware.
func Pipe(factory logging.LoggerFactory) (host, device *Stream) {
	a, b := newPipeConns()
	return NewStream(a, factory), NewStream(b, factory)
}

// pipeConn is one end of a Pipe.
type pipeConn struct {
	in  *packetio.Buffer
	out *packetio.Buffer

	once sync.Once
}

func newPipeConns() (*pipeConn, *pipeConn) {
	ab := packetio.NewBuffer()
	ba := packetio.NewBuffer()
	a := &pipeConn{in: ba, out: ab}
	b := &pipeConn{in: ab, out: ba}
	return a, b
}

func (c *pipeConn) Read(p []byte) (int, error) {
	return c.in.Read(p)
}

func (c *pipeConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// SetReadDeadline bounds blocked reads on this end.
func (c *pipeConn) SetReadDeadline(t time.Time) error {
	return c.in.SetReadDeadline(t)
}

// Close shuts both directions, so the peer sees EOF once it has drained
// what was already written.
func (c *pipeConn) Close() error {
	var err error
	c.once.Do(func() {
		if e := c.out.Close(); e != nil {
			err = e
		}
		if e := c.in.Close(); e != nil && err == nil {
			err = e
		}
	})
	return err
}
