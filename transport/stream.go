package transport

import (
	"context"
	"io"
	"sync"

	"github.com/pion/logging"
)

// Stream implements Transport over a byte channel carrying HID reports,
// such as an opened hidraw device or one end of a Pipe.
//
// Reads are done by a background goroutine so that Receive can honour ctx.
// A Receive abandoned by ctx leaves its read in flight; the frame it yields
// is returned by the next Receive.
type Stream struct {
	rw  io.ReadWriter
	log logging.LeveledLogger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending chan readResult
	closed  bool
}

type readResult struct {
	frame Frame
	err   error
}

// NewStream wraps rw. If factory is nil, logging is disabled.
func NewStream(rw io.ReadWriter, factory logging.LoggerFactory) *Stream {
	s := &Stream{rw: rw}
	if factory != nil {
		s.log = factory.NewLogger("hwtransport")
	}
	return s
}

// Send writes f as a sequence of reports.
func (s *Stream) Send(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.isClosed() {
		return ErrClosed
	}

	reports, err := EncodeReports(f)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	for _, r := range reports {
		if _, err := s.rw.Write(r); err != nil {
			return err
		}
	}
	if s.log != nil {
		s.log.Tracef("sent frame kind=%d len=%d reports=%d", f.Kind, len(f.Payload), len(reports))
	}
	return nil
}

// Receive returns the next frame.
func (s *Stream) Receive(ctx context.Context) (Frame, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Frame{}, ErrClosed
	}
	if s.pending == nil {
		ch := make(chan readResult, 1)
		s.pending = ch
		go func() {
			f, err := ReadFrame(s.rw)
			ch <- readResult{frame: f, err: err}
		}()
	}
	ch := s.pending
	s.mu.Unlock()

	select {
	case res := <-ch:
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
		if res.err != nil {
			return Frame{}, res.err
		}
		if s.log != nil {
			s.log.Tracef("received frame kind=%d len=%d", res.frame.Kind, len(res.frame.Payload))
		}
		return res.frame, nil
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	}
}

// Close closes the underlying channel if it is an io.Closer. A blocked
// read then ends and its result is dropped.
func (s *Stream) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if c, ok := s.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Stream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

var _ Transport = (*Stream)(nil)
