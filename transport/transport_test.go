package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"
)

func TestEncodeReports(t *testing.T) {
	reports, err := EncodeReports(Frame{Kind: 0x0011, Payload: []byte{0xaa, 0xbb}})
	if err != nil {
		t.Fatalf("EncodeReports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	want := make([]byte, ReportSize)
	copy(want, []byte{'?', '#', '#', 0x00, 0x11, 0x00, 0x00, 0x00, 0x02, 0xaa, 0xbb})
	if !reflect.DeepEqual(reports[0], want) {
		t.Errorf("Expected %x, got %x", want, reports[0])
	}
}

func TestFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		reports int
	}{
		{"empty", 0, 1},
		{"fits_first_report", firstChunk, 1},
		{"one_byte_over", firstChunk + 1, 2},
		{"exactly_two_reports", firstChunk + continueChunk, 2},
		{"many_reports", 1000, 1 + (1000-firstChunk+continueChunk-1)/continueChunk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i)
			}
			f := Frame{Kind: 21, Payload: payload}

			reports, err := EncodeReports(f)
			if err != nil {
				t.Fatalf("EncodeReports failed: %v", err)
			}
			if len(reports) != tt.reports {
				t.Errorf("Expected %d reports, got %d", tt.reports, len(reports))
			}

			var buf bytes.Buffer
			for _, r := range reports {
				if len(r) != ReportSize {
					t.Fatalf("report of %d bytes", len(r))
				}
				buf.Write(r)
			}
			got, err := ReadFrame(&buf)
			if err != nil {
				t.Fatalf("ReadFrame failed: %v", err)
			}
			if got.Kind != f.Kind || !bytes.Equal(got.Payload, f.Payload) {
				t.Errorf("Expected %v, got %v", f, got)
			}
			if buf.Len() != 0 {
				t.Errorf("%d bytes left unread", buf.Len())
			}
		})
	}
}

func TestReadFrame_Errors(t *testing.T) {
	reports, err := EncodeReports(Frame{Kind: 3, Payload: make([]byte, 100)})
	if err != nil {
		t.Fatalf("EncodeReports failed: %v", err)
	}

	t.Run("eof", func(t *testing.T) {
		if _, err := ReadFrame(bytes.NewReader(nil)); err != io.EOF {
			t.Errorf("Expected io.EOF, got %v", err)
		}
	})

	t.Run("missing_continuation", func(t *testing.T) {
		_, err := ReadFrame(bytes.NewReader(reports[0]))
		if !errors.Is(err, ErrTruncatedFrame) {
			t.Errorf("Expected ErrTruncatedFrame, got %v", err)
		}
	})

	t.Run("short_report", func(t *testing.T) {
		_, err := ReadFrame(bytes.NewReader(reports[0][:10]))
		if !errors.Is(err, ErrTruncatedFrame) {
			t.Errorf("Expected ErrTruncatedFrame, got %v", err)
		}
	})

	t.Run("bad_header", func(t *testing.T) {
		bad := append([]byte(nil), reports[0]...)
		bad[1] = 'x'
		_, err := ReadFrame(bytes.NewReader(bad))
		if !errors.Is(err, ErrBadMagic) {
			t.Errorf("Expected ErrBadMagic, got %v", err)
		}
	})

	t.Run("bad_continuation", func(t *testing.T) {
		bad := append([]byte(nil), reports[1]...)
		bad[0] = 0
		_, err := ReadFrame(bytes.NewReader(append(append([]byte(nil), reports[0]...), bad...)))
		if !errors.Is(err, ErrBadMagic) {
			t.Errorf("Expected ErrBadMagic, got %v", err)
		}
	})

	t.Run("too_large", func(t *testing.T) {
		big := append([]byte(nil), reports[0]...)
		big[5], big[6], big[7], big[8] = 0xff, 0xff, 0xff, 0xff
		_, err := ReadFrame(bytes.NewReader(big))
		if !errors.Is(err, ErrFrameTooLarge) {
			t.Errorf("Expected ErrFrameTooLarge, got %v", err)
		}
	})

	t.Run("encode_too_large", func(t *testing.T) {
		_, err := EncodeReports(Frame{Payload: make([]byte, MaxPayloadSize+1)})
		if !errors.Is(err, ErrFrameTooLarge) {
			t.Errorf("Expected ErrFrameTooLarge, got %v", err)
		}
	})
}

func TestPipe_SendReceive(t *testing.T) {
	host, device := Pipe(nil)
	defer host.Close()
	defer device.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	frames := []Frame{
		{Kind: 0, Payload: []byte{}},
		{Kind: 55, Payload: bytes.Repeat([]byte{0x5a}, 300)},
		{Kind: 17, Payload: []byte("features")},
	}
	go func() {
		for _, f := range frames {
			if err := host.Send(ctx, f); err != nil {
				t.Errorf("Send failed: %v", err)
				return
			}
		}
	}()

	for _, want := range frames {
		got, err := device.Receive(ctx)
		if err != nil {
			t.Fatalf("Receive failed: %v", err)
		}
		if got.Kind != want.Kind || !bytes.Equal(got.Payload, want.Payload) {
			t.Errorf("Expected kind %d len %d, got kind %d len %d", want.Kind, len(want.Payload), got.Kind, len(got.Payload))
		}
	}
}

func TestStream_ReceiveCancelledKeepsPendingRead(t *testing.T) {
	host, device := Pipe(nil)
	defer host.Close()
	defer device.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := host.Receive(ctx)
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Receive did not return after cancel")
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
	defer cancel2()
	if err := device.Send(ctx2, Frame{Kind: 3, Payload: []byte{0x08, 0x04}}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	got, err := host.Receive(ctx2)
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if got.Kind != 3 || !bytes.Equal(got.Payload, []byte{0x08, 0x04}) {
		t.Errorf("unexpected frame %v", got)
	}
}

func TestStream_Closed(t *testing.T) {
	host, device := Pipe(nil)
	defer device.Close()

	if err := host.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	ctx := context.Background()
	if err := host.Send(ctx, Frame{Kind: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("Send: expected ErrClosed, got %v", err)
	}
	if _, err := host.Receive(ctx); !errors.Is(err, ErrClosed) {
		t.Errorf("Receive: expected ErrClosed, got %v", err)
	}
	if _, err := device.Receive(ctx); err != io.EOF {
		t.Errorf("peer Receive: expected io.EOF, got %v", err)
	}
}

func TestStream_SendCancelled(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, Frame{Kind: 1}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("cancelled send wrote %d bytes", buf.Len())
	}
}
