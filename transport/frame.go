package transport

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Report layout of the v1 HID protocol. Every report is ReportSize bytes;
// the first carries the frame header, the rest continue the payload.
//
//	first:        '?' '#' '#' | kind u16 BE | length u32 BE | payload...
//	continuation: '?' | payload...
const (
	ReportSize = 64

	reportMarker   = '?'
	headerMarker   = '#'
	headerSize     = 3 + 2 + 4
	firstChunk     = ReportSize - headerSize
	continueChunk  = ReportSize - 1
	MaxPayloadSize = 1 << 20
)

// Frame is one message on the wire: the 16-bit message kind and its
// encoded payload.
type Frame struct {
	Kind    uint16
	Payload []byte
}

// Transport moves frames between host and device. Implementations must
// return promptly with ctx.Err() once ctx is done.
type Transport interface {
	Send(ctx context.Context, f Frame) error
	Receive(ctx context.Context) (Frame, error)
}

// EncodeReports splits a frame into zero-padded reports.
func EncodeReports(f Frame) ([][]byte, error) {
	if len(f.Payload) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(f.Payload))
	}

	first := make([]byte, ReportSize)
	first[0] = reportMarker
	first[1] = headerMarker
	first[2] = headerMarker
	binary.BigEndian.PutUint16(first[3:5], f.Kind)
	binary.BigEndian.PutUint32(first[5:9], uint32(len(f.Payload)))
	rest := f.Payload[copy(first[headerSize:], f.Payload):]

	reports := [][]byte{first}
	for len(rest) > 0 {
		r := make([]byte, ReportSize)
		r[0] = reportMarker
		rest = rest[copy(r[1:], rest):]
		reports = append(reports, r)
	}
	return reports, nil
}

// ReadFrame reads reports from r until a whole frame has been assembled.
func ReadFrame(r io.Reader) (Frame, error) {
	report := make([]byte, ReportSize)
	if err := readReport(r, report, true); err != nil {
		return Frame{}, err
	}
	if report[1] != headerMarker || report[2] != headerMarker {
		return Frame{}, fmt.Errorf("%w: header %x", ErrBadMagic, report[:3])
	}

	kind := binary.BigEndian.Uint16(report[3:5])
	length := binary.BigEndian.Uint32(report[5:9])
	if length > MaxPayloadSize {
		return Frame{}, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, length)
	}

	payload := make([]byte, 0, length)
	payload = append(payload, report[headerSize:headerSize+min(int(length), firstChunk)]...)
	for len(payload) < int(length) {
		if err := readReport(r, report, false); err != nil {
			return Frame{}, err
		}
		n := min(int(length)-len(payload), continueChunk)
		payload = append(payload, report[1:1+n]...)
	}
	return Frame{Kind: kind, Payload: payload}, nil
}

// readReport fills report. EOF before the first byte of a frame is passed
// through as io.EOF, anywhere else it is a truncated frame.
func readReport(r io.Reader, report []byte, first bool) error {
	if _, err := io.ReadFull(r, report); err != nil {
		if first && errors.Is(err, io.EOF) {
			return io.EOF
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ErrTruncatedFrame
		}
		return err
	}
	if report[0] != reportMarker {
		return fmt.Errorf("%w: %#x", ErrBadMagic, report[0])
	}
	return nil
}
