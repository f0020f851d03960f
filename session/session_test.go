package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/pion/logging"

	hwproto "github.com/skycoin/skycoin-sub000"
	"github.com/skycoin/skycoin-sub000/messages"
	"github.com/skycoin/skycoin-sub000/transport"
	"github.com/skycoin/skycoin-sub000/wire"
)

// step is one exchange of the device emulator: it reads a message of kind
// expect, runs check on it, then writes frames followed by reply.
type step struct {
	expect messages.MessageType
	check  func(t *testing.T, m messages.Message)
	frames []transport.Frame
	reply  []messages.Message
}

func testCodec(t *testing.T) *hwproto.Codec {
	t.Helper()
	codec, err := hwproto.NewDefault(nil)
	if err != nil {
		t.Fatalf("NewDefault failed: %v", err)
	}
	return codec
}

// runDevice plays steps against dev and reports the first deviation.
func runDevice(t *testing.T, codec *hwproto.Codec, dev *transport.Stream, steps []step) <-chan error {
	done := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for i, st := range steps {
			f, err := dev.Receive(ctx)
			if err != nil {
				done <- fmt.Errorf("step %d: %w", i, err)
				return
			}
			if kind := messages.MessageType(f.Kind); kind != st.expect {
				done <- fmt.Errorf("step %d: expected %s, got %s", i, st.expect, kind)
				return
			}
			m, err := codec.Unmarshal(f.Kind, f.Payload)
			if err != nil {
				done <- fmt.Errorf("step %d: %w", i, err)
				return
			}
			if st.check != nil {
				st.check(t, m)
			}
			for _, raw := range st.frames {
				if err := dev.Send(ctx, raw); err != nil {
					done <- fmt.Errorf("step %d: %w", i, err)
					return
				}
			}
			for _, r := range st.reply {
				payload, err := codec.Marshal(r)
				if err != nil {
					done <- fmt.Errorf("step %d: encoding %s: %w", i, r.MessageType(), err)
					return
				}
				if err := dev.Send(ctx, transport.Frame{Kind: uint16(r.MessageType()), Payload: payload}); err != nil {
					done <- fmt.Errorf("step %d: %w", i, err)
					return
				}
			}
		}
		done <- nil
	}()
	return done
}

// newTestSession connects a session to a device emulator running steps.
// The returned wait blocks until the emulator has played every step.
func newTestSession(t *testing.T, ui UI, steps ...step) (*Session, func()) {
	t.Helper()
	codec := testCodec(t)
	host, dev := transport.Pipe(nil)
	t.Cleanup(func() {
		host.Close()
		dev.Close()
	})

	s, err := New(Config{
		Transport:     host,
		UI:            ui,
		Codec:         codec,
		LoggerFactory: logging.NewDefaultLoggerFactory(),
		CancelTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	done := runDevice(t, codec, dev, steps)
	wait := func() {
		t.Helper()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("device: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("device script did not finish")
		}
	}
	return s, wait
}

// scriptedUI answers prompts from fixed lists and records what it was asked.
type scriptedUI struct {
	mu          sync.Mutex
	pins        []string
	passphrases []string
	words       []string
	entropy     []byte
	decline     bool
	wordErr     error
	asked       []string

	// blockPin makes PromptPin wait for ctx, signalling pinAsked first.
	blockPin bool
	pinAsked chan struct{}
}

func (u *scriptedUI) record(s string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.asked = append(u.asked, s)
}

func (u *scriptedUI) PromptPin(ctx context.Context, kind messages.PinMatrixRequestType) (string, error) {
	u.record("pin:" + kind.String())
	if u.blockPin {
		close(u.pinAsked)
		<-ctx.Done()
		return "", ctx.Err()
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	pin := u.pins[0]
	u.pins = u.pins[1:]
	return pin, nil
}

func (u *scriptedUI) PromptPassphrase(ctx context.Context, onDevice bool) (string, error) {
	if onDevice {
		u.record("passphrase:device")
		return "ignored", nil
	}
	u.record("passphrase:host")
	u.mu.Lock()
	defer u.mu.Unlock()
	p := u.passphrases[0]
	u.passphrases = u.passphrases[1:]
	return p, nil
}

func (u *scriptedUI) PromptButton(ctx context.Context, code messages.ButtonRequestType) (bool, error) {
	u.record("button:" + code.String())
	return !u.decline, nil
}

func (u *scriptedUI) PromptWord(ctx context.Context, kind messages.WordRequestType) (string, error) {
	u.record("word")
	if u.wordErr != nil {
		return "", u.wordErr
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	w := u.words[0]
	u.words = u.words[1:]
	return w, nil
}

func (u *scriptedUI) PromptEntropy(ctx context.Context) ([]byte, error) {
	u.record("entropy")
	return u.entropy, nil
}

func cancelledByDevice() []messages.Message {
	return []messages.Message{&messages.Failure{
		Code:    messages.Failure_ActionCancelled.Enum(),
		Message: messages.String("Action cancelled by user"),
	}}
}

func TestNew_NoTransport(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNoTransport) {
		t.Fatalf("Expected ErrNoTransport, got %v", err)
	}
}

func TestSession_GetFeatures(t *testing.T) {
	s, wait := newTestSession(t, nil, step{
		expect: messages.MessageType_GetFeatures,
		reply: []messages.Message{&messages.Features{
			Vendor:       messages.String("skycoin.net"),
			MajorVersion: messages.Uint32(1),
			Label:        messages.String("My device"),
		}},
	})

	features, err := s.GetFeatures(context.Background())
	if err != nil {
		t.Fatalf("GetFeatures failed: %v", err)
	}
	wait()
	if features.GetVendor() != "skycoin.net" || features.GetMajorVersion() != 1 || features.GetLabel() != "My device" {
		t.Errorf("unexpected features %+v", features)
	}
	if features.PinProtection != nil {
		t.Errorf("absent field decoded as %v", *features.PinProtection)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected Idle after operation, got %s", s.State())
	}
}

func TestSession_ChangePin(t *testing.T) {
	ui := &scriptedUI{pins: []string{"1234", "5678", "5678"}}
	wantPin := func(pin string) func(t *testing.T, m messages.Message) {
		return func(t *testing.T, m messages.Message) {
			if got := m.(*messages.PinMatrixAck).Pin; got != pin {
				t.Errorf("Expected pin %q, got %q", pin, got)
			}
		}
	}
	pinRequest := func(kind messages.PinMatrixRequestType) []messages.Message {
		return []messages.Message{&messages.PinMatrixRequest{Type: kind.Enum()}}
	}

	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_ChangePin,
			check: func(t *testing.T, m messages.Message) {
				if m.(*messages.ChangePin).Remove != nil {
					t.Errorf("remove should be absent")
				}
			},
			reply: []messages.Message{&messages.ButtonRequest{Code: messages.ButtonRequestType_ButtonRequest_ProtectCall.Enum()}},
		},
		step{expect: messages.MessageType_ButtonAck, reply: pinRequest(messages.PinMatrixRequestType_Current)},
		step{expect: messages.MessageType_PinMatrixAck, check: wantPin("1234"), reply: pinRequest(messages.PinMatrixRequestType_NewFirst)},
		step{expect: messages.MessageType_PinMatrixAck, check: wantPin("5678"), reply: pinRequest(messages.PinMatrixRequestType_NewSecond)},
		step{
			expect: messages.MessageType_PinMatrixAck,
			check:  wantPin("5678"),
			reply:  []messages.Message{&messages.Success{Message: messages.String("PIN changed")}},
		},
	)

	resp, err := s.ChangePin(context.Background(), false)
	if err != nil {
		t.Fatalf("ChangePin failed: %v", err)
	}
	wait()
	if resp.GetMessage() != "PIN changed" {
		t.Errorf("unexpected success message %q", resp.GetMessage())
	}
	want := []string{
		"button:ButtonRequest_ProtectCall",
		"pin:PinMatrixRequestType_Current",
		"pin:PinMatrixRequestType_NewFirst",
		"pin:PinMatrixRequestType_NewSecond",
	}
	if fmt.Sprint(ui.asked) != fmt.Sprint(want) {
		t.Errorf("Expected prompts %v, got %v", want, ui.asked)
	}
}

func TestSession_UnexpectedMessage(t *testing.T) {
	s, wait := newTestSession(t, nil,
		step{
			expect: messages.MessageType_ChangePin,
			reply:  []messages.Message{&messages.Features{Vendor: messages.String("skycoin.net")}},
		},
		// no Cancel is sent, so the next request is the one the device sees
		step{
			expect: messages.MessageType_GetFeatures,
			reply:  []messages.Message{&messages.Features{Vendor: messages.String("skycoin.net")}},
		},
	)

	_, err := s.ChangePin(context.Background(), true)
	if !errors.Is(err, ErrUnexpectedMessage) {
		t.Fatalf("Expected ErrUnexpectedMessage, got %v", err)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected Idle after failed operation, got %s", s.State())
	}

	if _, err := s.GetFeatures(context.Background()); err != nil {
		t.Fatalf("session not reusable: %v", err)
	}
	wait()
}

func TestSession_DeviceFailure(t *testing.T) {
	s, wait := newTestSession(t, nil, step{
		expect: messages.MessageType_WipeDevice,
		reply: []messages.Message{&messages.Failure{
			Code:    messages.Failure_NotInitialized.Enum(),
			Message: messages.String("Device not initialized"),
		}},
	})

	_, err := s.WipeDevice(context.Background())
	wait()
	var df *DeviceFailure
	if !errors.As(err, &df) {
		t.Fatalf("Expected *DeviceFailure, got %v", err)
	}
	if df.Code != messages.Failure_NotInitialized || df.Message != "Device not initialized" {
		t.Errorf("unexpected failure %+v", df)
	}
	if errors.Is(err, ErrActionCancelled) {
		t.Errorf("NotInitialized must not match ErrActionCancelled")
	}
}

func TestSession_RecoveryDevice(t *testing.T) {
	ui := &scriptedUI{words: []string{"abandon", "ability", "able"}}
	wordRequest := []messages.Message{&messages.WordRequest{Type: messages.WordRequestType_Plain.Enum()}}
	var got []string
	wordAck := func(t *testing.T, m messages.Message) {
		got = append(got, m.(*messages.WordAck).Word)
	}

	// the device decides how many words it asks for
	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_RecoveryDevice,
			check: func(t *testing.T, m messages.Message) {
				if m.(*messages.RecoveryDevice).GetWordCount() != 12 {
					t.Errorf("Expected word_count 12")
				}
			},
			reply: wordRequest,
		},
		step{expect: messages.MessageType_WordAck, check: wordAck, reply: wordRequest},
		step{expect: messages.MessageType_WordAck, check: wordAck, reply: wordRequest},
		step{expect: messages.MessageType_WordAck, check: wordAck, reply: []messages.Message{&messages.Success{}}},
	)

	if _, err := s.RecoveryDevice(context.Background(), &messages.RecoveryDevice{WordCount: messages.Uint32(12)}); err != nil {
		t.Fatalf("RecoveryDevice failed: %v", err)
	}
	wait()
	if fmt.Sprint(got) != "[abandon ability able]" {
		t.Errorf("unexpected words %v", got)
	}
}

func TestSession_RecoveryCancelledByUser(t *testing.T) {
	ui := &scriptedUI{wordErr: ErrUserCancelled}
	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_RecoveryDevice,
			reply:  []messages.Message{&messages.WordRequest{Type: messages.WordRequestType_Plain.Enum()}},
		},
		step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
		step{
			expect: messages.MessageType_GetFeatures,
			reply:  []messages.Message{&messages.Features{Vendor: messages.String("skycoin.net")}},
		},
	)

	_, err := s.RecoveryDevice(context.Background(), &messages.RecoveryDevice{WordCount: messages.Uint32(24)})
	if !errors.Is(err, ErrActionCancelled) {
		t.Errorf("Expected ErrActionCancelled, got %v", err)
	}
	if !errors.Is(err, ErrUserCancelled) {
		t.Errorf("Expected ErrUserCancelled in chain, got %v", err)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected Idle, got %s", s.State())
	}

	features, err := s.GetFeatures(context.Background())
	if err != nil {
		t.Fatalf("session not reusable after cancel: %v", err)
	}
	if features.GetVendor() != "skycoin.net" {
		t.Errorf("unexpected vendor %q", features.GetVendor())
	}
	wait()
}

func TestSession_ResetDeviceEntropy(t *testing.T) {
	entropy := bytes.Repeat([]byte{0x42}, 32)
	ui := &scriptedUI{entropy: entropy}
	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_ResetDevice,
			check: func(t *testing.T, m messages.Message) {
				if m.(*messages.ResetDevice).GetStrength() != 256 {
					t.Errorf("Expected strength 256")
				}
			},
			reply: []messages.Message{&messages.ButtonRequest{Code: messages.ButtonRequestType_ButtonRequest_ResetDevice.Enum()}},
		},
		step{expect: messages.MessageType_ButtonAck, reply: []messages.Message{&messages.EntropyRequest{}}},
		step{
			expect: messages.MessageType_EntropyAck,
			check: func(t *testing.T, m messages.Message) {
				if !bytes.Equal(m.(*messages.EntropyAck).Entropy, entropy) {
					t.Errorf("unexpected entropy %x", m.(*messages.EntropyAck).Entropy)
				}
			},
			reply: []messages.Message{&messages.Success{}},
		},
	)

	if _, err := s.ResetDevice(context.Background(), &messages.ResetDevice{Strength: messages.Uint32(256)}); err != nil {
		t.Fatalf("ResetDevice failed: %v", err)
	}
	wait()
}

func TestSession_PassphraseState(t *testing.T) {
	state := []byte{0x01, 0x02, 0x03}
	ui := &scriptedUI{passphrases: []string{"secret"}}
	s, wait := newTestSession(t, ui,
		step{expect: messages.MessageType_GetAddress, reply: []messages.Message{&messages.PassphraseRequest{}}},
		step{
			expect: messages.MessageType_PassphraseAck,
			check: func(t *testing.T, m messages.Message) {
				ack := m.(*messages.PassphraseAck)
				if ack.GetPassphrase() != "secret" || ack.State != nil {
					t.Errorf("unexpected ack %+v", ack)
				}
			},
			reply: []messages.Message{&messages.PassphraseStateRequest{State: state}},
		},
		step{expect: messages.MessageType_PassphraseStateAck, reply: []messages.Message{&messages.Address{Address: "2GgFvqoyk9RjwVzj8tqfcXVXB4orBwoc9qv"}}},

		// entered on the device: the UI is told, saved state is sent back
		step{expect: messages.MessageType_GetAddress, reply: []messages.Message{&messages.PassphraseRequest{OnDevice: messages.Bool(true)}}},
		step{
			expect: messages.MessageType_PassphraseAck,
			check: func(t *testing.T, m messages.Message) {
				ack := m.(*messages.PassphraseAck)
				if ack.Passphrase != nil {
					t.Errorf("passphrase sent for on-device entry")
				}
				if !bytes.Equal(ack.State, state) {
					t.Errorf("Expected state %x, got %x", state, ack.State)
				}
			},
			reply: []messages.Message{&messages.Address{Address: "2GgFvqoyk9RjwVzj8tqfcXVXB4orBwoc9qv"}},
		},
	)

	req := &messages.GetAddress{AddressN: []uint32{44 | 0x80000000, 0x80000000, 0x80000000, 0, 0}, CoinName: messages.String("Skycoin")}
	for i := 0; i < 2; i++ {
		addr, err := s.GetAddress(context.Background(), req)
		if err != nil {
			t.Fatalf("GetAddress %d failed: %v", i, err)
		}
		if addr != "2GgFvqoyk9RjwVzj8tqfcXVXB4orBwoc9qv" {
			t.Errorf("unexpected address %q", addr)
		}
	}
	wait()
	if want := []string{"passphrase:host", "passphrase:device"}; !reflect.DeepEqual(ui.asked, want) {
		t.Errorf("Expected prompts %v, got %v", want, ui.asked)
	}
}

func TestSession_PassphraseOnDeviceWithoutUI(t *testing.T) {
	s, wait := newTestSession(t, nil,
		step{expect: messages.MessageType_GetAddress, reply: []messages.Message{&messages.PassphraseRequest{OnDevice: messages.Bool(true)}}},
		step{
			expect: messages.MessageType_PassphraseAck,
			check: func(t *testing.T, m messages.Message) {
				if m.(*messages.PassphraseAck).Passphrase != nil {
					t.Errorf("passphrase sent for on-device entry")
				}
			},
			reply: []messages.Message{&messages.Address{Address: "2GgFvqoyk9RjwVzj8tqfcXVXB4orBwoc9qv"}},
		},
	)

	if _, err := s.GetAddress(context.Background(), &messages.GetAddress{AddressN: []uint32{0}}); err != nil {
		t.Fatalf("GetAddress failed: %v", err)
	}
	wait()
}

func TestSession_ButtonDeclined(t *testing.T) {
	ui := &scriptedUI{decline: true}
	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_WipeDevice,
			reply:  []messages.Message{&messages.ButtonRequest{Code: messages.ButtonRequestType_ButtonRequest_WipeDevice.Enum()}},
		},
		step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
	)

	_, err := s.WipeDevice(context.Background())
	wait()
	if !errors.Is(err, ErrActionCancelled) || !errors.Is(err, ErrUserCancelled) {
		t.Fatalf("Expected ErrActionCancelled wrapping ErrUserCancelled, got %v", err)
	}
}

func TestSession_CancelDuringPrompt(t *testing.T) {
	ui := &scriptedUI{blockPin: true, pinAsked: make(chan struct{})}
	s, wait := newTestSession(t, ui,
		step{
			expect: messages.MessageType_ChangePin,
			reply:  []messages.Message{&messages.PinMatrixRequest{Type: messages.PinMatrixRequestType_Current.Enum()}},
		},
		step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
	)

	errc := make(chan error, 1)
	go func() {
		_, err := s.ChangePin(context.Background(), false)
		errc <- err
	}()

	select {
	case <-ui.pinAsked:
	case <-time.After(5 * time.Second):
		t.Fatal("PIN prompt never shown")
	}
	if s.State() != StateAwaitingPin {
		t.Errorf("Expected AwaitingPin, got %s", s.State())
	}
	if _, err := s.GetFeatures(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("Expected ErrBusy, got %v", err)
	}

	s.Cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, ErrActionCancelled) {
			t.Errorf("Expected ErrActionCancelled, got %v", err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled in chain, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ChangePin did not return after Cancel")
	}
	wait()
}

func TestSession_ContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, wait := newTestSession(t, nil,
		step{
			expect: messages.MessageType_GetEntropy,
			// the device goes quiet, then the caller gives up
			check: func(t *testing.T, m messages.Message) { cancel() },
		},
		step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
	)

	_, err := s.GetEntropy(ctx, 32)
	wait()
	if !errors.Is(err, ErrActionCancelled) || !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected ErrActionCancelled wrapping context.Canceled, got %v", err)
	}
}

func TestSession_CancelledContextNotSent(t *testing.T) {
	s, wait := newTestSession(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.GetFeatures(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	wait()
}

func TestSession_UndecodableResponse(t *testing.T) {
	s, wait := newTestSession(t, nil, step{
		expect: messages.MessageType_GetFeatures,
		// Failure with code 50, outside FailureType
		frames: []transport.Frame{{Kind: uint16(messages.MessageType_Failure), Payload: []byte{0x08, 0x32}}},
	})

	_, err := s.GetFeatures(context.Background())
	wait()
	if !errors.Is(err, ErrUnexpectedMessage) {
		t.Errorf("Expected ErrUnexpectedMessage, got %v", err)
	}
	if !errors.Is(err, wire.ErrEnumValueOutOfDomain) {
		t.Errorf("Expected ErrEnumValueOutOfDomain in chain, got %v", err)
	}
}

func TestSession_Call(t *testing.T) {
	s, wait := newTestSession(t, nil,
		step{
			expect: messages.MessageType_ApplyFlags,
			check: func(t *testing.T, m messages.Message) {
				if m.(*messages.ApplyFlags).GetFlags() != 1 {
					t.Errorf("Expected flags 1")
				}
			},
			reply: []messages.Message{&messages.ButtonRequest{}},
		},
		step{expect: messages.MessageType_ButtonAck, reply: []messages.Message{&messages.Success{}}},
	)

	resp, err := s.Call(context.Background(), &messages.ApplyFlags{Flags: messages.Uint32(1)})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	wait()
	if resp.MessageType() != messages.MessageType_Success {
		t.Errorf("Expected Success, got %s", resp.MessageType())
	}
}
