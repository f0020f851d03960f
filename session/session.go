package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pion/logging"

	hwproto "github.com/skycoin/skycoin-sub000"
	"github.com/skycoin/skycoin-sub000/messages"
	"github.com/skycoin/skycoin-sub000/transport"
)

// DefaultCancelTimeout bounds how long an aborted operation waits for the
// device to acknowledge Cancel.
const DefaultCancelTimeout = 10 * time.Second

// Config configures a Session.
type Config struct {
	// Transport carries frames to and from the device. Required.
	Transport transport.Transport

	// UI answers device prompts.
	// If nil, buttons are acknowledged and every other prompt is declined.
	UI UI

	// Codec encodes and decodes payloads.
	// If nil, a codec over the embedded protocol is created.
	Codec *hwproto.Codec

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory

	// CancelTimeout bounds the wait for the device to acknowledge Cancel.
	// Default: DefaultCancelTimeout
	CancelTimeout time.Duration
}

// Session drives workflows against one device. Only one operation runs at
// a time; a second one started concurrently fails with ErrBusy. Cancel may
// be called from any goroutine.
type Session struct {
	transport     transport.Transport
	ui            UI
	codec         *hwproto.Codec
	log           logging.LeveledLogger
	cancelTimeout time.Duration

	// opMu is held for the whole of an operation.
	opMu sync.Mutex

	mu              sync.Mutex
	state           State
	cancelOp        context.CancelFunc
	passphraseState []byte
}

// New creates a session with the given configuration.
func New(config Config) (*Session, error) {
	if config.Transport == nil {
		return nil, ErrNoTransport
	}

	s := &Session{
		transport:     config.Transport,
		ui:            config.UI,
		codec:         config.Codec,
		cancelTimeout: config.CancelTimeout,
		state:         StateIdle,
	}
	if s.ui == nil {
		s.ui = noUI{}
	}
	if s.codec == nil {
		codec, err := hwproto.NewDefault(config.LoggerFactory)
		if err != nil {
			return nil, err
		}
		s.codec = codec
	}
	if s.cancelTimeout <= 0 {
		s.cancelTimeout = DefaultCancelTimeout
	}
	if config.LoggerFactory != nil {
		s.log = config.LoggerFactory.NewLogger("hwsession")
	}
	return s, nil
}

// State returns the current protocol state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Cancel interrupts the operation in progress, if any. The operation sends
// Cancel to the device and returns an error matching ErrActionCancelled.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancelOp
	s.mu.Unlock()
	if cancel != nil {
		if s.log != nil {
			s.log.Warn("cancel requested")
		}
		cancel()
	}
}

// op is one running workflow.
type op struct {
	s      *Session
	wf     *workflow
	parent context.Context
	ctx    context.Context
}

// run executes fn as one operation of wf.
func (s *Session) run(ctx context.Context, wf *workflow, fn func(o *op) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.opMu.TryLock() {
		return ErrBusy
	}
	defer s.opMu.Unlock()

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancelOp = cancel
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.cancelOp = nil
		s.mu.Unlock()
		s.setState(wf, StateIdle)
	}()

	return fn(&op{s: s, wf: wf, parent: ctx, ctx: opCtx})
}

// call runs a workflow made of a single request.
func (s *Session) call(ctx context.Context, wf *workflow, req messages.Message) (messages.Message, error) {
	var resp messages.Message
	err := s.run(ctx, wf, func(o *op) error {
		var err error
		resp, err = o.roundTrip(req)
		return err
	})
	return resp, err
}

func (s *Session) setState(wf *workflow, next State) {
	s.mu.Lock()
	prev := s.state
	s.state = next
	s.mu.Unlock()
	if s.log != nil && prev != next {
		s.log.Debugf("%s: %s -> %s", wf.name, prev, next)
	}
}

func (o *op) state() State {
	return o.s.State()
}

// send encodes and writes m.
func (o *op) send(ctx context.Context, m messages.Message) error {
	payload, err := o.s.codec.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", m.MessageType(), err)
	}
	if o.s.log != nil {
		o.s.log.Tracef("%s: send %s (%d bytes)", o.wf.name, m.MessageType(), len(payload))
	}
	return o.s.transport.Send(ctx, transport.Frame{Kind: uint16(m.MessageType()), Payload: payload})
}

// receive reads and decodes the next message. Decoding failures are
// reported as ErrUnexpectedMessage.
func (o *op) receive(ctx context.Context) (messages.Message, error) {
	f, err := o.s.transport.Receive(ctx)
	if err != nil {
		return nil, err
	}
	m, err := o.s.codec.Unmarshal(f.Kind, f.Payload)
	if err != nil {
		if o.s.log != nil {
			o.s.log.Warnf("%s: undecodable frame kind=%d: %v", o.wf.name, f.Kind, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedMessage, err)
	}
	if o.s.log != nil {
		o.s.log.Tracef("%s: received %s (%d bytes)", o.wf.name, m.MessageType(), len(f.Payload))
	}
	return m, nil
}

// roundTrip sends req and answers device prompts until the device sends
// one of the workflow's responses, which is returned. A Failure is
// returned as *DeviceFailure.
func (o *op) roundTrip(req messages.Message) (messages.Message, error) {
	if err := o.send(o.ctx, req); err != nil {
		if o.ctx.Err() != nil {
			return nil, o.abort(o.ctx.Err())
		}
		return nil, err
	}
	o.s.setState(o.wf, StateAwaitingResponse)

	for {
		m, err := o.receive(o.ctx)
		if err != nil {
			if o.ctx.Err() != nil {
				return nil, o.abort(o.ctx.Err())
			}
			return nil, err
		}

		next, err := transition(o.state(), o.wf, m.MessageType())
		if err != nil {
			if o.s.log != nil {
				o.s.log.Warnf("%s: unexpected %s in state %s", o.wf.name, m.MessageType(), o.state())
			}
			return nil, fmt.Errorf("%w: %s in state %s", err, m.MessageType(), o.state())
		}
		o.s.setState(o.wf, next)

		switch next {
		case StateFailed:
			return nil, deviceFailure(m.(*messages.Failure))
		case StateComplete, StateAwaitingTxData:
			return m, nil
		}

		reply, err := o.answer(m)
		if err != nil {
			return nil, o.abort(err)
		}
		if err := o.send(o.ctx, reply); err != nil {
			if o.ctx.Err() != nil {
				return nil, o.abort(o.ctx.Err())
			}
			return nil, err
		}
		o.s.setState(o.wf, StateAwaitingResponse)
	}
}

// answer builds the reply to a device prompt, asking the UI where needed.
func (o *op) answer(m messages.Message) (messages.Message, error) {
	switch p := m.(type) {
	case *messages.ButtonRequest:
		ok, err := o.s.ui.PromptButton(o.ctx, p.GetCode())
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUserCancelled
		}
		return &messages.ButtonAck{}, nil

	case *messages.PinMatrixRequest:
		pin, err := o.s.ui.PromptPin(o.ctx, p.GetType())
		if err != nil {
			return nil, err
		}
		return &messages.PinMatrixAck{Pin: pin}, nil

	case *messages.PassphraseRequest:
		ack := &messages.PassphraseAck{State: o.s.savedPassphraseState()}
		passphrase, err := o.s.ui.PromptPassphrase(o.ctx, p.GetOnDevice())
		if err != nil {
			return nil, err
		}
		if !p.GetOnDevice() {
			ack.Passphrase = messages.String(passphrase)
		}
		return ack, nil

	case *messages.PassphraseStateRequest:
		o.s.savePassphraseState(p.GetState())
		return &messages.PassphraseStateAck{}, nil

	case *messages.WordRequest:
		word, err := o.s.ui.PromptWord(o.ctx, p.GetType())
		if err != nil {
			return nil, err
		}
		return &messages.WordAck{Word: word}, nil

	case *messages.EntropyRequest:
		entropy, err := o.s.ui.PromptEntropy(o.ctx)
		if err != nil {
			return nil, err
		}
		return &messages.EntropyAck{Entropy: entropy}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnexpectedMessage, m.MessageType())
}

// abort sends Cancel and reads until the device reports the Failure that
// acknowledges it. The returned error matches ErrActionCancelled and cause.
func (o *op) abort(cause error) error {
	if o.s.log != nil {
		o.s.log.Warnf("%s: aborting in state %s: %v", o.wf.name, o.state(), cause)
	}
	o.s.setState(o.wf, StateCancelling)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(o.parent), o.s.cancelTimeout)
	defer cancel()

	if err := o.send(ctx, &messages.Cancel{}); err != nil {
		return fmt.Errorf("%w: %w (sending Cancel: %v)", ErrActionCancelled, cause, err)
	}
	for {
		m, err := o.receive(ctx)
		if err != nil {
			if errors.Is(err, ErrUnexpectedMessage) {
				continue
			}
			return fmt.Errorf("%w: %w (waiting for device: %v)", ErrActionCancelled, cause, err)
		}
		next, _ := transition(StateCancelling, o.wf, m.MessageType())
		if next == StateFailed {
			o.s.setState(o.wf, StateFailed)
			f := deviceFailure(m.(*messages.Failure))
			if f.Code != messages.Failure_ActionCancelled && o.s.log != nil {
				o.s.log.Warnf("%s: cancel acknowledged with %v", o.wf.name, f)
			}
			return fmt.Errorf("%w: %w", ErrActionCancelled, cause)
		}
	}
}

func (s *Session) savedPassphraseState() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passphraseState
}

func (s *Session) savePassphraseState(state []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passphraseState = state
}

func (s *Session) forgetPassphraseState() {
	s.savePassphraseState(nil)
}
