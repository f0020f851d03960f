package session

import (
	"github.com/skycoin/skycoin-sub000/messages"
)

// State is the position of a session within the current workflow.
type State int

const (
	StateIdle State = iota
	StateAwaitingResponse        // request sent
	StateAwaitingButton          // ButtonRequest received
	StateAwaitingPin             // PinMatrixRequest received
	StateAwaitingPassphrase      // PassphraseRequest received
	StateAwaitingPassphraseState // PassphraseStateRequest received
	StateAwaitingWord            // WordRequest received
	StateAwaitingEntropy         // EntropyRequest received
	StateAwaitingTxData          // TxRequest received, device wants a TxAck
	StateCancelling              // Cancel sent, draining until Failure
	StateComplete                // workflow response received
	StateFailed                  // Failure received
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateAwaitingResponse:
		return "AwaitingResponse"
	case StateAwaitingButton:
		return "AwaitingButton"
	case StateAwaitingPin:
		return "AwaitingPin"
	case StateAwaitingPassphrase:
		return "AwaitingPassphrase"
	case StateAwaitingPassphraseState:
		return "AwaitingPassphraseState"
	case StateAwaitingWord:
		return "AwaitingWord"
	case StateAwaitingEntropy:
		return "AwaitingEntropy"
	case StateAwaitingTxData:
		return "AwaitingTxData"
	case StateCancelling:
		return "Cancelling"
	case StateComplete:
		return "Complete"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// promptStates maps each device prompt to the state it puts the session in.
var promptStates = map[messages.MessageType]State{
	messages.MessageType_ButtonRequest:          StateAwaitingButton,
	messages.MessageType_PinMatrixRequest:       StateAwaitingPin,
	messages.MessageType_PassphraseRequest:      StateAwaitingPassphrase,
	messages.MessageType_PassphraseStateRequest: StateAwaitingPassphraseState,
	messages.MessageType_WordRequest:            StateAwaitingWord,
	messages.MessageType_EntropyRequest:         StateAwaitingEntropy,
}

// workflow declares what a device may send back for one operation.
type workflow struct {
	name      string
	responses []messages.MessageType
	prompts   []messages.MessageType
}

func (w *workflow) responds(t messages.MessageType) bool {
	for _, r := range w.responses {
		if r == t {
			return true
		}
	}
	return false
}

func (w *workflow) accepts(t messages.MessageType) bool {
	for _, p := range w.prompts {
		if p == t {
			return true
		}
	}
	return false
}

// transition returns the state reached when received arrives in state
// during w. It is defined for every pair: anything not declared by w is
// ErrUnexpectedMessage.
func transition(state State, w *workflow, received messages.MessageType) (State, error) {
	switch state {
	case StateIdle, StateComplete, StateFailed:
		return state, ErrUnexpectedMessage
	case StateCancelling:
		if received == messages.MessageType_Failure {
			return StateFailed, nil
		}
		// whatever the device had in flight before it saw Cancel
		return StateCancelling, nil
	}

	if received == messages.MessageType_Failure {
		return StateFailed, nil
	}
	if state != StateAwaitingResponse && state != StateAwaitingTxData {
		// a prompt has not been answered yet
		return state, ErrUnexpectedMessage
	}
	if w.responds(received) {
		if received == messages.MessageType_TxRequest {
			return StateAwaitingTxData, nil
		}
		return StateComplete, nil
	}
	if next, ok := promptStates[received]; ok && w.accepts(received) {
		return next, nil
	}
	return state, ErrUnexpectedMessage
}
