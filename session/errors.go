package session

import (
	"errors"
	"fmt"

	"github.com/skycoin/skycoin-sub000/messages"
)

// Session errors.
var (
	// ErrUnexpectedMessage is returned when the device sends a message the
	// current workflow does not allow, or one that fails to decode.
	ErrUnexpectedMessage = errors.New("session: unexpected message")

	// ErrActionCancelled is returned when an operation was aborted with Cancel.
	ErrActionCancelled = errors.New("session: action cancelled")

	// ErrUserCancelled is returned by UI prompts when the user backs out.
	ErrUserCancelled = errors.New("session: cancelled by user")

	// ErrBusy is returned when an operation is started while another one is
	// still talking to the device.
	ErrBusy = errors.New("session: operation in progress")

	// ErrTxDataUnavailable is returned when the device asks for transaction
	// data the caller did not provide.
	ErrTxDataUnavailable = errors.New("session: requested transaction data not available")

	// ErrNoTransport is returned by New when Config.Transport is nil.
	ErrNoTransport = errors.New("session: no transport configured")
)

// DeviceFailure is a Failure message reported by the device.
type DeviceFailure struct {
	Code    messages.FailureType
	Message string
}

func (e *DeviceFailure) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("device failure: %s", e.Code)
	}
	return fmt.Sprintf("device failure: %s: %s", e.Code, e.Message)
}

// Is reports a Failure_ActionCancelled failure as ErrActionCancelled.
func (e *DeviceFailure) Is(target error) bool {
	return target == ErrActionCancelled && e.Code == messages.Failure_ActionCancelled
}

func deviceFailure(f *messages.Failure) *DeviceFailure {
	return &DeviceFailure{Code: f.GetCode(), Message: f.GetMessage()}
}
