package session

import (
	"context"

	"github.com/skycoin/skycoin-sub000/messages"
)

// UI collects input from the person holding the device. Every prompt may
// block for as long as the user needs; implementations must return
// ctx.Err() once ctx is done and ErrUserCancelled when the user declines.
type UI interface {
	// PromptPin returns the PIN encoded with the matrix shown on the device.
	PromptPin(ctx context.Context, kind messages.PinMatrixRequestType) (string, error)

	// PromptPassphrase returns the passphrase typed on the host. With
	// onDevice set the user types it on the device instead; the returned
	// string is ignored and an error still cancels the operation.
	PromptPassphrase(ctx context.Context, onDevice bool) (string, error)

	// PromptButton tells the user to look at the device. It returns false
	// to cancel the operation instead of acknowledging.
	PromptButton(ctx context.Context, code messages.ButtonRequestType) (bool, error)

	// PromptWord returns one word of the recovery mnemonic.
	PromptWord(ctx context.Context, kind messages.WordRequestType) (string, error)

	// PromptEntropy returns host entropy mixed into a new seed.
	PromptEntropy(ctx context.Context) ([]byte, error)
}

// noUI acknowledges button requests and on-device passphrase entry, and
// declines every other prompt.
type noUI struct{}

func (noUI) PromptPin(context.Context, messages.PinMatrixRequestType) (string, error) {
	return "", ErrUserCancelled
}

func (noUI) PromptPassphrase(_ context.Context, onDevice bool) (string, error) {
	if onDevice {
		return "", nil
	}
	return "", ErrUserCancelled
}

func (noUI) PromptButton(context.Context, messages.ButtonRequestType) (bool, error) {
	return true, nil
}

func (noUI) PromptWord(context.Context, messages.WordRequestType) (string, error) {
	return "", ErrUserCancelled
}

func (noUI) PromptEntropy(context.Context) ([]byte, error) {
	return nil, ErrUserCancelled
}
