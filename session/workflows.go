package session

import (
	"context"

	"github.com/skycoin/skycoin-sub000/messages"
)

type mt = messages.MessageType

// Device prompts accepted by each family of workflows.
var (
	buttonOnly       = []mt{messages.MessageType_ButtonRequest}
	withPin          = []mt{messages.MessageType_ButtonRequest, messages.MessageType_PinMatrixRequest}
	withEntropy      = []mt{messages.MessageType_ButtonRequest, messages.MessageType_PinMatrixRequest, messages.MessageType_EntropyRequest}
	withEntropyNoPin = []mt{messages.MessageType_ButtonRequest, messages.MessageType_EntropyRequest}
	withWords        = []mt{messages.MessageType_ButtonRequest, messages.MessageType_PinMatrixRequest, messages.MessageType_WordRequest}
	withSeed         = []mt{messages.MessageType_ButtonRequest, messages.MessageType_PinMatrixRequest, messages.MessageType_PassphraseRequest, messages.MessageType_PassphraseStateRequest}
	allPrompts       = []mt{messages.MessageType_ButtonRequest, messages.MessageType_PinMatrixRequest, messages.MessageType_PassphraseRequest, messages.MessageType_PassphraseStateRequest, messages.MessageType_WordRequest, messages.MessageType_EntropyRequest}
)

var (
	wfInitialize       = &workflow{name: "Initialize", responses: []mt{messages.MessageType_Features}}
	wfGetFeatures      = &workflow{name: "GetFeatures", responses: []mt{messages.MessageType_Features}}
	wfPing             = &workflow{name: "Ping", responses: []mt{messages.MessageType_Success}, prompts: withSeed}
	wfChangePin        = &workflow{name: "ChangePin", responses: []mt{messages.MessageType_Success}, prompts: withPin}
	wfWipeDevice       = &workflow{name: "WipeDevice", responses: []mt{messages.MessageType_Success}, prompts: buttonOnly}
	wfResetDevice      = &workflow{name: "ResetDevice", responses: []mt{messages.MessageType_Success}, prompts: withEntropy}
	wfRecoveryDevice   = &workflow{name: "RecoveryDevice", responses: []mt{messages.MessageType_Success}, prompts: withWords}
	wfBackupDevice     = &workflow{name: "BackupDevice", responses: []mt{messages.MessageType_Success}, prompts: withPin}
	wfLoadDevice       = &workflow{name: "LoadDevice", responses: []mt{messages.MessageType_Success}, prompts: withPin}
	wfApplySettings    = &workflow{name: "ApplySettings", responses: []mt{messages.MessageType_Success}, prompts: withPin}
	wfClearSession     = &workflow{name: "ClearSession", responses: []mt{messages.MessageType_Success}}
	wfGetEntropy       = &workflow{name: "GetEntropy", responses: []mt{messages.MessageType_Entropy}, prompts: buttonOnly}
	wfGetAddress       = &workflow{name: "GetAddress", responses: []mt{messages.MessageType_Address}, prompts: withSeed}
	wfGetPublicKey     = &workflow{name: "GetPublicKey", responses: []mt{messages.MessageType_PublicKey}, prompts: withSeed}
	wfSignMessage      = &workflow{name: "SignMessage", responses: []mt{messages.MessageType_MessageSignature}, prompts: withSeed}
	wfVerifyMessage    = &workflow{name: "VerifyMessage", responses: []mt{messages.MessageType_Success}, prompts: buttonOnly}
	wfSignTx           = &workflow{name: "SignTx", responses: []mt{messages.MessageType_TxRequest}, prompts: withSeed}
	wfSkycoinAddress   = &workflow{name: "SkycoinAddress", responses: []mt{messages.MessageType_ResponseSkycoinAddress}, prompts: withSeed}
	wfSkycoinSign      = &workflow{name: "SkycoinSignMessage", responses: []mt{messages.MessageType_ResponseSkycoinSignMessage}, prompts: withSeed}
	wfSkycoinCheckSig  = &workflow{name: "SkycoinCheckMessageSignature", responses: []mt{messages.MessageType_Success}, prompts: buttonOnly}
	wfGenerateMnemonic = &workflow{name: "GenerateMnemonic", responses: []mt{messages.MessageType_Success}, prompts: withEntropyNoPin}
	wfSetMnemonic      = &workflow{name: "SetMnemonic", responses: []mt{messages.MessageType_Success}, prompts: buttonOnly}
)

// Initialize resets the device session and returns its features. A
// non-nil state resumes a passphrase session obtained earlier.
func (s *Session) Initialize(ctx context.Context, state []byte) (*messages.Features, error) {
	resp, err := s.call(ctx, wfInitialize, &messages.Initialize{State: state})
	if err != nil {
		return nil, err
	}
	if state == nil {
		s.forgetPassphraseState()
	}
	return resp.(*messages.Features), nil
}

// GetFeatures asks the device to describe itself.
func (s *Session) GetFeatures(ctx context.Context) (*messages.Features, error) {
	resp, err := s.call(ctx, wfGetFeatures, &messages.GetFeatures{})
	if err != nil {
		return nil, err
	}
	return resp.(*messages.Features), nil
}

// Ping checks that the device is responsive, optionally exercising the
// button, PIN and passphrase prompts on the way.
func (s *Session) Ping(ctx context.Context, req *messages.Ping) (*messages.Success, error) {
	return success(s.call(ctx, wfPing, req))
}

// ChangePin sets, changes or removes the device PIN.
func (s *Session) ChangePin(ctx context.Context, remove bool) (*messages.Success, error) {
	req := &messages.ChangePin{}
	if remove {
		req.Remove = messages.Bool(true)
	}
	return success(s.call(ctx, wfChangePin, req))
}

// WipeDevice erases every secret stored on the device.
func (s *Session) WipeDevice(ctx context.Context) (*messages.Success, error) {
	resp, err := success(s.call(ctx, wfWipeDevice, &messages.WipeDevice{}))
	if err == nil {
		s.forgetPassphraseState()
	}
	return resp, err
}

// ResetDevice generates a new seed on the device, mixing in host entropy.
func (s *Session) ResetDevice(ctx context.Context, req *messages.ResetDevice) (*messages.Success, error) {
	return success(s.call(ctx, wfResetDevice, req))
}

// RecoveryDevice restores a seed word by word. The number of words asked
// for is chosen by the device.
func (s *Session) RecoveryDevice(ctx context.Context, req *messages.RecoveryDevice) (*messages.Success, error) {
	return success(s.call(ctx, wfRecoveryDevice, req))
}

// BackupDevice shows the mnemonic of a device that has not been backed up.
func (s *Session) BackupDevice(ctx context.Context) (*messages.Success, error) {
	return success(s.call(ctx, wfBackupDevice, &messages.BackupDevice{}))
}

// LoadDevice loads a seed directly. Meant for testing only.
func (s *Session) LoadDevice(ctx context.Context, req *messages.LoadDevice) (*messages.Success, error) {
	return success(s.call(ctx, wfLoadDevice, req))
}

// ApplySettings changes the label, language and other device settings.
func (s *Session) ApplySettings(ctx context.Context, req *messages.ApplySettings) (*messages.Success, error) {
	return success(s.call(ctx, wfApplySettings, req))
}

// ClearSession clears the cached PIN and passphrase on the device.
func (s *Session) ClearSession(ctx context.Context) (*messages.Success, error) {
	resp, err := success(s.call(ctx, wfClearSession, &messages.ClearSession{}))
	if err == nil {
		s.forgetPassphraseState()
	}
	return resp, err
}

// GetEntropy returns size bytes from the device's random generator.
func (s *Session) GetEntropy(ctx context.Context, size uint32) ([]byte, error) {
	resp, err := s.call(ctx, wfGetEntropy, &messages.GetEntropy{Size: size})
	if err != nil {
		return nil, err
	}
	return resp.(*messages.Entropy).Entropy, nil
}

// GetAddress derives an address for the given path and coin.
func (s *Session) GetAddress(ctx context.Context, req *messages.GetAddress) (string, error) {
	resp, err := s.call(ctx, wfGetAddress, req)
	if err != nil {
		return "", err
	}
	return resp.(*messages.Address).Address, nil
}

func (s *Session) GetPublicKey(ctx context.Context, req *messages.GetPublicKey) (*messages.PublicKey, error) {
	resp, err := s.call(ctx, wfGetPublicKey, req)
	if err != nil {
		return nil, err
	}
	return resp.(*messages.PublicKey), nil
}

func (s *Session) SignMessage(ctx context.Context, req *messages.SignMessage) (*messages.MessageSignature, error) {
	resp, err := s.call(ctx, wfSignMessage, req)
	if err != nil {
		return nil, err
	}
	return resp.(*messages.MessageSignature), nil
}

func (s *Session) VerifyMessage(ctx context.Context, req *messages.VerifyMessage) (*messages.Success, error) {
	return success(s.call(ctx, wfVerifyMessage, req))
}

// SkycoinAddress derives Skycoin addresses starting at req.StartIndex.
func (s *Session) SkycoinAddress(ctx context.Context, req *messages.SkycoinAddress) ([]string, error) {
	resp, err := s.call(ctx, wfSkycoinAddress, req)
	if err != nil {
		return nil, err
	}
	return resp.(*messages.ResponseSkycoinAddress).Addresses, nil
}

// SkycoinSignMessage signs message with the key of address index addressN.
func (s *Session) SkycoinSignMessage(ctx context.Context, addressN uint32, message string) (string, error) {
	resp, err := s.call(ctx, wfSkycoinSign, &messages.SkycoinSignMessage{AddressN: addressN, Message: message})
	if err != nil {
		return "", err
	}
	return resp.(*messages.ResponseSkycoinSignMessage).SignedMessage, nil
}

func (s *Session) SkycoinCheckMessageSignature(ctx context.Context, req *messages.SkycoinCheckMessageSignature) (*messages.Success, error) {
	return success(s.call(ctx, wfSkycoinCheckSig, req))
}

// GenerateMnemonic has the device create a mnemonic of the given word
// count from its own and host entropy.
func (s *Session) GenerateMnemonic(ctx context.Context, req *messages.GenerateMnemonic) (*messages.Success, error) {
	return success(s.call(ctx, wfGenerateMnemonic, req))
}

func (s *Session) SetMnemonic(ctx context.Context, mnemonic string) (*messages.Success, error) {
	return success(s.call(ctx, wfSetMnemonic, &messages.SetMnemonic{Mnemonic: mnemonic}))
}

// Call sends req and completes once the device answers with one of
// responses, handling every prompt along the way. It serves requests that
// have no dedicated method, such as ApplyFlags.
func (s *Session) Call(ctx context.Context, req messages.Message, responses ...messages.MessageType) (messages.Message, error) {
	if len(responses) == 0 {
		responses = []mt{messages.MessageType_Success}
	}
	wf := &workflow{name: req.MessageType().String(), responses: responses, prompts: allPrompts}
	return s.call(ctx, wf, req)
}

func success(resp messages.Message, err error) (*messages.Success, error) {
	if err != nil {
		return nil, err
	}
	return resp.(*messages.Success), nil
}
