package messages

import "strconv"

// MessageType identifies a message on the wire. Its numeric value is the
// 16-bit kind carried in every transport frame header.
type MessageType uint16

const (
	MessageType_Initialize                   MessageType = 0
	MessageType_Ping                         MessageType = 1
	MessageType_Success                      MessageType = 2
	MessageType_Failure                      MessageType = 3
	MessageType_ChangePin                    MessageType = 4
	MessageType_WipeDevice                   MessageType = 5
	MessageType_FirmwareErase                MessageType = 6
	MessageType_FirmwareUpload               MessageType = 7
	MessageType_FirmwareRequest              MessageType = 8
	MessageType_GetEntropy                   MessageType = 9
	MessageType_Entropy                      MessageType = 10
	MessageType_GetPublicKey                 MessageType = 11
	MessageType_PublicKey                    MessageType = 12
	MessageType_LoadDevice                   MessageType = 13
	MessageType_ResetDevice                  MessageType = 14
	MessageType_SignTx                       MessageType = 15
	MessageType_Features                     MessageType = 17
	MessageType_PinMatrixRequest             MessageType = 18
	MessageType_PinMatrixAck                 MessageType = 19
	MessageType_Cancel                       MessageType = 20
	MessageType_TxRequest                    MessageType = 21
	MessageType_TxAck                        MessageType = 22
	MessageType_ClearSession                 MessageType = 24
	MessageType_ApplySettings                MessageType = 25
	MessageType_ButtonRequest                MessageType = 26
	MessageType_ButtonAck                    MessageType = 27
	MessageType_ApplyFlags                   MessageType = 28
	MessageType_GetAddress                   MessageType = 29
	MessageType_Address                      MessageType = 30
	MessageType_SelfTest                     MessageType = 32
	MessageType_BackupDevice                 MessageType = 34
	MessageType_EntropyRequest               MessageType = 35
	MessageType_EntropyAck                   MessageType = 36
	MessageType_SignMessage                  MessageType = 38
	MessageType_VerifyMessage                MessageType = 39
	MessageType_MessageSignature             MessageType = 40
	MessageType_PassphraseRequest            MessageType = 41
	MessageType_PassphraseAck                MessageType = 42
	MessageType_RecoveryDevice               MessageType = 45
	MessageType_WordRequest                  MessageType = 46
	MessageType_WordAck                      MessageType = 47
	MessageType_GetFeatures                  MessageType = 55
	MessageType_SetU2FCounter                MessageType = 63
	MessageType_PassphraseStateRequest       MessageType = 77
	MessageType_PassphraseStateAck           MessageType = 78
	MessageType_SetMnemonic                  MessageType = 113
	MessageType_SkycoinAddress               MessageType = 114
	MessageType_SkycoinCheckMessageSignature MessageType = 115
	MessageType_SkycoinSignMessage           MessageType = 116
	MessageType_ResponseSkycoinAddress       MessageType = 117
	MessageType_ResponseSkycoinSignMessage   MessageType = 118
	MessageType_GenerateMnemonic             MessageType = 119
)

var MessageType_name = map[MessageType]string{
	MessageType_Initialize:                   "Initialize",
	MessageType_Ping:                         "Ping",
	MessageType_Success:                      "Success",
	MessageType_Failure:                      "Failure",
	MessageType_ChangePin:                    "ChangePin",
	MessageType_WipeDevice:                   "WipeDevice",
	MessageType_FirmwareErase:                "FirmwareErase",
	MessageType_FirmwareUpload:               "FirmwareUpload",
	MessageType_FirmwareRequest:              "FirmwareRequest",
	MessageType_GetEntropy:                   "GetEntropy",
	MessageType_Entropy:                      "Entropy",
	MessageType_GetPublicKey:                 "GetPublicKey",
	MessageType_PublicKey:                    "PublicKey",
	MessageType_LoadDevice:                   "LoadDevice",
	MessageType_ResetDevice:                  "ResetDevice",
	MessageType_SignTx:                       "SignTx",
	MessageType_Features:                     "Features",
	MessageType_PinMatrixRequest:             "PinMatrixRequest",
	MessageType_PinMatrixAck:                 "PinMatrixAck",
	MessageType_Cancel:                       "Cancel",
	MessageType_TxRequest:                    "TxRequest",
	MessageType_TxAck:                        "TxAck",
	MessageType_ClearSession:                 "ClearSession",
	MessageType_ApplySettings:                "ApplySettings",
	MessageType_ButtonRequest:                "ButtonRequest",
	MessageType_ButtonAck:                    "ButtonAck",
	MessageType_ApplyFlags:                   "ApplyFlags",
	MessageType_GetAddress:                   "GetAddress",
	MessageType_Address:                      "Address",
	MessageType_SelfTest:                     "SelfTest",
	MessageType_BackupDevice:                 "BackupDevice",
	MessageType_EntropyRequest:               "EntropyRequest",
	MessageType_EntropyAck:                   "EntropyAck",
	MessageType_SignMessage:                  "SignMessage",
	MessageType_VerifyMessage:                "VerifyMessage",
	MessageType_MessageSignature:             "MessageSignature",
	MessageType_PassphraseRequest:            "PassphraseRequest",
	MessageType_PassphraseAck:                "PassphraseAck",
	MessageType_RecoveryDevice:               "RecoveryDevice",
	MessageType_WordRequest:                  "WordRequest",
	MessageType_WordAck:                      "WordAck",
	MessageType_GetFeatures:                  "GetFeatures",
	MessageType_SetU2FCounter:                "SetU2FCounter",
	MessageType_PassphraseStateRequest:       "PassphraseStateRequest",
	MessageType_PassphraseStateAck:           "PassphraseStateAck",
	MessageType_SetMnemonic:                  "SetMnemonic",
	MessageType_SkycoinAddress:               "SkycoinAddress",
	MessageType_SkycoinCheckMessageSignature: "SkycoinCheckMessageSignature",
	MessageType_SkycoinSignMessage:           "SkycoinSignMessage",
	MessageType_ResponseSkycoinAddress:       "ResponseSkycoinAddress",
	MessageType_ResponseSkycoinSignMessage:   "ResponseSkycoinSignMessage",
	MessageType_GenerateMnemonic:             "GenerateMnemonic",
}

func (t MessageType) String() string {
	if s, ok := MessageType_name[t]; ok {
		return s
	}
	return "MessageType(" + strconv.Itoa(int(t)) + ")"
}

// Message is implemented by every top-level protocol message.
type Message interface {
	MessageType() MessageType
}

// New returns an empty message for t, or false when t is not a known kind.
func New(t MessageType) (Message, bool) {
	switch t {
	case MessageType_Initialize:
		return new(Initialize), true
	case MessageType_Ping:
		return new(Ping), true
	case MessageType_Success:
		return new(Success), true
	case MessageType_Failure:
		return new(Failure), true
	case MessageType_ChangePin:
		return new(ChangePin), true
	case MessageType_WipeDevice:
		return new(WipeDevice), true
	case MessageType_FirmwareErase:
		return new(FirmwareErase), true
	case MessageType_FirmwareUpload:
		return new(FirmwareUpload), true
	case MessageType_FirmwareRequest:
		return new(FirmwareRequest), true
	case MessageType_GetEntropy:
		return new(GetEntropy), true
	case MessageType_Entropy:
		return new(Entropy), true
	case MessageType_GetPublicKey:
		return new(GetPublicKey), true
	case MessageType_PublicKey:
		return new(PublicKey), true
	case MessageType_LoadDevice:
		return new(LoadDevice), true
	case MessageType_ResetDevice:
		return new(ResetDevice), true
	case MessageType_SignTx:
		return new(SignTx), true
	case MessageType_Features:
		return new(Features), true
	case MessageType_PinMatrixRequest:
		return new(PinMatrixRequest), true
	case MessageType_PinMatrixAck:
		return new(PinMatrixAck), true
	case MessageType_Cancel:
		return new(Cancel), true
	case MessageType_TxRequest:
		return new(TxRequest), true
	case MessageType_TxAck:
		return new(TxAck), true
	case MessageType_ClearSession:
		return new(ClearSession), true
	case MessageType_ApplySettings:
		return new(ApplySettings), true
	case MessageType_ButtonRequest:
		return new(ButtonRequest), true
	case MessageType_ButtonAck:
		return new(ButtonAck), true
	case MessageType_ApplyFlags:
		return new(ApplyFlags), true
	case MessageType_GetAddress:
		return new(GetAddress), true
	case MessageType_Address:
		return new(Address), true
	case MessageType_SelfTest:
		return new(SelfTest), true
	case MessageType_BackupDevice:
		return new(BackupDevice), true
	case MessageType_EntropyRequest:
		return new(EntropyRequest), true
	case MessageType_EntropyAck:
		return new(EntropyAck), true
	case MessageType_SignMessage:
		return new(SignMessage), true
	case MessageType_VerifyMessage:
		return new(VerifyMessage), true
	case MessageType_MessageSignature:
		return new(MessageSignature), true
	case MessageType_PassphraseRequest:
		return new(PassphraseRequest), true
	case MessageType_PassphraseAck:
		return new(PassphraseAck), true
	case MessageType_RecoveryDevice:
		return new(RecoveryDevice), true
	case MessageType_WordRequest:
		return new(WordRequest), true
	case MessageType_WordAck:
		return new(WordAck), true
	case MessageType_GetFeatures:
		return new(GetFeatures), true
	case MessageType_SetU2FCounter:
		return new(SetU2FCounter), true
	case MessageType_PassphraseStateRequest:
		return new(PassphraseStateRequest), true
	case MessageType_PassphraseStateAck:
		return new(PassphraseStateAck), true
	case MessageType_SetMnemonic:
		return new(SetMnemonic), true
	case MessageType_SkycoinAddress:
		return new(SkycoinAddress), true
	case MessageType_SkycoinCheckMessageSignature:
		return new(SkycoinCheckMessageSignature), true
	case MessageType_SkycoinSignMessage:
		return new(SkycoinSignMessage), true
	case MessageType_ResponseSkycoinAddress:
		return new(ResponseSkycoinAddress), true
	case MessageType_ResponseSkycoinSignMessage:
		return new(ResponseSkycoinSignMessage), true
	case MessageType_GenerateMnemonic:
		return new(GenerateMnemonic), true
	}
	return nil, false
}

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

func Uint32(v uint32) *uint32 { return &v }

func Uint64(v uint64) *uint64 { return &v }
