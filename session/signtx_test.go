package session

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/skycoin/skycoin-sub000/messages"
)

func txRequest(kind messages.RequestType, details *messages.TxRequestDetailsType, ser *messages.TxRequestSerializedType) []messages.Message {
	return []messages.Message{&messages.TxRequest{RequestType: kind.Enum(), Details: details, Serialized: ser}}
}

func signTxFixture() (*SignTxRequest, []byte) {
	prevHash := bytes.Repeat([]byte{0xab}, 32)
	prev := &messages.TransactionType{
		Version: messages.Uint32(1),
		Inputs: []*messages.TxInputType{
			{PrevHash: bytes.Repeat([]byte{0x01}, 32), PrevIndex: 0, ScriptSig: []byte{0x51}},
		},
		BinOutputs: []*messages.TxOutputBinType{
			{Amount: 100000, ScriptPubkey: []byte{0x76, 0xa9}},
		},
		LockTime:  messages.Uint32(0),
		ExtraData: []byte{0x0a, 0x0b, 0x0c, 0x0d},
	}
	tx := &messages.TransactionType{
		Version: messages.Uint32(1),
		Inputs: []*messages.TxInputType{
			{AddressN: []uint32{0x8000002c, 0x80000000, 0x80000000, 0, 0}, PrevHash: prevHash, PrevIndex: 0},
		},
		Outputs: []*messages.TxOutputType{
			{Address: messages.String("1MJ2tj2ThBE62zXbBYA5ZaN3fdve5CPAz1"), Amount: 90000, ScriptType: messages.OutputScriptType_PAYTOADDRESS},
		},
		LockTime: messages.Uint32(0),
	}
	return &SignTxRequest{
		Tx:       tx,
		PrevTxs:  map[string]*messages.TransactionType{hex.EncodeToString(prevHash): prev},
		CoinName: "Bitcoin",
	}, prevHash
}

func TestSession_SignTx(t *testing.T) {
	req, prevHash := signTxFixture()
	signature := []byte{0x30, 0x44, 0x02, 0x20}
	ack := func(check func(t *testing.T, tx *messages.TransactionType)) func(t *testing.T, m messages.Message) {
		return func(t *testing.T, m messages.Message) {
			check(t, m.(*messages.TxAck).Tx)
		}
	}

	s, wait := newTestSession(t, nil,
		step{
			expect: messages.MessageType_SignTx,
			check: func(t *testing.T, m messages.Message) {
				st := m.(*messages.SignTx)
				if st.InputsCount != 1 || st.OutputsCount != 1 || st.GetCoinName() != "Bitcoin" {
					t.Errorf("unexpected SignTx %+v", st)
				}
			},
			reply: txRequest(messages.RequestType_TXMETA, nil, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if tx.GetInputsCnt() != 1 || tx.GetOutputsCnt() != 1 || tx.ExtraDataLen != nil {
					t.Errorf("unexpected meta %+v", tx)
				}
			}),
			reply: txRequest(messages.RequestType_TXINPUT, &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(0)}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if len(tx.Inputs) != 1 || !bytes.Equal(tx.Inputs[0].PrevHash, prevHash) {
					t.Errorf("unexpected input %+v", tx.Inputs)
				}
			}),
			reply: txRequest(messages.RequestType_TXMETA, &messages.TxRequestDetailsType{TxHash: prevHash}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if tx.GetOutputsCnt() != 1 || tx.GetExtraDataLen() != 4 {
					t.Errorf("unexpected previous meta %+v", tx)
				}
			}),
			reply: txRequest(messages.RequestType_TXINPUT, &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(0), TxHash: prevHash}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if len(tx.Inputs) != 1 || !bytes.Equal(tx.Inputs[0].ScriptSig, []byte{0x51}) {
					t.Errorf("unexpected previous input %+v", tx.Inputs)
				}
			}),
			reply: txRequest(messages.RequestType_TXOUTPUT, &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(0), TxHash: prevHash}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if len(tx.BinOutputs) != 1 || tx.BinOutputs[0].Amount != 100000 || len(tx.Outputs) != 0 {
					t.Errorf("unexpected previous output %+v", tx)
				}
			}),
			reply: txRequest(messages.RequestType_TXEXTRADATA, &messages.TxRequestDetailsType{
				TxHash:          prevHash,
				ExtraDataOffset: messages.Uint32(1),
				ExtraDataLen:    messages.Uint32(2),
			}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if !bytes.Equal(tx.ExtraData, []byte{0x0b, 0x0c}) {
					t.Errorf("unexpected extra data %x", tx.ExtraData)
				}
			}),
			reply: txRequest(messages.RequestType_TXOUTPUT, &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(0)}, nil),
		},
		step{
			expect: messages.MessageType_TxAck,
			check: ack(func(t *testing.T, tx *messages.TransactionType) {
				if len(tx.Outputs) != 1 || tx.Outputs[0].Amount != 90000 {
					t.Errorf("unexpected output %+v", tx.Outputs)
				}
			}),
			reply: []messages.Message{&messages.ButtonRequest{Code: messages.ButtonRequestType_ButtonRequest_ConfirmOutput.Enum()}},
		},
		step{
			expect: messages.MessageType_ButtonAck,
			reply: txRequest(messages.RequestType_TXINPUT, &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(0)}, &messages.TxRequestSerializedType{
				SignatureIndex: messages.Uint32(0),
				Signature:      signature,
				SerializedTx:   []byte{0x01, 0x00},
			}),
		},
		step{
			expect: messages.MessageType_TxAck,
			reply:  txRequest(messages.RequestType_TXFINISHED, nil, &messages.TxRequestSerializedType{SerializedTx: []byte{0x00, 0x02}}),
		},
	)

	result, err := s.SignTx(context.Background(), req)
	if err != nil {
		t.Fatalf("SignTx failed: %v", err)
	}
	wait()
	if len(result.Signatures) != 1 || !bytes.Equal(result.Signatures[0], signature) {
		t.Errorf("unexpected signatures %x", result.Signatures)
	}
	if !bytes.Equal(result.Serialized, []byte{0x01, 0x00, 0x00, 0x02}) {
		t.Errorf("unexpected serialized tx %x", result.Serialized)
	}
	if s.State() != StateIdle {
		t.Errorf("Expected Idle, got %s", s.State())
	}
}

func TestSession_SignTxSignatureIndexOutOfRange(t *testing.T) {
	req, _ := signTxFixture()
	for _, idx := range []uint32{1, 1 << 24, 0xFFFFFFFF} {
		s, wait := newTestSession(t, nil,
			step{
				expect: messages.MessageType_SignTx,
				reply: txRequest(messages.RequestType_TXFINISHED, nil, &messages.TxRequestSerializedType{
					SignatureIndex: messages.Uint32(idx),
					Signature:      []byte{0x30},
				}),
			},
			step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
		)

		result, err := s.SignTx(context.Background(), req)
		wait()
		if !errors.Is(err, ErrUnexpectedMessage) {
			t.Fatalf("index %d: expected ErrUnexpectedMessage, got %v", idx, err)
		}
		if !errors.Is(err, ErrActionCancelled) {
			t.Errorf("index %d: expected ErrActionCancelled, got %v", idx, err)
		}
		if result != nil {
			t.Errorf("index %d: expected no result, got %+v", idx, result)
		}
		if s.State() != StateIdle {
			t.Errorf("index %d: expected Idle, got %s", idx, s.State())
		}
	}
}

func TestCollectSerialized(t *testing.T) {
	result := &SignTxResult{Signatures: make([][]byte, 2)}
	ser := &messages.TxRequestSerializedType{SignatureIndex: messages.Uint32(1), Signature: []byte{0x01}, SerializedTx: []byte{0xaa}}
	if err := collectSerialized(result, ser); err != nil {
		t.Fatalf("collectSerialized failed: %v", err)
	}
	if len(result.Signatures) != 2 || !bytes.Equal(result.Signatures[1], []byte{0x01}) {
		t.Errorf("unexpected signatures %x", result.Signatures)
	}

	ser = &messages.TxRequestSerializedType{SignatureIndex: messages.Uint32(2), SerializedTx: []byte{0xbb}}
	if err := collectSerialized(result, ser); !errors.Is(err, ErrUnexpectedMessage) {
		t.Fatalf("Expected ErrUnexpectedMessage, got %v", err)
	}
	if len(result.Signatures) != 2 || !bytes.Equal(result.Serialized, []byte{0xaa}) {
		t.Errorf("result changed by rejected fragment: %+v", result)
	}
}

func TestSession_SignTxMissingPrevious(t *testing.T) {
	req, _ := signTxFixture()
	unknown := bytes.Repeat([]byte{0xcd}, 32)
	s, wait := newTestSession(t, nil,
		step{expect: messages.MessageType_SignTx, reply: txRequest(messages.RequestType_TXMETA, &messages.TxRequestDetailsType{TxHash: unknown}, nil)},
		step{expect: messages.MessageType_Cancel, reply: cancelledByDevice()},
	)

	_, err := s.SignTx(context.Background(), req)
	wait()
	if !errors.Is(err, ErrTxDataUnavailable) {
		t.Errorf("Expected ErrTxDataUnavailable, got %v", err)
	}
	if !errors.Is(err, ErrActionCancelled) {
		t.Errorf("Expected ErrActionCancelled, got %v", err)
	}
}

func TestSignTxRequest_Answer(t *testing.T) {
	req, prevHash := signTxFixture()
	tests := []struct {
		name    string
		request *messages.TxRequest
		wantErr error
	}{
		{
			name:    "input_out_of_range",
			request: &messages.TxRequest{RequestType: messages.RequestType_TXINPUT.Enum(), Details: &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(3)}},
			wantErr: ErrTxDataUnavailable,
		},
		{
			name:    "output_out_of_range",
			request: &messages.TxRequest{RequestType: messages.RequestType_TXOUTPUT.Enum(), Details: &messages.TxRequestDetailsType{RequestIndex: messages.Uint32(1)}},
			wantErr: ErrTxDataUnavailable,
		},
		{
			name: "extra_data_past_end",
			request: &messages.TxRequest{RequestType: messages.RequestType_TXEXTRADATA.Enum(), Details: &messages.TxRequestDetailsType{
				TxHash:          prevHash,
				ExtraDataOffset: messages.Uint32(3),
				ExtraDataLen:    messages.Uint32(2),
			}},
			wantErr: ErrTxDataUnavailable,
		},
		{
			name:    "unknown_request_type",
			request: &messages.TxRequest{RequestType: messages.RequestType(9).Enum()},
			wantErr: ErrUnexpectedMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := req.answer(tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSignTx_NoTransaction(t *testing.T) {
	s, wait := newTestSession(t, nil)
	if _, err := s.SignTx(context.Background(), &SignTxRequest{}); !errors.Is(err, ErrTxDataUnavailable) {
		t.Fatalf("Expected ErrTxDataUnavailable, got %v", err)
	}
	wait()
}
