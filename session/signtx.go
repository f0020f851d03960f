package session

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/skycoin/skycoin-sub000/messages"
)

// SignTxRequest is the data the device may ask for while signing.
type SignTxRequest struct {
	// Tx is the transaction being signed.
	Tx *messages.TransactionType

	// PrevTxs holds the transactions spent by Tx's inputs, keyed by the hex
	// encoding of their hash as the device sends it.
	PrevTxs map[string]*messages.TransactionType

	// CoinName selects the coin. Empty means the device default.
	CoinName string
}

// SignTxResult collects what the device streamed back.
type SignTxResult struct {
	// Signatures is indexed by input.
	Signatures [][]byte

	// Serialized is the concatenation of every serialized_tx chunk.
	Serialized []byte
}

// SignTx signs a transaction, answering each TxRequest with the piece of
// req it asks for until the device reports TXFINISHED.
func (s *Session) SignTx(ctx context.Context, req *SignTxRequest) (*SignTxResult, error) {
	if req == nil || req.Tx == nil {
		return nil, fmt.Errorf("%w: no transaction", ErrTxDataUnavailable)
	}
	tx := req.Tx

	start := &messages.SignTx{
		OutputsCount: uint32(len(tx.Outputs)),
		InputsCount:  uint32(len(tx.Inputs)),
		Version:      tx.Version,
		LockTime:     tx.LockTime,
	}
	if req.CoinName != "" {
		start.CoinName = messages.String(req.CoinName)
	}

	result := &SignTxResult{Signatures: make([][]byte, len(tx.Inputs))}
	err := s.run(ctx, wfSignTx, func(o *op) error {
		var next messages.Message = start
		for {
			resp, err := o.roundTrip(next)
			if err != nil {
				return err
			}
			txReq := resp.(*messages.TxRequest)
			if err := collectSerialized(result, txReq.Serialized); err != nil {
				if o.s.log != nil {
					o.s.log.Warnf("%s: %v", o.wf.name, err)
				}
				return o.abort(err)
			}

			if txReq.GetRequestType() == messages.RequestType_TXFINISHED {
				o.s.setState(o.wf, StateComplete)
				return nil
			}

			ack, err := req.answer(txReq)
			if err != nil {
				if o.s.log != nil {
					o.s.log.Warnf("%s: %v", o.wf.name, err)
				}
				return o.abort(err)
			}
			next = ack
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// collectSerialized records one serialized fragment. Signatures has one
// slot per input and a signature_index outside it is rejected.
func collectSerialized(result *SignTxResult, ser *messages.TxRequestSerializedType) error {
	if ser == nil {
		return nil
	}
	if ser.SignatureIndex != nil {
		idx := uint64(*ser.SignatureIndex)
		if idx >= uint64(len(result.Signatures)) {
			return fmt.Errorf("%w: signature_index %d for a tx with %d inputs",
				ErrUnexpectedMessage, idx, len(result.Signatures))
		}
		result.Signatures[idx] = ser.Signature
	}
	result.Serialized = append(result.Serialized, ser.SerializedTx...)
	return nil
}

// answer builds the TxAck for one TxRequest.
func (r *SignTxRequest) answer(req *messages.TxRequest) (*messages.TxAck, error) {
	details := req.Details
	if details == nil {
		details = &messages.TxRequestDetailsType{}
	}

	tx := r.Tx
	prev := details.TxHash != nil
	if prev {
		key := hex.EncodeToString(details.TxHash)
		tx = r.PrevTxs[key]
		if tx == nil {
			return nil, fmt.Errorf("%w: previous transaction %s", ErrTxDataUnavailable, key)
		}
	}
	idx := int(details.GetRequestIndex())

	switch t := req.GetRequestType(); t {
	case messages.RequestType_TXMETA:
		meta := &messages.TransactionType{
			Version:    tx.Version,
			LockTime:   tx.LockTime,
			InputsCnt:  messages.Uint32(uint32(len(tx.Inputs))),
			OutputsCnt: messages.Uint32(uint32(len(tx.Outputs))),
		}
		if prev {
			meta.OutputsCnt = messages.Uint32(uint32(len(tx.BinOutputs)))
		}
		if len(tx.ExtraData) > 0 {
			meta.ExtraDataLen = messages.Uint32(uint32(len(tx.ExtraData)))
		}
		return &messages.TxAck{Tx: meta}, nil

	case messages.RequestType_TXINPUT:
		if idx >= len(tx.Inputs) {
			return nil, fmt.Errorf("%w: input %d", ErrTxDataUnavailable, idx)
		}
		return &messages.TxAck{Tx: &messages.TransactionType{Inputs: []*messages.TxInputType{tx.Inputs[idx]}}}, nil

	case messages.RequestType_TXOUTPUT:
		if prev {
			if idx >= len(tx.BinOutputs) {
				return nil, fmt.Errorf("%w: output %d", ErrTxDataUnavailable, idx)
			}
			return &messages.TxAck{Tx: &messages.TransactionType{BinOutputs: []*messages.TxOutputBinType{tx.BinOutputs[idx]}}}, nil
		}
		if idx >= len(tx.Outputs) {
			return nil, fmt.Errorf("%w: output %d", ErrTxDataUnavailable, idx)
		}
		return &messages.TxAck{Tx: &messages.TransactionType{Outputs: []*messages.TxOutputType{tx.Outputs[idx]}}}, nil

	case messages.RequestType_TXEXTRADATA:
		off, n := int(details.GetExtraDataOffset()), int(details.GetExtraDataLen())
		if off+n > len(tx.ExtraData) {
			return nil, fmt.Errorf("%w: extra data [%d:%d]", ErrTxDataUnavailable, off, off+n)
		}
		return &messages.TxAck{Tx: &messages.TransactionType{ExtraData: tx.ExtraData[off : off+n]}}, nil

	default:
		return nil, fmt.Errorf("%w: request type %s", ErrUnexpectedMessage, t)
	}
}
