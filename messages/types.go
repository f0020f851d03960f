package messages

// HDNodeType: Structure representing BIP32 (hierarchical deterministic) node
type HDNodeType struct {
	Depth       uint32 `wire:"depth"`
	Fingerprint uint32 `wire:"fingerprint"`
	ChildNum    uint32 `wire:"child_num"`
	ChainCode   []byte `wire:"chain_code"`
	PrivateKey  []byte `wire:"private_key"`
	PublicKey   []byte `wire:"public_key"`
}

func (m *HDNodeType) GetDepth() uint32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func (m *HDNodeType) GetFingerprint() uint32 {
	if m != nil {
		return m.Fingerprint
	}
	return 0
}

func (m *HDNodeType) GetChildNum() uint32 {
	if m != nil {
		return m.ChildNum
	}
	return 0
}

func (m *HDNodeType) GetChainCode() []byte {
	if m != nil {
		return m.ChainCode
	}
	return nil
}

func (m *HDNodeType) GetPrivateKey() []byte {
	if m != nil {
		return m.PrivateKey
	}
	return nil
}

func (m *HDNodeType) GetPublicKey() []byte {
	if m != nil {
		return m.PublicKey
	}
	return nil
}

type HDNodePathType struct {
	Node     *HDNodeType `wire:"node"`
	AddressN []uint32    `wire:"address_n"`
}

func (m *HDNodePathType) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *HDNodePathType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

// CoinType: Structure representing Coin
type CoinType struct {
	CoinName            *string `wire:"coin_name"`
	CoinShortcut        *string `wire:"coin_shortcut"`
	AddressType         *uint32 `wire:"address_type"`
	MaxfeeKb            *uint64 `wire:"maxfee_kb"`
	AddressTypeP2Sh     *uint32 `wire:"address_type_p2sh"`
	SignedMessageHeader *string `wire:"signed_message_header"`
	XpubMagic           *uint32 `wire:"xpub_magic"`
	XprvMagic           *uint32 `wire:"xprv_magic"`
	Segwit              *bool   `wire:"segwit"`
	Forkid              *uint32 `wire:"forkid"`
	ForceBip143         *bool   `wire:"force_bip143"`
}

const (
	Default_CoinType_AddressType     uint32 = 0
	Default_CoinType_AddressTypeP2Sh uint32 = 5
	Default_CoinType_XpubMagic       uint32 = 76067358
	Default_CoinType_XprvMagic       uint32 = 76066276
)

func (m *CoinType) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return ""
}

func (m *CoinType) GetCoinShortcut() string {
	if m != nil && m.CoinShortcut != nil {
		return *m.CoinShortcut
	}
	return ""
}

func (m *CoinType) GetAddressType() uint32 {
	if m != nil && m.AddressType != nil {
		return *m.AddressType
	}
	return Default_CoinType_AddressType
}

func (m *CoinType) GetMaxfeeKb() uint64 {
	if m != nil && m.MaxfeeKb != nil {
		return *m.MaxfeeKb
	}
	return 0
}

func (m *CoinType) GetAddressTypeP2Sh() uint32 {
	if m != nil && m.AddressTypeP2Sh != nil {
		return *m.AddressTypeP2Sh
	}
	return Default_CoinType_AddressTypeP2Sh
}

func (m *CoinType) GetSignedMessageHeader() string {
	if m != nil && m.SignedMessageHeader != nil {
		return *m.SignedMessageHeader
	}
	return ""
}

func (m *CoinType) GetXpubMagic() uint32 {
	if m != nil && m.XpubMagic != nil {
		return *m.XpubMagic
	}
	return Default_CoinType_XpubMagic
}

func (m *CoinType) GetXprvMagic() uint32 {
	if m != nil && m.XprvMagic != nil {
		return *m.XprvMagic
	}
	return Default_CoinType_XprvMagic
}

func (m *CoinType) GetSegwit() bool {
	if m != nil && m.Segwit != nil {
		return *m.Segwit
	}
	return false
}

func (m *CoinType) GetForkid() uint32 {
	if m != nil && m.Forkid != nil {
		return *m.Forkid
	}
	return 0
}

func (m *CoinType) GetForceBip143() bool {
	if m != nil && m.ForceBip143 != nil {
		return *m.ForceBip143
	}
	return false
}

// MultisigRedeemScriptType: Type of redeem script used in input
type MultisigRedeemScriptType struct {
	Pubkeys    []*HDNodePathType `wire:"pubkeys"`
	Signatures [][]byte          `wire:"signatures"`
	M          *uint32           `wire:"m"`
}

func (m *MultisigRedeemScriptType) GetPubkeys() []*HDNodePathType {
	if m != nil {
		return m.Pubkeys
	}
	return nil
}

func (m *MultisigRedeemScriptType) GetSignatures() [][]byte {
	if m != nil {
		return m.Signatures
	}
	return nil
}

func (m *MultisigRedeemScriptType) GetM() uint32 {
	if m != nil && m.M != nil {
		return *m.M
	}
	return 0
}

// TxInputType: Structure representing transaction input
type TxInputType struct {
	AddressN   []uint32                  `wire:"address_n"`
	PrevHash   []byte                    `wire:"prev_hash"`
	PrevIndex  uint32                    `wire:"prev_index"`
	ScriptSig  []byte                    `wire:"script_sig"`
	Sequence   *uint32                   `wire:"sequence"`
	ScriptType *InputScriptType          `wire:"script_type"`
	Multisig   *MultisigRedeemScriptType `wire:"multisig"`
	Amount     *uint64                   `wire:"amount"`
}

const (
	Default_TxInputType_Sequence   uint32          = 4294967295
	Default_TxInputType_ScriptType InputScriptType = InputScriptType_SPENDADDRESS
)

func (m *TxInputType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *TxInputType) GetPrevHash() []byte {
	if m != nil {
		return m.PrevHash
	}
	return nil
}

func (m *TxInputType) GetPrevIndex() uint32 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

func (m *TxInputType) GetScriptSig() []byte {
	if m != nil {
		return m.ScriptSig
	}
	return nil
}

func (m *TxInputType) GetSequence() uint32 {
	if m != nil && m.Sequence != nil {
		return *m.Sequence
	}
	return Default_TxInputType_Sequence
}

func (m *TxInputType) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return Default_TxInputType_ScriptType
}

func (m *TxInputType) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *TxInputType) GetAmount() uint64 {
	if m != nil && m.Amount != nil {
		return *m.Amount
	}
	return 0
}

// TxOutputType: Structure representing transaction output
type TxOutputType struct {
	Address      *string                   `wire:"address"`
	AddressN     []uint32                  `wire:"address_n"`
	Amount       uint64                    `wire:"amount"`
	ScriptType   OutputScriptType          `wire:"script_type"`
	Multisig     *MultisigRedeemScriptType `wire:"multisig"`
	OpReturnData []byte                    `wire:"op_return_data"`
}

func (m *TxOutputType) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *TxOutputType) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *TxOutputType) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *TxOutputType) GetScriptType() OutputScriptType {
	if m != nil {
		return m.ScriptType
	}
	return OutputScriptType_PAYTOADDRESS
}

func (m *TxOutputType) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *TxOutputType) GetOpReturnData() []byte {
	if m != nil {
		return m.OpReturnData
	}
	return nil
}

// TxOutputBinType: Structure representing compiled transaction output
type TxOutputBinType struct {
	Amount       uint64 `wire:"amount"`
	ScriptPubkey []byte `wire:"script_pubkey"`
}

func (m *TxOutputBinType) GetAmount() uint64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *TxOutputBinType) GetScriptPubkey() []byte {
	if m != nil {
		return m.ScriptPubkey
	}
	return nil
}

// TransactionType: Structure representing transaction
type TransactionType struct {
	Version      *uint32            `wire:"version"`
	Inputs       []*TxInputType     `wire:"inputs"`
	BinOutputs   []*TxOutputBinType `wire:"bin_outputs"`
	Outputs      []*TxOutputType    `wire:"outputs"`
	LockTime     *uint32            `wire:"lock_time"`
	InputsCnt    *uint32            `wire:"inputs_cnt"`
	OutputsCnt   *uint32            `wire:"outputs_cnt"`
	ExtraData    []byte             `wire:"extra_data"`
	ExtraDataLen *uint32            `wire:"extra_data_len"`
}

func (m *TransactionType) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return 0
}

func (m *TransactionType) GetInputs() []*TxInputType {
	if m != nil {
		return m.Inputs
	}
	return nil
}

func (m *TransactionType) GetBinOutputs() []*TxOutputBinType {
	if m != nil {
		return m.BinOutputs
	}
	return nil
}

func (m *TransactionType) GetOutputs() []*TxOutputType {
	if m != nil {
		return m.Outputs
	}
	return nil
}

func (m *TransactionType) GetLockTime() uint32 {
	if m != nil && m.LockTime != nil {
		return *m.LockTime
	}
	return 0
}

func (m *TransactionType) GetInputsCnt() uint32 {
	if m != nil && m.InputsCnt != nil {
		return *m.InputsCnt
	}
	return 0
}

func (m *TransactionType) GetOutputsCnt() uint32 {
	if m != nil && m.OutputsCnt != nil {
		return *m.OutputsCnt
	}
	return 0
}

func (m *TransactionType) GetExtraData() []byte {
	if m != nil {
		return m.ExtraData
	}
	return nil
}

func (m *TransactionType) GetExtraDataLen() uint32 {
	if m != nil && m.ExtraDataLen != nil {
		return *m.ExtraDataLen
	}
	return 0
}

// TxRequestDetailsType: Structure representing request details
type TxRequestDetailsType struct {
	RequestIndex    *uint32 `wire:"request_index"`
	TxHash          []byte  `wire:"tx_hash"`
	ExtraDataLen    *uint32 `wire:"extra_data_len"`
	ExtraDataOffset *uint32 `wire:"extra_data_offset"`
}

func (m *TxRequestDetailsType) GetRequestIndex() uint32 {
	if m != nil && m.RequestIndex != nil {
		return *m.RequestIndex
	}
	return 0
}

func (m *TxRequestDetailsType) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

func (m *TxRequestDetailsType) GetExtraDataLen() uint32 {
	if m != nil && m.ExtraDataLen != nil {
		return *m.ExtraDataLen
	}
	return 0
}

func (m *TxRequestDetailsType) GetExtraDataOffset() uint32 {
	if m != nil && m.ExtraDataOffset != nil {
		return *m.ExtraDataOffset
	}
	return 0
}

// TxRequestSerializedType: Structure representing serialized data
type TxRequestSerializedType struct {
	SignatureIndex *uint32 `wire:"signature_index"`
	Signature      []byte  `wire:"signature"`
	SerializedTx   []byte  `wire:"serialized_tx"`
}

func (m *TxRequestSerializedType) GetSignatureIndex() uint32 {
	if m != nil && m.SignatureIndex != nil {
		return *m.SignatureIndex
	}
	return 0
}

func (m *TxRequestSerializedType) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *TxRequestSerializedType) GetSerializedTx() []byte {
	if m != nil {
		return m.SerializedTx
	}
	return nil
}

// IdentityType: Structure representing identity data
type IdentityType struct {
	Proto *string `wire:"proto"`
	User  *string `wire:"user"`
	Host  *string `wire:"host"`
	Port  *string `wire:"port"`
	Path  *string `wire:"path"`
	Index *uint32 `wire:"index"`
}

const Default_IdentityType_Index uint32 = 0

func (m *IdentityType) GetProto() string {
	if m != nil && m.Proto != nil {
		return *m.Proto
	}
	return ""
}

func (m *IdentityType) GetUser() string {
	if m != nil && m.User != nil {
		return *m.User
	}
	return ""
}

func (m *IdentityType) GetHost() string {
	if m != nil && m.Host != nil {
		return *m.Host
	}
	return ""
}

func (m *IdentityType) GetPort() string {
	if m != nil && m.Port != nil {
		return *m.Port
	}
	return ""
}

func (m *IdentityType) GetPath() string {
	if m != nil && m.Path != nil {
		return *m.Path
	}
	return ""
}

func (m *IdentityType) GetIndex() uint32 {
	if m != nil && m.Index != nil {
		return *m.Index
	}
	return Default_IdentityType_Index
}
