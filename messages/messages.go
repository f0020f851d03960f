package messages

// Initialize request: reset device to default state and ask for device details
type Initialize struct {
	State []byte `wire:"state"`
}

func (*Initialize) MessageType() MessageType { return MessageType_Initialize }

func (m *Initialize) GetState() []byte {
	if m != nil {
		return m.State
	}
	return nil
}

// GetFeatures request: ask for device details (no device reset)
type GetFeatures struct{}

func (*GetFeatures) MessageType() MessageType { return MessageType_GetFeatures }

// Features response: reports various information about the device
type Features struct {
	Vendor               *string     `wire:"vendor"`
	MajorVersion         *uint32     `wire:"major_version"`
	MinorVersion         *uint32     `wire:"minor_version"`
	PatchVersion         *uint32     `wire:"patch_version"`
	BootloaderMode       *bool       `wire:"bootloader_mode"`
	DeviceId             *string     `wire:"device_id"`
	PinProtection        *bool       `wire:"pin_protection"`
	PassphraseProtection *bool       `wire:"passphrase_protection"`
	Language             *string     `wire:"language"`
	Label                *string     `wire:"label"`
	Coins                []*CoinType `wire:"coins"`
	Initialized          *bool       `wire:"initialized"`
	Revision             []byte      `wire:"revision"`
	BootloaderHash       []byte      `wire:"bootloader_hash"`
	Imported             *bool       `wire:"imported"`
	PinCached            *bool       `wire:"pin_cached"`
	PassphraseCached     *bool       `wire:"passphrase_cached"`
	FirmwarePresent      *bool       `wire:"firmware_present"`
	NeedsBackup          *bool       `wire:"needs_backup"`
	Flags                *uint32     `wire:"flags"`
	Model                *string     `wire:"model"`
	FwMajor              *uint32     `wire:"fw_major"`
	FwMinor              *uint32     `wire:"fw_minor"`
	FwPatch              *uint32     `wire:"fw_patch"`
	FwVendor             *string     `wire:"fw_vendor"`
	FwVendorKeys         []byte      `wire:"fw_vendor_keys"`
	UnfinishedBackup     *bool       `wire:"unfinished_backup"`
}

func (*Features) MessageType() MessageType { return MessageType_Features }

func (m *Features) GetVendor() string {
	if m != nil && m.Vendor != nil {
		return *m.Vendor
	}
	return ""
}

func (m *Features) GetMajorVersion() uint32 {
	if m != nil && m.MajorVersion != nil {
		return *m.MajorVersion
	}
	return 0
}

func (m *Features) GetMinorVersion() uint32 {
	if m != nil && m.MinorVersion != nil {
		return *m.MinorVersion
	}
	return 0
}

func (m *Features) GetPatchVersion() uint32 {
	if m != nil && m.PatchVersion != nil {
		return *m.PatchVersion
	}
	return 0
}

func (m *Features) GetBootloaderMode() bool {
	if m != nil && m.BootloaderMode != nil {
		return *m.BootloaderMode
	}
	return false
}

func (m *Features) GetDeviceId() string {
	if m != nil && m.DeviceId != nil {
		return *m.DeviceId
	}
	return ""
}

func (m *Features) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *Features) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *Features) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return ""
}

func (m *Features) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *Features) GetCoins() []*CoinType {
	if m != nil {
		return m.Coins
	}
	return nil
}

func (m *Features) GetInitialized() bool {
	if m != nil && m.Initialized != nil {
		return *m.Initialized
	}
	return false
}

func (m *Features) GetRevision() []byte {
	if m != nil {
		return m.Revision
	}
	return nil
}

func (m *Features) GetBootloaderHash() []byte {
	if m != nil {
		return m.BootloaderHash
	}
	return nil
}

func (m *Features) GetImported() bool {
	if m != nil && m.Imported != nil {
		return *m.Imported
	}
	return false
}

func (m *Features) GetPinCached() bool {
	if m != nil && m.PinCached != nil {
		return *m.PinCached
	}
	return false
}

func (m *Features) GetPassphraseCached() bool {
	if m != nil && m.PassphraseCached != nil {
		return *m.PassphraseCached
	}
	return false
}

func (m *Features) GetFirmwarePresent() bool {
	if m != nil && m.FirmwarePresent != nil {
		return *m.FirmwarePresent
	}
	return false
}

func (m *Features) GetNeedsBackup() bool {
	if m != nil && m.NeedsBackup != nil {
		return *m.NeedsBackup
	}
	return false
}

func (m *Features) GetFlags() uint32 {
	if m != nil && m.Flags != nil {
		return *m.Flags
	}
	return 0
}

func (m *Features) GetModel() string {
	if m != nil && m.Model != nil {
		return *m.Model
	}
	return ""
}

func (m *Features) GetFwMajor() uint32 {
	if m != nil && m.FwMajor != nil {
		return *m.FwMajor
	}
	return 0
}

func (m *Features) GetFwMinor() uint32 {
	if m != nil && m.FwMinor != nil {
		return *m.FwMinor
	}
	return 0
}

func (m *Features) GetFwPatch() uint32 {
	if m != nil && m.FwPatch != nil {
		return *m.FwPatch
	}
	return 0
}

func (m *Features) GetFwVendor() string {
	if m != nil && m.FwVendor != nil {
		return *m.FwVendor
	}
	return ""
}

func (m *Features) GetFwVendorKeys() []byte {
	if m != nil {
		return m.FwVendorKeys
	}
	return nil
}

func (m *Features) GetUnfinishedBackup() bool {
	if m != nil && m.UnfinishedBackup != nil {
		return *m.UnfinishedBackup
	}
	return false
}

// ClearSession request: clear session (removes cached PIN, passphrase, etc)
type ClearSession struct{}

func (*ClearSession) MessageType() MessageType { return MessageType_ClearSession }

// ApplySettings request: change language and/or label of the device
type ApplySettings struct {
	Language         *string                             `wire:"language"`
	Label            *string                             `wire:"label"`
	UsePassphrase    *bool                               `wire:"use_passphrase"`
	Homescreen       []byte                              `wire:"homescreen"`
	PassphraseSource *ApplySettings_PassphraseSourceType `wire:"passphrase_source"`
	AutoLockDelayMs  *uint32                             `wire:"auto_lock_delay_ms"`
}

func (*ApplySettings) MessageType() MessageType { return MessageType_ApplySettings }

func (m *ApplySettings) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return ""
}

func (m *ApplySettings) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *ApplySettings) GetUsePassphrase() bool {
	if m != nil && m.UsePassphrase != nil {
		return *m.UsePassphrase
	}
	return false
}

func (m *ApplySettings) GetHomescreen() []byte {
	if m != nil {
		return m.Homescreen
	}
	return nil
}

func (m *ApplySettings) GetPassphraseSource() ApplySettings_PassphraseSourceType {
	if m != nil && m.PassphraseSource != nil {
		return *m.PassphraseSource
	}
	return ApplySettings_ASK
}

func (m *ApplySettings) GetAutoLockDelayMs() uint32 {
	if m != nil && m.AutoLockDelayMs != nil {
		return *m.AutoLockDelayMs
	}
	return 0
}

// ApplyFlags request: set flags of the device
type ApplyFlags struct {
	Flags *uint32 `wire:"flags"`
}

func (*ApplyFlags) MessageType() MessageType { return MessageType_ApplyFlags }

func (m *ApplyFlags) GetFlags() uint32 {
	if m != nil && m.Flags != nil {
		return *m.Flags
	}
	return 0
}

// ChangePin request: starts workflow for setting/changing/removing the PIN
type ChangePin struct {
	Remove *bool `wire:"remove"`
}

func (*ChangePin) MessageType() MessageType { return MessageType_ChangePin }

func (m *ChangePin) GetRemove() bool {
	if m != nil && m.Remove != nil {
		return *m.Remove
	}
	return false
}

// Ping request: test if the device is alive, device sends back the message in Success response
type Ping struct {
	Message              *string `wire:"message"`
	ButtonProtection     *bool   `wire:"button_protection"`
	PinProtection        *bool   `wire:"pin_protection"`
	PassphraseProtection *bool   `wire:"passphrase_protection"`
}

func (*Ping) MessageType() MessageType { return MessageType_Ping }

func (m *Ping) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

func (m *Ping) GetButtonProtection() bool {
	if m != nil && m.ButtonProtection != nil {
		return *m.ButtonProtection
	}
	return false
}

func (m *Ping) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *Ping) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

// Success response: success of the previous request
type Success struct {
	Message *string `wire:"message"`
}

func (*Success) MessageType() MessageType { return MessageType_Success }

func (m *Success) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

// Failure response: failure of the previous request
type Failure struct {
	Code    *FailureType `wire:"code"`
	Message *string      `wire:"message"`
}

func (*Failure) MessageType() MessageType { return MessageType_Failure }

func (m *Failure) GetCode() FailureType {
	if m != nil && m.Code != nil {
		return *m.Code
	}
	return Failure_UnexpectedMessage
}

func (m *Failure) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

// ButtonRequest response: device is waiting for HW button press
type ButtonRequest struct {
	Code *ButtonRequestType `wire:"code"`
	Data *string            `wire:"data"`
}

func (*ButtonRequest) MessageType() MessageType { return MessageType_ButtonRequest }

func (m *ButtonRequest) GetCode() ButtonRequestType {
	if m != nil && m.Code != nil {
		return *m.Code
	}
	return ButtonRequestType_ButtonRequest_Other
}

func (m *ButtonRequest) GetData() string {
	if m != nil && m.Data != nil {
		return *m.Data
	}
	return ""
}

// ButtonAck request: computer agrees to wait for HW button press
type ButtonAck struct{}

func (*ButtonAck) MessageType() MessageType { return MessageType_ButtonAck }

// PinMatrixRequest response: device is asking computer to show PIN matrix and awaits PIN encoded using this matrix scheme
type PinMatrixRequest struct {
	Type *PinMatrixRequestType `wire:"type"`
}

func (*PinMatrixRequest) MessageType() MessageType { return MessageType_PinMatrixRequest }

func (m *PinMatrixRequest) GetType() PinMatrixRequestType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return PinMatrixRequestType_Current
}

// PinMatrixAck request: computer responds with encoded PIN
type PinMatrixAck struct {
	Pin string `wire:"pin"`
}

func (*PinMatrixAck) MessageType() MessageType { return MessageType_PinMatrixAck }

func (m *PinMatrixAck) GetPin() string {
	if m != nil {
		return m.Pin
	}
	return ""
}

// Cancel request: abort last operation that required user interaction
type Cancel struct{}

func (*Cancel) MessageType() MessageType { return MessageType_Cancel }

// PassphraseRequest response: device awaits encryption passphrase
type PassphraseRequest struct {
	OnDevice *bool `wire:"on_device"`
}

func (*PassphraseRequest) MessageType() MessageType { return MessageType_PassphraseRequest }

func (m *PassphraseRequest) GetOnDevice() bool {
	if m != nil && m.OnDevice != nil {
		return *m.OnDevice
	}
	return false
}

// PassphraseAck request: send passphrase back
type PassphraseAck struct {
	Passphrase *string `wire:"passphrase"`
	State      []byte  `wire:"state"`
}

func (*PassphraseAck) MessageType() MessageType { return MessageType_PassphraseAck }

func (m *PassphraseAck) GetPassphrase() string {
	if m != nil && m.Passphrase != nil {
		return *m.Passphrase
	}
	return ""
}

func (m *PassphraseAck) GetState() []byte {
	if m != nil {
		return m.State
	}
	return nil
}

type PassphraseStateRequest struct {
	State []byte `wire:"state"`
}

func (*PassphraseStateRequest) MessageType() MessageType { return MessageType_PassphraseStateRequest }

func (m *PassphraseStateRequest) GetState() []byte {
	if m != nil {
		return m.State
	}
	return nil
}

type PassphraseStateAck struct{}

func (*PassphraseStateAck) MessageType() MessageType { return MessageType_PassphraseStateAck }

// GetEntropy request: request a sample of random data generated by hardware RNG. May be used for testing
type GetEntropy struct {
	Size uint32 `wire:"size"`
}

func (*GetEntropy) MessageType() MessageType { return MessageType_GetEntropy }

func (m *GetEntropy) GetSize() uint32 {
	if m != nil {
		return m.Size
	}
	return 0
}

// Entropy response: reply with random data generated by internal RNG
type Entropy struct {
	Entropy []byte `wire:"entropy"`
}

func (*Entropy) MessageType() MessageType { return MessageType_Entropy }

func (m *Entropy) GetEntropy() []byte {
	if m != nil {
		return m.Entropy
	}
	return nil
}

// GetPublicKey request: ask device for public key corresponding to address_n path
type GetPublicKey struct {
	AddressN       []uint32         `wire:"address_n"`
	EcdsaCurveName *string          `wire:"ecdsa_curve_name"`
	ShowDisplay    *bool            `wire:"show_display"`
	CoinName       *string          `wire:"coin_name"`
	ScriptType     *InputScriptType `wire:"script_type"`
}

func (*GetPublicKey) MessageType() MessageType { return MessageType_GetPublicKey }

const (
	Default_GetPublicKey_CoinName   string          = "Bitcoin"
	Default_GetPublicKey_ScriptType InputScriptType = InputScriptType_SPENDADDRESS
)

func (m *GetPublicKey) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *GetPublicKey) GetEcdsaCurveName() string {
	if m != nil && m.EcdsaCurveName != nil {
		return *m.EcdsaCurveName
	}
	return ""
}

func (m *GetPublicKey) GetShowDisplay() bool {
	if m != nil && m.ShowDisplay != nil {
		return *m.ShowDisplay
	}
	return false
}

func (m *GetPublicKey) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return Default_GetPublicKey_CoinName
}

func (m *GetPublicKey) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return Default_GetPublicKey_ScriptType
}

// PublicKey response: contains public key derived from device private seed
type PublicKey struct {
	Node *HDNodeType `wire:"node"`
	Xpub *string     `wire:"xpub"`
}

func (*PublicKey) MessageType() MessageType { return MessageType_PublicKey }

func (m *PublicKey) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *PublicKey) GetXpub() string {
	if m != nil && m.Xpub != nil {
		return *m.Xpub
	}
	return ""
}

// GetAddress request: ask device for address corresponding to address_n path
type GetAddress struct {
	AddressN    []uint32                  `wire:"address_n"`
	CoinName    *string                   `wire:"coin_name"`
	ShowDisplay *bool                     `wire:"show_display"`
	Multisig    *MultisigRedeemScriptType `wire:"multisig"`
	ScriptType  *InputScriptType          `wire:"script_type"`
}

func (*GetAddress) MessageType() MessageType { return MessageType_GetAddress }

const (
	Default_GetAddress_CoinName   string          = "Bitcoin"
	Default_GetAddress_ScriptType InputScriptType = InputScriptType_SPENDADDRESS
)

func (m *GetAddress) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *GetAddress) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return Default_GetAddress_CoinName
}

func (m *GetAddress) GetShowDisplay() bool {
	if m != nil && m.ShowDisplay != nil {
		return *m.ShowDisplay
	}
	return false
}

func (m *GetAddress) GetMultisig() *MultisigRedeemScriptType {
	if m != nil {
		return m.Multisig
	}
	return nil
}

func (m *GetAddress) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return Default_GetAddress_ScriptType
}

// Address response: contains address derived from device private seed
type Address struct {
	Address string `wire:"address"`
}

func (*Address) MessageType() MessageType { return MessageType_Address }

func (m *Address) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

// WipeDevice request: request device to wipe all sensitive data and settings
type WipeDevice struct{}

func (*WipeDevice) MessageType() MessageType { return MessageType_WipeDevice }

// LoadDevice request: load seed and related internal settings from the computer
type LoadDevice struct {
	Mnemonic             *string     `wire:"mnemonic"`
	Node                 *HDNodeType `wire:"node"`
	Pin                  *string     `wire:"pin"`
	PassphraseProtection *bool       `wire:"passphrase_protection"`
	Language             *string     `wire:"language"`
	Label                *string     `wire:"label"`
	SkipChecksum         *bool       `wire:"skip_checksum"`
	U2FCounter           *uint32     `wire:"u2f_counter"`
}

func (*LoadDevice) MessageType() MessageType { return MessageType_LoadDevice }

const Default_LoadDevice_Language string = "english"

func (m *LoadDevice) GetMnemonic() string {
	if m != nil && m.Mnemonic != nil {
		return *m.Mnemonic
	}
	return ""
}

func (m *LoadDevice) GetNode() *HDNodeType {
	if m != nil {
		return m.Node
	}
	return nil
}

func (m *LoadDevice) GetPin() string {
	if m != nil && m.Pin != nil {
		return *m.Pin
	}
	return ""
}

func (m *LoadDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *LoadDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return Default_LoadDevice_Language
}

func (m *LoadDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *LoadDevice) GetSkipChecksum() bool {
	if m != nil && m.SkipChecksum != nil {
		return *m.SkipChecksum
	}
	return false
}

func (m *LoadDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

// ResetDevice request: ask device to do initialization involving user interaction
type ResetDevice struct {
	DisplayRandom        *bool   `wire:"display_random"`
	Strength             *uint32 `wire:"strength"`
	PassphraseProtection *bool   `wire:"passphrase_protection"`
	PinProtection        *bool   `wire:"pin_protection"`
	Language             *string `wire:"language"`
	Label                *string `wire:"label"`
	U2FCounter           *uint32 `wire:"u2f_counter"`
	SkipBackup           *bool   `wire:"skip_backup"`
	NoBackup             *bool   `wire:"no_backup"`
}

func (*ResetDevice) MessageType() MessageType { return MessageType_ResetDevice }

const (
	Default_ResetDevice_Strength uint32 = 256
	Default_ResetDevice_Language string = "english"
)

func (m *ResetDevice) GetDisplayRandom() bool {
	if m != nil && m.DisplayRandom != nil {
		return *m.DisplayRandom
	}
	return false
}

func (m *ResetDevice) GetStrength() uint32 {
	if m != nil && m.Strength != nil {
		return *m.Strength
	}
	return Default_ResetDevice_Strength
}

func (m *ResetDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *ResetDevice) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *ResetDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return Default_ResetDevice_Language
}

func (m *ResetDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *ResetDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

func (m *ResetDevice) GetSkipBackup() bool {
	if m != nil && m.SkipBackup != nil {
		return *m.SkipBackup
	}
	return false
}

func (m *ResetDevice) GetNoBackup() bool {
	if m != nil && m.NoBackup != nil {
		return *m.NoBackup
	}
	return false
}

// BackupDevice request: perform backup of the device seed if not backed up using ResetDevice
type BackupDevice struct{}

func (*BackupDevice) MessageType() MessageType { return MessageType_BackupDevice }

// EntropyRequest response: ask for additional entropy from host computer
type EntropyRequest struct{}

func (*EntropyRequest) MessageType() MessageType { return MessageType_EntropyRequest }

// EntropyAck request: provide additional entropy for seed generation function
type EntropyAck struct {
	Entropy []byte `wire:"entropy"`
}

func (*EntropyAck) MessageType() MessageType { return MessageType_EntropyAck }

func (m *EntropyAck) GetEntropy() []byte {
	if m != nil {
		return m.Entropy
	}
	return nil
}

// RecoveryDevice request: start recovery workflow asking user for specific words of mnemonic
type RecoveryDevice struct {
	WordCount            *uint32 `wire:"word_count"`
	PassphraseProtection *bool   `wire:"passphrase_protection"`
	PinProtection        *bool   `wire:"pin_protection"`
	Language             *string `wire:"language"`
	Label                *string `wire:"label"`
	EnforceWordlist      *bool   `wire:"enforce_wordlist"`
	Type                 *uint32 `wire:"type"`
	U2FCounter           *uint32 `wire:"u2f_counter"`
	DryRun               *bool   `wire:"dry_run"`
}

func (*RecoveryDevice) MessageType() MessageType { return MessageType_RecoveryDevice }

const Default_RecoveryDevice_Language string = "english"

func (m *RecoveryDevice) GetWordCount() uint32 {
	if m != nil && m.WordCount != nil {
		return *m.WordCount
	}
	return 0
}

func (m *RecoveryDevice) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

func (m *RecoveryDevice) GetPinProtection() bool {
	if m != nil && m.PinProtection != nil {
		return *m.PinProtection
	}
	return false
}

func (m *RecoveryDevice) GetLanguage() string {
	if m != nil && m.Language != nil {
		return *m.Language
	}
	return Default_RecoveryDevice_Language
}

func (m *RecoveryDevice) GetLabel() string {
	if m != nil && m.Label != nil {
		return *m.Label
	}
	return ""
}

func (m *RecoveryDevice) GetEnforceWordlist() bool {
	if m != nil && m.EnforceWordlist != nil {
		return *m.EnforceWordlist
	}
	return false
}

func (m *RecoveryDevice) GetType() uint32 {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return 0
}

func (m *RecoveryDevice) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

func (m *RecoveryDevice) GetDryRun() bool {
	if m != nil && m.DryRun != nil {
		return *m.DryRun
	}
	return false
}

// WordRequest response: device is waiting for user to enter word of the mnemonic
type WordRequest struct {
	Type *WordRequestType `wire:"type"`
}

func (*WordRequest) MessageType() MessageType { return MessageType_WordRequest }

func (m *WordRequest) GetType() WordRequestType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return WordRequestType_Plain
}

// WordAck request: computer replies with word from the mnemonic
type WordAck struct {
	Word string `wire:"word"`
}

func (*WordAck) MessageType() MessageType { return MessageType_WordAck }

func (m *WordAck) GetWord() string {
	if m != nil {
		return m.Word
	}
	return ""
}

// SetU2FCounter request: set U2F counter
type SetU2FCounter struct {
	U2FCounter *uint32 `wire:"u2f_counter"`
}

func (*SetU2FCounter) MessageType() MessageType { return MessageType_SetU2FCounter }

func (m *SetU2FCounter) GetU2FCounter() uint32 {
	if m != nil && m.U2FCounter != nil {
		return *m.U2FCounter
	}
	return 0
}

// SignMessage request: ask device to sign message
type SignMessage struct {
	AddressN   []uint32         `wire:"address_n"`
	Message    []byte           `wire:"message"`
	CoinName   *string          `wire:"coin_name"`
	ScriptType *InputScriptType `wire:"script_type"`
}

func (*SignMessage) MessageType() MessageType { return MessageType_SignMessage }

const (
	Default_SignMessage_CoinName   string          = "Bitcoin"
	Default_SignMessage_ScriptType InputScriptType = InputScriptType_SPENDADDRESS
)

func (m *SignMessage) GetAddressN() []uint32 {
	if m != nil {
		return m.AddressN
	}
	return nil
}

func (m *SignMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *SignMessage) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return Default_SignMessage_CoinName
}

func (m *SignMessage) GetScriptType() InputScriptType {
	if m != nil && m.ScriptType != nil {
		return *m.ScriptType
	}
	return Default_SignMessage_ScriptType
}

// VerifyMessage request: ask device to verify message
type VerifyMessage struct {
	Address   *string `wire:"address"`
	Signature []byte  `wire:"signature"`
	Message   []byte  `wire:"message"`
	CoinName  *string `wire:"coin_name"`
}

func (*VerifyMessage) MessageType() MessageType { return MessageType_VerifyMessage }

const Default_VerifyMessage_CoinName string = "Bitcoin"

func (m *VerifyMessage) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *VerifyMessage) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *VerifyMessage) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *VerifyMessage) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return Default_VerifyMessage_CoinName
}

// MessageSignature response: signed message
type MessageSignature struct {
	Address   *string `wire:"address"`
	Signature []byte  `wire:"signature"`
}

func (*MessageSignature) MessageType() MessageType { return MessageType_MessageSignature }

func (m *MessageSignature) GetAddress() string {
	if m != nil && m.Address != nil {
		return *m.Address
	}
	return ""
}

func (m *MessageSignature) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// SignTx request: ask device to sign transaction
type SignTx struct {
	OutputsCount uint32  `wire:"outputs_count"`
	InputsCount  uint32  `wire:"inputs_count"`
	CoinName     *string `wire:"coin_name"`
	Version      *uint32 `wire:"version"`
	LockTime     *uint32 `wire:"lock_time"`
}

func (*SignTx) MessageType() MessageType { return MessageType_SignTx }

const (
	Default_SignTx_CoinName string = "Bitcoin"
	Default_SignTx_Version  uint32 = 1
	Default_SignTx_LockTime uint32 = 0
)

func (m *SignTx) GetOutputsCount() uint32 {
	if m != nil {
		return m.OutputsCount
	}
	return 0
}

func (m *SignTx) GetInputsCount() uint32 {
	if m != nil {
		return m.InputsCount
	}
	return 0
}

func (m *SignTx) GetCoinName() string {
	if m != nil && m.CoinName != nil {
		return *m.CoinName
	}
	return Default_SignTx_CoinName
}

func (m *SignTx) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return Default_SignTx_Version
}

func (m *SignTx) GetLockTime() uint32 {
	if m != nil && m.LockTime != nil {
		return *m.LockTime
	}
	return Default_SignTx_LockTime
}

// TxRequest response: device asks for information for signing transaction or returns the last result
type TxRequest struct {
	RequestType *RequestType             `wire:"request_type"`
	Details     *TxRequestDetailsType    `wire:"details"`
	Serialized  *TxRequestSerializedType `wire:"serialized"`
}

func (*TxRequest) MessageType() MessageType { return MessageType_TxRequest }

func (m *TxRequest) GetRequestType() RequestType {
	if m != nil && m.RequestType != nil {
		return *m.RequestType
	}
	return RequestType_TXINPUT
}

func (m *TxRequest) GetDetails() *TxRequestDetailsType {
	if m != nil {
		return m.Details
	}
	return nil
}

func (m *TxRequest) GetSerialized() *TxRequestSerializedType {
	if m != nil {
		return m.Serialized
	}
	return nil
}

// TxAck request: reported transaction data
type TxAck struct {
	Tx *TransactionType `wire:"tx"`
}

func (*TxAck) MessageType() MessageType { return MessageType_TxAck }

func (m *TxAck) GetTx() *TransactionType {
	if m != nil {
		return m.Tx
	}
	return nil
}

// SetMnemonic request: write a mnemonic in the device storage
type SetMnemonic struct {
	Mnemonic string `wire:"mnemonic"`
}

func (*SetMnemonic) MessageType() MessageType { return MessageType_SetMnemonic }

func (m *SetMnemonic) GetMnemonic() string {
	if m != nil {
		return m.Mnemonic
	}
	return ""
}

// GenerateMnemonic request: generate a mnemonic on the device and store it
type GenerateMnemonic struct {
	WordCount            *uint32 `wire:"word_count"`
	PassphraseProtection *bool   `wire:"passphrase_protection"`
}

func (*GenerateMnemonic) MessageType() MessageType { return MessageType_GenerateMnemonic }

const Default_GenerateMnemonic_WordCount uint32 = 12

func (m *GenerateMnemonic) GetWordCount() uint32 {
	if m != nil && m.WordCount != nil {
		return *m.WordCount
	}
	return Default_GenerateMnemonic_WordCount
}

func (m *GenerateMnemonic) GetPassphraseProtection() bool {
	if m != nil && m.PassphraseProtection != nil {
		return *m.PassphraseProtection
	}
	return false
}

// SkycoinAddress request: generate Skycoin addresses from the stored seed
type SkycoinAddress struct {
	AddressN       uint32  `wire:"address_n"`
	StartIndex     *uint32 `wire:"start_index"`
	ConfirmAddress *bool   `wire:"confirm_address"`
}

func (*SkycoinAddress) MessageType() MessageType { return MessageType_SkycoinAddress }

func (m *SkycoinAddress) GetAddressN() uint32 {
	if m != nil {
		return m.AddressN
	}
	return 0
}

func (m *SkycoinAddress) GetStartIndex() uint32 {
	if m != nil && m.StartIndex != nil {
		return *m.StartIndex
	}
	return 0
}

func (m *SkycoinAddress) GetConfirmAddress() bool {
	if m != nil && m.ConfirmAddress != nil {
		return *m.ConfirmAddress
	}
	return false
}

// ResponseSkycoinAddress response: list of generated Skycoin addresses
type ResponseSkycoinAddress struct {
	Addresses []string `wire:"addresses"`
}

func (*ResponseSkycoinAddress) MessageType() MessageType { return MessageType_ResponseSkycoinAddress }

func (m *ResponseSkycoinAddress) GetAddresses() []string {
	if m != nil {
		return m.Addresses
	}
	return nil
}

// SkycoinCheckMessageSignature request: check a Skycoin message signature
type SkycoinCheckMessageSignature struct {
	Address   string `wire:"address"`
	Message   string `wire:"message"`
	Signature string `wire:"signature"`
}

func (*SkycoinCheckMessageSignature) MessageType() MessageType { return MessageType_SkycoinCheckMessageSignature }

func (m *SkycoinCheckMessageSignature) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

func (m *SkycoinCheckMessageSignature) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *SkycoinCheckMessageSignature) GetSignature() string {
	if m != nil {
		return m.Signature
	}
	return ""
}

// SkycoinSignMessage request: sign a message with a Skycoin address key
type SkycoinSignMessage struct {
	AddressN uint32 `wire:"address_n"`
	Message  string `wire:"message"`
}

func (*SkycoinSignMessage) MessageType() MessageType { return MessageType_SkycoinSignMessage }

func (m *SkycoinSignMessage) GetAddressN() uint32 {
	if m != nil {
		return m.AddressN
	}
	return 0
}

func (m *SkycoinSignMessage) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

// ResponseSkycoinSignMessage response: signed message
type ResponseSkycoinSignMessage struct {
	SignedMessage string `wire:"signed_message"`
}

func (*ResponseSkycoinSignMessage) MessageType() MessageType { return MessageType_ResponseSkycoinSignMessage }

func (m *ResponseSkycoinSignMessage) GetSignedMessage() string {
	if m != nil {
		return m.SignedMessage
	}
	return ""
}

// FirmwareErase request: ask device to erase its firmware (so it can be replaced via FirmwareUpload)
type FirmwareErase struct {
	Length *uint32 `wire:"length"`
}

func (*FirmwareErase) MessageType() MessageType { return MessageType_FirmwareErase }

func (m *FirmwareErase) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

// FirmwareRequest response: ask for firmware chunk
type FirmwareRequest struct {
	Offset *uint32 `wire:"offset"`
	Length *uint32 `wire:"length"`
}

func (*FirmwareRequest) MessageType() MessageType { return MessageType_FirmwareRequest }

func (m *FirmwareRequest) GetOffset() uint32 {
	if m != nil && m.Offset != nil {
		return *m.Offset
	}
	return 0
}

func (m *FirmwareRequest) GetLength() uint32 {
	if m != nil && m.Length != nil {
		return *m.Length
	}
	return 0
}

// FirmwareUpload request: send firmware in binary form to the device
type FirmwareUpload struct {
	Payload []byte `wire:"payload"`
	Hash    []byte `wire:"hash"`
}

func (*FirmwareUpload) MessageType() MessageType { return MessageType_FirmwareUpload }

func (m *FirmwareUpload) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func (m *FirmwareUpload) GetHash() []byte {
	if m != nil {
		return m.Hash
	}
	return nil
}

// SelfTest request: perform a device self-test
type SelfTest struct {
	Payload []byte `wire:"payload"`
}

func (*SelfTest) MessageType() MessageType { return MessageType_SelfTest }

func (m *SelfTest) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}
