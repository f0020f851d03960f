package wire

import (
	"os"
)

// Config controls optional codec behaviors. It is passed to each decoder
// explicitly; there is no package-level configuration.
type Config struct {
	// AllowUnknownEnumNumberDecode: when true, decoding enums from wire will accept
	// numeric values that are not present in the enum definition and surface them
	// as their numeric value (int32) instead of failing. When false (default),
	// unknown enum numbers fail with ErrEnumValueOutOfDomain.
	AllowUnknownEnumNumberDecode bool

	// PreserveUnknownBytesOnDecode: when true, decoded messages will include a
	// special "__unknown" []byte field containing concatenated unknown field
	// bytes. When false (default) unknown fields are discarded.
	PreserveUnknownBytesOnDecode bool

	// PopulateDefaultsOnDecode: when true (default), optional scalar and enum
	// fields that are absent in the wire payload get their declared default or
	// proto2 zero value in the result map.
	PopulateDefaultsOnDecode bool

	// StrictWireTypeOnDecode: when true, a known field arriving with the wrong
	// wire type fails with ErrWireTypeMismatch. When false (default) the value
	// is skipped like an unknown field.
	StrictWireTypeOnDecode bool
}

// UnknownFieldsKey is the result key used by PreserveUnknownBytesOnDecode.
const UnknownFieldsKey = "__unknown"

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{PopulateDefaultsOnDecode: true}
}

// ConfigFromEnv starts from DefaultConfig and applies the HWWIRE_* toggles
// found in the environment, for test harnesses and the hwmsg tool.
func ConfigFromEnv() Config {
	c := DefaultConfig()
	envToggle("HWWIRE_ALLOW_UNKNOWN_ENUM_DECODE", &c.AllowUnknownEnumNumberDecode)
	envToggle("HWWIRE_PRESERVE_UNKNOWN", &c.PreserveUnknownBytesOnDecode)
	envToggle("HWWIRE_POPULATE_DEFAULTS_ON_DECODE", &c.PopulateDefaultsOnDecode)
	envToggle("HWWIRE_STRICT_WIRE", &c.StrictWireTypeOnDecode)
	return c
}

func envToggle(name string, dst *bool) {
	switch os.Getenv(name) {
	case "1", "true":
		*dst = true
	case "0", "false":
		*dst = false
	}
}
